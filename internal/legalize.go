package internal

// Restore the Delaunay property around a freshly inserted vertex v. Edge e
// belongs to node id, whose third vertex is v. If the vertex k across e lies
// inside the circumcircle of the node's triangle, e is flipped to k→v and the
// two edges of the flipped quadrilateral facing away from v are checked in
// turn.
func (b *Builder) legalize(e Edge, v Vertex, id NodeID) {
	g := b.graph
	neighbor := b.neighborAcross(id, e)
	if neighbor == NoNode {
		return
	}
	k := g.Node(neighbor).Triangle.OppositeVertex(e)
	if b.isLegal(id, e, v, k) {
		return
	}

	outerA := b.neighborAcross(id, Edge{e.A, v})
	outerB := b.neighborAcross(id, Edge{e.B, v})
	outerNeighborA := b.neighborAcross(neighbor, Edge{e.A, k})
	outerNeighborB := b.neighborAcross(neighbor, Edge{e.B, k})

	flippedA := g.AddNode(NewTriangle(k, v, e.A), id, neighbor)
	flippedB := g.AddNode(NewTriangle(k, v, e.B), id, neighbor)
	b.tracer.Tracef("flipped %v to %v: %s %s replace %s %s",
		e, Edge{k, v}, nodeName{g, flippedA}, nodeName{g, flippedB}, nodeName{g, id}, nodeName{g, neighbor})

	g.link(flippedA, Edge{e.A, v}, outerA)
	g.link(flippedB, Edge{e.B, v}, outerB)
	g.link(flippedA, Edge{e.A, k}, outerNeighborA)
	g.link(flippedB, Edge{e.B, k}, outerNeighborB)
	g.link(flippedA, Edge{k, v}, flippedB)

	b.legalize(Edge{e.A, k}, v, flippedA)
	b.legalize(Edge{e.B, k}, v, flippedB)
}

// Whether edge e, between node id (apex v) and the triangle with apex k, may
// stay. Edges of the root triangle are never flipped, and a cocircular k keeps
// the existing edge.
func (b *Builder) isLegal(id NodeID, e Edge, v, k Vertex) bool {
	g := b.graph
	if g.Node(g.Root()).Triangle.HasEdge(e) {
		return true
	}
	if e.ContainsGhost() {
		return !isIllegalGhostEdge(e, v, k)
	}
	if k.IsGhost() {
		return true
	}
	return Incircle(g.Node(id).Triangle, k) != Inside
}

type endpointPosition int

const (
	endpointA endpointPosition = iota
	endpointB
)

type ghostRule struct {
	position endpointPosition
	ghost    Vertex
	// k is lexicographically greater than v.
	kAbove bool
	// Side of e's real endpoint relative to k→v.
	side Orientation
}

// The ghost edge combinations that must be flipped. Anything not listed is
// legal; in particular a real endpoint collinear with k→v never forces a flip.
var illegalGhostEdges = map[ghostRule]bool{
	{endpointA, Ghost1, true, Clockwise}:         true,
	{endpointA, Ghost1, false, CounterClockwise}: true,
	{endpointA, Ghost2, true, CounterClockwise}:  true,
	{endpointA, Ghost2, false, Clockwise}:        true,
	{endpointB, Ghost1, true, Clockwise}:         true,
	{endpointB, Ghost1, false, CounterClockwise}: true,
	{endpointB, Ghost2, true, CounterClockwise}:  true,
	{endpointB, Ghost2, false, Clockwise}:        true,
}

// Decide whether an edge touching a ghost vertex must be flipped to k→v. Ghost
// triangles have no circumcircle, so this is settled by which side of the
// candidate edge the real endpoint of e falls on.
func isIllegalGhostEdge(e Edge, v, k Vertex) bool {
	if k.IsGhost() {
		return false
	}
	if v == Ghost1 && e.HasEndpoint(Ghost2) {
		return true
	}

	test := Edge{k, v}
	kAbove := k.LexicographicallyGreaterThan(v)
	candidates := [2]struct {
		position endpointPosition
		ghost    Vertex
		other    Vertex
	}{
		{endpointA, e.A, e.B},
		{endpointB, e.B, e.A},
	}
	for _, c := range candidates {
		if !c.ghost.IsGhost() {
			continue
		}
		rule := ghostRule{c.position, c.ghost, kAbove, c.other.SideOf(test)}
		if illegalGhostEdges[rule] {
			return true
		}
	}
	return false
}
