package internal

import (
	"github.com/pkg/errors"
)

// Randomized incremental Delaunay triangulation, in the style of de Berg et al.
// Points are inserted one at a time into a triangulation that starts as a
// single triangle made of the topmost point and the two ghost vertices. Each
// insertion locates the containing triangle through the location graph,
// splits it, and then restores the Delaunay property by flipping edges.

type Triangulator struct {
	config config
}

func NewTriangulator(opts ...Option) *Triangulator {
	return &Triangulator{config: newConfig(opts)}
}

// Triangulate the points and return the finished location graph. Duplicate
// points are dropped. Empty input produces a nil graph and no error.
func (tr *Triangulator) Triangulate(points []Vertex) (graph *LocationGraph, err error) {
	unique := make(VertexSet, len(points))
	for _, p := range points {
		if p.IsGhost() {
			return nil, errors.Wrapf(ErrGhostCoordinate, "input vertex %v", p)
		}
		unique.Add(p)
	}
	if len(unique) == 0 {
		return nil, nil
	}

	sorted := unique.SortedLexicographically(false)
	builder, err := newBuilder(sorted[0], tr.config)
	if err != nil {
		return nil, err
	}

	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			graph = nil
			err = recoveredErr
		}
	}()
	for _, p := range sorted[1:] {
		builder.insert(p)
	}
	return builder.graph, nil
}

// A Builder grows a triangulation one point at a time. The first vertex must be
// lexicographically greater than every vertex inserted afterwards; beyond that,
// points may arrive in any order.
type Builder struct {
	graph    *LocationGraph
	tracer   Tracer
	first    Vertex
	inserted VertexSet
	// Set once an invariant failure has left the graph half-updated.
	broken error
}

func NewBuilder(first Vertex, opts ...Option) (*Builder, error) {
	return newBuilder(first, newConfig(opts))
}

func newBuilder(first Vertex, c config) (*Builder, error) {
	if first.IsGhost() {
		return nil, errors.Wrapf(ErrGhostCoordinate, "first vertex %v", first)
	}
	graph := NewLocationGraph(NewTriangle(first, Ghost1, Ghost2))
	graph.tracer = c.tracer
	c.tracer.Tracef("root triangle %v", graph.Node(graph.Root()).Triangle)
	return &Builder{
		graph:    graph,
		tracer:   c.tracer,
		first:    first,
		inserted: NewVertexSet(first),
	}, nil
}

// Insert a single vertex. Either the vertex ends up fully inserted and
// legalized, or an error is returned. Input errors leave the Builder untouched;
// after an ErrInvariantViolated the Builder refuses further work.
func (b *Builder) Insert(v Vertex) (err error) {
	if b.broken != nil {
		return errors.Wrap(b.broken, "builder is unusable after an earlier failure")
	}
	switch {
	case v.IsGhost():
		return errors.Wrapf(ErrGhostCoordinate, "vertex %v", v)
	case b.inserted.Contains(v):
		return errors.Wrapf(ErrDuplicateVertex, "vertex %v", v)
	case !b.first.LexicographicallyGreaterThan(v):
		return errors.Wrapf(ErrNotBelowRoot, "vertex %v, first vertex %v", v, b.first)
	}

	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			if errors.Is(recoveredErr, ErrInvariantViolated) {
				b.broken = recoveredErr
			}
			err = recoveredErr
		}
	}()
	b.insert(v)
	return nil
}

func (b *Builder) Graph() *LocationGraph {
	return b.graph
}

// The current triangulation.
func (b *Builder) Triangles() TriangleSet {
	return b.graph.LeafTriangles(b.graph.Root())
}

// Number of vertices inserted so far, the first one included.
func (b *Builder) Len() int {
	return len(b.inserted)
}

func (b *Builder) insert(p Vertex) {
	g := b.graph
	leaf, ok := g.FindNodeContaining(g.Root(), p)
	if !ok {
		invariantf("could not locate %v in the location graph", p)
	}
	b.tracer.Tracef("inserting %v into %s %v", p, nodeName{g, leaf}, g.Node(leaf).Triangle)

	for _, e := range g.Node(leaf).Triangle.Edges() {
		if !p.IsIncidentOn(e) {
			continue
		}
		if neighbor := b.neighborAcross(leaf, e); neighbor != NoNode {
			b.insertOnEdge(leaf, neighbor, e, p)
			b.inserted.Add(p)
			return
		}
	}
	b.insertInterior(leaf, p)
	b.inserted.Add(p)
}

// The leaf across edge e from node id. The recorded neighbor link is
// authoritative; the history search only fills in when no link exists.
func (b *Builder) neighborAcross(id NodeID, e Edge) NodeID {
	g := b.graph
	if neighbor := g.NeighborAcross(id, e); neighbor != NoNode {
		return neighbor
	}
	if neighbor, ok := g.FindTriangleIncident(e, id); ok {
		if g.State(neighbor) != Leaf || !g.Node(neighbor).Triangle.HasEdge(e) || neighbor == id {
			invariantf("history search across %v from %s found %s", e, g.DbgName(id), g.DbgName(neighbor))
		}
		return neighbor
	}
	return NoNode
}

// Split a leaf into three around a point strictly inside it.
func (b *Builder) insertInterior(leaf NodeID, p Vertex) {
	g := b.graph
	node := g.Node(leaf)
	edges := node.Triangle.Edges()
	var outer [3]NodeID
	for i, e := range edges {
		outer[i] = b.neighborAcross(leaf, e)
	}

	var children [3]NodeID
	for i, e := range edges {
		children[i] = g.AddNode(NewTriangleFromEdge(e, p), leaf)
	}
	for i, e := range edges {
		g.link(children[i], e, outer[i])
	}
	for i := range edges {
		for j := range edges {
			if i == j {
				continue
			}
			shared, ok := edges[i].SharedEndpoint(edges[j])
			if !ok {
				invariantf("edges %v and %v of %v share no vertex", edges[i], edges[j], node.Triangle)
			}
			g.SetNeighborAcross(children[i], Edge{shared, p}, children[j])
		}
	}
	b.tracer.Tracef("split %s into %s, %s, %s",
		nodeName{g, leaf}, nodeName{g, children[0]}, nodeName{g, children[1]}, nodeName{g, children[2]})

	for i, e := range edges {
		b.legalize(e, p, children[i])
	}
}

// Split a leaf and its neighbor across edge e, where p lies on e, into four.
func (b *Builder) insertOnEdge(leaf, neighbor NodeID, e Edge, p Vertex) {
	g := b.graph
	type split struct {
		id    NodeID
		edge  Edge
		outer NodeID
	}

	var splits []split
	for _, owner := range []NodeID{leaf, neighbor} {
		for _, f := range g.Node(owner).Triangle.Edges() {
			if f.Equals(e) {
				continue
			}
			splits = append(splits, split{edge: f, outer: b.neighborAcross(owner, f)})
		}
		for i := len(splits) - 2; i < len(splits); i++ {
			splits[i].id = g.AddNode(NewTriangleFromEdge(splits[i].edge, p), owner)
		}
	}
	if len(splits) != 4 {
		invariantf("splitting on %v produced %d triangles", e, len(splits))
	}

	for _, s := range splits {
		g.link(s.id, s.edge, s.outer)
	}
	for i := range splits {
		for j := i + 1; j < len(splits); j++ {
			shared, ok := splits[i].edge.SharedEndpoint(splits[j].edge)
			if !ok {
				continue
			}
			g.link(splits[i].id, Edge{shared, p}, splits[j].id)
		}
	}
	b.tracer.Tracef("split %s and %s on edge %v at %v", nodeName{g, leaf}, nodeName{g, neighbor}, e, p)

	for _, s := range splits {
		b.legalize(s.edge, p, s.id)
	}
}
