package internal

import "fmt"

// Edges are stored directed, since triangles need their edges in
// counterclockwise order, but compared undirected.
type Edge struct {
	A, B Vertex
}

// Canonical undirected form of an edge, lower vertex first. Usable as a map key.
type EdgeKey struct {
	Lo, Hi Vertex
}

func NewEdge(a, b Vertex) Edge {
	return Edge{A: a, B: b}
}

func (e Edge) Equals(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

func (e Edge) Reversed() Edge {
	return Edge{A: e.B, B: e.A}
}

func (e Edge) ContainsGhost() bool {
	return e.A.IsGhost() || e.B.IsGhost()
}

// Both endpoints are ghosts.
func (e Edge) IsGhostEdge() bool {
	return e.A.IsGhost() && e.B.IsGhost()
}

func (e Edge) HasEndpoint(v Vertex) bool {
	return e.A == v || e.B == v
}

// The endpoint shared with another edge, if there is exactly one.
func (e Edge) SharedEndpoint(o Edge) (Vertex, bool) {
	if e.Equals(o) {
		return Vertex{}, false
	}
	switch {
	case o.HasEndpoint(e.A):
		return e.A, true
	case o.HasEndpoint(e.B):
		return e.B, true
	}
	return Vertex{}, false
}

func (e Edge) Key() EdgeKey {
	if e.A.LexicographicallyGreaterThan(e.B) {
		return EdgeKey{Lo: e.B, Hi: e.A}
	}
	return EdgeKey{Lo: e.A, Hi: e.B}
}

func (e Edge) String() string {
	return fmt.Sprintf("%v→%v", e.A, e.B)
}
