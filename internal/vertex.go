package internal

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r2"
)

// Vertices are plain values. Two vertices are the same vertex exactly when
// their coordinates are equal, which also makes them usable as map keys.
type Vertex struct {
	X, Y float64
}

// The ghost vertices stand in for points at infinity, which lets the outer face
// of the triangulation be made of ordinary triangles. Ghost1 behaves like a
// point infinitely far to the east (and slightly south), Ghost2 like a point
// infinitely far to the west (and slightly north). Their coordinates are only
// sentinels and are never used geometrically.
var (
	Ghost1 = Vertex{-1, -1}
	Ghost2 = Vertex{-2, -2}
)

func NewVertex(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

func VertexFromPoint(p r2.Point) Vertex {
	return Vertex{X: p.X, Y: p.Y}
}

func (v Vertex) Point() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

func (v Vertex) IsGhost() bool {
	return v == Ghost1 || v == Ghost2
}

// Lexicographic order: Ghost2 is above everything, Ghost1 below everything, and
// real vertices compare by y, breaking ties by x.
func (v Vertex) LexicographicallyGreaterThan(o Vertex) bool {
	if v == o {
		return false
	}
	if v == Ghost2 || o == Ghost1 {
		return true
	}
	if v == Ghost1 || o == Ghost2 {
		return false
	}
	if v.Y != o.Y {
		return v.Y > o.Y
	}
	return v.X > o.X
}

// The side of the directed edge that v lies on. The ghost rules never produce
// Collinear; only three real vertices can be collinear.
func (v Vertex) SideOf(e Edge) Orientation {
	if v.IsGhost() || e.ContainsGhost() {
		if v.symbolicallyLeftOf(e) {
			return CounterClockwise
		}
		return Clockwise
	}
	return Orient2D(e.A, e.B, v)
}

func (v Vertex) symbolicallyLeftOf(e Edge) bool {
	switch {
	case v == Ghost1:
		return e.A.LexicographicallyGreaterThan(e.B)
	case v == Ghost2:
		return e.B.LexicographicallyGreaterThan(e.A)
	case e.A == Ghost1 && e.B == Ghost2:
		return false
	case e.A == Ghost2 && e.B == Ghost1:
		return true
	case e.B == Ghost1:
		return v.LexicographicallyGreaterThan(e.A)
	case e.A == Ghost1:
		return e.B.LexicographicallyGreaterThan(v)
	case e.A == Ghost2:
		return v.LexicographicallyGreaterThan(e.B)
	case e.B == Ghost2:
		return e.A.LexicographicallyGreaterThan(v)
	}
	fatalf("no ghost involved in symbolic side test of %v against %v", v, e)
	return false
}

// Strictly left of the directed edge.
func (v Vertex) LiesLeftOf(e Edge) bool {
	return v.SideOf(e) == CounterClockwise
}

// Strictly right of the directed edge.
func (v Vertex) LiesRightOf(e Edge) bool {
	return v.SideOf(e) == Clockwise
}

// Whether v lies on the line through a real edge. Edges touching a ghost never
// have anything incident on them.
func (v Vertex) IsIncidentOn(e Edge) bool {
	if v.IsGhost() || e.ContainsGhost() {
		return false
	}
	return Orient2D(e.A, e.B, v) == Collinear
}

func (v Vertex) String() string {
	switch v {
	case Ghost1:
		return "ghost1"
	case Ghost2:
		return "ghost2"
	}
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Sort vertices in place by lexicographic order.
func SortLexicographically(vertices []Vertex, increasing bool) {
	sort.Slice(vertices, func(i, j int) bool {
		if increasing {
			return vertices[j].LexicographicallyGreaterThan(vertices[i])
		}
		return vertices[i].LexicographicallyGreaterThan(vertices[j])
	})
}

type VertexSet map[Vertex]struct{}

func NewVertexSet(vertices ...Vertex) VertexSet {
	set := make(VertexSet, len(vertices))
	for _, v := range vertices {
		set.Add(v)
	}
	return set
}

func (s VertexSet) Add(v Vertex) {
	s[v] = struct{}{}
}

func (s VertexSet) Contains(v Vertex) bool {
	_, ok := s[v]
	return ok
}

func (s VertexSet) Equals(other VertexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s VertexSet) SortedLexicographically(increasing bool) []Vertex {
	result := make([]Vertex, 0, len(s))
	for v := range s {
		result = append(result, v)
	}
	SortLexicographically(result, increasing)
	return result
}
