package internal

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A triangle is a closed counterclockwise cycle of edges: A.B == B.A,
// B.B == C.A and C.B == A.A. Triangles with ghost vertices follow the symbolic
// orientation of the ghosts, so "counterclockwise" holds for them too.
type Triangle struct {
	A, B, C Edge
}

// Canonical vertex triple in increasing lexicographic order.
type TriangleKey [3]Vertex

// Build the triangle on x, y and z. Which order the edges come out in depends
// on how many of the vertices are ghosts:
//
//   - none: x is placed on the left of y→z, reversing the cycle if needed
//   - one: the two real vertices are ordered lexicographically, and the ghost
//     is placed east (Ghost1) or west (Ghost2) of them
//   - two: the cycle is always Ghost2→Ghost1→real
//
// Three ghosts is impossible and panics.
func NewTriangle(x, y, z Vertex) Triangle {
	points := [3]Vertex{x, y, z}
	var ghosts, reals []Vertex
	for _, p := range points {
		if p.IsGhost() {
			ghosts = append(ghosts, p)
		} else {
			reals = append(reals, p)
		}
	}

	switch len(ghosts) {
	case 0:
		if x.LiesLeftOf(Edge{y, z}) {
			return Triangle{Edge{y, z}, Edge{z, x}, Edge{x, y}}
		}
		return Triangle{Edge{y, x}, Edge{x, z}, Edge{z, y}}
	case 1:
		lo, hi := reals[0], reals[1]
		if lo.LexicographicallyGreaterThan(hi) {
			lo, hi = hi, lo
		}
		g := ghosts[0]
		if g == Ghost1 {
			return Triangle{Edge{g, hi}, Edge{hi, lo}, Edge{lo, g}}
		}
		return Triangle{Edge{g, lo}, Edge{lo, hi}, Edge{hi, g}}
	case 2:
		if ghosts[0] == ghosts[1] {
			invariantf("triangle with a repeated ghost vertex: %v %v %v", x, y, z)
		}
		r := reals[0]
		return Triangle{Edge{Ghost2, Ghost1}, Edge{Ghost1, r}, Edge{r, Ghost2}}
	}
	invariantf("triangle made entirely of ghost vertices")
	return Triangle{}
}

// The triangle formed by an edge and an apex vertex.
func NewTriangleFromEdge(e Edge, apex Vertex) Triangle {
	return NewTriangle(apex, e.A, e.B)
}

func (t Triangle) Points() [3]Vertex {
	return [3]Vertex{t.A.A, t.B.A, t.C.A}
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{t.A, t.B, t.C}
}

func (t Triangle) HasGhost() bool {
	return t.A.A.IsGhost() || t.B.A.IsGhost() || t.C.A.IsGhost()
}

func (t Triangle) HasVertex(v Vertex) bool {
	return t.A.A == v || t.B.A == v || t.C.A == v
}

// Position of an edge (in either direction) in the triangle's cycle, or -1.
func (t Triangle) EdgeIndex(e Edge) int {
	for i, edge := range t.Edges() {
		if edge.Equals(e) {
			return i
		}
	}
	return -1
}

func (t Triangle) HasEdge(e Edge) bool {
	return t.EdgeIndex(e) >= 0
}

// The vertex not on the given edge. The edge must belong to the triangle.
func (t Triangle) OppositeVertex(e Edge) Vertex {
	for _, p := range t.Points() {
		if !e.HasEndpoint(p) {
			return p
		}
	}
	invariantf("edge %v has no opposite vertex in %v", e, t)
	return Vertex{}
}

// Strictly inside: left of all three edges.
func (t Triangle) Contains(v Vertex) bool {
	return v.LiesLeftOf(t.A) && v.LiesLeftOf(t.B) && v.LiesLeftOf(t.C)
}

// Inside or on the boundary.
func (t Triangle) ContainsClosed(v Vertex) bool {
	return !v.LiesRightOf(t.A) && !v.LiesRightOf(t.B) && !v.LiesRightOf(t.C)
}

func (t Triangle) CircumcircleContains(v Vertex) bool {
	return Incircle(t, v) == Inside
}

func (t Triangle) Key() TriangleKey {
	p := t.Points()
	key := TriangleKey{p[0], p[1], p[2]}
	SortLexicographically(key[:], true)
	return key
}

func (t Triangle) Equals(o Triangle) bool {
	return t.Key() == o.Key()
}

func (t Triangle) Centroid() Vertex {
	p := t.Points()
	return Vertex{
		X: (p[0].X + p[1].X + p[2].X) / 3,
		Y: (p[0].Y + p[1].Y + p[2].Y) / 3,
	}
}

// Signed area, positive for counterclockwise real triangles.
func (t Triangle) Area() float64 {
	p := t.Points()
	return ((p[1].X-p[0].X)*(p[2].Y-p[0].Y) - (p[1].Y-p[0].Y)*(p[2].X-p[0].X)) / 2
}

// Smallest interior angle, in radians.
func (t Triangle) MinAngle() float64 {
	p := t.Points()
	result := math.Inf(1)
	for i := 0; i < 3; i++ {
		o, q, r := p[i], p[(i+1)%3], p[(i+2)%3]
		ux, uy := q.X-o.X, q.Y-o.Y
		vx, vy := r.X-o.X, r.Y-o.Y
		angle := math.Atan2(math.Abs(ux*vy-uy*vx), ux*vx+uy*vy)
		result = math.Min(result, angle)
	}
	return result
}

func (t Triangle) String() string {
	p := t.Points()
	return fmt.Sprintf("{%v, %v, %v}", p[0], p[1], p[2])
}

type TriangleSet map[TriangleKey]Triangle

func NewTriangleSet(triangles ...Triangle) TriangleSet {
	set := make(TriangleSet, len(triangles))
	for _, t := range triangles {
		set.Add(t)
	}
	return set
}

func (s TriangleSet) Add(t Triangle) {
	s[t.Key()] = t
}

func (s TriangleSet) Contains(t Triangle) bool {
	_, ok := s[t.Key()]
	return ok
}

func (s TriangleSet) Equals(other TriangleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for key := range s {
		if _, ok := other[key]; !ok {
			return false
		}
	}
	return true
}

func (s TriangleSet) Points() VertexSet {
	points := make(VertexSet)
	for _, t := range s {
		for _, p := range t.Points() {
			points.Add(p)
		}
	}
	return points
}

// Triangles ordered by their canonical keys, so output is stable between runs.
func (s TriangleSet) Sorted() []Triangle {
	keys := make([]TriangleKey, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if keys[i][k] != keys[j][k] {
				return keys[j][k].LexicographicallyGreaterThan(keys[i][k])
			}
		}
		return false
	})
	result := make([]Triangle, len(keys))
	for i, key := range keys {
		result[i] = s[key]
	}
	return result
}

// One triangle per line, in sorted order.
func (s TriangleSet) BriefDescription() string {
	var lines []string
	for _, t := range s.Sorted() {
		lines = append(lines, t.String())
	}
	return strings.Join(lines, "\n")
}

// Go source for a literal that rebuilds this set. Handy for turning a
// triangulation of interest into a regression fixture.
func (s TriangleSet) GoSource() string {
	var b strings.Builder
	b.WriteString("NewTriangleSet(\n")
	for _, t := range s.Sorted() {
		p := t.Points()
		fmt.Fprintf(&b, "\tNewTriangle(Vertex{%v, %v}, Vertex{%v, %v}, Vertex{%v, %v}),\n",
			p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
	}
	b.WriteString(")")
	return b.String()
}
