package internal

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every consecutive pair of edges must join up.
func assertClosedCycle(t *testing.T, tri Triangle) {
	t.Helper()
	assert.Equal(t, tri.A.B, tri.B.A, "%v", tri)
	assert.Equal(t, tri.B.B, tri.C.A, "%v", tri)
	assert.Equal(t, tri.C.B, tri.A.A, "%v", tri)
}

func TestNewTriangle_Real(t *testing.T) {
	x, y, z := Vertex{0, 0}, Vertex{10, 0}, Vertex{5, 5}
	for _, perm := range [][3]Vertex{{x, y, z}, {x, z, y}, {y, x, z}, {y, z, x}, {z, x, y}, {z, y, x}} {
		tri := NewTriangle(perm[0], perm[1], perm[2])
		assertClosedCycle(t, tri)
		p := tri.Points()
		assert.Equal(t, CounterClockwise, Orient2D(p[0], p[1], p[2]))
		assert.Equal(t, 25.0, tri.Area())
	}
}

func TestNewTriangle_Ghosts(t *testing.T) {
	lo, hi := Vertex{3, 1}, Vertex{0, 4}

	for _, g := range []Vertex{Ghost1, Ghost2} {
		for _, perm := range [][3]Vertex{{g, lo, hi}, {lo, g, hi}, {hi, lo, g}} {
			tri := NewTriangle(perm[0], perm[1], perm[2])
			assertClosedCycle(t, tri)
			// Every vertex is on the left of the edges that don't touch it.
			for _, e := range tri.Edges() {
				apex := tri.OppositeVertex(e)
				assert.True(t, apex.LiesLeftOf(e), "%v should be left of %v", apex, e)
			}
		}
	}

	tri := NewTriangle(Ghost1, lo, hi)
	assert.Equal(t, Triangle{Edge{Ghost1, hi}, Edge{hi, lo}, Edge{lo, Ghost1}}, tri)
	tri = NewTriangle(lo, Ghost2, hi)
	assert.Equal(t, Triangle{Edge{Ghost2, lo}, Edge{lo, hi}, Edge{hi, Ghost2}}, tri)

	for _, perm := range [][3]Vertex{{lo, Ghost1, Ghost2}, {Ghost2, lo, Ghost1}, {Ghost1, Ghost2, lo}} {
		tri := NewTriangle(perm[0], perm[1], perm[2])
		assert.Equal(t, Triangle{Edge{Ghost2, Ghost1}, Edge{Ghost1, lo}, Edge{lo, Ghost2}}, tri)
	}
}

func TestNewTriangle_AllGhosts(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		NewTriangle(Ghost1, Ghost2, Ghost1)
		return nil
	}()
	assert.ErrorIs(t, err, ErrInvariantViolated)
}

func TestTriangle_FromEdge(t *testing.T) {
	e := Edge{Vertex{0, 0}, Vertex{4, 0}}
	apex := Vertex{2, -3}
	tri := NewTriangleFromEdge(e, apex)
	assert.True(t, tri.HasEdge(e))
	assert.True(t, tri.HasEdge(e.Reversed()))
	assert.Equal(t, apex, tri.OppositeVertex(e))
	assert.True(t, tri.Equals(NewTriangle(e.A, apex, e.B)))
}

func TestTriangle_Contains(t *testing.T) {
	tri := NewTriangle(Vertex{0, 0}, Vertex{10, 0}, Vertex{0, 10})
	assert.True(t, tri.Contains(Vertex{1, 1}))
	assert.False(t, tri.Contains(Vertex{5, 0}))
	assert.True(t, tri.ContainsClosed(Vertex{5, 0}))
	assert.True(t, tri.ContainsClosed(Vertex{0, 0}))
	assert.False(t, tri.ContainsClosed(Vertex{6, 6}))

	// The root triangle covers everything below its real vertex.
	root := NewTriangle(Vertex{0, 10}, Ghost1, Ghost2)
	assert.True(t, root.Contains(Vertex{-1e9, 9.99}))
	assert.True(t, root.Contains(Vertex{1e9, -1e9}))
	assert.True(t, root.Contains(Vertex{-5, 10}))
	assert.False(t, root.Contains(Vertex{5, 10}))
	assert.False(t, root.Contains(Vertex{0, 11}))
}

func TestTriangle_Key(t *testing.T) {
	a, b, c := Vertex{0, 0}, Vertex{1, 0}, Vertex{0, 1}
	assert.Equal(t, TriangleKey{a, b, c}, NewTriangle(c, b, a).Key())
	assert.Equal(t, NewTriangle(a, b, c).Key(), NewTriangle(b, c, a).Key())
	assert.Equal(t, TriangleKey{Ghost1, a, Ghost2}, NewTriangle(Ghost2, a, Ghost1).Key())
}

func TestTriangle_Measures(t *testing.T) {
	tri := NewTriangle(Vertex{0, 0}, Vertex{3, 0}, Vertex{0, 3})
	assert.Equal(t, Vertex{1, 1}, tri.Centroid())
	assert.InDelta(t, math.Pi/4, tri.MinAngle(), 1e-12)

	equilateral := NewTriangle(Vertex{0, 0}, Vertex{2, 0}, Vertex{1, math.Sqrt(3)})
	assert.InDelta(t, math.Pi/3, equilateral.MinAngle(), 1e-9)
}

func TestTriangleSet(t *testing.T) {
	t1 := NewTriangle(Vertex{0, 0}, Vertex{1, 0}, Vertex{0, 1})
	t2 := NewTriangle(Vertex{1, 0}, Vertex{1, 1}, Vertex{0, 1})
	set := NewTriangleSet(t1, t2, NewTriangle(Vertex{0, 1}, Vertex{0, 0}, Vertex{1, 0}))
	require.Len(t, set, 2)
	assert.True(t, set.Contains(t2))
	assert.True(t, set.Equals(NewTriangleSet(t2, t1)))
	assert.False(t, set.Equals(NewTriangleSet(t1)))
	assert.Len(t, set.Points(), 4)

	sorted := set.Sorted()
	require.Len(t, sorted, 2)
	assert.True(t, sorted[0].Equals(t1))

	lines := strings.Split(set.BriefDescription(), "\n")
	assert.Len(t, lines, 2)

	source := set.GoSource()
	assert.True(t, strings.HasPrefix(source, "NewTriangleSet(\n"))
	assert.Contains(t, source, "NewTriangle(Vertex{")
	assert.Equal(t, 2, strings.Count(source, "NewTriangle("))
}
