package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangle set is the Delaunay triangulation of the
// points. The rules are:
// 1. The set of points in the triangles equals the set of input points.
// 2. Every triangle is counterclockwise, and none has zero area.
// 3. No point lies strictly inside the circumcircle of any triangle.
// 4. The triangle areas sum to the area of the convex hull.
// 5. Euler's formula holds, and there are 2n - 2 - h triangles, where h counts
//    the points on the hull boundary.
// 6. Every point lies in the closed region of at least one triangle.
//
// If every point is collinear, the only valid result is no triangles at all.
func AssertValidTriangulation(t *testing.T, points []Vertex, triangles TriangleSet) {
	t.Helper()
	unique := NewVertexSet(points...)
	hull := ConvexHull(points)
	if len(hull) < 3 {
		require.Empty(t, triangles, "collinear input must produce no triangles")
		return
	}

	require.True(t, unique.Equals(triangles.Points()), "set of points in the triangles must equal the set of input points")

	var triangleArea float64
	edges := make(map[EdgeKey]struct{})
	for _, tri := range triangles {
		p := tri.Points()
		require.Equal(t, CounterClockwise, Orient2D(p[0], p[1], p[2]), "triangle is not counterclockwise: %v", tri)
		triangleArea += tri.Area()
		for _, e := range tri.Edges() {
			edges[e.Key()] = struct{}{}
		}

		for v := range unique {
			if tri.HasVertex(v) {
				continue
			}
			assert.NotEqual(t, Inside, Incircle(tri, v), "%v lies inside the circumcircle of %v", v, tri)
		}
	}

	hullArea := PolygonArea(hull)
	assert.InDelta(t, hullArea, triangleArea, 1e-9*math.Max(1, hullArea), "triangle areas must sum to the hull area")

	// Faces include the outer face
	assert.Equal(t, 2, len(unique)-len(edges)+len(triangles)+1, "Euler's formula")
	assert.Equal(t, 2*len(unique)-2-countBoundaryPoints(unique, hull), len(triangles), "triangle count")

	for v := range unique {
		found := false
		for _, tri := range triangles {
			if tri.ContainsClosed(v) {
				found = true
				break
			}
		}
		assert.True(t, found, "%v is not in any triangle", v)
	}
}

// Points that are hull vertices or lie on a hull edge.
func countBoundaryPoints(points VertexSet, hull []Vertex) int {
	count := 0
	for p := range points {
		for i, a := range hull {
			b := hull[(i+1)%len(hull)]
			if p == a || (Orient2D(a, b, p) == Collinear && within(a.X, b.X, p.X) && within(a.Y, b.Y, p.Y)) {
				count++
				break
			}
		}
	}
	return count
}

func within(a, b, x float64) bool {
	return math.Min(a, b) <= x && x <= math.Max(a, b)
}
