package internal

import "sort"

// Convex hull by Andrew's monotone chain. The result is counterclockwise,
// starts at the leftmost (then lowest) vertex, and omits vertices lying on
// the interior of hull edges. Fewer than three distinct vertices are returned
// as they are.
func ConvexHull(vertices []Vertex) []Vertex {
	points := NewVertexSet(vertices...).SortedLexicographically(true)
	if len(points) < 3 {
		return points
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})

	// Pop while the last two hull points and p do not make a strict left turn.
	chain := func(hull []Vertex, p Vertex) []Vertex {
		for len(hull) >= 2 && !p.LiesLeftOf(Edge{hull[len(hull)-2], hull[len(hull)-1]}) {
			hull = hull[:len(hull)-1]
		}
		return append(hull, p)
	}

	var lower, upper []Vertex
	for _, p := range points {
		lower = chain(lower, p)
	}
	for i := len(points) - 1; i >= 0; i-- {
		upper = chain(upper, points[i])
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		// Every point is collinear; the "hull" is the segment between the extremes.
		return []Vertex{points[0], points[len(points)-1]}
	}
	return hull
}

// Area enclosed by a simple polygon given in counterclockwise order.
func PolygonArea(polygon []Vertex) float64 {
	var sum float64
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
