package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each one is an SVG whose circles and polygon corners are the input points.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Vertex {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	vertices, err := ParseSVGVertices(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return vertices
}

// Some ad hoc point sets

// Uniformly random points with one decimal place, like hand entered data.
func RandomPoints(seed int64, n int) []Vertex {
	r := rand.New(rand.NewSource(seed))
	points := make([]Vertex, n)
	for i := range points {
		points[i] = Vertex{
			X: math.Round(r.Float64()*1000) / 10,
			Y: math.Round(r.Float64()*1000) / 10,
		}
	}
	return points
}

// Random points snapped to a small integer grid, so that collinear and
// cocircular configurations are everywhere.
func RandomGridPoints(seed int64, n, size int) []Vertex {
	r := rand.New(rand.NewSource(seed))
	points := make([]Vertex, n)
	for i := range points {
		points[i] = Vertex{X: float64(r.Intn(size + 1)), Y: float64(r.Intn(size + 1))}
	}
	return points
}

// Points on a circle, all cocircular.
func RegularPolygon(n int, radius float64) []Vertex {
	points := make([]Vertex, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Vertex{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

func Shuffled(points []Vertex, seed int64) []Vertex {
	result := append([]Vertex(nil), points...)
	rand.New(rand.NewSource(seed)).Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
