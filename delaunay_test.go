package delaunay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Vertex{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1.5},
		{X: 0, Y: 0.2},
	}

	triangulation, err := Triangulate(points)
	require.NoError(t, err)
	triangles := triangulation.Triangles()
	assert.Len(t, triangles, 4)
	assert.Len(t, triangulation.TriangleSet(), 4)
	assert.NotEmpty(t, triangulation.TreeString())
	assert.NotNil(t, triangulation.Graph())
}

func TestTriangulate_Empty(t *testing.T) {
	triangulation, err := Triangulate(nil)
	assert.NoError(t, err)
	assert.Nil(t, triangulation)
}

func TestTriangulate_GhostCoordinate(t *testing.T) {
	triangulation, err := Triangulate([]Vertex{{X: 0, Y: 0}, {X: -2, Y: -2}, {X: 3, Y: 1}})
	assert.Error(t, err)
	assert.Nil(t, triangulation)
}

func TestTriangulate_Tracer(t *testing.T) {
	calls := 0
	tracer := tracerFunc(func(string, ...interface{}) { calls++ })
	_, err := Triangulate([]Vertex{NewVertex(0, 0), VertexFromPoint(r2.Point{X: 4, Y: 0}), {X: 2, Y: 3}}, WithTracer(tracer))
	require.NoError(t, err)
	assert.NotZero(t, calls)
}

// A failure while the first triangle is being set up comes back as an error,
// not a panic.
func TestTriangulate_InvariantFailure(t *testing.T) {
	tracer := tracerFunc(func(format string, args ...interface{}) {
		panic(errors.Wrap(advanced.ErrInvariantViolated, "tracer gave up"))
	})
	var triangulation *Triangulation
	var err error
	assert.NotPanics(t, func() {
		triangulation, err = Triangulate([]Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}, WithTracer(tracer))
	})
	assert.ErrorIs(t, err, advanced.ErrInvariantViolated)
	assert.Nil(t, triangulation)
}

// Foreign panics are not swallowed.
func TestTriangulate_ForeignPanic(t *testing.T) {
	tracer := tracerFunc(func(string, ...interface{}) { panic("not ours") })
	assert.PanicsWithValue(t, "not ours", func() {
		Triangulate([]Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}, WithTracer(tracer)) //nolint:errcheck
	})
}

type tracerFunc func(format string, args ...interface{})

func (f tracerFunc) Tracef(format string, args ...interface{}) {
	f(format, args...)
}
