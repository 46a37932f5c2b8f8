// Delaunay triangulation of planar point sets for Go.
//
// Points are inserted one at a time, from the lexicographically highest down,
// into a triangulation bounded by two symbolic "ghost" points. A history graph
// of every triangle ever created locates each new point, and edge flips
// restore the Delaunay property after each insertion. Orientation and
// incircle tests are exact, so the result does not depend on floating point
// luck.
//
// See the advanced package for point-by-point construction and access to the
// history graph.
package delaunay

import (
	"github.com/golang/geo/r2"
	"github.com/osuushi/delaunay/internal"
)

type Vertex = internal.Vertex
type Triangle = internal.Triangle
type Option = internal.Option
type Tracer = internal.Tracer

func NewVertex(x, y float64) Vertex {
	return internal.NewVertex(x, y)
}

func VertexFromPoint(p r2.Point) Vertex {
	return internal.VertexFromPoint(p)
}

// Send a description of every insertion and flip to tracer.
func WithTracer(tracer Tracer) Option {
	return internal.WithTracer(tracer)
}

// The finished triangulation of a point set.
type Triangulation struct {
	graph *internal.LocationGraph
}

// Triangulate a set of points. Duplicate points are ignored. An empty input
// gives a nil Triangulation and no error; fewer than three points, or points
// that are all collinear, give a Triangulation with no triangles.
//
// Points may not coincide with the ghost sentinels (-1, -1) and (-2, -2).
func Triangulate(points []Vertex, opts ...Option) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	graph, err := internal.NewTriangulator(opts...).Triangulate(points)
	if err != nil || graph == nil {
		return nil, err
	}
	return &Triangulation{graph: graph}, nil
}

// The triangles, counterclockwise, in a stable order.
func (t *Triangulation) Triangles() []Triangle {
	return t.TriangleSet().Sorted()
}

func (t *Triangulation) TriangleSet() internal.TriangleSet {
	return t.graph.LeafTriangles(t.graph.Root())
}

// Indented dump of the history graph, for debugging.
func (t *Triangulation) TreeString() string {
	return t.graph.TreeString(t.graph.Root())
}

func (t *Triangulation) Graph() *internal.LocationGraph {
	return t.graph
}
