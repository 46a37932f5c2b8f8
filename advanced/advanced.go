// Lower level access to the triangulation machinery.
//
// Most users want delaunay.Triangulate. This package exposes the pieces it is
// built from: a Builder for adding points one at a time, the history graph
// with its neighbor links, the exact geometric predicates, and tools for
// inspecting a triangulation (rendering, DOT export, quality statistics).
package advanced

import (
	"io"

	"github.com/osuushi/delaunay/internal"
	"go.uber.org/zap"
)

type Vertex = internal.Vertex
type Edge = internal.Edge
type Triangle = internal.Triangle
type TriangleSet = internal.TriangleSet
type VertexSet = internal.VertexSet

type Builder = internal.Builder
type Triangulator = internal.Triangulator
type LocationGraph = internal.LocationGraph
type Node = internal.Node
type NodeID = internal.NodeID

type Orientation = internal.Orientation
type CircleOrientation = internal.CircleOrientation

type Option = internal.Option
type Tracer = internal.Tracer
type TracerFunc = internal.TracerFunc
type NopTracer = internal.NopTracer

type RenderOptions = internal.RenderOptions
type QualityReport = internal.QualityReport

const NoNode = internal.NoNode

const (
	Clockwise        = internal.Clockwise
	Collinear        = internal.Collinear
	CounterClockwise = internal.CounterClockwise
)

const (
	Outside = internal.Outside
	On      = internal.On
	Inside  = internal.Inside
)

var (
	Ghost1 = internal.Ghost1
	Ghost2 = internal.Ghost2
)

var (
	ErrInvariantViolated = internal.ErrInvariantViolated
	ErrGhostCoordinate   = internal.ErrGhostCoordinate
	ErrNotBelowRoot      = internal.ErrNotBelowRoot
	ErrDuplicateVertex   = internal.ErrDuplicateVertex
)

// Start a triangulation whose first vertex is first. Every vertex inserted
// afterwards must be lexicographically below it.
func NewBuilder(first Vertex, opts ...Option) (*Builder, error) {
	return internal.NewBuilder(first, opts...)
}

func NewVertex(x, y float64) Vertex {
	return internal.NewVertex(x, y)
}

func NewVertexSet(vertices ...Vertex) VertexSet {
	return internal.NewVertexSet(vertices...)
}

func NewTriangle(x, y, z Vertex) Triangle {
	return internal.NewTriangle(x, y, z)
}

func NewTriangulator(opts ...Option) *Triangulator {
	return internal.NewTriangulator(opts...)
}

func WithTracer(tracer Tracer) Option {
	return internal.WithTracer(tracer)
}

// Trace at debug level through a zap logger. A nil logger traces nothing.
func NewZapTracer(logger *zap.Logger) Tracer {
	return internal.NewZapTracer(logger)
}

func Orient2D(a, b, c Vertex) Orientation {
	return internal.Orient2D(a, b, c)
}

func Incircle(t Triangle, d Vertex) CircleOrientation {
	return internal.Incircle(t, d)
}

func ConvexHull(vertices []Vertex) []Vertex {
	return internal.ConvexHull(vertices)
}

func Quality(triangles TriangleSet) (QualityReport, error) {
	return internal.Quality(triangles)
}

func ParseSVGVertices(r io.Reader) ([]Vertex, error) {
	return internal.ParseSVGVertices(r)
}

func HandleTriangulatePanicRecover(r interface{}) error {
	return internal.HandleTriangulatePanicRecover(r)
}
