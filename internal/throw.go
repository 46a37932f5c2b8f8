package internal

import "github.com/pkg/errors"

// The insertion and legalization code recurses through the location graph and
// mutates it in place. Threading errors through every level of that would bury
// the geometry, so invariant failures panic instead, and the public API
// recovers them into errors.

type TriangulateError error

var (
	// A point could not be located in the graph, or neighbor bookkeeping was
	// found to be inconsistent. The triangulation is not usable afterwards.
	ErrInvariantViolated = errors.New("delaunay: internal invariant violated")
	// An input vertex has the same coordinates as one of the ghost sentinels.
	ErrGhostCoordinate = errors.New("delaunay: vertex collides with a ghost sentinel")
	// A vertex was inserted into a Builder that is not lexicographically below
	// the Builder's first vertex.
	ErrNotBelowRoot = errors.New("delaunay: vertex is not below the first vertex")
	// A vertex was inserted into a Builder twice.
	ErrDuplicateVertex = errors.New("delaunay: vertex already inserted")
)

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with a TriangulateError that wraps ErrInvariantViolated.
func invariantf(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrInvariantViolated, format, args...))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
