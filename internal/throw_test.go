package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow, shouldBreak, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldBreak {
			invariantf("node %d has no children", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom!")
		assert.False(t, errors.Is(err, ErrInvariantViolated))
	})

	t.Run("with invariant violation", func(t *testing.T) {
		err := testFn(false, true, false)
		assert.ErrorIs(t, err, ErrInvariantViolated)
		assert.Equal(t, ErrInvariantViolated, errors.Cause(err))
		assert.Contains(t, err.Error(), "node 3 has no children")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}
