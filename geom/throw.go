package geom

import "github.com/pkg/errors"

// Threading errors up and down the incremental triangulation would clutter
// every step with checks for a condition that only degenerate input triggers.
// Instead, we panic with a TriangulateError, and the public API recovers to
// convert it to an error.

type TriangulateError struct {
	Err error
}

func (e TriangulateError) Error() string {
	return e.Err.Error()
}

func (e TriangulateError) Unwrap() error {
	return e.Err
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping err.
func throw(err error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(err, format, args...)})
}

// HandleTriangulatePanicRecover turns a recovered TriangulateError back into
// an error. Any other panic is raised again.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.Err
		}
		panic(r)
	}
	return nil
}

