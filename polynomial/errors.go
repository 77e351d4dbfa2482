package polynomial

import (
	"errors"

	"github.com/lambdaclass/lambda-moon-math/fft"
)

var (
	// ErrEmptyInput is the same sentinel the fft package returns, so callers
	// only need to test for one.
	ErrEmptyInput        = fft.ErrEmptyInput
	ErrDivisionByZero    = errors.New("division by the zero polynomial")
	ErrMismatchedLengths = errors.New("points and values have different lengths")
	ErrDuplicatePoints   = errors.New("interpolation points are not distinct")
)
