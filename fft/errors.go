package fft

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is the parent of every error caused by a transform size the
	// field cannot serve. Test for it with errors.Is.
	ErrDomain          = errors.New("invalid fft domain")
	ErrNotPowerOfTwo   = fmt.Errorf("%w: size is not a power of two", ErrDomain)
	ErrUnsupportedSize = fmt.Errorf("%w: size exceeds the two-adicity of the field", ErrDomain)

	ErrEmptyInput      = errors.New("empty input")
	ErrTwiddleMismatch = errors.New("twiddle table does not match the transform")
	ErrNoAccelerator   = errors.New("no accelerator available")
	ErrInvalidConfig   = errors.New("invalid fft configuration")
)
