package field

import "errors"

var (
	ErrInvalidField     = errors.New("invalid field parameters")
	ErrInvalidGenerator = errors.New("two-adic generator has the wrong order")
	ErrRootOfUnity      = errors.New("the field has no root of unity of the requested order")
)
