package erasure

import "errors"

var (
	ErrInvalidParameters  = errors.New("invalid erasure code parameters")
	ErrInvalidCosetOffset = errors.New("coset offset lies in the evaluation domain")
	ErrInvalidDataLength  = errors.New("data has the wrong length")
	ErrInvalidBlockIndex  = errors.New("invalid block erasure index")
	ErrTooManyMissing     = errors.New("too many missing blocks to reconstruct")
	ErrInconsistentData   = errors.New("data is not a codeword")
)
