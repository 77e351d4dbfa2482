// Package erasure implements a Reed-Solomon style code over the FFT domains of
// the polynomial package, able to recover data lost in whole blocks.
package erasure

import (
	"fmt"
	"math/big"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/pool"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
	"github.com/lambdaclass/lambda-moon-math/polynomial"
)

// BlockErasureIndex is used to indicate the index of the block erasure that is missing
// from the codeword.
type BlockErasureIndex = uint64

// DataRecovery implements a unique decoding algorithm.
//
// The algorithm is not generic and is specific to the use-case where:
//   - We have block erasures. ie we do not lose data in random locations, but in predetermined groups.
//
// A codeword has numScalarsInCodeword evaluations over the domain of that
// size. Evaluation j belongs to block j mod totalNumBlocks, which are exactly
// the points whose blockErasureSize'th power is the j'th root of the
// totalNumBlocks domain.
type DataRecovery[E any, P field.Element[E]] struct {
	ctx *polynomial.Context[E, P]
	// blockRoots[k] is the root of unity identifying block k.
	blockRoots []E
	// cosetOffset shifts the extended domain to a coset on which the
	// vanishing polynomial has no roots.
	cosetOffset E
	// blockErasureSize indicates the size of `blocks of evaluations` that
	// can be missing.
	blockErasureSize int
	// numScalarsInCodeword is the number of scalars we get when we encode
	// the data.
	numScalarsInCodeword int
	// numScalarsInDataWord is the number of coefficients in the message
	// that we encode.
	numScalarsInDataWord int
	totalNumBlocks       int

	scratch *pool.Slices[E]
}

// NewDataRecovery returns a code expanding numScalarsInDataWord coefficients
// by expansionFactor. The codeword size and the number of blocks must be
// powers of two the field supports, and cosetOffset must lie outside the
// codeword domain; a generator of the multiplicative group always works.
func NewDataRecovery[E any, P field.Element[E]](ctx *polynomial.Context[E, P], blockErasureSize, numScalarsInDataWord, expansionFactor int, cosetOffset E) (*DataRecovery[E, P], error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: nil context", ErrInvalidParameters)
	}
	if blockErasureSize <= 0 || numScalarsInDataWord <= 0 || expansionFactor <= 0 {
		return nil, fmt.Errorf("%w: block size %d, data word %d, expansion %d must be positive",
			ErrInvalidParameters, blockErasureSize, numScalarsInDataWord, expansionFactor)
	}

	// Compute the number of scalars that will be in the codeword
	numScalarsInCodeword := numScalarsInDataWord * expansionFactor
	if numScalarsInDataWord%blockErasureSize != 0 {
		return nil, fmt.Errorf("%w: data word of %d scalars is not a whole number of blocks of %d",
			ErrInvalidParameters, numScalarsInDataWord, blockErasureSize)
	}
	if !utils.IsPowerOfTwo(uint64(numScalarsInCodeword)) {
		return nil, fmt.Errorf("%w: codeword size %d is not a power of two", ErrInvalidParameters, numScalarsInCodeword)
	}

	// Compute the total number of blocks that we will need to
	// represent the codeword
	totalNumBlocks := numScalarsInCodeword / blockErasureSize

	one := field.One[E, P]()
	blockRoots, err := ctx.Points(uint64(totalNumBlocks), one)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}
	// The codeword domain must exist too.
	if _, err := ctx.Engine().Registry().Domain(uint64(numScalarsInCodeword)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	// offset^n == 1 exactly when the offset is in the domain of size n.
	var check E
	P(&check).Exp(cosetOffset, big.NewInt(int64(numScalarsInCodeword)))
	if P(&cosetOffset).IsZero() || P(&check).IsOne() {
		return nil, ErrInvalidCosetOffset
	}

	return &DataRecovery[E, P]{
		ctx:                  ctx,
		blockRoots:           blockRoots,
		cosetOffset:          cosetOffset,
		blockErasureSize:     blockErasureSize,
		numScalarsInCodeword: numScalarsInCodeword,
		numScalarsInDataWord: numScalarsInDataWord,
		totalNumBlocks:       totalNumBlocks,
		scratch:              pool.NewSlices[E](),
	}, nil
}

// NumScalarsInCodeword returns the length of an encoded data word.
func (dr *DataRecovery[E, P]) NumScalarsInCodeword() int {
	return dr.numScalarsInCodeword
}

// NumBlocksNeededToReconstruct returns the number of blocks that are needed to reconstruct
// the original data word.
func (dr *DataRecovery[E, P]) NumBlocksNeededToReconstruct() int {
	return dr.numScalarsInDataWord / dr.blockErasureSize
}

// Encode the polynomial by evaluating it on the extended domain.
func (dr *DataRecovery[E, P]) Encode(polyCoeff []E) ([]E, error) {
	if len(polyCoeff) > dr.numScalarsInDataWord {
		return nil, fmt.Errorf("%w: %d coefficients, at most %d fit in a data word",
			ErrInvalidDataLength, len(polyCoeff), dr.numScalarsInDataWord)
	}
	return dr.ctx.EvaluateFFTWith(polynomial.New[E, P](polyCoeff...), 1, uint64(dr.numScalarsInCodeword))
}

// Note: These blockErasure indices should not be in bit reversed order
func (dr *DataRecovery[E, P]) constructVanishingPolyOnIndices(missingBlockErasureIndices []BlockErasureIndex) polynomial.Polynomial[E, P] {
	// Collect all of the roots that are associated with the missing block erasure indices
	missingBlockErasureIndexRoots := make([]E, len(missingBlockErasureIndices))
	for i, index := range missingBlockErasureIndices {
		missingBlockErasureIndexRoots[i] = dr.blockRoots[index]
	}

	shortZeroPoly := polynomial.Vanishing[E, P](missingBlockErasureIndexRoots)

	// Z(x^blockErasureSize) vanishes on every point of the missing blocks.
	terms := shortZeroPoly.Terms()
	for i := range terms {
		terms[i].Degree *= uint(dr.blockErasureSize)
	}
	return polynomial.FromTerms[E, P](terms)
}

func (dr *DataRecovery[E, P]) checkMissing(missingIndices []BlockErasureIndex) error {
	maxMissing := dr.totalNumBlocks - dr.NumBlocksNeededToReconstruct()
	if len(missingIndices) > maxMissing {
		return fmt.Errorf("%w: %d missing, at most %d", ErrTooManyMissing, len(missingIndices), maxMissing)
	}

	seen := make(map[BlockErasureIndex]struct{}, len(missingIndices))
	for _, index := range missingIndices {
		if index >= uint64(dr.totalNumBlocks) {
			return fmt.Errorf("%w: %d out of %d blocks", ErrInvalidBlockIndex, index, dr.totalNumBlocks)
		}
		if _, ok := seen[index]; ok {
			return fmt.Errorf("%w: %d listed twice", ErrInvalidBlockIndex, index)
		}
		seen[index] = struct{}{}
	}
	return nil
}

// RecoverPolynomialCoefficients returns the data word whose codeword agrees
// with data outside of the missing blocks. Values inside missing blocks are
// ignored.
func (dr *DataRecovery[E, P]) RecoverPolynomialCoefficients(data []E, missingIndices []BlockErasureIndex) ([]E, error) {
	if len(data) != dr.numScalarsInCodeword {
		return nil, fmt.Errorf("%w: got %d scalars, expected %d", ErrInvalidDataLength, len(data), dr.numScalarsInCodeword)
	}
	if err := dr.checkMissing(missingIndices); err != nil {
		return nil, err
	}

	n := uint64(dr.numScalarsInCodeword)
	zX := dr.constructVanishingPolyOnIndices(missingIndices)

	zXEval, err := dr.ctx.EvaluateFFTWith(zX, 1, n)
	if err != nil {
		return nil, err
	}

	// E(x)Z(x) agrees with D(x)Z(x) on the whole domain, missing points
	// included, and has degree < n, so interpolating gives D(x)Z(x).
	buf, err := dr.scratch.Get(len(data))
	if err != nil {
		return nil, err
	}
	defer dr.scratch.Put(buf)

	eZEval := *buf
	for i := range data {
		P(&eZEval[i]).Mul(&data[i], &zXEval[i])
	}
	dzPoly, err := dr.ctx.InterpolateFFT(eZEval)
	if err != nil {
		return nil, err
	}

	// Divide on a coset, where Z has no roots.
	cosetZxEval, err := dr.ctx.EvaluateOffsetFFT(zX, 1, n, dr.cosetOffset)
	if err != nil {
		return nil, err
	}
	cosetDzEval, err := dr.ctx.EvaluateOffsetFFT(dzPoly, 1, n, dr.cosetOffset)
	if err != nil {
		return nil, err
	}
	cosetZxEvalInv, err := utils.BatchInvert[E, P](cosetZxEval)
	if err != nil {
		return nil, err
	}
	for i := range cosetDzEval {
		P(&cosetDzEval[i]).Mul(&cosetDzEval[i], &cosetZxEvalInv[i])
	}

	recovered, err := dr.ctx.InterpolateOffsetFFT(cosetDzEval, dr.cosetOffset)
	if err != nil {
		return nil, err
	}
	if recovered.Degree() >= dr.numScalarsInDataWord {
		return nil, fmt.Errorf("%w: recovered degree %d, data word holds %d coefficients",
			ErrInconsistentData, recovered.Degree(), dr.numScalarsInDataWord)
	}

	result := make([]E, dr.numScalarsInDataWord)
	copy(result, recovered.Coefficients())
	return result, nil
}
