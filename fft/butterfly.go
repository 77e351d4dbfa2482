package fft

import (
	"fmt"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
)

// Butterfly runs the butterfly network described by plan over values, in
// place, using the twiddle factors in table.
//
// NR networks read a bit-reversed table and leave the result in bit-reversed
// order. RN networks read a natural table and expect bit-reversed input. Both
// compute the unscaled DFT for the table's direction; scaling an inverse
// transform by 1/n is left to the caller.
//
// Radix-4 networks produce exactly the same output as radix-2 ones. They
// fuse stages in pairs, which halves the passes over memory but not the
// twiddle multiplications.
func Butterfly[E any, P field.Element[E]](values []E, table *TwiddleTable[E], plan Plan) error {
	n := uint64(len(values))
	if n == 0 {
		return ErrEmptyInput
	}
	if !utils.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, n)
	}
	if err := checkTable(table, n, plan); err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	tw := table.Values
	switch {
	case plan.Decimation == NR && plan.Radix == Radix2:
		nrRadix2[E, P](values, tw)
	case plan.Decimation == NR && plan.Radix == Radix4:
		nrRadix4[E, P](values, tw)
	case plan.Decimation == RN && plan.Radix == Radix2:
		rnRadix2[E, P](values, tw)
	case plan.Decimation == RN && plan.Radix == Radix4:
		rnRadix4[E, P](values, tw)
	default:
		return fmt.Errorf("%w: radix %d with decimation %d", ErrInvalidConfig, plan.Radix, plan.Decimation)
	}
	return nil
}

func checkTable[E any](table *TwiddleTable[E], n uint64, plan Plan) error {
	if table == nil {
		return fmt.Errorf("%w: no table", ErrTwiddleMismatch)
	}
	if table.Size != n || uint64(len(table.Values)) != n/2 {
		return fmt.Errorf("%w: table for %d points (%d values), transform of %d points",
			ErrTwiddleMismatch, table.Size, len(table.Values), n)
	}
	if want := plan.Decimation.TwiddleOrdering(); table.Ordering != want {
		return fmt.Errorf("%w: %s table, network needs %s", ErrTwiddleMismatch, table.Ordering, want)
	}
	if table.Direction != plan.Direction {
		return fmt.Errorf("%w: %s table for a %s transform", ErrTwiddleMismatch, table.Direction, plan.Direction)
	}
	return nil
}

// butterfly sets (a, b) to (a + w*b, a - w*b).
func butterfly[E any, P field.Element[E]](a, b, w *E) {
	var t E
	P(&t).Mul(b, w)
	P(b).Sub(a, &t)
	P(a).Add(a, &t)
}

// nrRadix2 is the natural to bit-reversed network. Group g of every stage
// uses tw[g], which is why the table must be bit-reversed.
func nrRadix2[E any, P field.Element[E]](values, tw []E) {
	n := len(values)
	for groupCount, groupSize := 1, n; groupSize >= 2; groupCount, groupSize = groupCount*2, groupSize/2 {
		nrStage[E, P](values, tw, groupCount, groupSize)
	}
}

func nrStage[E any, P field.Element[E]](values, tw []E, groupCount, groupSize int) {
	half := groupSize / 2
	for g := 0; g < groupCount; g++ {
		w := &tw[g]
		start := g * groupSize
		for i := start; i < start+half; i++ {
			butterfly[E, P](&values[i], &values[i+half], w)
		}
	}
}

// nrRadix4 runs two radix-2 stages per pass over the data, so the buffer is
// swept half as many times. It still multiplies by one twiddle per butterfly:
// w3 is w2*ω^(n/4), and in a prime field that rotation is a full
// multiplication. When log2 n is odd the last stage is a plain radix-2 one.
func nrRadix4[E any, P field.Element[E]](values, tw []E) {
	n := len(values)
	groupCount, groupSize := 1, n
	for ; groupSize >= 4; groupCount, groupSize = groupCount*4, groupSize/4 {
		q := groupSize / 4
		for g := 0; g < groupCount; g++ {
			w1 := &tw[g]
			w2, w3 := &tw[2*g], &tw[2*g+1]
			start := g * groupSize
			for j := start; j < start+q; j++ {
				x0, x1, x2, x3 := &values[j], &values[j+q], &values[j+2*q], &values[j+3*q]
				butterfly[E, P](x0, x2, w1)
				butterfly[E, P](x1, x3, w1)
				butterfly[E, P](x0, x1, w2)
				butterfly[E, P](x2, x3, w3)
			}
		}
	}
	if groupSize == 2 {
		nrStage[E, P](values, tw, groupCount, groupSize)
	}
}

// rnRadix2 is the bit-reversed to natural network. Inside a group, element i
// of the first half is combined using ω^(groupCount*i), read from a natural
// table.
func rnRadix2[E any, P field.Element[E]](values, tw []E) {
	n := len(values)
	for groupCount, groupSize := n/2, 2; groupCount >= 1; groupCount, groupSize = groupCount/2, groupSize*2 {
		rnStage[E, P](values, tw, groupCount, groupSize)
	}
}

func rnStage[E any, P field.Element[E]](values, tw []E, groupCount, groupSize int) {
	half := groupSize / 2
	for g := 0; g < groupCount; g++ {
		start := g * groupSize
		for j := 0; j < half; j++ {
			butterfly[E, P](&values[start+j], &values[start+j+half], &tw[groupCount*j])
		}
	}
}

// rnRadix4 is the RN counterpart of nrRadix4: half the passes, the same
// number of twiddle multiplications. When log2 n is odd the first stage is a
// plain radix-2 one.
func rnRadix4[E any, P field.Element[E]](values, tw []E) {
	n := len(values)
	groupCount, groupSize := n/2, 2
	if utils.Log2(uint64(n))%2 == 1 {
		rnStage[E, P](values, tw, groupCount, groupSize)
		groupCount, groupSize = groupCount/2, groupSize*2
	}

	for ; groupCount >= 2; groupCount, groupSize = groupCount/4, groupSize*4 {
		// One block spans two groups of the first fused stage.
		q := groupSize / 2
		blockSize := 4 * q
		for block := 0; block < groupCount/2; block++ {
			start := block * blockSize
			for j := 0; j < q; j++ {
				w1 := &tw[groupCount*j]
				w2 := &tw[(groupCount/2)*j]
				w3 := &tw[(groupCount/2)*(q+j)]
				x0, x1 := &values[start+j], &values[start+q+j]
				x2, x3 := &values[start+2*q+j], &values[start+3*q+j]
				butterfly[E, P](x0, x1, w1)
				butterfly[E, P](x2, x3, w1)
				butterfly[E, P](x0, x2, w2)
				butterfly[E, P](x1, x3, w3)
			}
		}
	}
}
