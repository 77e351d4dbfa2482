package fft

// Ordering is the order in which a twiddle table stores its powers.
type Ordering uint8

const (
	// Natural stores ω^i at index i.
	Natural Ordering = iota
	// BitReversed stores ω^bitrev(i) at index i.
	BitReversed
)

func (o Ordering) String() string {
	switch o {
	case Natural:
		return "natural"
	case BitReversed:
		return "bit-reversed"
	default:
		return "unknown"
	}
}

// Direction selects the root of unity a transform uses: ω for Forward,
// ω^-1 for Inverse.
type Direction uint8

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Radix is the number of points a butterfly step combines.
type Radix uint8

const (
	Radix2 Radix = 2
	Radix4 Radix = 4
)

// Decimation names the input and output orders of a butterfly network.
type Decimation uint8

const (
	// NR takes natural order input and leaves the result in bit-reversed
	// order. It consumes a bit-reversed twiddle table.
	NR Decimation = iota
	// RN takes bit-reversed input and leaves the result in natural order.
	// It consumes a natural twiddle table.
	RN
)

// TwiddleOrdering returns the table ordering the network expects.
func (d Decimation) TwiddleOrdering() Ordering {
	if d == RN {
		return Natural
	}
	return BitReversed
}

// Plan fully describes one run of the butterfly network.
type Plan struct {
	Radix      Radix
	Decimation Decimation
	Direction  Direction
}
