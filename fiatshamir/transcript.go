// Package fiatshamir derives challenge scalars from the field elements a
// prover has committed to, so that FFT outputs can feed a Fiat-Shamir
// transform.
package fiatshamir

import (
	"encoding/binary"
	"hash"
	"math/big"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
	"github.com/lambdaclass/lambda-moon-math/polynomial"
	"golang.org/x/crypto/sha3"
)

// The transcript is used to create challenge scalars.
// See: Fiat-Shamir
type Transcript[E any, P field.Element[E]] struct {
	field *field.Field[E, P]
	state hash.Hash
	// scalarSize is the number of bytes of a serialised element.
	scalarSize int
}

func NewTranscript[E any, P field.Element[E]](f *field.Field[E, P], label string) *Transcript[E, P] {
	transcript := &Transcript[E, P]{
		field:      f,
		state:      sha3.New256(),
		scalarSize: (f.Modulus().BitLen() + 7) / 8,
	}
	transcript.NewProtocol(label)

	return transcript
}

func (t *Transcript[E, P]) domainSep(label string) {
	t.appendMessage([]byte(label))
}

func (t *Transcript[E, P]) appendMessage(message []byte) {
	t.state.Write(message)
}

// Separates a sub protocol using domain separator
func (t *Transcript[E, P]) NewProtocol(label string) {
	t.domainSep(label)
}

// AppendScalar serialises the scalar as scalarSize little-endian bytes of
// its canonical value and appends it to the state.
func (t *Transcript[E, P]) AppendScalar(scalar E) {
	value, ok := new(big.Int).SetString(P(&scalar).String(), 10)
	if !ok {
		panic("field element does not print as a decimal integer")
	}
	modulus := t.field.Modulus()
	value.Mod(value, modulus)

	tmpBytes := make([]byte, t.scalarSize)
	value.FillBytes(tmpBytes)
	utils.Reverse(tmpBytes) // Reverse bytes so that we use little-endian

	t.appendMessage(tmpBytes)
}

// AppendScalars appends the length of scalars followed by every scalar.
func (t *Transcript[E, P]) AppendScalars(scalars []E) {
	t.appendMessage(u64ToByteArray(uint64(len(scalars))))
	for i := range scalars {
		t.AppendScalar(scalars[i])
	}
}

// AppendPolynomial appends the coefficients of poly, see AppendScalars.
func (t *Transcript[E, P]) AppendPolynomial(poly polynomial.Polynomial[E, P]) {
	t.AppendScalars(poly.Coefficients())
}

func (t *Transcript[E, P]) AppendPolynomials(polys []polynomial.Polynomial[E, P]) {
	t.appendMessage(u64ToByteArray(uint64(len(polys))))
	for _, poly := range polys {
		t.AppendPolynomial(poly)
	}
}

func u64ToByteArray(number uint64) []byte {
	bytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(bytes, number)
	return bytes
}

// Hash the transcript. This is so that we can compress the inner buffer,
// the compressed inner buffer can then be cheaply copied to create many challenges
func (t *Transcript[E, P]) compressState() []byte {
	return t.state.Sum(nil)
}

// Computes challenges based off of the state of the transcript
//
// Hash the transcript state, then reduce the hash modulo the size of the
// scalar field, appending an integer to denote the challenge index
//
// Note that calling the transcript twice, will yield two different challenges
// Because we always add the previous squeezed challenge back into the transcript
func (t *Transcript[E, P]) ChallengeScalars(numChallenges uint8) []E {
	// First compress the state
	compressedState := t.compressState()
	modulus := t.field.Modulus()

	challenges := make([]E, numChallenges)
	for challengeIndex := uint8(0); challengeIndex < numChallenges; challengeIndex++ {
		// The compressed state and one extra byte for the challenge index
		hashedData := make([]byte, len(compressedState)+1)
		copy(hashedData, compressedState)
		hashedData[len(hashedData)-1] = challengeIndex

		digest := sha3.Sum256(hashedData)

		// Reverse the digest, so that we reduce the little-endian
		// representation
		utils.Reverse(digest[:])
		value := new(big.Int).SetBytes(digest[:])
		value.Mod(value, modulus)

		if _, err := P(&challenges[challengeIndex]).SetString(value.String()); err != nil {
			panic(err)
		}
	}

	// Clear the state
	t.state.Reset()

	// Add the compressed state to the transcript
	// This "summarises" the previous state before we cleared it,
	// given the hash is collision resistance
	t.appendMessage(compressedState)

	return challenges
}

// ChallengeScalar returns a single challenge, see ChallengeScalars.
func (t *Transcript[E, P]) ChallengeScalar() E {
	return t.ChallengeScalars(1)[0]
}
