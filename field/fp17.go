package field

import (
	"errors"
	"math/big"
	"strconv"
)

// Fp17Modulus is the order of the field Fp17 lives in.
const Fp17Modulus = 17

// Fp17 is an element of the prime field of order 17, stored in canonical
// form (0 <= v < 17).
//
// It is small enough to check transforms by hand and to enumerate every input
// of a size-4 transform, which the tests do.
type Fp17 uint8

var errFp17String = errors.New("fp17: invalid number")

func (z *Fp17) Set(x *Fp17) *Fp17 {
	*z = *x
	return z
}

func (z *Fp17) SetZero() *Fp17 {
	*z = 0
	return z
}

func (z *Fp17) SetOne() *Fp17 {
	*z = 1
	return z
}

func (z *Fp17) SetUint64(v uint64) *Fp17 {
	*z = Fp17(v % Fp17Modulus)
	return z
}

func (z *Fp17) SetInt64(v int64) *Fp17 {
	r := v % Fp17Modulus
	if r < 0 {
		r += Fp17Modulus
	}
	*z = Fp17(r)
	return z
}

// SetString accepts any integer literal math/big understands and reduces it.
func (z *Fp17) SetString(s string) (*Fp17, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errFp17String
	}
	v.Mod(v, big.NewInt(Fp17Modulus))
	*z = Fp17(v.Uint64())
	return z, nil
}

func (z *Fp17) Add(x, y *Fp17) *Fp17 {
	*z = Fp17((uint16(*x) + uint16(*y)) % Fp17Modulus)
	return z
}

func (z *Fp17) Sub(x, y *Fp17) *Fp17 {
	*z = Fp17((uint16(*x) + Fp17Modulus - uint16(*y)) % Fp17Modulus)
	return z
}

func (z *Fp17) Mul(x, y *Fp17) *Fp17 {
	*z = Fp17((uint16(*x) * uint16(*y)) % Fp17Modulus)
	return z
}

func (z *Fp17) Square(x *Fp17) *Fp17 {
	return z.Mul(x, x)
}

func (z *Fp17) Neg(x *Fp17) *Fp17 {
	*z = Fp17((Fp17Modulus - uint16(*x)) % Fp17Modulus)
	return z
}

// Inverse sets z to 1/x, or to 0 when x is 0 (same convention as gnark-crypto).
func (z *Fp17) Inverse(x *Fp17) *Fp17 {
	// x^(p-2) by Fermat.
	base, res := *x, Fp17(1)
	for e := Fp17Modulus - 2; e > 0; e >>= 1 {
		if e&1 == 1 {
			res.Mul(&res, &base)
		}
		base.Mul(&base, &base)
	}
	*z = res
	return z
}

// Exp sets z to x^k. A negative k inverts x first.
func (z *Fp17) Exp(x Fp17, k *big.Int) *Fp17 {
	if k.Sign() < 0 {
		x.Inverse(&x)
		k = new(big.Int).Neg(k)
	}
	r := new(big.Int).Exp(big.NewInt(int64(x)), k, big.NewInt(Fp17Modulus))
	*z = Fp17(r.Uint64())
	return z
}

func (z *Fp17) Equal(x *Fp17) bool {
	return *z == *x
}

func (z *Fp17) IsZero() bool {
	return *z == 0
}

func (z *Fp17) IsOne() bool {
	return *z == 1
}

func (z *Fp17) String() string {
	return strconv.Itoa(int(*z))
}
