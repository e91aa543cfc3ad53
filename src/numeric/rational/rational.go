// Package rational implements exact signed fractions over arbitrary-precision
// integers. A Rational keeps its magnitude in a non-negative numerator and
// denominator pair and carries the sign in a separate field. Values are
// immutable: every operation returns a new Rational and never mutates an
// operand, so values may be shared freely between goroutines.
package rational

import "math/big"

// Sign labels a Rational as positive or negative. The magnitude lives
// entirely in the numerator and denominator.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// Rational is an exact fraction. The zero value is not valid; construct one
// with RationalFromInt or RationalFromBigInt, or derive one from an existing
// value.
//
// Constructors do not reduce: RationalFromInt(5, 5) keeps numerator 5 and
// denominator 5 until Reduce is called. Arithmetic results are always
// reduced.
type Rational struct {
	num  big.Int
	den  big.Int
	sign Sign
}

// RationalFromInt builds the fraction n/d with magnitudes |n| and |d|. The
// result is Positive when n and d sit on the same side of zero, with zero
// counting as both sides, so RationalFromInt(0, -1) is Positive. Panics if
// d is zero.
func RationalFromInt(n, d int64) Rational {
	if d == 0 {
		panic("rational: division by zero")
	}
	r := Rational{sign: Negative}
	if (n >= 0 && d >= 0) || (n <= 0 && d <= 0) {
		r.sign = Positive
	}
	r.num.Abs(big.NewInt(n))
	r.den.Abs(big.NewInt(d))
	return r
}

// RationalFromBigInt builds the fraction n/d from big integers. The negative
// branch tests n < 0 strictly, so unlike RationalFromInt a zero n with a
// negative d yields a Negative value. The operands are copied, never
// aliased. Panics if d is zero.
func RationalFromBigInt(n, d *big.Int) Rational {
	if d.Sign() == 0 {
		panic("rational: division by zero")
	}
	r := Rational{sign: Negative}
	if (n.Sign() >= 0 && d.Sign() >= 0) || (n.Sign() < 0 && d.Sign() < 0) {
		r.sign = Positive
	}
	r.num.Abs(n)
	r.den.Abs(d)
	return r
}

func (x Rational) IsPositive() bool {
	return x.sign == Positive
}

// Neg returns x with its sign flipped. The magnitude is untouched.
func (x Rational) Neg() Rational {
	r := Rational{sign: Positive}
	if x.sign == Positive {
		r.sign = Negative
	}
	r.num.Set(&x.num)
	r.den.Set(&x.den)
	return r
}

func (x Rational) SameSign(y Rational) bool {
	return x.sign == y.sign
}

// Sign returns the sign field. A zero-valued Rational carries whichever sign
// it was built or computed with until Reduce canonicalizes it to Positive.
func (x Rational) Sign() Sign {
	return x.sign
}

// Num returns a copy of the numerator magnitude.
func (x Rational) Num() *big.Int {
	return new(big.Int).Set(&x.num)
}

// Denom returns a copy of the denominator magnitude.
func (x Rational) Denom() *big.Int {
	return new(big.Int).Set(&x.den)
}

func (x Rational) String() string {
	s := x.num.String() + "/" + x.den.String()
	if x.sign == Negative {
		return "-" + s
	}
	return s
}
