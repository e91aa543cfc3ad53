package rational

import "math/big"

// Normalize rescales x and y to a common denominator, the least common
// multiple of the two denominators, scaling each numerator to match. Signs
// are untouched. Both results share the common denominator, which is what
// Add and the comparisons need before working on numerators directly.
func (x Rational) Normalize(y Rational) (Rational, Rational) {
	common := Lcm(&x.den, &y.den)
	a := Rational{sign: x.sign}
	b := Rational{sign: y.sign}
	a.num.Mul(&x.num, new(big.Int).Quo(common, &x.den))
	b.num.Mul(&y.num, new(big.Int).Quo(common, &y.den))
	a.den.Set(common)
	b.den.Set(common)
	return a, b
}

// Reduce divides the numerator and denominator by their greatest common
// divisor. A numerator that reduces to zero is canonicalized to 0/1
// Positive, so the two ways of arriving at zero compare equal.
func (x Rational) Reduce() Rational {
	g := Gcd(&x.num, &x.den)
	r := Rational{sign: x.sign}
	r.num.Quo(&x.num, g)
	r.den.Quo(&x.den, g)
	if r.num.Sign() == 0 {
		r.sign = Positive
	}
	return r
}

// Add returns x + y, reduced.
func (x Rational) Add(y Rational) Rational {
	a, b := x.Normalize(y)
	r := Rational{sign: addSign(x, y)}
	r.num.Set(addNums(&a, &b))
	r.den.Set(&a.den)
	return r.Reduce()
}

// addNums combines the normalized numerators. Matching signs add; differing
// signs subtract, oriented by which operand is Positive. The subtraction is
// a raw big-int subtraction and may go negative.
func addNums(a, b *Rational) *big.Int {
	n := new(big.Int)
	switch {
	case a.sign == b.sign:
		n.Add(&a.num, &b.num)
	case a.sign == Positive:
		n.Sub(&a.num, &b.num)
	default:
		n.Sub(&b.num, &a.num)
	}
	return n
}

// addSign resolves the sign of a sum. Matching signs keep that sign;
// otherwise the operands are put through the full rational comparison.
func addSign(x, y Rational) Sign {
	if x.sign == y.sign {
		return x.sign
	}
	if x.sign == Positive {
		if x.Gte(y) {
			return Positive
		}
		return Negative
	}
	if y.Gte(x) {
		return Positive
	}
	return Negative
}

// Sub returns x - y, reduced.
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul returns x * y, reduced.
func (x Rational) Mul(y Rational) Rational {
	r := Rational{sign: Negative}
	if x.SameSign(y) {
		r.sign = Positive
	}
	r.num.Mul(&x.num, &y.num)
	r.den.Mul(&x.den, &y.den)
	return r.Reduce()
}

// Div returns x / y, reduced. The reciprocal swaps y's numerator and
// denominator while keeping y's sign field, which routes a negative divisor
// through Mul's sign rule. Panics if y is zero-valued.
func (x Rational) Div(y Rational) Rational {
	if y.num.Sign() == 0 {
		panic("rational: division by zero")
	}
	r := Rational{sign: y.sign}
	r.num.Set(&y.den)
	r.den.Set(&y.num)
	return x.Mul(r)
}
