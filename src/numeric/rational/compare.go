package rational

// Gt reports whether x > y. Differing signs are decided by sign alone: any
// Positive value is greater than any Negative one. Matching signs are
// normalized to a common denominator and decided by numerator, with the
// order inverted for Negative values since the larger magnitude is the
// smaller value.
func (x Rational) Gt(y Rational) bool {
	if !x.SameSign(y) {
		return x.IsPositive()
	}
	a, b := x.Normalize(y)
	if x.IsPositive() {
		return a.num.Cmp(&b.num) > 0
	}
	return b.num.Cmp(&a.num) > 0
}

// Gte reports whether x >= y. Equality is structural after reduction:
// numerator, denominator and sign must all match.
func (x Rational) Gte(y Rational) bool {
	return x.Gt(y) || x.Reduce().Equal(y.Reduce())
}

func (x Rational) Lt(y Rational) bool {
	return y.Gt(x)
}

func (x Rational) Lte(y Rational) bool {
	return y.Gte(x)
}

// Equal reports whether x and y are identical representations: same
// numerator, same denominator, same sign. Reduce both sides first to
// compare values rather than representations.
func (x Rational) Equal(y Rational) bool {
	return x.sign == y.sign && x.num.Cmp(&y.num) == 0 && x.den.Cmp(&y.den) == 0
}
