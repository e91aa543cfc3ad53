package rational

import "math/big"

// Gcd returns the greatest common divisor of a and b by the iterative
// Euclidean algorithm. Gcd(0, x) is x and Gcd(x, 0) is x. Neither operand
// is mutated. The iteration count is logarithmic in the operand magnitude,
// so arbitrarily large inputs never risk stack growth.
func Gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for {
		if x.Sign() == 0 {
			return y
		}
		if y.Sign() == 0 {
			return x
		}
		// Mod is Euclidean: the remainder is always in [0, |y|).
		x, y = y, x.Mod(x, y)
	}
}

// Lcm returns the least common multiple of a and b as (a*b)/Gcd(a, b).
// At least one operand must be nonzero. Neither operand is mutated.
func Lcm(a, b *big.Int) *big.Int {
	p := new(big.Int).Mul(a, b)
	return p.Quo(p, Gcd(a, b))
}
