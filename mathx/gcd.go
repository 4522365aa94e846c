package mathx

import "golang.org/x/exp/constraints"

//snip:gcd
// Gcd returns the greatest common divisor of a and b. Gcd(a, 0) == a.
func Gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

//snip:lcm
//snip:include gcd
// Lcm returns the least common multiple of a and b. Lcm(a, 0) == 0.
func Lcm[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / Gcd(a, b) * b
}
