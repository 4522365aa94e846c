package mathx

//snip:linear_sieve
// LinearSieve is a prime sieve with linear time complexity.
//
// https://cp-algorithms.com/algebra/prime-sieve-linear.html
type LinearSieve struct {
	primes []int
	lpf    []int
}

//snip:linear_sieve
// NewLinearSieve sieves every integer up to and including nMax.
func NewLinearSieve(nMax int) *LinearSieve {
	primes := []int{}
	lpf := make([]int, nMax+1)
	for d := 2; d <= nMax; d++ {
		if lpf[d] == 0 {
			lpf[d] = d
			primes = append(primes, d)
		}
		for _, p := range primes {
			if p*d > nMax || p > lpf[d] {
				break
			}
			lpf[p*d] = p
		}
	}
	return &LinearSieve{primes: primes, lpf: lpf}
}

//snip:linear_sieve
// Primes returns the found primes in increasing order. The caller must
// not modify the returned slice.
func (l *LinearSieve) Primes() []int {
	return l.primes
}

//snip:linear_sieve
// IsPrime reports whether n is prime.
func (l *LinearSieve) IsPrime(n int) bool {
	return n > 1 && l.lpf[n] == n
}

//snip:linear_sieve
// Factorize returns the prime factors of n in increasing order in
// O(log n).
func (l *LinearSieve) Factorize(n int) []int {
	if n < 2 {
		return nil
	}
	res := []int{}
	for !l.IsPrime(n) {
		res = append(res, l.lpf[n])
		n /= l.lpf[n]
	}
	return append(res, l.lpf[n])
}
