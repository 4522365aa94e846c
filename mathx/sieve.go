// Package mathx provides number-theoretic primitives: prime sieves,
// divisor enumeration, modular combinatorics and exact rationals.
package mathx

//snip:eratosthenes
// Sieve is an Eratosthenes sieve for primality tests and prime
// factorization. lpf[i] is the least prime factor of i, e.g. lpf[7] == 7,
// lpf[20] == 5, lpf[30] == 2.
type Sieve struct {
	lpf []int
}

//snip:eratosthenes
// NewSieve sieves every integer up to and including nMax.
func NewSieve(nMax int) *Sieve {
	lpf := make([]int, nMax+1)
	for i := range lpf {
		lpf[i] = i
	}
	for i := 2; i*i <= nMax; i++ {
		if lpf[i] != i {
			continue
		}
		for j := i * i; j <= nMax; j += i {
			if lpf[j] > i {
				lpf[j] = i
			}
		}
	}
	return &Sieve{lpf: lpf}
}

//snip:eratosthenes
// IsPrime reports whether n is prime.
func (s *Sieve) IsPrime(n int) bool {
	return n > 1 && s.lpf[n] == n
}

//snip:eratosthenes
// Factorize returns the prime factors of n in increasing order in
// O(log n).
func (s *Sieve) Factorize(n int) []int {
	if n < 2 {
		return nil
	}
	res := []int{}
	for !s.IsPrime(n) {
		res = append(res, s.lpf[n])
		n /= s.lpf[n]
	}
	return append(res, s.lpf[n])
}
