package mathx

//snip:enumerator
// Enumerator precomputes factorials and inverse factorials modulo a prime
// p for O(1) binomial queries up to nMax.
type Enumerator struct {
	fact []uint64
	finv []uint64
	p    uint64
}

//snip:enumerator
// NewEnumerator precomputes tables for arguments up to and including
// nMax. p must be a prime greater than nMax.
func NewEnumerator(nMax int, p uint64) *Enumerator {
	n := nMax + 1
	e := &Enumerator{
		fact: make([]uint64, n),
		finv: make([]uint64, n),
		p:    p,
	}
	e.fact[0] = 1
	e.finv[0] = 1
	if n == 1 {
		return e
	}
	invs := make([]uint64, n)
	e.fact[1] = 1
	e.finv[1] = 1
	invs[1] = 1
	for i := 2; i < n; i++ {
		e.fact[i] = e.fact[i-1] * uint64(i) % p
		invs[i] = p - invs[p%uint64(i)]*(p/uint64(i))%p
		e.finv[i] = e.finv[i-1] * invs[i] % p
	}
	return e
}

//snip:enumerator
// Factorial returns n! mod p.
func (e *Enumerator) Factorial(n int) uint64 {
	return e.fact[n]
}

//snip:enumerator
// Choose returns C(n, k) mod p, and 0 when k > n.
func (e *Enumerator) Choose(n, k int) uint64 {
	perm := e.Permute(n, k)
	if perm == 0 {
		return 0
	}
	return perm * e.finv[k] % e.p
}

//snip:enumerator
// Permute returns P(n, k) mod p, and 0 when k > n.
func (e *Enumerator) Permute(n, k int) uint64 {
	if n < k {
		return 0
	}
	return e.fact[n] * e.finv[n-k] % e.p
}

//snip:enumerator
// ChooseWithRepetition returns the number of multisets of size k drawn
// from n kinds, mod p.
func (e *Enumerator) ChooseWithRepetition(n, k int) uint64 {
	return e.Choose(n+k-1, k)
}
