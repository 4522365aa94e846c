package stringx

import (
	"errors"
	"math/rand/v2"
)

var (
	// ErrHashRange is returned for an out of bounds hash window.
	ErrHashRange = errors.New("stringx: hash window out of range")
	// ErrPatternTooLong is returned when a pattern exceeds the text.
	ErrPatternTooLong = errors.New("stringx: pattern longer than text")
)

//snip:rolling_hash
// Hashing is done modulo the Mersenne prime 2^61-1; products are reduced
// by splitting the operands into 31/30-bit halves so everything stays in
// uint64.
const (
	hashMod = 1<<61 - 1
	mask30  = 1<<30 - 1
	mask31  = 1<<31 - 1
	mask61  = 1<<61 - 1
)

//snip:rolling_hash
// RollingHash holds prefix hashes of a byte string so any window hash is
// an O(1) lookup. Two texts must share a base for their hashes to be
// comparable.
type RollingHash struct {
	acc []uint64
	pow []uint64
}

//snip:rolling_hash
// NewRollingHash hashes s with the given base.
func NewRollingHash(s []byte, base uint64) *RollingHash {
	n := len(s)
	acc := make([]uint64, n+1)
	pow := make([]uint64, n+1)
	pow[0] = 1
	for i := 0; i < n; i++ {
		acc[i+1] = hashModulo(hashMul(acc[i], base) + uint64(s[i]))
		pow[i+1] = hashModulo(hashMul(pow[i], base))
	}
	return &RollingHash{acc: acc, pow: pow}
}

//snip:rolling_hash
// RandomBase draws a base suitable for NewRollingHash. A random base
// keeps adversarial inputs from forcing collisions.
func RandomBase() uint64 {
	return 2 + rand.Uint64N(hashMod-4)
}

//snip:rolling_hash
// Window returns the hash of s[left:right].
func (h *RollingHash) Window(left, right int) (uint64, error) {
	n := len(h.acc) - 1
	if left < 0 || left > right || right > n {
		return 0, ErrHashRange
	}
	return hashModulo(h.acc[right] + 4*hashMod - hashMul(h.acc[left], h.pow[right-left])), nil
}

//snip:rolling_hash
// FindAll returns every start index where pattern's hash matches a window
// of h. Both must be built with the same base.
func (h *RollingHash) FindAll(pattern *RollingHash) ([]int, error) {
	n := len(h.acc) - 1
	m := len(pattern.acc) - 1
	if n < m {
		return nil, ErrPatternTooLong
	}
	want, err := pattern.Window(0, m)
	if err != nil {
		return nil, err
	}
	indices := []int{}
	for i := 0; i <= n-m; i++ {
		got, err := h.Window(i, i+m)
		if err != nil {
			return nil, err
		}
		if got == want {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

//snip:rolling_hash
func hashMul(a, b uint64) uint64 {
	au, ad := a>>31, a&mask31
	bu, bd := b>>31, b&mask31
	mid := ad*bu + au*bd
	return au*bu*2 + mid>>30 + (mid&mask30)<<31 + ad*bd
}

//snip:rolling_hash
func hashModulo(x uint64) uint64 {
	res := x>>61 + x&mask61
	if res >= hashMod {
		res -= hashMod
	}
	return res
}
