// Package stringx provides pattern matching algorithms over generic
// slices: Knuth-Morris-Pratt, the Z-algorithm and a 61-bit rolling hash.
package stringx

//snip:knuth_morris_pratt
// KMP searches a fixed target with the Knuth-Morris-Pratt algorithm.
type KMP[T comparable] struct {
	target []T
}

//snip:knuth_morris_pratt
// NewKMP returns a matcher over target.
func NewKMP[T comparable](target []T) *KMP[T] {
	return &KMP[T]{target: target}
}

//snip:knuth_morris_pratt
// FindAll returns every start index at which pattern occurs in the
// target, in increasing order.
func (k *KMP[T]) FindAll(pattern []T) []int {
	n, m := len(k.target), len(pattern)
	indices := []int{}
	fail := failureFunction(pattern)
	i, j := 0, 0
	for i < n {
		switch {
		case k.target[i] == pattern[j]:
			i++
			j++
			if j == m {
				indices = append(indices, i-m)
				j = fail[j]
			}
		case j > 0:
			j = fail[j]
		default:
			i++
		}
	}
	return indices
}

//snip:knuth_morris_pratt
// failureFunction returns fail where fail[j] is the length of the longest
// proper prefix of pattern[:j] that is also a suffix of it.
func failureFunction[T comparable](pattern []T) []int {
	m := len(pattern)
	fail := make([]int, m+1)
	for i := 2; i <= m; i++ {
		j := fail[i-1]
		for {
			if pattern[j] == pattern[i-1] {
				fail[i] = j + 1
				break
			}
			if j == 0 {
				fail[i] = 0
				break
			}
			j = fail[j]
		}
	}
	return fail
}
