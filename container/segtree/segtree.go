//snip:segment_tree

// Package segtree implements an abstract segment tree over a monoid.
package segtree

import "math/bits"

// SegTree answers range queries for an associative operation op with
// identity element id in O(log n) per query and update.
type SegTree[T any] struct {
	n    int
	node []T
	op   func(T, T) T
	id   func() T
}

// New returns a tree of n identity elements. The internal size is rounded
// up to the next power of two.
func New[T any](n int, op func(T, T) T, id func() T) *SegTree[T] {
	size := nextPow2(n)
	node := make([]T, size<<1)
	for i := range node {
		node[i] = id()
	}
	return &SegTree[T]{n: size, node: node, op: op, id: id}
}

// FromSlice builds a tree holding the elements of s.
func FromSlice[T any](s []T, op func(T, T) T, id func() T) *SegTree[T] {
	t := New(len(s), op, id)
	for i, x := range s {
		t.node[i+t.n] = x
	}
	for i := t.n - 1; i >= 1; i-- {
		t.node[i] = t.op(t.node[i<<1], t.node[i<<1|1])
	}
	return t
}

// Len returns the internal leaf count.
func (t *SegTree[T]) Len() int {
	return t.n
}

// Get returns the ith element.
func (t *SegTree[T]) Get(i int) T {
	if i < 0 || i >= t.n {
		panic("segtree: index out of range")
	}
	return t.node[i+t.n]
}

// Update sets the ith element to x and recomputes the path to the root.
func (t *SegTree[T]) Update(i int, x T) {
	if i < 0 || i >= t.n {
		panic("segtree: index out of range")
	}
	i += t.n
	t.node[i] = x
	for i > 1 {
		i >>= 1
		t.node[i] = t.op(t.node[i<<1], t.node[i<<1|1])
	}
}

// Query folds op over the half-open range [left, right).
func (t *SegTree[T]) Query(left, right int) T {
	l, r := left+t.n, right+t.n
	if l > r || left < 0 || r > len(t.node) {
		panic("segtree: invalid query range")
	}
	resL, resR := t.id(), t.id()
	for l < r {
		if l&1 == 1 {
			resL = t.op(resL, t.node[l])
			l++
		}
		if r&1 == 1 {
			r--
			resR = t.op(t.node[r], resR)
		}
		l >>= 1
		r >>= 1
	}
	return t.op(resL, resR)
}

// QueryAll folds op over every element.
func (t *SegTree[T]) QueryAll() T {
	return t.Query(0, t.n)
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
