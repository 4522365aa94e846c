//snip:multi_set

// Package multiset implements an ordered multiset on top of a B-tree.
package multiset

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

const btreeDegree = 16

type entry[T cmp.Ordered] struct {
	key   T
	count int
}

// MultiSet stores ordered elements with duplicates. The zero value is not
// usable; construct with New or FromSlice.
type MultiSet[T cmp.Ordered] struct {
	len  int
	tree *btree.BTreeG[entry[T]]
}

// New returns an empty MultiSet.
func New[T cmp.Ordered]() *MultiSet[T] {
	return &MultiSet[T]{
		tree: btree.NewG(btreeDegree, func(a, b entry[T]) bool { return a.key < b.key }),
	}
}

// FromSlice returns a MultiSet holding every element of s.
func FromSlice[T cmp.Ordered](s []T) *MultiSet[T] {
	m := New[T]()
	for _, e := range s {
		m.Insert(e)
	}
	return m
}

// Clear removes all elements.
func (m *MultiSet[T]) Clear() {
	m.len = 0
	m.tree.Clear(false)
}

// IsEmpty reports whether the set holds no elements.
func (m *MultiSet[T]) IsEmpty() bool {
	return m.len == 0
}

// Len returns the total number of elements, duplicates included.
func (m *MultiSet[T]) Len() int {
	return m.len
}

// Count returns the multiplicity of e.
func (m *MultiSet[T]) Count(e T) int {
	en, ok := m.tree.Get(entry[T]{key: e})
	if !ok {
		return 0
	}
	return en.count
}

// Insert adds one occurrence of e.
func (m *MultiSet[T]) Insert(e T) {
	m.len++
	en, ok := m.tree.Get(entry[T]{key: e})
	if !ok {
		en = entry[T]{key: e}
	}
	en.count++
	m.tree.ReplaceOrInsert(en)
}

// Contains reports whether at least one occurrence of e is present.
func (m *MultiSet[T]) Contains(e T) bool {
	return m.tree.Has(entry[T]{key: e})
}

// Remove deletes one occurrence of e and reports whether e was present.
func (m *MultiSet[T]) Remove(e T) bool {
	en, ok := m.tree.Get(entry[T]{key: e})
	if !ok {
		return false
	}
	m.len--
	en.count--
	if en.count == 0 {
		m.tree.Delete(en)
	} else {
		m.tree.ReplaceOrInsert(en)
	}
	return true
}

// Min returns the smallest element.
func (m *MultiSet[T]) Min() (T, bool) {
	en, ok := m.tree.Min()
	return en.key, ok
}

// Max returns the largest element.
func (m *MultiSet[T]) Max() (T, bool) {
	en, ok := m.tree.Max()
	return en.key, ok
}

// PopMin removes and returns one occurrence of the smallest element.
func (m *MultiSet[T]) PopMin() (T, bool) {
	en, ok := m.tree.Min()
	if !ok {
		var zero T
		return zero, false
	}
	m.Remove(en.key)
	return en.key, true
}

// PopMax removes and returns one occurrence of the largest element.
func (m *MultiSet[T]) PopMax() (T, bool) {
	en, ok := m.tree.Max()
	if !ok {
		var zero T
		return zero, false
	}
	m.Remove(en.key)
	return en.key, true
}

// All yields every element in ascending order, duplicates repeated.
func (m *MultiSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		m.tree.Ascend(func(en entry[T]) bool {
			for range en.count {
				if !yield(en.key) {
					return false
				}
			}
			return true
		})
	}
}

// Backward yields every element in descending order, duplicates repeated.
func (m *MultiSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		m.tree.Descend(func(en entry[T]) bool {
			for range en.count {
				if !yield(en.key) {
					return false
				}
			}
			return true
		})
	}
}
