// Package search provides flip-point binary search and bisection over
// sorted slices.
package search

import (
	"cmp"
	"errors"
	"math"
)

var (
	// ErrEqualBounds is returned when the search range is empty.
	ErrEqualBounds = errors.New("search: bad and good must be different")
	// ErrNaN is returned when either bound is NaN.
	ErrNaN = errors.New("search: bounds must not be NaN")
)

//snip:binary_search
// Search narrows the range between bad and good until they are adjacent
// and returns the boundary value for which isGood holds. bad is the
// boundary value not to take, good the one to take; isGood must have a
// single flip point between them. bad may be greater than good.
func Search(bad, good int64, isGood func(int64) bool) (int64, error) {
	if bad == good {
		return 0, ErrEqualBounds
	}
	for hasRange(bad, good, 1) {
		// Midpoint without overflowing bad+good.
		mid := bad + (good-bad)/2
		if isGood(mid) {
			good = mid
		} else {
			bad = mid
		}
	}
	return good, nil
}

//snip:binary_search
// SearchFloat is Search over floats. eps is the upper bound of
// |bad - good| at which the search stops.
func SearchFloat(bad, good, eps float64, isGood func(float64) bool) (float64, error) {
	if math.IsNaN(bad) || math.IsNaN(good) || math.IsNaN(eps) {
		return 0, ErrNaN
	}
	if bad == good {
		return 0, ErrEqualBounds
	}
	for math.Abs(good-bad) > eps {
		mid := (bad + good) / 2
		if isGood(mid) {
			good = mid
		} else {
			bad = mid
		}
	}
	return good, nil
}

//snip:binary_search
func hasRange(bad, good, eps int64) bool {
	if good > bad {
		return good-bad > eps
	}
	return bad-good > eps
}

//snip:bisect
//snip:include binary_search
// BisectLeft locates the leftmost insertion point for x in sorted slice s
// to maintain sorted order. Equivalent to Python's bisect.bisect_left.
func BisectLeft[S ~[]E, E cmp.Ordered](s S, x E) int {
	// The range (-1, len] keeps every probed index in bounds.
	i, _ := Search(-1, int64(len(s)), func(i int64) bool { return s[i] >= x })
	return int(i)
}

//snip:bisect
//snip:include binary_search
// BisectRight locates the rightmost insertion point for x in sorted slice
// s to maintain sorted order. Equivalent to Python's bisect.bisect_right.
func BisectRight[S ~[]E, E cmp.Ordered](s S, x E) int {
	i, _ := Search(-1, int64(len(s)), func(i int64) bool { return s[i] > x })
	return int(i)
}
