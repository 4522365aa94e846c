// Package gridx iterates over neighbouring cells of a rectangular grid.
package gridx

import "iter"

//snip:adjacent
// Dir is a row/column offset.
type Dir struct {
	DI, DJ int
}

//snip:adjacent
// Dirs4 are the four orthogonal offsets.
var Dirs4 = []Dir{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

//snip:adjacent
// Dirs8 are the eight orthogonal and diagonal offsets.
var Dirs8 = []Dir{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

//snip:adjacent
// Adjacent yields the cells reachable from (i, j) through dirs that lie
// inside a height x width grid.
func Adjacent(i, j, height, width int, dirs []Dir) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, d := range dirs {
			ni, nj := i+d.DI, j+d.DJ
			if ni < 0 || ni >= height || nj < 0 || nj >= width {
				continue
			}
			if !yield(ni, nj) {
				return
			}
		}
	}
}

//snip:adjacent
// Adjacent4 yields the in-bounds orthogonal neighbours of (i, j).
func Adjacent4(i, j, height, width int) iter.Seq2[int, int] {
	return Adjacent(i, j, height, width, Dirs4)
}

//snip:adjacent
// Adjacent8 yields the in-bounds orthogonal and diagonal neighbours of
// (i, j).
func Adjacent8(i, j, height, width int) iter.Seq2[int, int] {
	return Adjacent(i, j, height, width, Dirs8)
}
