// Package dsu implements a disjoint set union (union-find) with union by
// size and path compression.
package dsu

//snip:dsu
// DSU tracks a partition of {0, ..., n-1} into disjoint sets.
//
// parentOrSize[i] holds the negated set size for leaders and the parent
// index for everything else.
type DSU struct {
	parentOrSize []int
}

//snip:dsu
// New returns a DSU over n elements, each in its own set.
func New(n int) *DSU {
	ps := make([]int, n)
	for i := range ps {
		ps[i] = -1
	}
	return &DSU{parentOrSize: ps}
}

//snip:dsu
// Merge joins the sets containing a and b and returns the leader of the
// merged set.
func (d *DSU) Merge(a, b int) int {
	x, y := d.Leader(a), d.Leader(b)
	if x == y {
		return x
	}
	if -d.parentOrSize[x] < -d.parentOrSize[y] {
		x, y = y, x
	}
	d.parentOrSize[x] += d.parentOrSize[y]
	d.parentOrSize[y] = x
	return x
}

//snip:dsu
// Same reports whether a and b are in the same set.
func (d *DSU) Same(a, b int) bool {
	return d.Leader(a) == d.Leader(b)
}

//snip:dsu
// Leader returns the representative of the set containing a.
func (d *DSU) Leader(a int) int {
	if d.parentOrSize[a] < 0 {
		return a
	}
	d.parentOrSize[a] = d.Leader(d.parentOrSize[a])
	return d.parentOrSize[a]
}

//snip:dsu
// Size returns the number of elements in the set containing a.
func (d *DSU) Size(a int) int {
	return -d.parentOrSize[d.Leader(a)]
}
