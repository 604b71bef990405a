// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// dsu.go - disjoint sets guarding Shape against cycles.

package builder

// disjointSet is a union-find over 0..n-1 with path halving and union by
// rank.
type disjointSet struct {
	parent []int
	rank   []uint8
}

func newDisjointSet(n int) disjointSet {
	d := disjointSet{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

func (d disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of a and b. It returns false if they already were
// one set.
func (d disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}
