// Package linkcut maintains dynamic forests with path aggregates.
//
// A link-cut tree keeps a forest of rooted trees over a fixed vertex set and
// answers questions about the path between two vertices while the forest
// changes underneath: subtrees are cut off and linked elsewhere, trees are
// re-rooted, vertex values are updated. Each operation costs amortized
// O(log n).
//
// Packages:
//
//	lctree/   the link-cut forest: Link, Cut, Evert, PathQuery, LCA, Parent
//	monoid/   path operators: Sum, Min, Max, Xor, Count, Affine, Sequence
//	builder/  deterministic forest shapes for tests and benchmarks
//	cmd/linkcut/
//	          CLI replaying YAML operation scripts and timing random workloads
//
// Quick example:
//
//	f := lctree.New[int64, int64](monoid.Sum[int64]{}, []int64{3, 4, 1})
//	f.Link(0, 1)
//	f.Link(2, 1)
//	sum, _ := f.PathQuery(0, 2) // 8
//
// Aggregates are folded in path order. Operators that are not commutative
// implement monoid.Reverser so re-rooting can flip them in O(1).
//
//	go get github.com/katalvlaran/linkcut
package linkcut
