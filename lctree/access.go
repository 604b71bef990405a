// SPDX-License-Identifier: MIT
// Package: linkcut/lctree
//
// access.go - the access (expose) primitive and the helpers built on it.

package lctree

// access makes the path from x's represented root down to x the preferred
// path, with x as the root of its splay tree and no deeper vertex in it.
//
// Walking up, each splay tree met is splayed at its entry vertex y; y's
// right subtree (vertices deeper than y on the old preferred path) is left
// hanging by its path-parent pointer and replaced by the path built so far.
//
// It returns the last vertex at which the walk entered a splay tree. After
// access(u), access(v) returns the lowest common ancestor of u and v.
func (f *Forest[V, Q]) access(x int) (join int) {
	last := none
	for y := x; y != none; {
		pathParent, _ := f.splay(y)
		f.nodes[y].right = last
		f.recompute(y)
		last = y
		y = pathParent
	}
	f.splay(x)

	return last
}

// evert makes x the root of its represented tree.
func (f *Forest[V, Q]) evert(x int) {
	f.access(x)
	f.flip(x)
}

// findRoot returns the root of x's represented tree and splays it, leaving
// the root's splay tree holding the path root..x.
func (f *Forest[V, Q]) findRoot(x int) int {
	f.access(x)
	r := x
	for {
		f.push(r)
		l := f.nodes[r].left
		if l == none {
			break
		}
		r = l
	}
	f.splay(r)

	return r
}

// rightmost returns the deepest vertex in x's splay subtree, pushing
// reversals on the way down.
func (f *Forest[V, Q]) rightmost(x int) int {
	for {
		f.push(x)
		r := f.nodes[x].right
		if r == none {
			return x
		}
		x = r
	}
}
