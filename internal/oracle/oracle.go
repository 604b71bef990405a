// Package oracle is a deliberately naive forest used to check lctree.
//
// Every operation walks the tree with a breadth-first search over adjacency
// sets, O(n) per call. It shares no code with lctree.
package oracle

import (
	"slices"

	"github.com/katalvlaran/linkcut/monoid"
)

// Forest is an undirected forest over vertices 0..n-1.
type Forest struct {
	adj []map[int]struct{}
}

// New returns a forest of n isolated vertices.
func New(n int) *Forest {
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Forest{adj: adj}
}

// Len returns the number of vertices.
func (f *Forest) Len() int {
	return len(f.adj)
}

// Link adds the edge {u, v} unless it would close a cycle.
func (f *Forest) Link(u, v int) bool {
	if u == v || f.Connected(u, v) {
		return false
	}
	f.adj[u][v] = struct{}{}
	f.adj[v][u] = struct{}{}

	return true
}

// Cut removes the edge {u, v} if present.
func (f *Forest) Cut(u, v int) bool {
	if _, ok := f.adj[u][v]; !ok {
		return false
	}
	delete(f.adj[u], v)
	delete(f.adj[v], u)

	return true
}

// HasEdge reports whether {u, v} is an edge.
func (f *Forest) HasEdge(u, v int) bool {
	_, ok := f.adj[u][v]

	return ok
}

// Edges returns every edge once as (min, max) pairs in ascending order.
func (f *Forest) Edges() [][2]int {
	var out [][2]int
	for u, nbs := range f.adj {
		for v := range nbs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}

		return a[1] - b[1]
	})

	return out
}

// Connected reports whether u and v are in the same tree.
func (f *Forest) Connected(u, v int) bool {
	parent, _ := f.bfs(u)
	_, ok := parent[v]

	return ok
}

// Root returns the smallest vertex of x's tree, a rooting-independent
// representative used to compare components.
func (f *Forest) Root(x int) int {
	parent, _ := f.bfs(x)
	r := x
	for v := range parent {
		if v < r {
			r = v
		}
	}

	return r
}

// Path returns the vertices on the path from u to v, both included.
// ok is false when they are disconnected.
func (f *Forest) Path(u, v int) (path []int, ok bool) {
	parent, _ := f.bfs(u)
	if _, ok = parent[v]; !ok {
		return nil, false
	}
	for x := v; x != u; x = parent[x] {
		path = append(path, x)
	}
	path = append(path, u)
	slices.Reverse(path)

	return path, true
}

// Parent returns the parent of x when its tree is rooted at root.
func (f *Forest) Parent(root, x int) (int, bool) {
	if root == x {
		return -1, false
	}
	parent, _ := f.bfs(root)
	p, ok := parent[x]
	if !ok {
		return -1, false
	}

	return p, true
}

// LCA returns the lowest common ancestor of u and v under root by walking
// parent pointers from the deeper vertex.
func (f *Forest) LCA(root, u, v int) (int, bool) {
	parent, depth := f.bfs(root)
	if _, ok := parent[u]; !ok {
		return -1, false
	}
	if _, ok := parent[v]; !ok {
		return -1, false
	}
	for depth[u] > depth[v] {
		u = parent[u]
	}
	for depth[v] > depth[u] {
		v = parent[v]
	}
	for u != v {
		u, v = parent[u], parent[v]
	}

	return u, true
}

// bfs explores x's tree. parent maps every reached vertex to its BFS parent
// (x maps to itself); depth is the hop distance from x.
func (f *Forest) bfs(x int) (parent, depth map[int]int) {
	parent = map[int]int{x: x}
	depth = map[int]int{x: 0}
	queue := []int{x}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range f.adj[u] {
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}

	return parent, depth
}

// Fold combines values along path in order.
func Fold[V, Q any](op monoid.Operator[V, Q], values []V, path []int) Q {
	acc := op.Identity()
	for _, x := range path {
		acc = op.OpLeft(acc, values[x])
	}

	return acc
}
