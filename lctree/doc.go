// Package lctree implements a link-cut tree: a forest of rooted trees over a
// fixed vertex set that supports attaching and detaching subtrees, re-rooting
// and path aggregate queries, each in amortized O(log n).
//
// What:
//
//   - Link(u, v)          make u's tree a child of v; rejects cycles.
//   - Cut(u, v)           delete the edge {u, v}; rejects non-edges.
//   - Evert(x)            make x the root of its tree.
//   - PathQuery(u, v)     fold the values on the path u..v with a monoid.Operator.
//   - LCA(root, u, v)     lowest common ancestor of u and v under root.
//   - Parent(root, x)     parent of x under root.
//   - FindRoot, Connected, Value, SetValue.
//
// How:
//
// Every represented tree is decomposed into vertex-disjoint preferred paths.
// Each path is stored as a splay tree keyed by depth (in-order = shallow to
// deep). The top node of a splay tree keeps a path-parent pointer to the
// vertex its path hangs from; that pointer lives in the ordinary parent field
// and is told apart from a real splay parent by the absence of a matching
// child link. Access(x) splays along path-parent pointers until the path
// from the root to x is a single splay tree. Re-rooting reverses that path
// lazily with a flag that is pushed into children before they are read.
//
// Nodes live in one flat slice and refer to each other by index. Vertex
// handles are the indices 0..n-1 assigned at construction in input order.
//
// Aggregates:
//
// A node's aggregate is Op(left, value, right) over its splay subtree. For
// operators implementing monoid.Reverser the aggregate is reversed at the
// moment a reversal is applied to a node, so reading an aggregate never
// needs to consult pending flags.
//
// Complexity:
//
//   - Link, Cut, Evert, PathQuery, LCA, Parent, FindRoot, Connected,
//     SetValue: amortized O(log n) operator calls and pointer updates.
//   - New / Collect: O(n).
//   - Memory: O(n).
//
// Concurrency:
//
// A Forest is not safe for concurrent use. Even queries restructure the
// splay trees. Use Synced, or an external lock, to share one between
// goroutines.
//
// Preconditions:
//
// Handles must lie in [0, Len()). Out-of-range handles are not checked and
// panic with an index error.
package lctree
