// Package script loads, validates, generates and executes link-cut
// workloads described as YAML documents.
//
//	operator: sum            # sum | min | max | xor | count
//	values: [3, 4, 1, 2, 0, 7]
//	ops:
//	  - {op: link, u: 0, v: 1, expect: true}
//	  - {op: query, u: 0, v: 4, expect: 10}
//	  - {op: lca, root: 0, u: 2, v: 3, expect: 1}
//	  - {op: parent, root: 0, u: 0, expect: none}
//
// A Runner executes a Script against an lctree.Forest[int64, int64],
// checks every expectation, and can cross-check each outcome against the
// naive oracle. Handles are validated before any operation reaches the
// forest, which itself does no range checking.
package script
