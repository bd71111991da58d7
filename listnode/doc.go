// Package listnode implements a singly linked list stored in an arena.
//
// Nodes live in one slice and refer to their successor by Index. Nil (-1)
// terminates a chain. A cycle is simply a Next index pointing at an earlier
// node; no back-pointer ownership is involved, and callers bound traversal
// with a step limit (Walk) or a visited-index set (Values, String).
//
// Quick ASCII example (FromSlice([3,2,0,-4]) then Link(3, 1)):
//
//	idx:  0    1    2    3
//	val:  3 →  2 →  0 → -4
//	           ↑         │
//	           └─────────┘
//
// Complexity:
//
//   - FromSlice / Append: O(n) / amortized O(1).
//   - Next / Value / Link: O(1).
//   - Values / String:    O(n) time, O(n) visited set.
package listnode
