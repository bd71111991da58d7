// Package dicttree implements a generic prefix tree whose levels are explicit
// nodes rather than dynamically nested maps.
//
// What:
//
//   - Node[K] owns a lazily allocated map[K]*Node[K] and a terminal flag.
//   - Tree[K] owns a single root node plus word and node counters.
//   - A key either maps to a deeper node or is absent; end-of-sequence is
//     the terminal field, never a reserved key.
//
// Why:
//
//   - Tries over runes, bytes, path segments or tokens share one structure.
//   - Terminal vs. intermediate nodes are distinguishable without magic keys.
//   - Iteration is deterministic: children are visited in ascending key order.
//
// Complexity:
//
//   - Insert:    O(L) time, at most L new nodes (L = len(seq)).
//   - Lookup:    O(L) time, O(1) extra space.
//   - Contains:  O(L) time.
//   - HasPrefix: O(L) time.
//   - Walk:      O(N·k log k) for N visited nodes with k children each.
//
// Semantics of the empty sequence:
//
//   - Insert(nil) marks the root terminal; Contains(nil) then reports true.
//   - HasPrefix(nil) is always true, including on a freshly created tree.
//
// Concurrency:
//
//   - A Tree is not safe for concurrent mutation. Callers that share one
//     across goroutines must serialize access themselves.
package dicttree
