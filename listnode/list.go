package listnode

import (
	"errors"
	"fmt"
	"strings"
)

// Index addresses a node inside a List.
type Index int

// Nil is the Index that terminates a chain.
const Nil Index = -1

// ErrIndexOutOfRange indicates an Index that does not address a node.
var ErrIndexOutOfRange = errors.New("listnode: index out of range")

// Node is one arena slot: a value and the index of its successor.
type Node[T any] struct {
	Val  T
	Next Index
}

// List is an arena-backed singly linked list. The head is always index 0
// once the list has at least one node.
type List[T any] struct {
	nodes []Node[T]
}

// FromSlice builds a chain holding vals in order.
// It returns nil for empty input: an absent list, not an error.
//
// Complexity: O(n) time and space.
func FromSlice[T any](vals []T) *List[T] {
	if len(vals) == 0 {
		return nil
	}
	l := &List[T]{nodes: make([]Node[T], 0, len(vals))}
	for _, v := range vals {
		l.Append(v)
	}

	return l
}

// Append adds v after the current tail and returns its index.
// The previous tail is re-linked to the new node, which terminates the chain.
//
// Complexity: amortized O(1) time.
func (l *List[T]) Append(v T) Index {
	idx := Index(len(l.nodes))
	if idx > 0 {
		l.nodes[idx-1].Next = idx
	}
	l.nodes = append(l.nodes, Node[T]{Val: v, Next: Nil})

	return idx
}

// Link sets the successor of from to to. Passing Nil as to terminates the
// chain at from.
//
// Parameters:
//   - from: node whose successor changes; must address a node.
//   - to:   new successor; a node index or Nil.
//
// Returns ErrIndexOutOfRange (wrapped) when either index is invalid; the list
// is left untouched in that case.
//
// Complexity: O(1) time and space.
func (l *List[T]) Link(from, to Index) error {
	if !l.valid(from) {
		return fmt.Errorf("Link(%d, %d): from: %w", from, to, ErrIndexOutOfRange)
	}
	if to != Nil && !l.valid(to) {
		return fmt.Errorf("Link(%d, %d): to: %w", from, to, ErrIndexOutOfRange)
	}
	l.nodes[from].Next = to

	return nil
}

// Len returns the number of allocated nodes. A nil list has length 0.
//
// Complexity: O(1).
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return len(l.nodes)
}

// Head returns the first node's index, or Nil for a nil or empty list.
//
// Complexity: O(1).
func (l *List[T]) Head() Index {
	if l.Len() == 0 {
		return Nil
	}

	return 0
}

// Tail returns the index of the last allocated node, or Nil when empty.
func (l *List[T]) Tail() Index {
	return Index(l.Len() - 1)
}

// Next returns the successor of i, or Nil when i is Nil or out of range.
//
// Complexity: O(1).
func (l *List[T]) Next(i Index) Index {
	if !l.valid(i) {
		return Nil
	}

	return l.nodes[i].Next
}

// Value returns the value stored at i. It panics if i does not address a
// node, like an out-of-range slice access.
func (l *List[T]) Value(i Index) T {
	return l.nodes[i].Val
}

// Walk follows the chain from the head, calling fn for each node, for at most
// maxSteps nodes (maxSteps < 0 means unbounded, which never terminates on a
// cyclic list unless fn stops it). It returns the number of nodes visited.
//
// Parameters:
//   - maxSteps: upper bound on visited nodes; negative disables the bound.
//   - fn:       called with each node's index and value; false stops the walk.
//
// Complexity: O(min(maxSteps, steps until fn stops)) time, O(1) space.
func (l *List[T]) Walk(maxSteps int, fn func(i Index, v T) bool) int {
	steps := 0
	for i := l.Head(); i != Nil; i = l.nodes[i].Next {
		if maxSteps >= 0 && steps >= maxSteps {
			break
		}
		steps++
		if !fn(i, l.nodes[i].Val) {
			break
		}
	}

	return steps
}

// Values returns the values along the chain from the head, stopping before
// the first revisited node. The bool result reports whether such a revisit
// (a cycle) was found. A nil list yields (nil, false).
//
// Complexity: O(n) time, O(n) space for the visited set and the values.
func (l *List[T]) Values() ([]T, bool) {
	vals, _, cyclic := l.trace()

	return vals, cyclic
}

// CycleEntry returns the index of the node where the chain re-enters itself,
// or Nil for an acyclic list.
//
// Complexity: O(n) time and space.
func (l *List[T]) CycleEntry() Index {
	_, entry, _ := l.trace()

	return entry
}

// String renders the list as "1 -> 2 -> 3 -> nil", or for a cycle
// "1 -> 2 -> 3 -> (1)" where the parenthesized value is the re-entry node.
//
// Complexity: O(n) time and space.
func (l *List[T]) String() string {
	vals, entry, cyclic := l.trace()
	if len(vals) == 0 {
		return "nil"
	}
	var sb strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&sb, "%v -> ", v)
	}
	if cyclic {
		fmt.Fprintf(&sb, "(%v)", l.nodes[entry].Val)
	} else {
		sb.WriteString("nil")
	}

	return sb.String()
}

// trace walks the chain once with a visited set and reports the values seen,
// the re-entry index (Nil if none) and whether a cycle closed.
func (l *List[T]) trace() ([]T, Index, bool) {
	n := l.Len()
	if n == 0 {
		return nil, Nil, false
	}
	seen := make([]bool, n)
	vals := make([]T, 0, n)
	for i := l.Head(); i != Nil; i = l.nodes[i].Next {
		if seen[i] {
			return vals, i, true
		}
		seen[i] = true
		vals = append(vals, l.nodes[i].Val)
	}

	return vals, Nil, false
}

// valid reports whether i addresses an allocated node.
func (l *List[T]) valid(i Index) bool {
	return i >= 0 && int(i) < l.Len()
}
