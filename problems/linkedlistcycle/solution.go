// Package linkedlistcycle holds reference solutions for "Linked List Cycle":
// decide whether a singly linked list loops back on itself.
//
// Two strategies are provided:
//
//   - Solution: Floyd's tortoise and hare. Time O(n), Space O(1).
//   - VisitedSolution: a visited-index set. Time O(n), Space O(n).
//
// Both satisfy cyclefixture.Detector and accept a nil list.
package linkedlistcycle

import (
	"github.com/katalvlaran/lvleet/listnode"
)

// Solution detects cycles with two pointers moving at different speeds.
type Solution struct{}

// New returns a Floyd-based Solution.
func New() *Solution { return &Solution{} }

// HasCycle reports whether l contains a cycle.
func (*Solution) HasCycle(l *listnode.List[int]) bool {
	// 1) slow advances one node per step, fast advances two.
	slow, fast := l.Head(), l.Head()
	for fast != listnode.Nil {
		fast = l.Next(fast)
		if fast == listnode.Nil {
			return false
		}
		fast = l.Next(fast)
		slow = l.Next(slow)

		// 2) Meeting inside the list proves a cycle.
		if fast != listnode.Nil && fast == slow {
			return true
		}
	}

	return false
}

// VisitedSolution detects cycles by remembering every visited index.
type VisitedSolution struct{}

// NewVisited returns a set-based VisitedSolution.
func NewVisited() *VisitedSolution { return &VisitedSolution{} }

// HasCycle reports whether l contains a cycle.
func (*VisitedSolution) HasCycle(l *listnode.List[int]) bool {
	seen := make(map[listnode.Index]struct{}, l.Len())
	for i := l.Head(); i != listnode.Nil; i = l.Next(i) {
		if _, ok := seen[i]; ok {
			return true
		}
		seen[i] = struct{}{}
	}

	return false
}
