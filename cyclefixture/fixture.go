// SPDX-License-Identifier: MIT
// Package: lvleet/cyclefixture
//
// fixture.go — CreateCycleList / BuildCycleList / RunHasCycle / AssertHasCycle.
//
// Contract:
//   • Validation precedes construction; on error nothing is allocated.
//   • Empty values → (nil, nil): an absent list is a valid outcome.
//   • Nodes are appended in input order; the tail links to pos only when
//     0 ≤ pos < len(values).
//
// Complexity:
//   • Time: O(n) for n values.
//   • Space: O(n) arena slots.

package cyclefixture

import (
	"github.com/katalvlaran/lvleet/listnode"
)

// NoCycle is the pos sentinel that requests a plain, terminated chain.
const NoCycle = -1

// Method tags used as error context.
const (
	methodCreateCycleList = "CreateCycleList"
	methodRunHasCycle     = "RunHasCycle"
)

// Detector is implemented by cycle-detection solutions under test.
// HasCycle must accept a nil list (no nodes).
type Detector interface {
	HasCycle(l *listnode.List[int]) bool
}

// CreateCycleList validates values and pos, then builds the fixture.
// See the package documentation for the validation order and cycle policy.
//
// Parameters:
//   - values: slice or array of integers, e.g. []int or a decoded []any.
//   - pos:    integer index the tail links back to; NoCycle for none.
//
// Returns *ArgumentOrderError or *TypeMismatchError on invalid input.
//
// Complexity: O(n) time and space.
func CreateCycleList(values, pos any) (*listnode.List[int], error) {
	vals, p, err := validateArgs(methodCreateCycleList, values, pos)
	if err != nil {
		return nil, err
	}

	return BuildCycleList(vals, p), nil
}

// BuildCycleList is the typed core of CreateCycleList. It returns nil for
// empty values. An out-of-range pos other than NoCycle is accepted and leaves
// the list acyclic.
//
// Complexity: O(n) time and space.
func BuildCycleList(values []int, pos int) *listnode.List[int] {
	// 1) Empty input → no list.
	l := listnode.FromSlice(values)
	if l == nil {
		return nil
	}

	// 2) Close the cycle only for an in-range index; NoCycle and any other
	//    value keep the chain terminated.
	if pos != NoCycle && pos >= 0 && pos < l.Len() {
		// Both indices are in range, so Link cannot fail here.
		_ = l.Link(l.Tail(), listnode.Index(pos))
	}

	return l
}

// RunHasCycle validates values and pos like CreateCycleList (errors name
// RunHasCycle), builds the fixture, creates a fresh Detector and returns its
// verdict on the fixture.
//
// Parameters:
//   - newDetector: factory called once per run; must not return nil.
//   - values, pos: as for CreateCycleList.
//
// Complexity: O(n) plus the cost of the detector's HasCycle.
func RunHasCycle(newDetector func() Detector, values, pos any) (bool, error) {
	vals, p, err := validateArgs(methodRunHasCycle, values, pos)
	if err != nil {
		return false, err
	}
	head := BuildCycleList(vals, p)

	return newDetector().HasCycle(head), nil
}

// AssertHasCycle returns (true, nil) when result equals expected and
// (false, *AssertionError) otherwise.
//
// Complexity: O(1).
func AssertHasCycle(result, expected bool) (bool, error) {
	if result != expected {
		return false, &AssertionError{Got: result, Want: expected}
	}

	return true, nil
}
