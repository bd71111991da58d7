// Package firstbadversion holds the reference solution for "First Bad
// Version": given versions 1..n where every version after the first bad one
// is also bad, find the first bad version with as few oracle calls as
// possible.
//
// Complexity: O(log n) oracle calls, O(1) space.
package firstbadversion

import "math"

// DefaultFirstBad is the first bad version used by New when none is given.
const DefaultFirstBad = 1

// Solution answers FirstBadVersion queries against an isBadVersion oracle.
type Solution struct {
	isBadVersion func(version int) bool
	calls        int
}

// New returns a Solution whose oracle reports version >= firstBad.
// A firstBad below 1 is replaced by DefaultFirstBad.
func New(firstBad int) *Solution {
	if firstBad < 1 {
		firstBad = DefaultFirstBad
	}

	return NewWithOracle(func(version int) bool { return version >= firstBad })
}

// NewWithOracle returns a Solution backed by a custom oracle.
// Panics on nil to surface programmer error early.
func NewWithOracle(isBad func(version int) bool) *Solution {
	if isBad == nil {
		panic("firstbadversion: NewWithOracle(nil)")
	}

	return &Solution{isBadVersion: isBad}
}

// FirstBadVersion returns the smallest version in [1, n] the oracle reports
// as bad. When no version in range is bad it returns n+1, saturated at
// math.MaxInt; for n < 1 it returns 1 without consulting the oracle.
func (s *Solution) FirstBadVersion(n int) int {
	if n < 1 {
		return 1
	}

	// 1) Binary search over [1, n]; hi only moves onto versions known bad.
	lo, hi := 1, n
	hiBad := false
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s.bad(mid) {
			hi = mid
			hiBad = true
		} else {
			lo = mid + 1
		}
	}

	// 2) lo == hi; unless hi was confirmed bad, n itself is still unchecked.
	if hiBad || s.bad(lo) {
		return lo
	}
	if n == math.MaxInt {
		return n
	}

	return n + 1
}

// Calls returns how many times the oracle has been consulted.
func (s *Solution) Calls() int {
	return s.calls
}

func (s *Solution) bad(version int) bool {
	s.calls++

	return s.isBadVersion(version)
}
