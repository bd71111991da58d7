package listnode_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvleet/listnode"
)

// TestFromSlice_Empty verifies that empty input yields an absent list.
func TestFromSlice_Empty(t *testing.T) {
	l := listnode.FromSlice([]int{})
	assert.Nil(t, l)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, listnode.Nil, l.Head())
	assert.Equal(t, listnode.Nil, l.Tail())
	assert.Equal(t, "nil", l.String())

	vals, cyclic := l.Values()
	assert.Nil(t, vals)
	assert.False(t, cyclic)
}

// TestFromSlice_Chain verifies order and termination of a simple chain.
func TestFromSlice_Chain(t *testing.T) {
	l := listnode.FromSlice([]int{1, 2, 3})
	require.NotNil(t, l)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, listnode.Index(0), l.Head())
	assert.Equal(t, listnode.Index(2), l.Tail())
	assert.Equal(t, listnode.Nil, l.Next(l.Tail()))

	vals, cyclic := l.Values()
	assert.Equal(t, []int{1, 2, 3}, vals)
	assert.False(t, cyclic)
	assert.Equal(t, listnode.Nil, l.CycleEntry())
	assert.Equal(t, "1 -> 2 -> 3 -> nil", l.String())
}

// TestLink_Cycle closes a cycle and checks bounded traversal helpers.
func TestLink_Cycle(t *testing.T) {
	l := listnode.FromSlice([]int{3, 2, 0, -4})
	require.NoError(t, l.Link(l.Tail(), 1))

	vals, cyclic := l.Values()
	assert.Equal(t, []int{3, 2, 0, -4}, vals)
	assert.True(t, cyclic)
	assert.Equal(t, listnode.Index(1), l.CycleEntry())
	assert.Equal(t, "3 -> 2 -> 0 -> -4 -> (2)", l.String())

	// Walk must respect its step bound on a cyclic list.
	var seen []int
	n := l.Walk(10, func(_ listnode.Index, v int) bool {
		seen = append(seen, v)
		return true
	})
	assert.Equal(t, 10, n)
	assert.Equal(t, []int{3, 2, 0, -4, 2, 0, -4, 2, 0, -4}, seen)
}

// TestLink_SelfLoop covers a single node pointing at itself.
func TestLink_SelfLoop(t *testing.T) {
	l := listnode.FromSlice([]string{"x"})
	require.NoError(t, l.Link(0, 0))
	assert.Equal(t, listnode.Index(0), l.Next(0))
	assert.Equal(t, "x -> (x)", l.String())
}

// TestLink_Errors verifies out-of-range indices are rejected without mutation.
func TestLink_Errors(t *testing.T) {
	l := listnode.FromSlice([]int{1, 2})
	cases := []struct {
		name     string
		from, to listnode.Index
	}{
		{"FromNegative", -1, 0},
		{"FromPastEnd", 2, 0},
		{"ToPastEnd", 0, 5},
		{"ToNegative", 0, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := l.Link(tc.from, tc.to)
			assert.True(t, errors.Is(err, listnode.ErrIndexOutOfRange), "got %v", err)
		})
	}
	assert.Equal(t, "1 -> 2 -> nil", l.String())

	// Nil as target terminates the chain.
	require.NoError(t, l.Link(0, listnode.Nil))
	assert.Equal(t, "1 -> nil", l.String())
}

// TestWalk_EarlyStop verifies fn can stop the traversal.
func TestWalk_EarlyStop(t *testing.T) {
	l := listnode.FromSlice([]int{5, 6, 7})
	n := l.Walk(-1, func(_ listnode.Index, v int) bool { return v != 6 })
	assert.Equal(t, 2, n)
}

// TestAppend_Relinks verifies Append extends the chain from the old tail.
func TestAppend_Relinks(t *testing.T) {
	l := listnode.FromSlice([]int{1})
	idx := l.Append(2)
	assert.Equal(t, listnode.Index(1), idx)
	assert.Equal(t, 2, l.Value(l.Next(l.Head())))
	assert.Equal(t, listnode.Nil, l.Next(listnode.Nil))
	assert.Equal(t, listnode.Nil, l.Next(9))
}
