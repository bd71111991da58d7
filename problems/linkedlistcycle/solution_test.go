package linkedlistcycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvleet/cyclefixture"
	"github.com/katalvlaran/lvleet/listnode"
	"github.com/katalvlaran/lvleet/problems/linkedlistcycle"
)

// TestHasCycle compares both strategies on every tail target of lists up to 6 nodes.
func TestHasCycle(t *testing.T) {
	floyd, visited := linkedlistcycle.New(), linkedlistcycle.NewVisited()

	assert.False(t, floyd.HasCycle(nil))
	assert.False(t, visited.HasCycle(nil))

	for n := 1; n <= 6; n++ {
		vals := make([]int, n)
		for i := range vals {
			vals[i] = i * 10
		}
		for pos := -1; pos <= n; pos++ {
			l := cyclefixture.BuildCycleList(vals, pos)
			want := pos >= 0 && pos < n
			assert.Equal(t, want, floyd.HasCycle(l), "floyd n=%d pos=%d", n, pos)
			assert.Equal(t, want, visited.HasCycle(l), "visited n=%d pos=%d", n, pos)
		}
	}
}

// TestHasCycle_RelinkedMiddle covers a cycle that does not involve the tail slot.
func TestHasCycle_RelinkedMiddle(t *testing.T) {
	l := listnode.FromSlice([]int{1, 2, 3, 4})
	assert.NoError(t, l.Link(2, 0)) // 1 -> 2 -> 3 -> (1); node 4 unreachable

	assert.True(t, linkedlistcycle.New().HasCycle(l))
	assert.True(t, linkedlistcycle.NewVisited().HasCycle(l))
}
