package cyclefixture_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvleet/cyclefixture"
	"github.com/katalvlaran/lvleet/listnode"
	"github.com/katalvlaran/lvleet/problems/linkedlistcycle"
)

// alwaysFalse is a stub detector that never reports a cycle, like an
// unimplemented solution.
type alwaysFalse struct{}

func (alwaysFalse) HasCycle(*listnode.List[int]) bool { return false }

func newFloyd() cyclefixture.Detector   { return linkedlistcycle.New() }
func newVisited() cyclefixture.Detector { return linkedlistcycle.NewVisited() }
func newStub() cyclefixture.Detector    { return alwaysFalse{} }

// TestCreateCycleList_Empty verifies empty input yields no list for any pos.
func TestCreateCycleList_Empty(t *testing.T) {
	for _, pos := range []any{-1, 0, 7, uint8(3)} {
		l, err := cyclefixture.CreateCycleList([]int{}, pos)
		assert.NoError(t, err)
		assert.Nil(t, l)
	}
	l, err := cyclefixture.CreateCycleList([]any{}, 0)
	assert.NoError(t, err)
	assert.Nil(t, l)
}

// TestCreateCycleList_Shapes covers chains, cycles and permissive positions.
func TestCreateCycleList_Shapes(t *testing.T) {
	cases := []struct {
		name   string
		values any
		pos    any
		want   []int
		cyclic bool
		entry  listnode.Index
	}{
		{"Chain", []int{1, 2, 3}, -1, []int{1, 2, 3}, false, listnode.Nil},
		{"CycleToHead", []int{1, 2, 3}, 0, []int{1, 2, 3}, true, 0},
		{"Classic", []int{3, 2, 0, -4}, 1, []int{3, 2, 0, -4}, true, 1},
		{"SelfLoopTail", []int{1, 2}, 1, []int{1, 2}, true, 1},
		{"SingleNoCycle", []int{1}, -1, []int{1}, false, listnode.Nil},
		{"SingleSelfLoop", []int{1}, 0, []int{1}, true, 0},
		{"PosEqualsLen", []int{1, 2, 3}, 3, []int{1, 2, 3}, false, listnode.Nil},
		{"PosFarOut", []int{1, 2, 3}, 99, []int{1, 2, 3}, false, listnode.Nil},
		{"PosBelowSentinel", []int{1, 2, 3}, -5, []int{1, 2, 3}, false, listnode.Nil},
		{"DecodedYAML", []any{3, 2, 0, -4}, 1, []int{3, 2, 0, -4}, true, 1},
		{"ArrayAndInt64", [3]int64{7, 8, 9}, int64(2), []int{7, 8, 9}, true, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := cyclefixture.CreateCycleList(tc.values, tc.pos)
			require.NoError(t, err)
			require.NotNil(t, l)

			vals, cyclic := l.Values()
			assert.Equal(t, tc.want, vals)
			assert.Equal(t, tc.cyclic, cyclic)
			assert.Equal(t, tc.entry, l.CycleEntry())
		})
	}
}

// TestCreateCycleList_CycleLength checks [1,2,3],0 forms a cycle of length 3.
func TestCreateCycleList_CycleLength(t *testing.T) {
	l, err := cyclefixture.CreateCycleList([]int{1, 2, 3}, 0)
	require.NoError(t, err)

	// From the head, the walk returns to index 0 after exactly 3 steps.
	var idx []listnode.Index
	l.Walk(4, func(i listnode.Index, _ int) bool {
		idx = append(idx, i)
		return true
	})
	assert.Equal(t, []listnode.Index{0, 1, 2, 0}, idx)
}

// TestCreateCycleList_Errors covers the validation order and error kinds.
func TestCreateCycleList_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values any
		pos    any
		is     error
		param  string
		got    string
	}{
		{"Swapped", 5, []int{2, 0, -4, -1}, cyclefixture.ErrArgumentOrder, "", ""},
		{"SwappedAnySlice", 1, []any{3, 2}, cyclefixture.ErrArgumentOrder, "", ""},
		{"StringValues", "not-a-list", 0, cyclefixture.ErrTypeMismatch, "values", "string"},
		{"NilValues", nil, 0, cyclefixture.ErrTypeMismatch, "values", "nil"},
		{"IntValuesIntPos", 5, 1, cyclefixture.ErrTypeMismatch, "values", "int"},
		{"MapValues", map[int]int{}, 0, cyclefixture.ErrTypeMismatch, "values", "map[int]int"},
		{"FloatPos", []int{1}, 1.5, cyclefixture.ErrTypeMismatch, "pos", "float64"},
		{"StringPos", []int{1}, "0", cyclefixture.ErrTypeMismatch, "pos", "string"},
		{"BoolPos", []int{1}, true, cyclefixture.ErrTypeMismatch, "pos", "bool"},
		{"BoolValuesNotSwapped", true, []int{1}, cyclefixture.ErrTypeMismatch, "values", "bool"},
		{"BoolElement", []any{1, false}, 0, cyclefixture.ErrTypeMismatch, "values[1]", "bool"},
		{"NilPos", []int{1}, nil, cyclefixture.ErrTypeMismatch, "pos", "nil"},
		{"BadElement", []any{1, "two", 3}, 0, cyclefixture.ErrTypeMismatch, "values[1]", "string"},
		{"OverflowElement", []uint64{1 << 63}, 0, cyclefixture.ErrTypeMismatch, "values[0]", "uint64"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := cyclefixture.CreateCycleList(tc.values, tc.pos)
			assert.Nil(t, l)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.is), "errors.Is(%v, %v)", err, tc.is)
			assert.Contains(t, err.Error(), "CreateCycleList")

			if tc.param == "" {
				var aoe *cyclefixture.ArgumentOrderError
				require.True(t, errors.As(err, &aoe))
				assert.Contains(t, aoe.Hint, "wrong order")
				return
			}
			var tme *cyclefixture.TypeMismatchError
			require.True(t, errors.As(err, &tme))
			assert.Equal(t, tc.param, tme.Param)
			assert.Equal(t, tc.got, tme.Got)
			assert.Contains(t, err.Error(), tc.got)
		})
	}
}

// TestRunHasCycle covers the classic fixtures against the reference detectors.
func TestRunHasCycle(t *testing.T) {
	cases := []struct {
		name   string
		values any
		pos    any
		want   bool
	}{
		{"Classic", []int{3, 2, 0, -4}, 1, true},
		{"TwoNodes", []int{1, 2}, 0, true},
		{"SingleNoCycle", []int{1}, -1, false},
		{"Empty", []int{}, -1, false},
		{"ThreeToHead", []int{1, 2, 3}, 0, true},
		{"Chain", []int{1, 2, 3, 4, 5}, -1, false},
		{"OutOfRange", []int{1, 2, 3}, 3, false},
	}
	detectors := map[string]func() cyclefixture.Detector{
		"Floyd":   newFloyd,
		"Visited": newVisited,
	}
	for dname, newDet := range detectors {
		for _, tc := range cases {
			t.Run(dname+"/"+tc.name, func(t *testing.T) {
				got, err := cyclefixture.RunHasCycle(newDet, tc.values, tc.pos)
				require.NoError(t, err)
				ok, err := cyclefixture.AssertHasCycle(got, tc.want)
				assert.NoError(t, err)
				assert.True(t, ok)
			})
		}
	}
}

// TestRunHasCycle_Errors verifies validation happens before the detector runs.
func TestRunHasCycle_Errors(t *testing.T) {
	called := false
	newDet := func() cyclefixture.Detector {
		called = true
		return alwaysFalse{}
	}

	_, err := cyclefixture.RunHasCycle(newDet, 1, []int{3, 2, 0, -4})
	var aoe *cyclefixture.ArgumentOrderError
	require.True(t, errors.As(err, &aoe))
	assert.Equal(t, "RunHasCycle", aoe.Method)
	assert.Contains(t, err.Error(), "RunHasCycle(newDetector, values, pos)")

	_, err = cyclefixture.RunHasCycle(newDet, "abc", 0)
	assert.True(t, errors.Is(err, cyclefixture.ErrTypeMismatch))

	_, err = cyclefixture.RunHasCycle(newDet, []int{1}, "x")
	assert.True(t, errors.Is(err, cyclefixture.ErrTypeMismatch))

	assert.False(t, called, "detector must not be created on invalid input")
}

// TestAssertHasCycle_Mismatch verifies a stub solution fails the assertion.
func TestAssertHasCycle_Mismatch(t *testing.T) {
	got, err := cyclefixture.RunHasCycle(newStub, []int{3, 2, 0, -4}, 1)
	require.NoError(t, err)

	ok, err := cyclefixture.AssertHasCycle(got, true)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, cyclefixture.ErrAssertion))
	assert.EqualError(t, err, "AssertHasCycle: got false, want true")
}
