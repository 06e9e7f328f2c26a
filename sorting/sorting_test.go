package sorting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var producers = map[string]Producer{
	"bubble":    Bubble,
	"insertion": Insertion,
	"selection": Selection,
	"quick":     Quick,
	"merge":     Merge,
	"heap":      Heap,
}

var inputs = [][]int{
	{},
	{42},
	{5, 3, 8, 1},
	{1, 2, 3, 4, 5},
	{5, 4, 3, 2, 1},
	{7, 7, 3, 7, 1, 3},
	{10, 99, 45, 45, 12, 0, 63, 81, 27, 27, 54},
}

func sortedCopy(values []int) []int {
	out := append([]int(nil), values...)
	sort.Ints(out)
	return out
}

func TestFinalFrameIsSortedPermutation(t *testing.T) {
	for name, produce := range producers {
		for _, in := range inputs {
			res := produce(in)
			require.NotEmpty(t, res.Frames, name)

			last := res.Frames[len(res.Frames)-1]
			assert.Equal(t, nonNil(sortedCopy(in)), last.Values(), "%s %v", name, in)
			for _, e := range last.Elements {
				assert.Equal(t, StateSorted, e.State, "%s %v", name, in)
			}
		}
	}
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func TestInitialFrameIsUntouchedInput(t *testing.T) {
	in := []int{9, 2, 7, 4}
	for name, produce := range producers {
		res := produce(in)
		first := res.Frames[0]
		assert.Equal(t, in, first.Values(), name)
		for _, e := range first.Elements {
			assert.Equal(t, StateDefault, e.State, name)
		}
		assert.Nil(t, first.Indices, name)
	}
}

func TestFrameCountAndCounters(t *testing.T) {
	for name, produce := range producers {
		for _, in := range inputs {
			res := produce(in)
			assert.GreaterOrEqual(t, len(res.Frames), 2, "%s %v", name, in)
			assert.GreaterOrEqual(t, res.Comparisons, 0, name)
			assert.GreaterOrEqual(t, res.Swaps, 0, name)
			for _, f := range res.Frames {
				assert.Len(t, f.Elements, len(in), name)
			}
		}
	}
}

func TestInputIsNotMutated(t *testing.T) {
	for name, produce := range producers {
		in := []int{4, 1, 3, 2}
		produce(in)
		assert.Equal(t, []int{4, 1, 3, 2}, in, name)
	}
}

func TestDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := make([]int, 30)
	for i := range in {
		in[i] = rng.Intn(90) + 10
	}

	for name, produce := range producers {
		assert.Equal(t, produce(in), produce(in), name)
	}
}

func TestFramesDoNotAlias(t *testing.T) {
	for name, produce := range producers {
		res := produce([]int{3, 1, 2})
		require.GreaterOrEqual(t, len(res.Frames), 2, name)

		second := res.Frames[1].Elements[0]
		res.Frames[0].Elements[0] = Element{Value: -1, State: StateOutOfPlace}
		assert.Equal(t, second, res.Frames[1].Elements[0], name)
	}
}

func TestAlreadySortedNeedsNoSwaps(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	for _, name := range []string{"bubble", "insertion", "selection"} {
		res := producers[name](in)
		assert.Zero(t, res.Swaps, name)
	}
}

func TestBubbleHandTrace(t *testing.T) {
	res := Bubble([]int{5, 3, 8, 1})

	assert.Equal(t, []int{1, 3, 5, 8}, res.Frames[len(res.Frames)-1].Values())
	assert.Equal(t, 6, res.Comparisons)
	// One exchange per inversion: (5,3) (5,1) (3,1) (8,1)
	assert.Equal(t, 4, res.Swaps)
}

func TestBubbleEarlyExit(t *testing.T) {
	res := Bubble([]int{1, 2, 3, 4})
	assert.Equal(t, 3, res.Comparisons)
	assert.Zero(t, res.Swaps)
}

func TestQuickHandTrace(t *testing.T) {
	res := Quick([]int{3, 1, 2})
	assert.Equal(t, 2, res.Comparisons)
	assert.Equal(t, 2, res.Swaps)
}

func TestHeapHandTrace(t *testing.T) {
	res := Heap([]int{1, 2, 3})
	assert.Equal(t, 3, res.Comparisons)
	assert.Equal(t, 4, res.Swaps)
}

func TestMergeCountsWrites(t *testing.T) {
	res := Merge([]int{2, 1})
	assert.Equal(t, 1, res.Comparisons)
	assert.Equal(t, 2, res.Swaps)

	res = Merge([]int{4, 3, 2, 1})
	assert.Equal(t, 8, res.Swaps)
}

func TestMergeHighlightsComparedValues(t *testing.T) {
	res := Merge([]int{4, 3, 2, 1})

	var compared [][]int
	for _, f := range res.Frames {
		if len(f.Indices) == 0 || f.Elements[f.Indices[0]].State != StateComparing {
			continue
		}
		var values []int
		for _, i := range f.Indices {
			assert.Equal(t, StateComparing, f.Elements[i].State)
			values = append(values, f.Elements[i].Value)
		}
		compared = append(compared, values)
	}

	assert.Equal(t, [][]int{{4, 3}, {2, 1}, {3, 1}, {2}}, compared)
}

func TestInsertionHandTrace(t *testing.T) {
	res := Insertion([]int{3, 1, 2})
	// 1 vs 3 (shift), 2 vs 3 (shift), 2 vs 1 (stop)
	assert.Equal(t, 3, res.Comparisons)
	assert.Equal(t, 2, res.Swaps)
	assert.Equal(t, StateSorted, res.Frames[1].Elements[0].State)
}

func TestSortedStaysSorted(t *testing.T) {
	in := []int{10, 99, 45, 45, 12, 0, 63, 81, 27, 27, 54}
	for _, name := range []string{"bubble", "selection", "quick", "heap"} {
		res := producers[name](in)
		seen := make([]bool, len(in))
		for fi, f := range res.Frames {
			for i, e := range f.Elements {
				if seen[i] {
					assert.Equal(t, StateSorted, e.State, "%s frame %d index %d", name, fi, i)
				}
				if e.State == StateSorted {
					seen[i] = true
				}
			}
		}
	}
}

func TestMarkedFrameBeforeEverySwap(t *testing.T) {
	for _, name := range []string{"bubble", "selection", "quick", "heap"} {
		res := producers[name]([]int{4, 3, 2, 1})
		for fi := 1; fi < len(res.Frames); fi++ {
			prev, cur := res.Frames[fi-1], res.Frames[fi]
			if equalValues(prev.Values(), cur.Values()) {
				continue
			}
			for _, i := range cur.Indices {
				assert.Equal(t, StateOutOfPlace, prev.Elements[i].State, "%s frame %d", name, fi)
			}
		}
	}
}

func equalValues(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
