package knapsack

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rodsItems = []Item{
	{Value: 1500, Weight: 1},
	{Value: 2000, Weight: 3},
	{Value: 3000, Weight: 4},
	{Value: 3300, Weight: 5},
	{Value: 4000, Weight: 6},
	{Value: 4200, Weight: 7},
	{Value: 4400, Weight: 8},
}

func TestSolveThreeItems(t *testing.T) {
	items := []Item{
		{Value: 1500, Weight: 1},
		{Value: 2000, Weight: 3},
		{Value: 3000, Weight: 4},
	}

	res, ok := Solve(items, 4)
	require.True(t, ok)
	assert.Equal(t, 3500, res.Value)
	assert.Equal(t, 4, res.Weight)
	assert.Equal(t, []int{0, 2}, res.Path)

	sorted := SortByDensity(items)
	assert.ElementsMatch(t, []Item{items[0], items[1]}, SelectItems(sorted, res.Path))
}

func TestSolveCapacitySweep(t *testing.T) {
	expected := []int{22400, 20900, 20400, 20400, 19400, 19100, 18400, 18200}

	for i, want := range expected {
		capacity := 34 - i
		t.Run(fmt.Sprintf("capacity=%d", capacity), func(t *testing.T) {
			res, ok := Solve(rodsItems, capacity)
			require.True(t, ok)
			assert.Equal(t, want, res.Value)
			assert.LessOrEqual(t, res.Weight, capacity)
		})
	}
}

func TestSolveEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		items     []Item
		capacity  int
		wantOK    bool
		wantValue int
		wantPath  []int
	}{
		{"no items", nil, 10, true, 0, []int{}},
		{"no items zero capacity", nil, 0, true, 0, []int{}},
		{"negative capacity", rodsItems, -1, false, 0, nil},
		{"negative capacity no items", nil, -3, false, 0, nil},
		{"zero capacity weightless item", []Item{{Value: 5, Weight: 2}, {Value: 7, Weight: 0}}, 0, true, 7, []int{0}},
		{"zero capacity nothing fits", []Item{{Value: 5, Weight: 2}}, 0, true, 0, []int{}},
		{"everything too heavy", []Item{{Value: 5, Weight: 10}, {Value: 6, Weight: 11}}, 9, true, 0, []int{}},
		{"worthless items", []Item{{Value: 0, Weight: 1}, {Value: 0, Weight: 0}}, 5, true, 0, []int{}},
		{"everything fits", []Item{{Value: 1, Weight: 1}, {Value: 2, Weight: 1}, {Value: 3, Weight: 1}}, 3, true, 6, []int{0, 1, 2}},
		{"exact fit", []Item{{Value: 10, Weight: 5}, {Value: 9, Weight: 5}, {Value: 1, Weight: 1}}, 10, true, 19, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, iterative := range []bool{false, true} {
				res, _, ok := Searcher{Iterative: iterative}.Solve(tt.items, tt.capacity)
				require.Equal(t, tt.wantOK, ok, "iterative=%v", iterative)
				if !ok {
					continue
				}
				assert.Equal(t, tt.wantValue, res.Value, "iterative=%v", iterative)
				assert.Equal(t, tt.wantPath, res.Path, "iterative=%v", iterative)
			}
		})
	}
}

func TestSearchReportsFailureWithoutImprovement(t *testing.T) {
	// The raw search never returns a candidate it cannot prove strictly
	// better than the incumbent 0; Solve falls back to the empty selection.
	sorted := SortByDensity([]Item{{Value: 5, Weight: 10}})

	_, ok := Search(sorted, 9)
	assert.False(t, ok)

	res, ok := Solve(sorted, 9)
	require.True(t, ok)
	assert.Equal(t, Result{Path: []int{}}, res)
}

func TestSolveMatchesExhaustive(t *testing.T) {
	rng := NewRand(7)

	for trial := 0; trial < 400; trial++ {
		n := rng.IntN(13)
		items, err := MakeItems(rng, n, Range{Min: 0, Max: 12}, Range{Min: 0, Max: 15})
		require.NoError(t, err)
		capacity := rng.IntN(70) - 2

		want, wantOK, err := Exhaustive(items, capacity)
		require.NoError(t, err)

		for _, iterative := range []bool{false, true} {
			got, _, ok := Searcher{Iterative: iterative}.Solve(items, capacity)
			require.Equal(t, wantOK, ok, "trial %d items=%v capacity=%d", trial, items, capacity)
			if !ok {
				continue
			}
			require.Equal(t, want.Value, got.Value, "trial %d items=%v capacity=%d", trial, items, capacity)
			assertValidPath(t, SortByDensity(items), got, capacity)
		}
	}
}

func TestIterativeMatchesRecursive(t *testing.T) {
	rng := NewRand(99)

	for trial := 0; trial < 50; trial++ {
		items, err := MakeItems(rng, 1+rng.IntN(11), Range{Min: 1, Max: 20}, Range{Min: 1, Max: 9})
		require.NoError(t, err)
		sorted := SortByDensity(items)
		capacity := rng.IntN(40)

		var recEvents, itEvents []Event
		rec, recStats, recOK := Searcher{Trace: Collect(&recEvents)}.Search(sorted, capacity)
		it, itStats, itOK := Searcher{Iterative: true, Trace: Collect(&itEvents)}.Search(sorted, capacity)

		require.Equal(t, recOK, itOK)
		assert.Equal(t, rec, it)
		assert.Equal(t, recStats, itStats)
		assert.Equal(t, recEvents, itEvents)
	}
}

func TestMonotonicCapacity(t *testing.T) {
	rng := NewRand(3)
	items, err := MakeItems(rng, 14, Range{Min: 1, Max: 12}, Range{Min: 4, Max: 15})
	require.NoError(t, err)

	prev := -1
	for capacity := SumWeights(items) + 1; capacity >= 0; capacity-- {
		res, ok := Solve(items, capacity)
		require.True(t, ok)
		if prev >= 0 {
			assert.LessOrEqual(t, res.Value, prev, "capacity %d", capacity)
		}
		prev = res.Value
	}
	assert.Equal(t, 0, prev)
}

func TestSearcherStats(t *testing.T) {
	items := []Item{
		{Value: 1500, Weight: 1},
		{Value: 2000, Weight: 3},
		{Value: 3000, Weight: 4},
	}

	_, stats, ok := Searcher{}.Solve(items, 4)
	require.True(t, ok)
	assert.Equal(t, Stats{Explored: 8, Pruned: 3, Infeasible: 2, Leaves: 1, MaxDepth: 3}, stats)
}

func TestSearcherProgress(t *testing.T) {
	var calls []Stats
	s := Searcher{
		ProgressEvery: 4,
		Progress:      func(st Stats) { calls = append(calls, st) },
	}

	_, stats, ok := s.Solve(rodsItems, 30)
	require.True(t, ok)
	require.NotEmpty(t, calls)

	// Periodic calls at every 4th node, then the final counters.
	assert.Len(t, calls, stats.Explored/4+1)
	assert.Equal(t, stats, calls[len(calls)-1])
	for _, st := range calls[:len(calls)-1] {
		assert.Zero(t, st.Explored%4)
	}
}

func TestTraceTree(t *testing.T) {
	var events []Event
	sorted := SortByDensity(rodsItems)
	_, stats, ok := Searcher{Trace: Collect(&events)}.Search(sorted, 30)
	require.True(t, ok)

	require.Len(t, events, stats.Explored+stats.Pruned)
	assert.Equal(t, BranchRoot, events[0].Branch)
	assert.Equal(t, -1, events[0].Parent)

	counts := map[Outcome]int{}
	for i, ev := range events {
		assert.Equal(t, i, ev.ID)
		if i > 0 {
			assert.Less(t, ev.Parent, ev.ID)
			assert.Equal(t, OutcomeExpanded, events[ev.Parent].Outcome)
		}
		if ev.Outcome == OutcomePruned {
			assert.LessOrEqual(t, ev.Bound, ev.Best)
		}
		counts[ev.Outcome]++
	}
	assert.Equal(t, stats.Leaves, counts[OutcomeLeaf])
	assert.Equal(t, stats.Infeasible, counts[OutcomeInfeasible])
	assert.Equal(t, stats.Pruned, counts[OutcomePruned])
}

func TestPathsAreNotShared(t *testing.T) {
	base := (*trail)(nil).extend(0).extend(2)
	a := base.extend(3)
	b := base.extend(4)

	assert.Equal(t, []int{0, 2}, base.slice())
	assert.Equal(t, []int{0, 2, 3}, a.slice())
	assert.Equal(t, []int{0, 2, 4}, b.slice())
	assert.Equal(t, []int{}, (*trail)(nil).slice())
}

// hardItems have equal density and even weights under an odd capacity, so
// the bound prunes almost nothing and no selection fills the knapsack.
func hardItems(n int) ([]Item, int) {
	items := make([]Item, n)
	for i := range items {
		w := 2 * (1000 + 37*i)
		items[i] = Item{Value: w, Weight: w}
	}
	return items, SumWeights(items)/2 | 1
}

func TestSearcherDone(t *testing.T) {
	items, capacity := hardItems(40)
	sorted := SortByDensity(items)

	for _, iterative := range []bool{false, true} {
		t.Run(fmt.Sprintf("iterative=%v", iterative), func(t *testing.T) {
			closed := make(chan struct{})
			close(closed)
			_, st, ok := Searcher{Iterative: iterative, Done: closed}.Search(sorted, capacity)
			assert.False(t, ok)
			assert.Zero(t, st.Explored, "a closed channel stops before the root")

			done := make(chan struct{})
			var once sync.Once
			_, st, _ = Searcher{
				Iterative:     iterative,
				Done:          done,
				ProgressEvery: 100,
				Progress:      func(Stats) { once.Do(func() { close(done) }) },
			}.Search(sorted, capacity)
			assert.Equal(t, doneCheckEvery, st.Explored, "stops at the next poll")
		})
	}
}

func TestSearcherDoneOpenRunsToCompletion(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	res, st, ok := Searcher{Done: done}.Search(SortByDensity(rodsItems), 30)
	require.True(t, ok)
	assert.Equal(t, 19400, res.Value)
	assert.Equal(t, 32, st.Explored)
}

func TestExhaustiveTooLarge(t *testing.T) {
	_, _, err := Exhaustive(make([]Item, MaxExhaustiveItems+1), 10)
	require.Error(t, err)
}

func assertValidPath(t *testing.T, sorted []Item, res Result, capacity int) {
	t.Helper()
	require.LessOrEqual(t, res.Weight, capacity)
	for i, idx := range res.Path {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(sorted))
		if i > 0 {
			require.Greater(t, idx, res.Path[i-1])
		}
	}
	chosen := SelectItems(sorted, res.Path)
	require.Equal(t, res.Weight, SumWeights(chosen))
	require.Equal(t, res.Value, SumValues(chosen))
}
