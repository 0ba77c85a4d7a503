package solver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
)

func TestSweepRods(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	points, err := r.Sweep(context.Background(), Options{Items: rodsItems}, 27, 34)
	require.NoError(t, err)
	require.Len(t, points, 8)

	want := []int{18200, 18400, 19100, 19400, 20400, 20400, 20900, 22400}
	for i, p := range points {
		assert.Equal(t, 27+i, p.Capacity)
		assert.True(t, p.Found)
		assert.Equal(t, want[i], p.Solution.Value, "capacity %d", p.Capacity)
		assert.LessOrEqual(t, p.Solution.Weight, p.Capacity)
	}
	_, ok := points.Monotonic()
	assert.True(t, ok)
}

func TestSweepGeneratedMatchesSolve(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	points, err := r.Sweep(ctx, Options{Count: 12}, 0, 60)
	require.NoError(t, err)

	_, ok := points.Monotonic()
	assert.True(t, ok)
	for _, c := range []int{0, 17, 60} {
		res, err := r.Solve(ctx, Options{Count: 12, Capacity: c})
		require.NoError(t, err)
		assert.Equal(t, res.Solution, points[c].Solution, "capacity %d", c)
		assert.Equal(t, res.Stats, points[c].Stats, "capacity %d", c)
	}
}

func TestSweepUsesCache(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)

	_, err := r.Sweep(ctx, Options{Items: rodsItems}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, mc.sets)

	points, err := r.Sweep(ctx, Options{Items: rodsItems}, 5, 12)
	require.NoError(t, err)
	for _, p := range points {
		assert.Equal(t, p.Capacity <= 10, p.CacheHit, "capacity %d", p.Capacity)
	}
}

func TestSweepNegativeCapacities(t *testing.T) {
	points, err := NewRunner(nil, nil, nil).Sweep(context.Background(), Options{Items: rodsItems}, -2, 1)
	require.NoError(t, err)
	assert.False(t, points[0].Found)
	assert.False(t, points[1].Found)
	assert.True(t, points[2].Found)
	assert.Equal(t, 1500, points[3].Solution.Value)
}

func TestSweepRejects(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	_, err := r.Sweep(context.Background(), Options{Items: rodsItems}, 10, 9)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange), "got %v", err)

	_, err = r.Sweep(context.Background(), Options{Items: rodsItems}, 0, MaxSweepPoints)
	assert.True(t, errors.Is(err, errors.ErrCodeTooLarge), "got %v", err)

	points, err := r.Sweep(context.Background(), Options{Items: rodsItems}, 0, MaxSweepPoints-1)
	require.NoError(t, err)
	assert.Len(t, points, MaxSweepPoints)
}

func TestSweepExtremeRanges(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	items := []knapsack.Item{{Value: 1, Weight: 1}}

	ranges := [][2]int{
		{math.MinInt/2 - 10, math.MaxInt/2 + 10},
		{math.MinInt, math.MaxInt},
		{math.MinInt, 0},
		{-1, math.MaxInt},
	}
	for _, rg := range ranges {
		_, err := r.Sweep(context.Background(), Options{Items: items}, rg[0], rg[1])
		assert.True(t, errors.Is(err, errors.ErrCodeTooLarge), "[%d, %d]: got %v", rg[0], rg[1], err)
	}

	points, err := r.Sweep(context.Background(), Options{Items: items}, math.MaxInt-1, math.MaxInt)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, math.MaxInt, points[1].Capacity)
	assert.Equal(t, 1, points[1].Solution.Value)
}

func TestMonotonic(t *testing.T) {
	points := SweepPoints{
		{Capacity: -1},
		{Capacity: 0, Found: true, Solution: knapsack.Result{Value: 0}},
		{Capacity: 1, Found: true, Solution: knapsack.Result{Value: 5}},
		{Capacity: 2, Found: true, Solution: knapsack.Result{Value: 4}},
	}
	c, ok := points.Monotonic()
	assert.False(t, ok)
	assert.Equal(t, 2, c)

	_, ok = points[:3].Monotonic()
	assert.True(t, ok)
}
