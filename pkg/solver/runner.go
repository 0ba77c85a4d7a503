package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/knapsack/pkg/cache"
	"github.com/matzehuels/knapsack/pkg/knapsack"
	"github.com/matzehuels/knapsack/pkg/observability"
)

// Runner encapsulates solving with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedSolution is the cache payload for one instance.
type cachedSolution struct {
	Solution knapsack.Result `json:"solution"`
	Found    bool            `json:"found"`
	Stats    knapsack.Stats  `json:"stats"`
}

// Solve resolves the items, orders them by density and searches them at
// opts.Capacity. A solution is served from the cache unless opts.Refresh is
// set; fresh solutions are written back.
func (r *Runner) Solve(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	items, err := opts.resolveItems()
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	itemsHash, err := cache.HashJSON(items)
	if err != nil {
		return nil, fmt.Errorf("hash items: %w", err)
	}
	return r.solveItems(ctx, opts, items, knapsack.SortByDensity(items), itemsHash, opts.Capacity)
}

// solveItems runs one search over an already prepared item set.
func (r *Runner) solveItems(ctx context.Context, opts Options, items, sorted []knapsack.Item, itemsHash string, capacity int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    newRunID(),
		Capacity: capacity,
		Items:    items,
		Sorted:   sorted,
	}
	key := r.Keyer.SolutionKey(itemsHash, capacity, opts.SolutionKeyOpts())

	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, key); ok {
			res.Solution, res.Found, res.Stats = cached.Solution, cached.Found, cached.Stats
			res.CacheHit = true
			if err := res.Verify(); err == nil {
				res.Selected = knapsack.SelectItems(sorted, cached.Solution.Path)
				opts.Logger.Debug("solution from cache", "capacity", capacity, "value", res.Solution.Value)
				return res, nil
			}
			opts.Logger.Warn("discarding inconsistent cache entry", "key", key)
			_ = r.Cache.Delete(ctx, key)
			res.CacheHit = false
		}
	}

	searcher := knapsack.Searcher{
		Iterative:     opts.Iterative,
		Progress:      opts.Progress,
		ProgressEvery: opts.ProgressEvery,
		Done:          ctx.Done(),
	}

	observability.Solve().OnSolveStart(ctx, len(items), capacity)
	start := time.Now()
	sol, stats, found := searcher.Search(sorted, capacity)
	res.Duration = time.Since(start)
	if err := ctx.Err(); err != nil {
		observability.Solve().OnSolveComplete(ctx, stats, false, res.Duration)
		opts.Logger.Debug("search stopped", "capacity", capacity, "explored", stats.Explored, "error", err)
		return nil, err
	}
	if !found && capacity >= 0 {
		sol, found = knapsack.Result{Path: []int{}}, true
	}
	observability.Solve().OnSolveComplete(ctx, stats, found, res.Duration)

	res.Solution, res.Found, res.Stats = sol, found, stats
	res.Selected = knapsack.SelectItems(sorted, sol.Path)

	opts.Logger.Debug("searched",
		"capacity", capacity,
		"found", found,
		"value", sol.Value,
		"explored", stats.Explored,
		"pruned", stats.Pruned,
		"duration", res.Duration)

	r.store(ctx, key, cachedSolution{Solution: sol, Found: found, Stats: stats}, opts.Logger)
	return res, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (cachedSolution, bool) {
	var cached cachedSolution
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "solution")
		return cached, false
	}
	if err := json.Unmarshal(data, &cached); err != nil {
		observability.Cache().OnCacheMiss(ctx, "solution")
		return cached, false
	}
	observability.Cache().OnCacheHit(ctx, "solution")
	return cached, true
}

// store writes a solution back. Cache failures are logged, never returned:
// the solution is already computed.
func (r *Runner) store(ctx context.Context, key string, entry cachedSolution, logger *log.Logger) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, cache.TTLSolution)
	})
	if err != nil {
		logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "solution", len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
