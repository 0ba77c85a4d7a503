package solver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/knapsack/pkg/cache"
	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// SweepPoint is the solution of the sweep's item set at one capacity.
type SweepPoint struct {
	Capacity int             `json:"capacity"`
	Solution knapsack.Result `json:"solution"`
	Found    bool            `json:"found"`
	Stats    knapsack.Stats  `json:"stats"`
	CacheHit bool            `json:"cache_hit"`
}

// SweepPoints are ordered by capacity.
type SweepPoints []SweepPoint

// Monotonic reports the first capacity whose optimal value is lower than
// that of a smaller capacity, or ok if there is none. Adding capacity can
// never lose value, so a violation means the search is wrong.
func (ps SweepPoints) Monotonic() (capacity int, ok bool) {
	best := 0
	for _, p := range ps {
		if !p.Found {
			continue
		}
		if p.Solution.Value < best {
			return p.Capacity, false
		}
		best = p.Solution.Value
	}
	return 0, true
}

// Sweep solves the same item set at every capacity in [from, to].
//
// The searches are independent, so up to GOMAXPROCS of them run at once;
// each search stays single-threaded. Progress callbacks in opts are ignored.
func (r *Runner) Sweep(ctx context.Context, opts Options, from, to int) (SweepPoints, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if from > to {
		return nil, errors.New(errors.ErrCodeInvalidRange, "capacity range [%d, %d]: from exceeds to", from, to)
	}
	// to-from wraps negative when the range spans more than MaxInt.
	if span := to - from; span < 0 || span >= MaxSweepPoints {
		return nil, errors.New(errors.ErrCodeTooLarge, "capacity range [%d, %d] exceeds %d points", from, to, MaxSweepPoints)
	}

	items, err := opts.resolveItems()
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	itemsHash, err := cache.HashJSON(items)
	if err != nil {
		return nil, fmt.Errorf("hash items: %w", err)
	}
	sorted := knapsack.SortByDensity(items)
	opts.Progress = nil

	points := make(SweepPoints, to-from+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range points {
		capacity := from + i
		g.Go(func() error {
			res, err := r.solveItems(gctx, opts, items, sorted, itemsHash, capacity)
			if err != nil {
				return err
			}
			points[i] = SweepPoint{
				Capacity: capacity,
				Solution: res.Solution,
				Found:    res.Found,
				Stats:    res.Stats,
				CacheHit: res.CacheHit,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.Logger.Debug("sweep complete", "from", from, "to", to, "items", len(items))
	return points, nil
}
