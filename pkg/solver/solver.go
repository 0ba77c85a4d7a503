// Package solver runs knapsack searches for the CLI and the API server.
//
// A [Runner] turns [Options] into a solved instance: it generates or accepts
// the items, orders them by density, consults the solution cache, runs the
// branch-and-bound search and stores the outcome. Both entry points share it
// so defaults, caching and instrumentation behave the same everywhere.
//
// # Usage
//
//	runner := solver.NewRunner(cache, nil, logger)
//	res, err := runner.Solve(ctx, solver.Options{Capacity: 100})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Solution.Value, res.Solution.Path)
//
// [Runner.Sweep] solves one item set at every capacity of a range, running
// the independent searches in parallel.
package solver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/knapsack/pkg/cache"
	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCount is the number of generated items.
	DefaultCount = 15

	// DefaultMinValue and DefaultMaxValue bound generated item values.
	DefaultMinValue = 1
	DefaultMaxValue = 12

	// DefaultMinWeight and DefaultMaxWeight bound generated item weights.
	DefaultMinWeight = 4
	DefaultMaxWeight = 15

	// DefaultCapacity is the capacity used by the CLI when none is given.
	DefaultCapacity = 100

	// DefaultSeed makes generated instances reproducible.
	DefaultSeed = uint64(42)

	// MaxSweepPoints bounds the number of capacities one sweep may solve.
	MaxSweepPoints = 4096
)

// =============================================================================
// Options - Solver Configuration
// =============================================================================

// Options describes one knapsack instance and how to solve it.
// This struct supports JSON serialization for API requests.
//
// When Items is nil, Count items are sampled from the value and weight
// ranges with Seed. A non-nil empty Items is a valid (empty) instance.
type Options struct {
	Items []knapsack.Item `json:"items,omitempty"`

	// Generation options
	Count     int    `json:"count,omitempty"`
	MinValue  int    `json:"min_value,omitempty"`
	MaxValue  int    `json:"max_value,omitempty"`
	MinWeight int    `json:"min_weight,omitempty"`
	MaxWeight int    `json:"max_weight,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`

	// Search options
	Capacity  int  `json:"capacity"`
	Iterative bool `json:"iterative,omitempty"`
	Refresh   bool `json:"refresh,omitempty"`

	// MaxItems rejects larger instances with TOO_LARGE. Zero means no limit.
	MaxItems int `json:"-"`

	// Runtime options (not serialized)
	Logger        *log.Logger          `json:"-"`
	Progress      func(knapsack.Stats) `json:"-"`
	ProgressEvery int                  `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset generation parameters and the logger.
func (o *Options) SetDefaults() {
	if o.Items == nil {
		if o.Count == 0 {
			o.Count = DefaultCount
		}
		if o.MinValue == 0 && o.MaxValue == 0 {
			o.MinValue, o.MaxValue = DefaultMinValue, DefaultMaxValue
		}
		if o.MinWeight == 0 && o.MaxWeight == 0 {
			o.MinWeight, o.MaxWeight = DefaultMinWeight, DefaultMaxWeight
		}
		if o.Seed == 0 {
			o.Seed = DefaultSeed
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options without changing them. A negative capacity is
// accepted: it is a legal instance that has no solution.
func (o *Options) Validate() error {
	if o.Items != nil {
		if err := errors.ValidateCount(len(o.Items), o.MaxItems); err != nil {
			return err
		}
		return knapsack.ValidateItems(o.Items)
	}
	if err := errors.ValidateCount(o.Count, o.MaxItems); err != nil {
		return err
	}
	if err := errors.ValidateRange("value", o.MinValue, o.MaxValue); err != nil {
		return err
	}
	return errors.ValidateRange("weight", o.MinWeight, o.MaxWeight)
}

// Generated reports whether the items are sampled rather than given.
func (o *Options) Generated() bool {
	return o.Items == nil
}

// resolveItems returns the given items or samples new ones.
func (o *Options) resolveItems() ([]knapsack.Item, error) {
	if o.Items != nil {
		return o.Items, nil
	}
	return knapsack.MakeItems(knapsack.NewRand(o.Seed), o.Count,
		knapsack.Range{Min: o.MinValue, Max: o.MaxValue},
		knapsack.Range{Min: o.MinWeight, Max: o.MaxWeight})
}

// SolutionKeyOpts returns cache key options for the search.
func (o *Options) SolutionKeyOpts() cache.SolutionKeyOpts {
	return cache.SolutionKeyOpts{Iterative: o.Iterative}
}

// =============================================================================
// Results
// =============================================================================

// Result is one solved instance.
type Result struct {
	RunID    string          `json:"run_id"`
	Capacity int             `json:"capacity"`
	Items    []knapsack.Item `json:"items"`  // as given or generated
	Sorted   []knapsack.Item `json:"sorted"` // density order; Solution.Path indexes this

	Solution knapsack.Result `json:"solution"`
	Found    bool            `json:"found"`
	Selected []knapsack.Item `json:"selected"`

	Stats    knapsack.Stats `json:"stats"`
	Duration time.Duration  `json:"duration"`
	CacheHit bool           `json:"cache_hit"`
}

// Verify recomputes the totals of the selected items and checks them
// against the reported solution and the capacity.
func (r *Result) Verify() error {
	prev := -1
	for _, i := range r.Solution.Path {
		if i <= prev || i >= len(r.Sorted) {
			return errors.New(errors.ErrCodeInternal, "invalid path %v for %d items", r.Solution.Path, len(r.Sorted))
		}
		prev = i
	}
	if !r.Found {
		return nil
	}
	sel := knapsack.SelectItems(r.Sorted, r.Solution.Path)
	weight, value := knapsack.SumWeights(sel), knapsack.SumValues(sel)
	if weight != r.Solution.Weight || value != r.Solution.Value {
		return errors.New(errors.ErrCodeInternal,
			"selection totals (weight %d, value %d) do not match solution (weight %d, value %d)",
			weight, value, r.Solution.Weight, r.Solution.Value)
	}
	if weight > r.Capacity {
		return errors.New(errors.ErrCodeInternal, "selection weight %d exceeds capacity %d", weight, r.Capacity)
	}
	return nil
}

func newRunID() string {
	return uuid.NewString()
}
