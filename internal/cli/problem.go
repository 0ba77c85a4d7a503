package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/io"
	"github.com/matzehuels/knapsack/pkg/knapsack"
	"github.com/matzehuels/knapsack/pkg/solver"
)

// problemFlags describe an instance: a problem file or generation
// parameters, plus the capacity.
type problemFlags struct {
	input     string
	count     int
	minValue  int
	maxValue  int
	minWeight int
	maxWeight int
	seed      uint64
	capacity  int
	iterative bool
}

func (f *problemFlags) register(cmd *cobra.Command, withCapacity bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "problem file (.json or .toml) instead of generated items")
	fl.IntVarP(&f.count, "count", "n", solver.DefaultCount, "number of generated items")
	fl.IntVar(&f.minValue, "min-value", solver.DefaultMinValue, "smallest generated value")
	fl.IntVar(&f.maxValue, "max-value", solver.DefaultMaxValue, "largest generated value")
	fl.IntVar(&f.minWeight, "min-weight", solver.DefaultMinWeight, "smallest generated weight")
	fl.IntVar(&f.maxWeight, "max-weight", solver.DefaultMaxWeight, "largest generated weight")
	fl.Uint64Var(&f.seed, "seed", solver.DefaultSeed, "random seed for generated items")
	fl.BoolVar(&f.iterative, "iterative", false, "search with an explicit frame stack instead of recursion")
	if withCapacity {
		fl.IntVarP(&f.capacity, "capacity", "c", solver.DefaultCapacity, "knapsack capacity (overrides the problem file)")
	}
	cmd.MarkFlagsMutuallyExclusive("input", "count")
	cmd.MarkFlagsMutuallyExclusive("input", "seed")
}

// options builds solver options from the flags. A capacity from a problem
// file is used unless --capacity was given explicitly.
func (f *problemFlags) options(cmd *cobra.Command) (solver.Options, error) {
	opts := solver.Options{
		Capacity:  f.capacity,
		Iterative: f.iterative,
	}
	if f.input == "" {
		opts.Count = f.count
		opts.MinValue, opts.MaxValue = f.minValue, f.maxValue
		opts.MinWeight, opts.MaxWeight = f.minWeight, f.maxWeight
		opts.Seed = f.seed
		if opts.Count == 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "--count must be positive")
		}
		return opts, nil
	}

	p, err := io.ReadFile(f.input)
	if err != nil {
		return opts, err
	}
	opts.Items = p.Items
	if opts.Items == nil {
		opts.Items = []knapsack.Item{}
	}
	if p.Capacity != nil && !cmd.Flags().Changed("capacity") {
		opts.Capacity = *p.Capacity
	}
	return opts, nil
}
