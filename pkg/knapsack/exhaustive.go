package knapsack

import "github.com/matzehuels/knapsack/pkg/errors"

// MaxExhaustiveItems bounds the input of Exhaustive (2^n subsets).
const MaxExhaustiveItems = 24

// Exhaustive enumerates every subset of items and returns the most valuable
// one within capacity. Unlike Solve, the path indexes into items as given.
// Among subsets of equal value the one found first (lowest bitmask) wins.
//
// It reports false only for a negative capacity and returns a TOO_LARGE
// error for more than MaxExhaustiveItems items.
func Exhaustive(items []Item, capacity int) (Result, bool, error) {
	if err := errors.ValidateCount(len(items), MaxExhaustiveItems); err != nil {
		return Result{}, false, err
	}
	if capacity < 0 {
		return Result{}, false, nil
	}

	var best Result
	bestMask := uint32(0)
	for mask := uint32(1); mask < 1<<len(items); mask++ {
		weight, value := 0, 0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				weight += it.Weight
				value += it.Value
			}
		}
		if weight <= capacity && value > best.Value {
			best = Result{Weight: weight, Value: value}
			bestMask = mask
		}
	}

	best.Path = []int{}
	for i := range items {
		if bestMask&(1<<i) != 0 {
			best.Path = append(best.Path, i)
		}
	}
	return best, true, nil
}
