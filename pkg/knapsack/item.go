package knapsack

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/knapsack/pkg/errors"
)

// Item is a candidate for the knapsack. Items carry no identity beyond their
// position in a sequence.
type Item struct {
	Value  int `json:"value" toml:"value"`
	Weight int `json:"weight" toml:"weight"`
}

// Density returns the value/weight ratio of the item.
// A weightless item with positive value has infinite density; the (0,0) item
// has density 0.
func (it Item) Density() float64 {
	if it.Weight == 0 {
		if it.Value > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(it.Value) / float64(it.Weight)
}

// Result is a candidate solution: the selected indices into the
// density-sorted sequence with their total weight and value.
// Results are ordered by Value alone.
type Result struct {
	Path   []int `json:"path"`
	Weight int   `json:"weight"`
	Value  int   `json:"value"`
}

// Range is an inclusive sampling interval.
type Range struct {
	Min int `json:"min" toml:"min"`
	Max int `json:"max" toml:"max"`
}

// SumValues returns the total value of items.
func SumValues(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Value
	}
	return total
}

// SumWeights returns the total weight of items.
func SumWeights(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Weight
	}
	return total
}

// SelectItems projects path onto items. The path must have been computed
// against the same sequence (for search results, the density-sorted one).
// It panics if an index is out of range.
func SelectItems(items []Item, path []int) []Item {
	out := make([]Item, len(path))
	for i, idx := range path {
		out[i] = items[idx]
	}
	return out
}

// ValidateItems rejects items with a negative value or weight.
func ValidateItems(items []Item) error {
	for i, it := range items {
		if it.Value < 0 || it.Weight < 0 {
			return errors.New(errors.ErrCodeInvalidItem, "item %d has negative value or weight (value=%d, weight=%d)", i, it.Value, it.Weight)
		}
	}
	return nil
}

// MakeItems generates count items whose values and weights are sampled
// uniformly from the inclusive ranges using rng.
func MakeItems(rng *rand.Rand, count int, values, weights Range) ([]Item, error) {
	if err := errors.ValidateCount(count, 0); err != nil {
		return nil, err
	}
	if err := errors.ValidateRange("value", values.Min, values.Max); err != nil {
		return nil, err
	}
	if err := errors.ValidateRange("weight", weights.Min, weights.Max); err != nil {
		return nil, err
	}

	items := make([]Item, count)
	for i := range items {
		items[i] = Item{
			Value:  values.Min + rng.IntN(values.Max-values.Min+1),
			Weight: weights.Min + rng.IntN(weights.Max-weights.Min+1),
		}
	}
	return items, nil
}

// NewRand returns the deterministic generator used for item generation.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
