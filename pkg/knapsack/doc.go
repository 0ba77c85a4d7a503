// Package knapsack solves the 0/1 knapsack problem with a branch-and-bound
// search over density-ordered items.
//
// # Overview
//
// Given items with a value and a weight and a weight capacity, [Solve] finds
// a subset maximizing total value whose total weight does not exceed the
// capacity. It is an exact solver: the worst case is exponential in the item
// count, and practical speed comes from pruning.
//
// # Density Ordering
//
// [SortByDensity] orders items by descending value/weight ratio, breaking
// ties by weight ascending and then value descending. The resulting sequence
// satisfies the ordering-dominance invariant: for any i < j,
//
//   - value[i] == value[j] implies weight[i] <= weight[j]
//   - weight[i] == weight[j] implies value[i] >= value[j]
//
// so no later item can dominate an earlier one. [CheckOrdering] reports every
// pair that breaks the invariant and is used by tests and debug logging.
//
// # Branch-and-Bound
//
// [Search] walks the include/exclude decision tree of the density-sorted
// sequence. Before each branch it compares the best possible outcome (the
// current value plus the value of every item still undecided) with the best
// value found in the branches completed so far, and skips the branch unless it
// can strictly improve on it. The include branch runs first so that its result
// tightens the bound for the exclude branch.
//
// The incumbent travels through the recursion as an argument; there is no
// shared mutable best value. Paths are copy-on-extend: extending a path never
// affects the path a sibling branch sees.
//
// [Searcher] adds instrumentation (progress callbacks, decision-tree tracing)
// and an iterative formulation that keeps its frames on an explicit stack for
// very large item counts. Both formulations explore the same tree.
//
// # Usage
//
//	items := []knapsack.Item{{Value: 1500, Weight: 1}, {Value: 2000, Weight: 3}, {Value: 3000, Weight: 4}}
//	res, ok := knapsack.Solve(items, 4)
//	if !ok {
//	    // negative capacity: nothing fits
//	}
//	sorted := knapsack.SortByDensity(items)
//	chosen := knapsack.SelectItems(sorted, res.Path)
//
// Paths index into the density-sorted sequence, never into the caller's
// original slice.
package knapsack
