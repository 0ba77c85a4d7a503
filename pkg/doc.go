// Package pkg provides the libraries behind the knapsack solver.
//
// # Overview
//
// Knapsack solves the 0/1 knapsack problem: pick a subset of items, each
// with a value and a weight, so that the total weight stays within a
// capacity and the total value is as large as possible. Items are ordered
// by value density and searched depth-first with branch and bound.
//
// # Architecture
//
//	Problem file or generated items
//	         ↓
//	    [io] package (read and write JSON/TOML problems)
//	         ↓
//	    [knapsack] package (density ordering + branch-and-bound search)
//	         ↓
//	    [solver] package (options, caching, capacity sweeps)
//	         ↓
//	    CLI output, HTTP API, [render/tree] diagrams
//
// # Quick Start
//
//	import "github.com/matzehuels/knapsack/pkg/knapsack"
//
//	items := []knapsack.Item{{Value: 1500, Weight: 1}, {Value: 2000, Weight: 3}, {Value: 3000, Weight: 4}}
//	res, ok := knapsack.Solve(items, 4)
//	if ok {
//	    sorted := knapsack.SortByDensity(items)
//	    fmt.Println(res.Value, knapsack.SelectItems(sorted, res.Path)) // 3500 [{1500 1} {3000 4}]
//	}
//
// For cached runs with generated instances, use [solver.Runner]:
//
//	runner := solver.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Solve(ctx, solver.Options{Capacity: 100})
//
// # Package Overview
//
//   - [knapsack]: items, density ordering, recursive and iterative search, tracing
//   - [solver]: option validation, instance generation, caching, sweeps
//   - [io]: problem files in JSON and TOML
//   - [cache]: file, Redis and no-op caches with key derivation
//   - [render/tree]: decision tree diagrams via Graphviz
//   - [observability]: hooks for solver, cache and HTTP events
//   - [errors]: coded errors and input validation
//   - [buildinfo]: version metadata set at link time
//
// [knapsack]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/knapsack
// [solver]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/solver
// [solver.Runner]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/solver#Runner
// [io]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/cache
// [render/tree]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/render/tree
// [observability]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/knapsack/pkg/buildinfo
package pkg
