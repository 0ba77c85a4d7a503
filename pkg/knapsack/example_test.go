package knapsack_test

import (
	"fmt"

	"github.com/matzehuels/knapsack/pkg/knapsack"
)

func ExampleSolve() {
	items := []knapsack.Item{
		{Value: 1500, Weight: 1},
		{Value: 2000, Weight: 3},
		{Value: 3000, Weight: 4},
	}

	res, ok := knapsack.Solve(items, 4)
	if !ok {
		fmt.Println("No solution found!")
		return
	}

	// The path indexes into the density-sorted sequence.
	sorted := knapsack.SortByDensity(items)
	fmt.Println("Value:", res.Value)
	fmt.Println("Weight:", res.Weight)
	fmt.Println("Path:", res.Path)
	fmt.Println("Items:", knapsack.SelectItems(sorted, res.Path))
	// Output:
	// Value: 3500
	// Weight: 4
	// Path: [0 2]
	// Items: [{1500 1} {2000 3}]
}

func ExampleSortByDensity() {
	items := []knapsack.Item{
		{Value: 2000, Weight: 3},
		{Value: 1500, Weight: 1},
		{Value: 3000, Weight: 4},
	}

	for _, it := range knapsack.SortByDensity(items) {
		fmt.Printf("%d/%d = %.1f\n", it.Value, it.Weight, it.Density())
	}
	// Output:
	// 1500/1 = 1500.0
	// 3000/4 = 750.0
	// 2000/3 = 666.7
}

func ExampleSearcher() {
	items := []knapsack.Item{
		{Value: 1500, Weight: 1},
		{Value: 2000, Weight: 3},
		{Value: 3000, Weight: 4},
		{Value: 3300, Weight: 5},
		{Value: 4000, Weight: 6},
		{Value: 4200, Weight: 7},
		{Value: 4400, Weight: 8},
	}

	s := knapsack.Searcher{Iterative: true}
	res, stats, _ := s.Solve(items, 30)

	fmt.Println("Value:", res.Value, "Weight:", res.Weight)
	fmt.Println("Path:", res.Path)
	fmt.Printf("explored=%d pruned=%d leaves=%d\n", stats.Explored, stats.Pruned, stats.Leaves)
	// Output:
	// Value: 19400 Weight: 30
	// Path: [0 2 3 4 5 6]
	// explored=32 pruned=19 leaves=4
}
