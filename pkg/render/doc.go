// Package render groups the visual outputs of the solver.
//
// The [tree] subpackage records every decision a single search makes and
// draws it with Graphviz: include and exclude branches, pruned and
// infeasible nodes, and the path to the optimal leaf.
//
//	t, sorted, err := tree.Trace(items, capacity, false)
//	dot := t.ToDOT(sorted)
//	svg, err := t.RenderSVG(ctx, sorted)
//
// [tree]: github.com/matzehuels/knapsack/pkg/render/tree
package render
