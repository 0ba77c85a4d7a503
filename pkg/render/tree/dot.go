package tree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// ToDOT returns the tree as a Graphviz digraph. items is the density-sorted
// sequence the search ran on; it labels include and exclude decisions.
func (t *Tree) ToDOT(items []knapsack.Item) string {
	onPath := map[int]bool{}
	for n := t.optimal(); n != nil; n = n.parent {
		onPath[n.ID] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Search {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none, fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	for _, n := range t.Nodes {
		fmt.Fprintf(&buf, "  n%d [label=%q%s];\n", n.ID, nodeLabel(n, items), nodeStyle(n, onPath[n.ID]))
	}
	buf.WriteString("\n")
	for _, n := range t.Nodes {
		if n.parent == nil {
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d [label=%q%s];\n", n.parent.ID, n.ID, edgeLabel(n, items), edgeStyle(n, onPath[n.ID]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n *Node, items []knapsack.Item) string {
	switch n.Outcome {
	case knapsack.OutcomePruned:
		return fmt.Sprintf("pruned\nbound %d <= best %d", n.Bound, n.Best)
	case knapsack.OutcomeInfeasible:
		return fmt.Sprintf("w=%d v=%d\nover capacity", n.Weight, n.Value)
	case knapsack.OutcomeLeaf:
		return fmt.Sprintf("w=%d v=%d\nleaf", n.Weight, n.Value)
	}
	if n.Index < len(items) {
		it := items[n.Index]
		return fmt.Sprintf("w=%d v=%d\nnext #%d (v%d w%d)", n.Weight, n.Value, n.Index, it.Value, it.Weight)
	}
	return fmt.Sprintf("w=%d v=%d", n.Weight, n.Value)
}

func nodeStyle(n *Node, optimal bool) string {
	attrs := ""
	switch n.Outcome {
	case knapsack.OutcomePruned:
		attrs = ", style=\"dashed,rounded\", fontcolor=gray50, color=gray60"
	case knapsack.OutcomeInfeasible:
		attrs = ", fillcolor=\"#fde2e2\", color=\"#c0392b\""
	case knapsack.OutcomeLeaf:
		attrs = ", fillcolor=\"#e3f1e3\""
	}
	if optimal {
		attrs += ", penwidth=2.5"
	}
	return attrs
}

func edgeLabel(n *Node, items []knapsack.Item) string {
	i := n.Index - 1
	sign := "+"
	if n.Branch == knapsack.BranchExclude {
		sign = "-"
	}
	if i >= 0 && i < len(items) {
		return fmt.Sprintf("%s#%d", sign, i)
	}
	return sign
}

func edgeStyle(n *Node, optimal bool) string {
	attrs := ""
	if n.Branch == knapsack.BranchExclude {
		attrs = ", style=dashed"
	}
	if n.Outcome == knapsack.OutcomePruned {
		attrs += ", color=gray60"
	}
	if optimal {
		attrs += ", penwidth=2.5"
	}
	return attrs
}

// RenderSVG renders the tree as an SVG document via Graphviz.
func (t *Tree) RenderSVG(ctx context.Context, items []knapsack.Item) ([]byte, error) {
	dot := t.ToDOT(items)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render SVG: %w", err)
	}
	return buf.Bytes(), nil
}
