// Package tree renders the decision tree explored by the branch-and-bound
// search.
//
// [Trace] runs a traced search and assembles the events into a [Tree].
// [Tree.ToDOT] writes it as a Graphviz digraph and [Tree.RenderSVG] renders
// that digraph in-process. Include edges are solid, exclude edges dashed.
// Pruned branches appear as grey stubs labelled with the bound that failed,
// infeasible nodes in red, and the path to the optimal leaf in bold.
//
// The tree grows exponentially with the item count, so tracing is limited
// to [MaxItems] items.
package tree

import (
	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// MaxItems is the largest instance Trace accepts.
const MaxItems = 12

// Node is one decision node and its children in visiting order.
type Node struct {
	knapsack.Event
	Children []*Node
	parent   *Node
}

// Tree is the explored decision tree of one search.
type Tree struct {
	Root  *Node
	Nodes []*Node // indexed by Event.ID

	Capacity int
	Solution knapsack.Result
	Found    bool
}

// Trace solves items at capacity with tracing enabled and builds the tree.
// Item indices in the tree refer to SortByDensity(items).
func Trace(items []knapsack.Item, capacity int, iterative bool) (*Tree, []knapsack.Item, error) {
	if err := errors.ValidateCount(len(items), MaxItems); err != nil {
		return nil, nil, err
	}
	sorted := knapsack.SortByDensity(items)

	var events []knapsack.Event
	s := knapsack.Searcher{Iterative: iterative, Trace: knapsack.Collect(&events)}
	sol, _, found := s.Search(sorted, capacity)

	t, err := Build(events)
	if err != nil {
		return nil, nil, err
	}
	t.Capacity, t.Solution, t.Found = capacity, sol, found
	return t, sorted, nil
}

// Build links trace events into a tree. Events must arrive in visiting
// order, as Searcher.Trace delivers them.
func Build(events []knapsack.Event) (*Tree, error) {
	if len(events) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no events")
	}
	t := &Tree{Nodes: make([]*Node, len(events))}
	for i, ev := range events {
		if ev.ID != i {
			return nil, errors.New(errors.ErrCodeInvalidInput, "event %d has id %d", i, ev.ID)
		}
		n := &Node{Event: ev}
		t.Nodes[i] = n
		if ev.Parent < 0 {
			if t.Root != nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "second root at event %d", i)
			}
			t.Root = n
			continue
		}
		if ev.Parent >= i {
			return nil, errors.New(errors.ErrCodeInvalidInput, "event %d refers to later parent %d", i, ev.Parent)
		}
		p := t.Nodes[ev.Parent]
		n.parent = p
		p.Children = append(p.Children, n)
	}
	if t.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no root event")
	}
	return t, nil
}

// Path returns the indices of the items included on the way to n.
func (n *Node) Path() []int {
	var rev []int
	for p := n; p != nil && p.parent != nil; p = p.parent {
		if p.Branch == knapsack.BranchInclude {
			rev = append(rev, p.Index-1)
		}
	}
	path := make([]int, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = idx
	}
	return path
}

// Count returns the number of nodes with the given outcome.
func (t *Tree) Count(o knapsack.Outcome) int {
	c := 0
	for _, n := range t.Nodes {
		if n.Outcome == o {
			c++
		}
	}
	return c
}

// optimal returns the leaf that produced the solution, or nil.
func (t *Tree) optimal() *Node {
	if !t.Found {
		return nil
	}
	for _, n := range t.Nodes {
		if n.Outcome == knapsack.OutcomeLeaf && n.Value == t.Solution.Value && equalPaths(n.Path(), t.Solution.Path) {
			return n
		}
	}
	return nil
}

func equalPaths(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
