package knapsack

// Branch identifies how a decision node was reached from its parent.
type Branch int

const (
	BranchRoot Branch = iota
	BranchInclude
	BranchExclude
)

func (b Branch) String() string {
	switch b {
	case BranchRoot:
		return "root"
	case BranchInclude:
		return "include"
	case BranchExclude:
		return "exclude"
	}
	return "unknown"
}

// Outcome describes what happened at a decision node.
type Outcome int

const (
	// OutcomeExpanded nodes went on to decide their item.
	OutcomeExpanded Outcome = iota
	// OutcomeLeaf nodes decided every item and produced a candidate.
	OutcomeLeaf
	// OutcomeInfeasible nodes exceeded the capacity.
	OutcomeInfeasible
	// OutcomePruned branches were skipped because their bound could not
	// beat the incumbent. They are never entered.
	OutcomePruned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExpanded:
		return "expanded"
	case OutcomeLeaf:
		return "leaf"
	case OutcomeInfeasible:
		return "infeasible"
	case OutcomePruned:
		return "pruned"
	}
	return "unknown"
}

// Event is one node of the decision tree as seen by Searcher.Trace.
//
// Index is the next item to decide (len(items) at leaves). Weight and Value
// are the accumulated totals on entry and are zero for pruned branches, which
// report the failed upper bound in Bound instead. Best is the incumbent the
// node was compared against. The root has Parent -1.
type Event struct {
	ID      int
	Parent  int
	Index   int
	Branch  Branch
	Outcome Outcome
	Weight  int
	Value   int
	Best    int
	Bound   int
}

// Collect returns a Searcher.Trace callback appending events to dst.
func Collect(dst *[]Event) func(Event) {
	return func(ev Event) { *dst = append(*dst, ev) }
}
