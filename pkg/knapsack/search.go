package knapsack

// DefaultProgressEvery is the number of explored nodes between two Progress
// callbacks when Searcher.ProgressEvery is unset.
const DefaultProgressEvery = 1 << 16

// doneCheckEvery is the number of explored nodes between two polls of
// Searcher.Done.
const doneCheckEvery = 1 << 10

// Stats counts the work done by one search.
type Stats struct {
	Explored   int `json:"explored"`   // decision nodes entered
	Pruned     int `json:"pruned"`     // branches skipped by the bound
	Infeasible int `json:"infeasible"` // nodes over capacity
	Leaves     int `json:"leaves"`     // complete candidates reached
	MaxDepth   int `json:"max_depth"`  // deepest item index reached
}

// Searcher runs the branch-and-bound search with optional instrumentation.
// The zero value is ready to use. A Searcher holds no state between calls and
// is safe for concurrent use as long as its callbacks are.
type Searcher struct {
	// Iterative keeps the decision frames on an explicit stack instead of the
	// goroutine stack. Results, paths, counters and trace events are identical.
	Iterative bool

	// Progress, if set, receives the running counters every ProgressEvery
	// explored nodes and once when the search finishes.
	Progress func(Stats)

	// ProgressEvery defaults to DefaultProgressEvery.
	ProgressEvery int

	// Trace, if set, receives every decision node in visiting order,
	// including branches skipped by the bound.
	Trace func(Event)

	// Done, if set, stops the search once it is closed, typically
	// ctx.Done(). A stopped search unwinds without entering further nodes
	// and its result is meaningless; callers check their context after
	// Search returns.
	Done <-chan struct{}
}

// Search runs the branch-and-bound search over items, which must already be
// ordered by SortByDensity. It reports false when no branch produced a
// candidate.
func Search(sorted []Item, capacity int) (Result, bool) {
	res, _, ok := Searcher{}.Search(sorted, capacity)
	return res, ok
}

// Solve orders items by density and searches them. The returned path indexes
// into SortByDensity(items).
//
// The empty selection always fits a non-negative capacity, so Solve returns it
// when the search finds nothing better than value 0. Solve only fails for a
// negative capacity.
func Solve(items []Item, capacity int) (Result, bool) {
	res, _, ok := Searcher{}.Solve(items, capacity)
	return res, ok
}

// Solve is the instrumented form of the package-level Solve.
func (s Searcher) Solve(items []Item, capacity int) (Result, Stats, bool) {
	res, stats, ok := s.Search(SortByDensity(items), capacity)
	if !ok && capacity >= 0 {
		return Result{Path: []int{}}, stats, true
	}
	return res, stats, ok
}

// Search is the instrumented form of the package-level Search.
func (s Searcher) Search(sorted []Item, capacity int) (Result, Stats, bool) {
	r := newRun(s, sorted, capacity)
	var (
		res Result
		ok  bool
	)
	if s.Iterative {
		res, ok = r.iterate()
	} else {
		res, ok = r.visit(0, 0, 0, 0, nil, -1, BranchRoot)
	}
	if s.Progress != nil {
		s.Progress(r.stats)
	}
	return res, r.stats, ok
}

// run is the per-call state shared by both formulations. Only the counters
// and the node id sequence change while searching.
type run struct {
	items    []Item
	capacity int
	suffix   []int // suffix[i] = SumValues(items[i:]); suffix[len(items)] = 0

	progress func(Stats)
	every    int
	trace    func(Event)
	done     <-chan struct{}

	stats   Stats
	nextID  int
	stopped bool
}

func newRun(s Searcher, items []Item, capacity int) *run {
	suffix := make([]int, len(items)+1)
	for i := len(items) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + items[i].Value
	}
	every := s.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}
	return &run{
		items:    items,
		capacity: capacity,
		suffix:   suffix,
		progress: s.Progress,
		every:    every,
		trace:    s.Trace,
		done:     s.Done,
	}
}

// visit decides item i given the accumulated weight and value of path and
// the best value among branches completed so far.
func (r *run) visit(i, weight, value, best int, path *trail, parent int, branch Branch) (Result, bool) {
	id, res, ok, terminal := r.open(i, weight, value, best, path, parent, branch)
	if terminal {
		return res, ok
	}

	var (
		left   Result
		leftOK bool
	)
	if bound := value + r.suffix[i]; bound > best {
		it := r.items[i]
		left, leftOK = r.visit(i+1, weight+it.Weight, value+it.Value, best, path.extend(i), id, BranchInclude)
		if leftOK {
			best = max(best, left.Value)
		}
	} else {
		r.prune(id, i, BranchInclude, bound, best)
	}

	var (
		right   Result
		rightOK bool
	)
	if bound := value + r.suffix[i+1]; bound > best {
		right, rightOK = r.visit(i+1, weight, value, best, path, id, BranchExclude)
	} else {
		r.prune(id, i, BranchExclude, bound, best)
	}

	return pick(left, leftOK, right, rightOK)
}

// open enters a decision node. For a node over capacity or past the last
// item it reports terminal with the node's outcome in res and ok.
func (r *run) open(i, weight, value, best int, path *trail, parent int, branch Branch) (id int, res Result, ok, terminal bool) {
	if r.halted() {
		return -1, Result{}, false, true
	}
	id = r.nextID
	r.nextID++
	r.stats.Explored++
	r.stats.MaxDepth = max(r.stats.MaxDepth, i)
	if r.progress != nil && r.stats.Explored%r.every == 0 {
		r.progress(r.stats)
	}

	ev := Event{
		ID:      id,
		Parent:  parent,
		Index:   i,
		Branch:  branch,
		Outcome: OutcomeExpanded,
		Weight:  weight,
		Value:   value,
		Best:    best,
	}
	switch {
	case weight > r.capacity:
		r.stats.Infeasible++
		ev.Outcome = OutcomeInfeasible
		terminal = true
	case i >= len(r.items):
		r.stats.Leaves++
		ev.Outcome = OutcomeLeaf
		res, ok, terminal = Result{Path: path.slice(), Weight: weight, Value: value}, true, true
	}
	if r.trace != nil {
		r.trace(ev)
	}
	return id, res, ok, terminal
}

// halted reports whether Done has been closed. It polls the channel on
// the first node and then every doneCheckEvery nodes.
func (r *run) halted() bool {
	if r.done == nil || r.stopped {
		return r.stopped
	}
	if r.stats.Explored%doneCheckEvery == 0 {
		select {
		case <-r.done:
			r.stopped = true
		default:
		}
	}
	return r.stopped
}

// prune records a branch of node parent that the bound ruled out.
func (r *run) prune(parent, i int, branch Branch, bound, best int) {
	r.stats.Pruned++
	id := r.nextID
	r.nextID++
	if r.trace != nil {
		r.trace(Event{
			ID:      id,
			Parent:  parent,
			Index:   i + 1,
			Branch:  branch,
			Outcome: OutcomePruned,
			Bound:   bound,
			Best:    best,
		})
	}
}

// pick combines the outcomes of the include (left) and exclude (right)
// branches. On equal value the include result wins.
func pick(left Result, leftOK bool, right Result, rightOK bool) (Result, bool) {
	switch {
	case leftOK && rightOK:
		if right.Value > left.Value {
			return right, true
		}
		return left, true
	case leftOK:
		return left, true
	case rightOK:
		return right, true
	}
	return Result{}, false
}

// trail is an immutable, structurally shared path. Extending returns a new
// trail and leaves the receiver untouched.
type trail struct {
	index int
	prev  *trail
	n     int
}

func (t *trail) extend(i int) *trail {
	n := 1
	if t != nil {
		n = t.n + 1
	}
	return &trail{index: i, prev: t, n: n}
}

// slice materializes the trail in increasing index order.
func (t *trail) slice() []int {
	if t == nil {
		return []int{}
	}
	out := make([]int, t.n)
	for p := t; p != nil; p = p.prev {
		out[p.n-1] = p.index
	}
	return out
}
