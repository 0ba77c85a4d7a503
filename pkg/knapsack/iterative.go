package knapsack

// Frame stages of the iterative search. A frame first launches its include
// branch, then its exclude branch, then combines both outcomes.
const (
	stageInclude = iota
	stageExclude
	stageCombine
)

type frame struct {
	i, weight, value, best int
	path                   *trail
	id                     int
	stage                  int
	left                   Result
	leftOK                 bool
}

// iterate explores the same tree as visit, in the same order, with the
// pending frames kept in a slice. The outcome of the most recently finished
// child is carried in ret/ok.
func (r *run) iterate() (Result, bool) {
	var (
		stack []frame
		ret   Result
		ok    bool
	)
	push := func(i, weight, value, best int, path *trail, parent int, branch Branch) {
		id, res, resOK, terminal := r.open(i, weight, value, best, path, parent, branch)
		if terminal {
			ret, ok = res, resOK
			return
		}
		stack = append(stack, frame{i: i, weight: weight, value: value, best: best, path: path, id: id})
	}

	push(0, 0, 0, 0, nil, -1, BranchRoot)
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		switch f.stage {
		case stageInclude:
			f.stage = stageExclude
			bound := f.value + r.suffix[f.i]
			if bound > f.best {
				it := r.items[f.i]
				push(f.i+1, f.weight+it.Weight, f.value+it.Value, f.best, f.path.extend(f.i), f.id, BranchInclude)
				continue
			}
			r.prune(f.id, f.i, BranchInclude, bound, f.best)
			ret, ok = Result{}, false

		case stageExclude:
			f.left, f.leftOK = ret, ok
			if ok {
				f.best = max(f.best, ret.Value)
			}
			f.stage = stageCombine
			bound := f.value + r.suffix[f.i+1]
			if bound > f.best {
				push(f.i+1, f.weight, f.value, f.best, f.path, f.id, BranchExclude)
				continue
			}
			r.prune(f.id, f.i, BranchExclude, bound, f.best)
			ret, ok = Result{}, false

		case stageCombine:
			ret, ok = pick(f.left, f.leftOK, ret, ok)
			stack = stack[:len(stack)-1]
		}
	}
	return ret, ok
}
