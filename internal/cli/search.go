package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// heartbeatInterval is how often a running search reports its counters.
const heartbeatInterval = 10 * time.Second

// searchLogger turns Searcher progress callbacks into log lines: a debug
// line per callback and an info heartbeat every heartbeatInterval.
//
// It is not safe for concurrent use.
type searchLogger struct {
	logger  *log.Logger
	start   time.Time
	lastLog time.Time
	last    knapsack.Stats
}

func newSearchLogger(ctx context.Context) *searchLogger {
	now := time.Now()
	return &searchLogger{logger: loggerFromContext(ctx), start: now, lastLog: now}
}

func (s *searchLogger) onProgress(st knapsack.Stats) {
	s.last = st
	s.logger.Debug("search", "explored", st.Explored, "pruned", st.Pruned, "depth", st.MaxDepth)
	if time.Since(s.lastLog) >= heartbeatInterval {
		elapsed := time.Since(s.start).Truncate(time.Second)
		s.logger.Infof("Searching... %v elapsed (explored: %d, pruned: %d)", elapsed, st.Explored, st.Pruned)
		s.lastLog = time.Now()
	}
}

// logOrdering reports density ordering violations at debug level. A
// correct sort never produces any.
func logOrdering(logger *log.Logger, sorted []knapsack.Item) {
	violations := knapsack.CheckOrdering(sorted)
	if len(violations) == 0 {
		logger.Debug("density ordering verified", "items", len(sorted))
		return
	}
	for _, v := range violations {
		logger.Warn("ordering violation", "i", v.I, "j", v.J, "item_i", sorted[v.I], "item_j", sorted[v.J])
	}
}
