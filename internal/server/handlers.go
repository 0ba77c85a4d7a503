package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/knapsack/pkg/buildinfo"
	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
	"github.com/matzehuels/knapsack/pkg/solver"
)

type solveRequest struct {
	Items     []knapsack.Item `json:"items"`
	Capacity  *int            `json:"capacity"`
	Iterative bool            `json:"iterative"`
	Refresh   bool            `json:"refresh"`
}

type solveResponse struct {
	RunID      string          `json:"run_id"`
	Found      bool            `json:"found"`
	Capacity   int             `json:"capacity"`
	Value      int             `json:"value"`
	Weight     int             `json:"weight"`
	Path       []int           `json:"path"`
	Sorted     []knapsack.Item `json:"sorted"`
	Selected   []knapsack.Item `json:"selected"`
	Stats      knapsack.Stats  `json:"stats"`
	CacheHit   bool            `json:"cache_hit"`
	DurationMS float64         `json:"duration_ms"`
}

type sweepRequest struct {
	Items     []knapsack.Item `json:"items"`
	From      *int            `json:"from"`
	To        *int            `json:"to"`
	Iterative bool            `json:"iterative"`
}

type sweepResponse struct {
	Points    solver.SweepPoints `json:"points"`
	Monotonic bool               `json:"monotonic"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Items == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "items is required"))
		return
	}
	if req.Capacity == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidCapacity, "capacity is required"))
		return
	}

	ctx, cancel := s.searchContext(r)
	defer cancel()
	res, err := s.runner.Solve(ctx, solver.Options{
		Items:     req.Items,
		Capacity:  *req.Capacity,
		Iterative: req.Iterative,
		Refresh:   req.Refresh,
		MaxItems:  MaxItems,
	})
	if err != nil {
		writeError(w, s.searchError(err))
		return
	}

	path := res.Solution.Path
	if path == nil {
		path = []int{}
	}
	writeJSON(w, http.StatusOK, solveResponse{
		RunID:      res.RunID,
		Found:      res.Found,
		Capacity:   res.Capacity,
		Value:      res.Solution.Value,
		Weight:     res.Solution.Weight,
		Path:       path,
		Sorted:     res.Sorted,
		Selected:   res.Selected,
		Stats:      res.Stats,
		CacheHit:   res.CacheHit,
		DurationMS: float64(res.Duration.Microseconds()) / 1000,
	})
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Items == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "items is required"))
		return
	}
	if req.From == nil || req.To == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidRange, "from and to are required"))
		return
	}

	ctx, cancel := s.searchContext(r)
	defer cancel()
	points, err := s.runner.Sweep(ctx, solver.Options{
		Items:     req.Items,
		Iterative: req.Iterative,
		MaxItems:  MaxItems,
	}, *req.From, *req.To)
	if err != nil {
		writeError(w, s.searchError(err))
		return
	}

	_, ok := points.Monotonic()
	writeJSON(w, http.StatusOK, sweepResponse{Points: points, Monotonic: ok})
}

// searchContext derives the context the searches of r run under.
func (s *Server) searchContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.SolveTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), s.SolveTimeout)
}

// searchError reports a search cut short by SolveTimeout as TIMEOUT.
func (s *Server) searchError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "search exceeded %s", s.SolveTimeout)
	}
	return err
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.New(errors.ErrCodeTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return errors.New(errors.ErrCodeInvalidFormat, "invalid request body: %v", err)
	}
	return nil
}
