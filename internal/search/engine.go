package search

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/talgya/statecraft/internal/metrics"
	"github.com/talgya/statecraft/internal/world"
)

// Config parameterizes one search run. The template slice and quality
// function are read-only after construction, so independent runs may share
// them.
type Config struct {
	SelfCountry  string
	Templates    []*world.TransformTemplate
	Quality      *metrics.Quality
	NumSchedules int // completed schedules to collect before stopping
	MaxDepth     int // actions per schedule
	BeamWidth    int // frontier entries kept per expansion round
	Metrics      metrics.Params
}

// Result is one completed schedule with its terminal expected utility.
type Result struct {
	Schedule Schedule
	EU       float64
}

// Engine runs the anytime depth-bounded beam search. It is re-entrant but
// not safe for concurrent use of a single instance.
type Engine struct {
	cfg Config
}

// New validates the configuration and builds an engine.
func New(cfg Config) (*Engine, error) {
	if cfg.SelfCountry == "" {
		return nil, fmt.Errorf("self country is required")
	}
	if cfg.Quality == nil {
		return nil, fmt.Errorf("quality function is required")
	}
	if cfg.NumSchedules < 1 {
		return nil, fmt.Errorf("num schedules %d must be at least 1", cfg.NumSchedules)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth %d must be non-negative", cfg.MaxDepth)
	}
	if cfg.BeamWidth < 1 {
		return nil, fmt.Errorf("beam width %d must be at least 1", cfg.BeamWidth)
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Run explores schedules from the initial world until NumSchedules
// full-depth schedules are collected or the frontier is exhausted, and
// returns them ordered by EU descending. The result is never empty: when no
// full-depth schedule exists the empty schedule (EU 0) is returned, so a
// caller stopping the search at any point still gets a usable plan.
//
// Pruning keeps the top-BeamWidth frontier entries by their current EU, not
// by the EU of their completions, so the best EU found is not monotone in
// BeamWidth beyond depth 1. A width large enough to never prune degenerates
// to best-first search and bounds what any narrower width can find.
//
// Every step EU is scored between the initial world and the candidate's
// world, with the discount exponent equal to the candidate's length, and a
// child is never generated for an action identical to its parent's last —
// such a sibling can only re-derive an already-frontier state.
func (e *Engine) Run(initial *world.World) ([]Result, error) {
	// Surface configuration errors (unknown self country, bad population)
	// before expanding anything.
	if _, err := e.cfg.Quality.ScoreIn(initial, e.cfg.SelfCountry); err != nil {
		return nil, fmt.Errorf("score initial world: %w", err)
	}

	var f frontier
	heap.Init(&f)
	var seq uint64
	push := func(eu float64, s Schedule, w *world.World) {
		heap.Push(&f, &entry{eu: eu, seq: seq, sched: s, world: w})
		seq++
	}
	push(0, Schedule{}, initial.Clone())

	var completed []Result
	for f.Len() > 0 && len(completed) < e.cfg.NumSchedules {
		ent := heap.Pop(&f).(*entry)

		if ent.sched.Len() >= e.cfg.MaxDepth {
			completed = append(completed, Result{Schedule: ent.sched, EU: ent.eu})
			continue
		}

		actions, err := ent.world.LegalActions(e.cfg.SelfCountry, e.cfg.Templates)
		if err != nil {
			return nil, err
		}

		var last world.Action
		if n := ent.sched.Len(); n > 0 {
			last = ent.sched.Actions[n-1]
		}

		for _, act := range actions {
			if last != nil && world.SameAction(act, last) {
				continue
			}
			next, err := ent.world.Successor(act)
			if err != nil {
				// The enumeration only yields legal actions; an illegal
				// apply here is a defect and must not be swallowed.
				return nil, fmt.Errorf("enumerated action failed to apply: %w", err)
			}
			cand := ent.sched.Extend(act, 0)
			eu, err := e.cfg.Quality.ExpectedUtility(
				initial, next,
				e.cfg.SelfCountry, cand.CountriesInvolved(),
				cand.Len(), e.cfg.Metrics,
			)
			if err != nil {
				return nil, fmt.Errorf("score candidate: %w", err)
			}
			cand.Trace[cand.Len()-1] = eu
			push(eu, cand, next)
		}

		f.prune(e.cfg.BeamWidth)
	}

	if len(completed) == 0 {
		// Anytime contract: "do nothing" is always a valid plan.
		completed = append(completed, Result{Schedule: Schedule{}, EU: 0})
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].EU > completed[j].EU
	})
	return completed, nil
}

// BestSchedule runs the full search and returns the top schedule together
// with the world it produces when applied to the initial state.
func (e *Engine) BestSchedule(initial *world.World) (Result, *world.World, error) {
	results, err := e.Run(initial)
	if err != nil {
		return Result{}, nil, err
	}
	best := results[0]
	final, err := best.Schedule.Apply(initial)
	if err != nil {
		return Result{}, nil, fmt.Errorf("replay best schedule: %w", err)
	}
	return best, final, nil
}
