// Package search implements the anytime, depth-bounded, utility-driven beam
// search over schedules of transform and transfer actions.
package search

import (
	"sort"

	"github.com/talgya/statecraft/internal/world"
)

// Schedule is an ordered action sequence paired with its expected-utility
// trace: one EU value after each action. The reported EU of a schedule is
// the terminal step's value — the step count is already embedded in the
// discount exponent, so re-aggregating would double-count delay.
type Schedule struct {
	Actions []world.Action
	Trace   []float64
}

// Extend returns a new schedule with the action and its EU appended. The
// receiver's slices are never mutated, so sibling branches may extend the
// same parent safely.
func (s Schedule) Extend(a world.Action, eu float64) Schedule {
	actions := make([]world.Action, len(s.Actions)+1)
	copy(actions, s.Actions)
	actions[len(s.Actions)] = a

	trace := make([]float64, len(s.Trace)+1)
	copy(trace, s.Trace)
	trace[len(s.Trace)] = eu

	return Schedule{Actions: actions, Trace: trace}
}

// Len returns the number of actions taken.
func (s Schedule) Len() int {
	return len(s.Actions)
}

// EU returns the terminal expected utility, zero for the empty schedule.
func (s Schedule) EU() float64 {
	if len(s.Trace) == 0 {
		return 0
	}
	return s.Trace[len(s.Trace)-1]
}

// CountriesInvolved returns the sorted set of countries any action touches.
// Sorted order keeps acceptance-probability products reproducible.
func (s Schedule) CountriesInvolved() []string {
	seen := make(map[string]bool)
	for _, a := range s.Actions {
		for _, name := range a.Participants() {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply replays the schedule onto a clone of w and returns the result.
func (s Schedule) Apply(w *world.World) (*world.World, error) {
	out := w.Clone()
	for _, a := range s.Actions {
		if err := a.Apply(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Strings renders each action in schedule output format.
func (s Schedule) Strings() []string {
	out := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		out[i] = a.String()
	}
	return out
}
