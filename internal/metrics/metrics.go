package metrics

import (
	"fmt"
	"math"

	"github.com/talgya/statecraft/internal/world"
)

// Params are the utility-model constants, fixed for the lifetime of a run.
type Params struct {
	Gamma       float64 // reward discount, 0 <= gamma < 1
	FailureCost float64 // utility when a schedule is rejected, typically negative
	K           float64 // logistic steepness
	X0          float64 // logistic midpoint
}

// Validate rejects parameter values the model is undefined for.
func (p Params) Validate() error {
	if p.Gamma < 0 || p.Gamma >= 1 {
		return fmt.Errorf("gamma %g outside [0,1)", p.Gamma)
	}
	return nil
}

// Logistic is the acceptance curve sigma(x) = 1 / (1 + e^(-k(x-x0))).
func Logistic(x, k, x0 float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*(x-x0)))
}

// Reward is the undiscounted quality delta R = Q_end - Q_start.
func Reward(startQ, endQ float64) float64 {
	return endQ - startQ
}

// DiscountedReward attenuates the reward by gamma^steps, modeling the risk
// and delay cost of longer schedules.
func DiscountedReward(startQ, endQ float64, steps int, gamma float64) float64 {
	return math.Pow(gamma, float64(steps)) * (endQ - startQ)
}

// SuccessProbability is the product over the involved countries of each
// country's logistic acceptance of its own discounted reward between the two
// worlds. Every participant must independently accept for the schedule to
// succeed. Countries are scored in the given order, which callers must keep
// sorted for reproducible float accumulation.
func (q *Quality) SuccessProbability(start, end *world.World, involved []string, steps int, p Params) (float64, error) {
	prob := 1.0
	for _, name := range involved {
		startQ, err := q.ScoreIn(start, name)
		if err != nil {
			return 0, err
		}
		endQ, err := q.ScoreIn(end, name)
		if err != nil {
			return 0, err
		}
		dr := DiscountedReward(startQ, endQ, steps, p.Gamma)
		prob *= Logistic(dr, p.K, p.X0)
	}
	return prob, nil
}

// ExpectedUtility blends the self country's discounted reward with the
// failure cost: EU = P_succ * DR_self + (1 - P_succ) * C. An empty schedule
// (no involved countries, identical worlds) yields exactly zero.
func (q *Quality) ExpectedUtility(start, end *world.World, self string, involved []string, steps int, p Params) (float64, error) {
	startQ, err := q.ScoreIn(start, self)
	if err != nil {
		return 0, err
	}
	endQ, err := q.ScoreIn(end, self)
	if err != nil {
		return 0, err
	}
	drSelf := DiscountedReward(startQ, endQ, steps, p.Gamma)
	pSucc, err := q.SuccessProbability(start, end, involved, steps, p)
	if err != nil {
		return 0, err
	}
	return pSucc*drSelf + (1.0-pSucc)*p.FailureCost, nil
}
