// Package metrics computes the planner's scoring model: state quality,
// discounted reward, logistic acceptance, and expected utility.
package metrics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/talgya/statecraft/internal/world"
)

// ErrEmptyWeights reports a weight table with no usable rows. Scoring is
// undefined without a vocabulary, so this aborts before any search starts.
var ErrEmptyWeights = errors.New("state quality weight table is empty")

// Weight is the per-resource scoring pair: the value of one surplus unit and
// the expected per-capita holding it is measured against.
type Weight struct {
	Weight   float64
	Baseline float64
}

// Quality is the state-quality function Q(country). The weight table defines
// the resource vocabulary; resources a country does not hold score as zero
// quantity. Immutable after construction, so concurrent searches may share
// one instance.
type Quality struct {
	weights map[string]Weight
	names   []string // sorted, fixes the summation order
}

// NewQuality validates and freezes a weight table.
func NewQuality(weights map[string]Weight) (*Quality, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}
	q := &Quality{
		weights: make(map[string]Weight, len(weights)),
		names:   make([]string, 0, len(weights)),
	}
	for name, w := range weights {
		q.weights[name] = w
		q.names = append(q.names, name)
	}
	sort.Strings(q.names)
	return q, nil
}

// Resources returns the vocabulary in sorted order.
func (q *Quality) Resources() []string {
	return q.names
}

// Score computes Q(country) = (1/pop) Σ_r w_r (amount_r − baseline_r·pop).
// Per-capita normalization keeps large-population countries from dominating
// on raw volume alone.
func (q *Quality) Score(c *world.Country) (float64, error) {
	if c.Population <= 0 {
		return 0, fmt.Errorf("country %q has non-positive population %d", c.Name, c.Population)
	}
	pop := float64(c.Population)
	var score float64
	for _, name := range q.names {
		w := q.weights[name]
		score += w.Weight * (c.Resources.Quantity(name) - w.Baseline*pop)
	}
	return score / pop, nil
}

// ScoreIn scores a named country within a world.
func (q *Quality) ScoreIn(w *world.World, country string) (float64, error) {
	c, err := w.Country(country)
	if err != nil {
		return 0, err
	}
	return q.Score(c)
}
