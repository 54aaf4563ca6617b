package world

import (
	"math"

	"github.com/talgya/statecraft/internal/resource"
)

// TransformTemplate is a production recipe at unit scale: applying it at
// scale k consumes k×Inputs and yields k×Outputs within a single country.
type TransformTemplate struct {
	Name    string
	Inputs  resource.Bundle
	Outputs resource.Bundle
}

// ScaledInputs returns the input requirement at scale k.
func (t *TransformTemplate) ScaledInputs(k float64) resource.Bundle {
	return t.Inputs.Scale(k)
}

// ScaledOutputs returns the yield at scale k.
func (t *TransformTemplate) ScaledOutputs(k float64) resource.Bundle {
	return t.Outputs.Scale(k)
}

// MaxScale returns the largest integer k such that k×Inputs fits within
// stock. A template with no inputs has no finite bound and reports zero.
func (t *TransformTemplate) MaxScale(stock resource.Bundle) int {
	if len(t.Inputs) == 0 {
		return 0
	}
	max := math.MaxInt
	for name, qty := range t.Inputs {
		if qty <= 0 {
			continue
		}
		k := int(math.Floor(stock.Quantity(name) / qty))
		if k < max {
			max = k
		}
	}
	if max < 0 || max == math.MaxInt {
		return 0
	}
	return max
}
