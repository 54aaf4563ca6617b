package world

import (
	"github.com/talgya/statecraft/internal/resource"
)

// LegalActions enumerates every action currently available to the given
// country: each template at every integer scale its stock supports, then a
// one-unit transfer of each positively held resource to each other country.
// The order is fully deterministic — templates in the given slice order,
// resources and destinations sorted by name — so searches over the same
// world reproduce bit-for-bit.
func (w *World) LegalActions(country string, templates []*TransformTemplate) ([]Action, error) {
	source, err := w.Country(country)
	if err != nil {
		return nil, err
	}

	var actions []Action

	for _, tpl := range templates {
		max := tpl.MaxScale(source.Resources)
		for scale := 1; scale <= max; scale++ {
			actions = append(actions, Transform{Country: country, Template: tpl, Scale: scale})
		}
	}

	for _, dst := range w.Names() {
		if dst == country {
			continue
		}
		for _, name := range source.Resources.Names() {
			if source.Resources[name] < 1 {
				continue
			}
			actions = append(actions, Transfer{
				Source:      country,
				Destination: dst,
				Bundle:      resource.Bundle{name: 1},
			})
		}
	}

	return actions, nil
}
