// Package world holds the mutable planning state: countries with their
// resource bundles, the world that contains them, and the transform/transfer
// actions that move it forward. Search branches operate on clones; nothing in
// this package ever mutates a world it did not create.
package world

import (
	"github.com/talgya/statecraft/internal/resource"
)

// Country is one agent in the world: a name, a population used to normalize
// state quality, and its resource holdings.
type Country struct {
	Name       string
	Population int
	Resources  resource.Bundle
}

// NewCountry builds a country with a copy of the given resources.
func NewCountry(name string, population int, resources resource.Bundle) *Country {
	return &Country{
		Name:       name,
		Population: population,
		Resources:  resources.Clone(),
	}
}

// Has reports whether the country holds at least the required bundle.
func (c *Country) Has(required resource.Bundle) bool {
	return c.Resources.Covers(required)
}

// Clone returns an independent copy, including the resource bundle.
func (c *Country) Clone() *Country {
	return &Country{
		Name:       c.Name,
		Population: c.Population,
		Resources:  c.Resources.Clone(),
	}
}
