package world

import (
	"fmt"
	"sort"
	"strings"
)

// World is the full planning state: every country, keyed by name.
type World struct {
	countries map[string]*Country
}

// New assembles a world from countries. Names must be unique.
func New(countries ...*Country) (*World, error) {
	w := &World{countries: make(map[string]*Country, len(countries))}
	for _, c := range countries {
		if _, dup := w.countries[c.Name]; dup {
			return nil, fmt.Errorf("duplicate country %q", c.Name)
		}
		w.countries[c.Name] = c
	}
	return w, nil
}

// Country fetches a country by name.
func (w *World) Country(name string) (*Country, error) {
	c, ok := w.countries[name]
	if !ok {
		return nil, fmt.Errorf("country %q not found in world", name)
	}
	return c, nil
}

// Names returns all country names in sorted order.
func (w *World) Names() []string {
	names := make([]string, 0, len(w.countries))
	for name := range w.countries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of countries.
func (w *World) Len() int {
	return len(w.countries)
}

// Clone deep-copies the world so sibling search branches never alias a
// mutable bundle.
func (w *World) Clone() *World {
	out := &World{countries: make(map[string]*Country, len(w.countries))}
	for name, c := range w.countries {
		out.countries[name] = c.Clone()
	}
	return out
}

// Successor applies the action to a clone and returns it, leaving the
// receiver untouched. The clone is discarded on an illegal action, so the
// caller's world is never half-mutated.
func (w *World) Successor(a Action) (*World, error) {
	next := w.Clone()
	if err := a.Apply(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Signature returns a canonical snapshot string of every country's holdings,
// usable as a duplicate-state key.
func (w *World) Signature() string {
	var sb strings.Builder
	for _, name := range w.Names() {
		c := w.countries[name]
		fmt.Fprintf(&sb, "%s pop=%d %s;", name, c.Population, c.Resources)
	}
	return sb.String()
}

// Pretty renders a truncated human-readable snapshot for CLI epilogues.
func (w *World) Pretty(maxLines int) string {
	var lines []string
	for i, name := range w.Names() {
		if i >= maxLines {
			lines = append(lines, "  ...")
			break
		}
		c := w.countries[name]
		lines = append(lines, fmt.Sprintf("  %s (pop %d): %s", name, c.Population, c.Resources))
	}
	return strings.Join(lines, "\n")
}
