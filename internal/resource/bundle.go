// Package resource defines the resource bundle shared by every layer of the
// planner: a mapping from resource name to quantity with functional
// arithmetic. Bundles are immutable by convention — the operators return new
// bundles and never mutate their operands.
package resource

import (
	"fmt"
	"sort"
	"strings"
)

// Bundle maps resource names to quantities. A missing key reads as zero.
// Quantities are signed: positive for assets, negative for debts or waste.
type Bundle map[string]float64

// New copies the given amounts into a fresh Bundle.
func New(amounts map[string]float64) Bundle {
	b := make(Bundle, len(amounts))
	for name, qty := range amounts {
		b[name] = qty
	}
	return b
}

// Quantity returns the held amount of a resource, zero if absent.
func (b Bundle) Quantity(name string) float64 {
	return b[name]
}

// Covers reports whether b holds at least the quantities in other.
func (b Bundle) Covers(other Bundle) bool {
	for name, qty := range other {
		if b[name] < qty {
			return false
		}
	}
	return true
}

// Add returns a new bundle holding the union of keys with summed quantities.
// A key present in either operand survives, even at quantity zero.
func (b Bundle) Add(other Bundle) Bundle {
	out := b.Clone()
	for name, qty := range other {
		out[name] += qty
	}
	return out
}

// Sub returns a new bundle with other's quantities subtracted.
func (b Bundle) Sub(other Bundle) Bundle {
	out := b.Clone()
	for name, qty := range other {
		out[name] -= qty
	}
	return out
}

// Scale returns a new bundle with every quantity multiplied by factor.
func (b Bundle) Scale(factor float64) Bundle {
	out := make(Bundle, len(b))
	for name, qty := range b {
		out[name] = qty * factor
	}
	return out
}

// Clone returns an independent copy. Search branches must never share a
// live bundle, so cloning is the only sanctioned way to carry one across.
func (b Bundle) Clone() Bundle {
	out := make(Bundle, len(b))
	for name, qty := range b {
		out[name] = qty
	}
	return out
}

// Names returns the resource names in sorted order, for deterministic
// iteration wherever quantities feed into scores or signatures.
func (b Bundle) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the bundle with sorted keys so logs and signatures are
// reproducible across runs.
func (b Bundle) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range b.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %g", name, b[name])
	}
	sb.WriteByte('}')
	return sb.String()
}
