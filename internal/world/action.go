package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/talgya/statecraft/internal/resource"
)

// Action is one step of a schedule: either a Transform within one country or
// a Transfer between two. Apply mutates the given world only when every
// legality precondition holds; on failure the world is left untouched.
type Action interface {
	// Apply mutates w in place, or returns an IllegalActionError wrapped
	// with context when a precondition fails.
	Apply(w *World) error
	// Participants lists the countries whose consent the action needs.
	Participants() []string
	// String renders the action in the schedule output format.
	String() string
}

// IllegalActionError reports an action applied outside its legality
// precondition. The search engine never produces such actions; seeing this
// error from engine-generated actions indicates a defect, not a recoverable
// condition.
type IllegalActionError struct {
	Action string
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s: %s", e.Action, e.Reason)
}

// IsIllegal reports whether err is (or wraps) an IllegalActionError.
func IsIllegal(err error) bool {
	var ia *IllegalActionError
	return errors.As(err, &ia)
}

// Transform applies a template at an integer scale within one country.
type Transform struct {
	Country  string
	Template *TransformTemplate
	Scale    int
}

// Apply subtracts the scaled inputs and adds the scaled outputs. Scale zero
// is legal and leaves the world resource-identical.
func (t Transform) Apply(w *World) error {
	if t.Scale < 0 {
		return &IllegalActionError{Action: t.String(), Reason: "negative scale"}
	}
	c, err := w.Country(t.Country)
	if err != nil {
		return err
	}
	inputs := t.Template.ScaledInputs(float64(t.Scale))
	if !c.Has(inputs) {
		return &IllegalActionError{
			Action: t.String(),
			Reason: fmt.Sprintf("%s lacks inputs for %s at scale %d", t.Country, t.Template.Name, t.Scale),
		}
	}
	outputs := t.Template.ScaledOutputs(float64(t.Scale))
	c.Resources = c.Resources.Sub(inputs).Add(outputs)
	return nil
}

func (t Transform) Participants() []string {
	return []string{t.Country}
}

func (t Transform) String() string {
	return fmt.Sprintf("(TRANSFORM %s %s x%d)", t.Country, t.Template.Name, t.Scale)
}

// Transfer moves a bundle from one country to another.
type Transfer struct {
	Source      string
	Destination string
	Bundle      resource.Bundle
}

// Apply moves the bundle, checking every precondition before touching
// either country so a failure cannot leave a partial mutation.
func (t Transfer) Apply(w *World) error {
	if t.Source == t.Destination {
		return &IllegalActionError{Action: t.String(), Reason: "source and destination are the same country"}
	}
	for name, qty := range t.Bundle {
		if qty < 0 {
			return &IllegalActionError{
				Action: t.String(),
				Reason: fmt.Sprintf("negative quantity of %s", name),
			}
		}
	}
	src, err := w.Country(t.Source)
	if err != nil {
		return err
	}
	dst, err := w.Country(t.Destination)
	if err != nil {
		return err
	}
	if !src.Has(t.Bundle) {
		return &IllegalActionError{
			Action: t.String(),
			Reason: fmt.Sprintf("%s lacks transferred resources", t.Source),
		}
	}
	src.Resources = src.Resources.Sub(t.Bundle)
	dst.Resources = dst.Resources.Add(t.Bundle)
	return nil
}

func (t Transfer) Participants() []string {
	return []string{t.Source, t.Destination}
}

func (t Transfer) String() string {
	var parts []string
	for _, name := range t.Bundle.Names() {
		parts = append(parts, fmt.Sprintf("(%s %g)", name, t.Bundle[name]))
	}
	return fmt.Sprintf("(TRANSFER %s %s %s)", t.Source, t.Destination, strings.Join(parts, " "))
}

// SameAction reports whether two actions render identically. Transfer holds
// a map, so rendered form is the comparable identity used by the
// back-to-back duplicate filter in the search engine.
func SameAction(a, b Action) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
