package search

import (
	"testing"

	"github.com/talgya/statecraft/internal/resource"
	"github.com/talgya/statecraft/internal/world"
)

func TestEmptyScheduleEU(t *testing.T) {
	var s Schedule
	if got := s.EU(); got != 0 {
		t.Fatalf("empty schedule EU = %g, want 0", got)
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("empty schedule Len = %d, want 0", got)
	}
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	tpl := housingTemplate()
	parent := Schedule{}.Extend(world.Transform{Country: "Atlantis", Template: tpl, Scale: 1}, 0.5)

	childA := parent.Extend(world.Transform{Country: "Atlantis", Template: tpl, Scale: 2}, 0.7)
	childB := parent.Extend(world.Transfer{
		Source: "Atlantis", Destination: "Brobdingnag",
		Bundle: resource.Bundle{"Timber": 1},
	}, 0.1)

	if parent.Len() != 1 || parent.EU() != 0.5 {
		t.Fatalf("parent changed by Extend: %+v", parent)
	}
	if childA.Len() != 2 || childB.Len() != 2 {
		t.Fatalf("children lengths: %d, %d; want 2, 2", childA.Len(), childB.Len())
	}
	if childA.Actions[1].String() == childB.Actions[1].String() {
		t.Fatal("siblings alias the same action slot")
	}
}

func TestCountriesInvolvedSortedUnique(t *testing.T) {
	tpl := housingTemplate()
	s := Schedule{}.
		Extend(world.Transfer{Source: "Carpania", Destination: "Atlantis", Bundle: resource.Bundle{"Timber": 1}}, 0).
		Extend(world.Transform{Country: "Carpania", Template: tpl, Scale: 1}, 0).
		Extend(world.Transfer{Source: "Carpania", Destination: "Brobdingnag", Bundle: resource.Bundle{"Timber": 1}}, 0)

	got := s.CountriesInvolved()
	want := []string{"Atlantis", "Brobdingnag", "Carpania"}
	if len(got) != len(want) {
		t.Fatalf("involved = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("involved = %v, want %v", got, want)
		}
	}
}

func TestScheduleApplyReplaysOnClone(t *testing.T) {
	w := scenarioWorld(t)
	s := Schedule{}.Extend(world.Transform{Country: "Atlantis", Template: housingTemplate(), Scale: 2}, 0)

	end, err := s.Apply(w)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	endC, _ := end.Country("Atlantis")
	if endC.Resources.Quantity("Housing") != 2 {
		t.Fatalf("replayed world housing = %g, want 2", endC.Resources.Quantity("Housing"))
	}
	origC, _ := w.Country("Atlantis")
	if origC.Resources.Quantity("Housing") != 0 {
		t.Fatal("Apply mutated the input world")
	}
}
