package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/statecraft/internal/resource"
	"github.com/talgya/statecraft/internal/search"
	"github.com/talgya/statecraft/internal/world"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleResults() []search.Result {
	tpl := &world.TransformTemplate{
		Name:    "Housing",
		Inputs:  resource.Bundle{"Timber": 5},
		Outputs: resource.Bundle{"Housing": 1},
	}
	best := search.Schedule{}.
		Extend(world.Transform{Country: "Atlantis", Template: tpl, Scale: 2}, 1.5).
		Extend(world.Transfer{Source: "Atlantis", Destination: "Brobdingnag", Bundle: resource.Bundle{"Housing": 1}}, 1.2)
	return []search.Result{
		{Schedule: best, EU: 1.2},
		{Schedule: search.Schedule{}, EU: 0},
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	db := openTestDB(t)

	runID, err := db.SaveRun(Run{
		SelfCountry: "Atlantis",
		N:           5, Depth: 2, Beam: 50,
		Gamma: 0.9, FailureCost: -10, K: 1, X0: 0,
	}, sampleResults())
	if err != nil {
		t.Fatalf("save run: %v", err)
	}
	if runID == "" {
		t.Fatal("no run id assigned")
	}

	runs, err := db.Runs()
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID || runs[0].SelfCountry != "Atlantis" {
		t.Fatalf("runs = %+v", runs)
	}
	if runs[0].Gamma != 0.9 || runs[0].FailureCost != -10 {
		t.Fatalf("parameters not round-tripped: %+v", runs[0])
	}

	schedules, err := db.Schedules(runID)
	if err != nil {
		t.Fatalf("load schedules: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("got %d schedules, want 2", len(schedules))
	}

	top := schedules[0]
	if top.Position != 1 || top.EU != 1.2 {
		t.Fatalf("top schedule = %+v", top)
	}
	if len(top.Actions) != 2 || top.Actions[0] != "(TRANSFORM Atlantis Housing x2)" {
		t.Fatalf("actions = %v", top.Actions)
	}
	if len(top.Trace) != 2 || top.Trace[0] != 1.5 || top.Trace[1] != 1.2 {
		t.Fatalf("trace = %v", top.Trace)
	}

	empty := schedules[1]
	if len(empty.Actions) != 0 || len(empty.Trace) != 0 || empty.EU != 0 {
		t.Fatalf("empty schedule stored as %+v", empty)
	}
}

func TestSaveRunKeepsProvidedID(t *testing.T) {
	db := openTestDB(t)
	runID, err := db.SaveRun(Run{ID: "run-fixed", SelfCountry: "Atlantis", N: 1, Depth: 1, Beam: 1}, nil)
	if err != nil {
		t.Fatalf("save run: %v", err)
	}
	if runID != "run-fixed" {
		t.Fatalf("run id = %q, want run-fixed", runID)
	}
}
