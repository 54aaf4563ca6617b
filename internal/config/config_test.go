package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadWorld(t *testing.T) {
	path := writeFile(t, "world.csv",
		"Country,Population,Timber,MetallicElements\n"+
			"Atlantis,100,200,50\n"+
			"Brobdingnag,80,10,0\n")

	w, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("load world: %v", err)
	}
	if w.Len() != 2 {
		t.Fatalf("got %d countries, want 2", w.Len())
	}
	c, err := w.Country("Atlantis")
	if err != nil {
		t.Fatalf("country: %v", err)
	}
	if c.Population != 100 {
		t.Fatalf("population = %d, want 100", c.Population)
	}
	if c.Resources.Quantity("Timber") != 200 || c.Resources.Quantity("MetallicElements") != 50 {
		t.Fatalf("resources = %s", c.Resources)
	}
}

func TestLoadWorldErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"blank resource cell", "Country,Population,Timber\nAtlantis,100,\n"},
		{"missing population column", "Country,Timber\nAtlantis,200\n"},
		{"missing country column", "Nation,Population,Timber\nAtlantis,100,200\n"},
		{"non-numeric quantity", "Country,Population,Timber\nAtlantis,100,lots\n"},
		{"non-numeric population", "Country,Population,Timber\nAtlantis,many,200\n"},
		{"no rows", "Country,Population,Timber\n"},
		{"duplicate country", "Country,Population,Timber\nAtlantis,100,200\nAtlantis,80,10\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "world.csv", tc.content)
			if _, err := LoadWorld(path); err == nil {
				t.Fatal("expected format error")
			}
		})
	}
}

func TestLoadWeights(t *testing.T) {
	path := writeFile(t, "weights.csv",
		"resource,weight,baseline\n"+
			"Timber,0.1,0\n"+
			"Housing,20,0.5\n"+
			",,\n") // blank row is skipped

	q, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("load weights: %v", err)
	}
	got := q.Resources()
	want := []string{"Housing", "Timber"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("vocabulary = %v, want %v", got, want)
	}
}

func TestLoadWeightsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty table", "resource,weight,baseline\n"},
		{"all rows blank", "resource,weight,baseline\n,,\n"},
		{"bad weight", "resource,weight,baseline\nTimber,heavy,0\n"},
		{"bad baseline", "resource,weight,baseline\nTimber,0.1,none\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "weights.csv", tc.content)
			if _, err := LoadWeights(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadParams(t *testing.T) {
	path := writeFile(t, "params.yaml",
		"self: Atlantis\n"+
			"depth: 3\n"+
			"gamma: 0.8\n"+
			"failure_cost: -5\n")

	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("load params: %v", err)
	}
	if p.Self != "Atlantis" || p.Depth != 3 || p.Gamma != 0.8 || p.FailureCost != -5 {
		t.Fatalf("loaded params = %+v", p)
	}
	// Unset fields keep the defaults.
	def := DefaultParams()
	if p.N != def.N || p.Beam != def.Beam || p.K != def.K || p.X0 != def.X0 {
		t.Fatalf("defaults not preserved: %+v", p)
	}
}

func TestLoadParamsBadYAML(t *testing.T) {
	path := writeFile(t, "params.yaml", "depth: [not a number\n")
	if _, err := LoadParams(path); err == nil {
		t.Fatal("expected parse error")
	}
}
