package resource

import "testing"

func TestAddKeepsKeysFromBothOperands(t *testing.T) {
	a := Bundle{"Timber": 5, "Water": 2}
	b := Bundle{"Water": -2, "Housing": 1}

	sum := a.Add(b)

	want := map[string]float64{"Timber": 5, "Water": 0, "Housing": 1}
	if len(sum) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(sum), len(want), sum)
	}
	for name, qty := range want {
		got, ok := sum[name]
		if !ok {
			t.Fatalf("key %s dropped from %v", name, sum)
		}
		if got != qty {
			t.Fatalf("%s = %g, want %g", name, got, qty)
		}
	}
}

func TestArithmeticDoesNotMutateOperands(t *testing.T) {
	a := Bundle{"Timber": 5}
	b := Bundle{"Timber": 3}

	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Scale(2)

	if a["Timber"] != 5 || b["Timber"] != 3 {
		t.Fatalf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestCovers(t *testing.T) {
	stock := Bundle{"Timber": 5, "MetallicElements": 1}
	tests := []struct {
		name string
		req  Bundle
		want bool
	}{
		{"exact", Bundle{"Timber": 5, "MetallicElements": 1}, true},
		{"partial", Bundle{"Timber": 3}, true},
		{"short one resource", Bundle{"Timber": 6}, false},
		{"absent resource", Bundle{"Housing": 1}, false},
		{"empty requirement", Bundle{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stock.Covers(tc.req); got != tc.want {
				t.Fatalf("Covers(%v) = %v, want %v", tc.req, got, tc.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	b := Bundle{"Timber": 5, "Water": 2}
	scaled := b.Scale(3)
	if scaled["Timber"] != 15 || scaled["Water"] != 6 {
		t.Fatalf("Scale(3) = %v", scaled)
	}
	zero := b.Scale(0)
	if zero["Timber"] != 0 || len(zero) != 2 {
		t.Fatalf("Scale(0) should keep keys at zero, got %v", zero)
	}
}

func TestQuantityMissingIsZero(t *testing.T) {
	b := Bundle{"Timber": 5}
	if got := b.Quantity("Housing"); got != 0 {
		t.Fatalf("Quantity of absent resource = %g, want 0", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := Bundle{"Timber": 5}
	c := a.Clone()
	c["Timber"] = 99
	if a["Timber"] != 5 {
		t.Fatalf("clone aliases original: %v", a)
	}
}

func TestStringSortedAndStable(t *testing.T) {
	b := Bundle{"Water": 2, "Timber": 5, "Housing": 0}
	want := "{Housing: 0, Timber: 5, Water: 2}"
	for i := 0; i < 10; i++ {
		if got := b.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
