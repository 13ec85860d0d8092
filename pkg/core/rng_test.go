package core

import (
	"slices"
	"testing"
)

func TestFillSpeciesDeterministic(t *testing.T) {
	a := make([]int, 256)
	b := make([]int, 256)
	FillSpecies(NewRNG(7), a, 0.4, 3)
	FillSpecies(NewRNG(7), b, 0.4, 3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	occupied := 0
	for i, v := range a {
		if v < -1 || v >= 3 {
			t.Fatalf("slot %d holds %d, want -1 or [0,3)", i, v)
		}
		if v >= 0 {
			occupied++
		}
	}
	if occupied == 0 || occupied == len(a) {
		t.Fatalf("density 0.4 filled %d of %d slots", occupied, len(a))
	}
}

func TestFillSpeciesBounds(t *testing.T) {
	buf := make([]int, 16)
	FillSpecies(NewRNG(1), buf, 1, 0)
	for i, v := range buf {
		if v != -1 {
			t.Fatalf("slot %d = %d with zero species, want -1", i, v)
		}
	}
	FillSpecies(NewRNG(1), buf, 1, 1)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("slot %d = %d with full density and one species, want 0", i, v)
		}
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "size", Label: "Size", Value: "5"}}},
	}}
	if v, ok := snap.Lookup("size"); !ok || v != "5" {
		t.Fatalf("Lookup(size) = %q, %v", v, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup(missing) reported a value")
	}
}
