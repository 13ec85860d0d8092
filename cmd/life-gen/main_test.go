package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"multilife/internal/world"
	"multilife/pkg/sims/life"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := life.Config{Size: 16, Species: 4, Density: 0.4, Seed: 5}
	a, err := generate(cfg, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := generate(cfg, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !a.Grid.Equal(b.Grid) {
		t.Fatal("same seed generated different worlds")
	}
	if a.Iterations != 10 || a.Size != 16 || a.Species != 4 {
		t.Fatalf("header = %+v", a)
	}
	for s := range a.Grid.Census() {
		if s >= 4 {
			t.Fatalf("species %d out of range", s)
		}
	}
}

func TestSetFlags(t *testing.T) {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int("size", 64, "")
	fs.Int("species", 3, "")
	fs.String("out", "x.xml", "")
	if err := fs.Parse([]string{"-size", "9", "-out", "y.json"}); err != nil {
		t.Fatal(err)
	}
	m := setFlags(fs)
	if len(m) != 1 || m["size"] != "9" {
		t.Fatalf("setFlags = %v, want only size", m)
	}
	if got := life.FromMap(m); got.Size != 9 || got.Species != life.DefaultConfig().Species {
		t.Fatalf("FromMap = %+v", got)
	}
}

func TestGenerateRejectsOversizedWorld(t *testing.T) {
	cfg := life.Config{Size: world.MaxSize + 1, Species: 2, Density: 0.5, Seed: 1}
	if _, err := generate(cfg, 1); !errors.Is(err, world.ErrInvalidWorld) {
		t.Fatalf("generate error = %v, want ErrInvalidWorld", err)
	}
}
