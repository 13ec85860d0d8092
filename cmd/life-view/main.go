//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"multilife/internal/app"
	"multilife/internal/render"
	"multilife/internal/world"
	"multilife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, species, iterations, err := load(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg, iterations, render.Palette(species))
	size := sim.Size()

	ebiten.SetWindowTitle("multilife — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func load(cfg *app.Config) (*life.Life, int, int, error) {
	if cfg.Input == "" {
		if cfg.Size < 1 || cfg.Species < 1 {
			return nil, 0, 0, fmt.Errorf("random worlds need positive -size and -species, got %d and %d", cfg.Size, cfg.Species)
		}
		sim := life.New(life.Config{Size: cfg.Size, Species: cfg.Species, Density: cfg.Density, Seed: cfg.Seed})
		sim.Reset(cfg.Seed)
		return sim, cfg.Species, cfg.Iterations, nil
	}
	wd, err := world.LoadFile(cfg.Input)
	if err != nil {
		return nil, 0, 0, err
	}
	return life.FromGrid(wd.Grid, wd.Species), wd.Species, wd.Iterations, nil
}
