// Command life-gen writes a randomly populated world file.
package main

import (
	"flag"
	"fmt"
	"os"

	"multilife/internal/logging"
	"multilife/internal/world"
	"multilife/pkg/sims/life"
)

func main() {
	def := life.DefaultConfig()
	fs := flag.CommandLine
	fs.Int("size", def.Size, "grid dimension")
	fs.Int("species", def.Species, "number of species")
	fs.Float64("density", def.Density, "probability that a cell starts alive")
	fs.Int64("seed", def.Seed, "random seed")
	iterations := fs.Int("iterations", 100, "iteration count stored in the world file")
	out := fs.String("out", "world.xml", "output world file (.xml or .json)")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := logging.New(*logLevel, os.Stderr)
	if *iterations < 0 {
		logger.Errorf("iterations must be non-negative, got %d", *iterations)
		os.Exit(2)
	}

	cfg := life.FromMap(setFlags(fs))
	wd, err := generate(cfg, *iterations)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if err := world.SaveFile(*out, wd); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	logger.Infof("wrote %s: %dx%d grid, %d species, %d organisms, seed %d",
		*out, wd.Size, wd.Size, wd.Species, wd.Grid.Population(), cfg.Seed)
}

// setFlags collects the explicitly set sim flags as FromMap keys.
func setFlags(fs *flag.FlagSet) map[string]string {
	m := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size", "species", "density", "seed":
			m[f.Name] = f.Value.String()
		}
	})
	return m
}

func generate(cfg life.Config, iterations int) (world.World, error) {
	if cfg.Size < 1 || cfg.Size > world.MaxSize {
		return world.World{}, fmt.Errorf("%w: size %d outside [1,%d]", world.ErrInvalidWorld, cfg.Size, world.MaxSize)
	}
	sim := life.New(cfg)
	sim.Reset(cfg.Seed)
	wd, err := world.Build(cfg.Size, cfg.Species, iterations, world.Organisms(sim.Grid()))
	if err != nil {
		return world.World{}, fmt.Errorf("generating world (seed %d): %w", cfg.Seed, err)
	}
	return wd, nil
}
