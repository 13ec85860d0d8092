// Command life loads a world, evolves it for the configured number of
// generations and writes the final world.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"multilife/internal/logging"
	"multilife/internal/render"
	"multilife/internal/world"
	"multilife/pkg/sims/life"
)

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)
	if err := run(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg Config, log logging.Logger) error {
	wd, err := world.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	iterations := wd.Iterations
	if cfg.Iterations >= 0 {
		iterations = cfg.Iterations
	}
	log.Infof("loaded %s: %dx%d grid, %d species, %d organisms", cfg.Input, wd.Size, wd.Size, wd.Species, wd.Grid.Population())

	start := time.Now()
	wd.Grid = life.Evolve(wd.Grid, iterations)
	log.Infof("evolved %d generations in %s", iterations, time.Since(start).Round(time.Millisecond))

	if err := world.SaveFile(cfg.Output, wd); err != nil {
		return err
	}
	log.Infof("wrote %s", cfg.Output)

	if cfg.PNG != "" {
		if err := writePNG(cfg.PNG, wd, cfg.PNGScale); err != nil {
			return err
		}
		log.Infof("wrote %s", cfg.PNG)
	}

	logCensus(log, wd.Grid)
	return nil
}

func writePNG(path string, wd world.World, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return render.WritePNG(f, wd.Grid, render.Palette(wd.Species), scale)
}

func logCensus(log logging.Logger, g life.Grid) {
	census := g.Census()
	species := make([]int, 0, len(census))
	for s := range census {
		species = append(species, s)
	}
	sort.Ints(species)

	log.Infof("final population: %d", g.Population())
	for _, s := range species {
		log.Debugf("  species %d: %d", s, census[s])
	}
}
