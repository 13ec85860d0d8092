// Package world loads and saves Life worlds: the grid dimension, species
// count, iteration count and the initial organisms.
package world

import (
	"errors"
	"fmt"
	"io"
	"math"

	"multilife/pkg/sims/life"
)

// MaxSize bounds the grid dimension accepted from input files.
const MaxSize = 1 << 14

// MaxSpecies is the largest species count a Cell can carry.
const MaxSpecies = math.MaxInt32 - 1

var (
	// ErrInvalidWorld wraps every validation failure.
	ErrInvalidWorld = errors.New("invalid world")
	// ErrUnknownFormat is returned for file extensions without a codec.
	ErrUnknownFormat = errors.New("unknown world format")
)

// World is a complete simulation input or output.
type World struct {
	Size       int
	Species    int
	Iterations int
	Grid       life.Grid
}

// Organism is one live cell as stored in world files.
type Organism struct {
	X       int
	Y       int
	Species int
}

// Loader decodes a World from a stream.
type Loader interface {
	Load(r io.Reader) (World, error)
}

// Writer encodes a World to a stream. Writers store the grid as the new
// starting point, so the iteration count is always written as 0.
type Writer interface {
	Write(w io.Writer, wd World) error
}

// Codec reads and writes one file format.
type Codec interface {
	Loader
	Writer
}

// Build validates the header and organisms and assembles a World.
func Build(size, species, iterations int, organisms []Organism) (World, error) {
	if size < 1 || size > MaxSize {
		return World{}, fmt.Errorf("%w: size %d outside [1,%d]", ErrInvalidWorld, size, MaxSize)
	}
	if species < 1 || species > MaxSpecies {
		return World{}, fmt.Errorf("%w: species count %d must be positive", ErrInvalidWorld, species)
	}
	if iterations < 0 {
		return World{}, fmt.Errorf("%w: negative iteration count %d", ErrInvalidWorld, iterations)
	}

	cells := make([]life.Cell, size*size)
	for i, o := range organisms {
		if o.X < 0 || o.X >= size || o.Y < 0 || o.Y >= size {
			return World{}, fmt.Errorf("%w: organism %d at (%d,%d) outside %dx%d grid", ErrInvalidWorld, i, o.X, o.Y, size, size)
		}
		if o.Species < 0 || o.Species >= species {
			return World{}, fmt.Errorf("%w: organism %d has species %d, want [0,%d)", ErrInvalidWorld, i, o.Species, species)
		}
		idx := o.Y*size + o.X
		if cells[idx].Alive() {
			return World{}, fmt.Errorf("%w: organism %d duplicates position (%d,%d)", ErrInvalidWorld, i, o.X, o.Y)
		}
		cells[idx] = life.Alive(o.Species)
	}

	return World{Size: size, Species: species, Iterations: iterations, Grid: life.FromCells(size, cells)}, nil
}

// Organisms lists the live cells of g in row-major order.
func Organisms(g life.Grid) []Organism {
	var out []Organism
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if s, ok := g.At(x, y).Species(); ok {
				out = append(out, Organism{X: x, Y: y, Species: s})
			}
		}
	}
	return out
}
