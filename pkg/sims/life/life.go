package life

import (
	"strconv"

	"multilife/pkg/core"
)

// Life drives a Grid through generations for callers that hold mutable
// state, such as the viewer. The grids it hands out are still immutable.
type Life struct {
	cfg     Config
	initial Grid
	grid    Grid
	gen     int
	render  []uint8
}

// New returns a Life with every cell dead.
func New(cfg Config) *Life {
	g := NewGrid(cfg.Size)
	return &Life{cfg: cfg, initial: g, grid: g, render: make([]uint8, len(g.cells))}
}

// FromGrid returns a Life that starts from g.
func FromGrid(g Grid, species int) *Life {
	cfg := DefaultConfig()
	cfg.Size = g.Size()
	cfg.Species = species
	l := &Life{cfg: cfg, initial: g, grid: g, render: make([]uint8, len(g.cells))}
	l.refresh()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.size, H: l.grid.size} }

// Species returns the declared species count.
func (l *Life) Species() int { return l.cfg.Species }

// Grid returns the current generation.
func (l *Life) Grid() Grid { return l.grid }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.gen }

// Cells exposes the render buffer, one PaletteIndex per cell.
func (l *Life) Cells() []uint8 { return l.render }

// Reset replaces the world with a random one. A zero seed uses the
// configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	size := l.grid.size
	slots := make([]int, size*size)
	core.FillSpecies(core.NewRNG(seed), slots, l.cfg.Density, l.cfg.Species)
	cells := make([]Cell, len(slots))
	for i, s := range slots {
		if s >= 0 {
			cells[i] = Alive(s)
		}
	}
	l.initial = Grid{size: size, cells: cells}
	l.Restore()
}

// Restore returns to the grid the world was built or last reset from.
func (l *Life) Restore() {
	l.grid = l.initial
	l.gen = 0
	l.refresh()
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.Advance(1) }

// Advance computes n generations in one call.
func (l *Life) Advance(n int) {
	if n <= 0 {
		return
	}
	l.grid = Evolve(l.grid, n)
	l.gen += n
	l.refresh()
}

// Parameters reports the world settings and the live census.
func (l *Life) Parameters() core.ParameterSnapshot {
	world := core.ParameterGroup{Name: "World", Params: []core.Parameter{
		{Key: "size", Label: "Size", Value: strconv.Itoa(l.grid.size)},
		{Key: "species", Label: "Species", Value: strconv.Itoa(l.cfg.Species)},
		{Key: "generation", Label: "Generation", Value: strconv.Itoa(l.gen)},
		{Key: "population", Label: "Population", Value: strconv.Itoa(l.grid.Population())},
	}}
	census := l.grid.Census()
	pop := core.ParameterGroup{Name: "Census"}
	for s := 0; s < l.cfg.Species; s++ {
		key := strconv.Itoa(s)
		pop.Params = append(pop.Params, core.Parameter{
			Key:   "species." + key,
			Label: "Species " + key,
			Value: strconv.Itoa(census[s]),
		})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{world, pop}}
}

func (l *Life) refresh() {
	if len(l.render) != len(l.grid.cells) {
		l.render = make([]uint8, len(l.grid.cells))
	}
	for i, c := range l.grid.cells {
		l.render[i] = c.PaletteIndex()
	}
}
