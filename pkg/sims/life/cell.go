package life

// Cell is the state of one grid position. The zero value is a dead cell;
// live cells carry a species id.
type Cell int32

// Dead is the empty cell.
const Dead Cell = 0

// Alive returns a live cell of the given species. Species must be >= 0.
func Alive(species int) Cell { return Cell(species + 1) }

// Alive reports whether the cell is occupied.
func (c Cell) Alive() bool { return c != Dead }

// Species returns the species id of a live cell. ok is false for dead cells.
func (c Cell) Species() (species int, ok bool) {
	if c == Dead {
		return 0, false
	}
	return int(c) - 1, true
}

// PaletteIndex maps the cell to a render value: 0 for dead cells and
// 1+species%255 for live ones.
func (c Cell) PaletteIndex() uint8 {
	s, ok := c.Species()
	if !ok {
		return 0
	}
	return uint8(1 + s%255)
}
