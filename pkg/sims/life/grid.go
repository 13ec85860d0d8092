package life

import "fmt"

// Grid is one generation of a size x size world stored in row-major order.
// A Grid is never modified after construction; operations that change cells
// return a new Grid.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid returns a grid of the given dimension with every cell dead.
// It panics when size is negative.
func NewGrid(size int) Grid {
	if size < 0 {
		panic(fmt.Sprintf("life: negative grid size %d", size))
	}
	return Grid{size: size, cells: make([]Cell, size*size)}
}

// FromCells builds a grid from row-major cells. The slice is copied.
// It panics when len(cells) != size*size.
func FromCells(size int, cells []Cell) Grid {
	if size < 0 || len(cells) != size*size {
		panic(fmt.Sprintf("life: %d cells do not form a %dx%d grid", len(cells), size, size))
	}
	return Grid{size: size, cells: append([]Cell(nil), cells...)}
}

// Size returns the grid dimension.
func (g Grid) Size() int { return g.size }

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) Cell { return g.cells[y*g.size+x] }

// Cells returns a row-major copy of the cells.
func (g Grid) Cells() []Cell { return append([]Cell(nil), g.cells...) }

// With returns a copy of g with the cell at (x, y) replaced.
func (g Grid) With(x, y int, c Cell) Grid {
	next := Grid{size: g.size, cells: g.Cells()}
	next.cells[y*g.size+x] = c
	return next
}

// Equal reports whether both grids have the same size and cells.
func (g Grid) Equal(o Grid) bool {
	if g.size != o.size {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive() {
			n++
		}
	}
	return n
}

// Census counts live cells per species id.
func (g Grid) Census() map[int]int {
	counts := make(map[int]int)
	for _, c := range g.cells {
		if s, ok := c.Species(); ok {
			counts[s]++
		}
	}
	return counts
}
