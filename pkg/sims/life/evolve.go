package life

// offsets lists neighbour deltas as (dx, dy). The order decides which species
// a newborn cell takes when counts tie, so it must not change.
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the in-bounds neighbours of (x, y) in enumeration order.
// Corner cells have 3, edge cells 5 and interior cells 8.
func Neighbors(g Grid, x, y int) []Cell {
	var buf [8]Cell
	return append([]Cell(nil), neighbors(g, x, y, &buf)...)
}

func neighbors(g Grid, x, y int, buf *[8]Cell) []Cell {
	n := 0
	for _, o := range offsets {
		nx, ny := x+o[0], y+o[1]
		if nx < 0 || nx >= g.size || ny < 0 || ny >= g.size {
			continue
		}
		buf[n] = g.cells[ny*g.size+nx]
		n++
	}
	return buf[:n]
}

// Transition computes the next state of cell from its neighbours in the
// previous generation.
func Transition(cell Cell, neighbors []Cell) Cell {
	live := 0
	for _, n := range neighbors {
		if n.Alive() {
			live++
		}
	}
	if cell.Alive() {
		if live == 2 || live == 3 {
			return cell
		}
		return Dead
	}
	if live == 3 {
		return dominant(neighbors)
	}
	return Dead
}

// dominant returns the most frequent live cell value. Among equal counts the
// value seen first wins.
func dominant(neighbors []Cell) Cell {
	var (
		seen   [8]Cell
		counts [8]int
		n      int
	)
	for _, c := range neighbors {
		if !c.Alive() {
			continue
		}
		i := 0
		for i < n && seen[i] != c {
			i++
		}
		if i == n {
			seen[n] = c
			n++
		}
		counts[i]++
	}
	best := 0
	for i := 1; i < n; i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return seen[best]
}

// Step advances g by one generation. Every cell reads only g, so the update
// is synchronous.
func Step(g Grid) Grid {
	next := Grid{size: g.size, cells: make([]Cell, len(g.cells))}
	step(g, next.cells)
	return next
}

func step(g Grid, dst []Cell) {
	var buf [8]Cell
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			idx := y*g.size + x
			dst[idx] = Transition(g.cells[idx], neighbors(g, x, y, &buf))
		}
	}
}

// Evolve applies Step iterations times and returns the final generation.
// Evolve(g, 0) returns g. It panics when iterations is negative.
func Evolve(g Grid, iterations int) Grid {
	if iterations < 0 {
		panic("life: negative iteration count")
	}
	if iterations == 0 {
		return g
	}
	cur := Grid{size: g.size, cells: make([]Cell, len(g.cells))}
	step(g, cur.cells)
	if iterations == 1 {
		return cur
	}
	nxt := Grid{size: g.size, cells: make([]Cell, len(g.cells))}
	for i := 1; i < iterations; i++ {
		step(cur, nxt.cells)
		cur, nxt = nxt, cur
	}
	return cur
}
