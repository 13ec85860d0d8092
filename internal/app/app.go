//go:build ebiten

package app

import (
	"image/color"
	"time"

	"multilife/internal/render"
	"multilife/internal/ui"
	"multilife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type advancer interface {
	Advance(n int)
}

type restorer interface {
	Restore()
}

// Game shows the first and last generation of a simulation. Intermediate
// generations are computed but never drawn.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	scale      int
	hudWidth   int
	iterations int
	seed       int64
	random     bool
	final      bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, iterations int, palette []color.RGBA) *Game {
	size := sim.Size()
	return &Game{
		sim:        sim,
		painter:    render.NewGridPainter(size.W, size.H, palette),
		hud:        ui.NewHUD(sim, cfg.HUDWidth, iterations),
		scale:      cfg.Scale,
		hudWidth:   cfg.HUDWidth,
		iterations: iterations,
		seed:       cfg.Seed,
		random:     cfg.Input == "",
	}
}

// Reset reseeds a random world. File-backed worlds go back to the loaded grid.
func (g *Game) Reset(seed int64) {
	g.final = false
	if !g.random {
		g.restore()
		return
	}
	g.seed = seed
	g.sim.Reset(seed)
}

func (g *Game) restore() {
	if r, ok := g.sim.(restorer); ok {
		r.Restore()
		g.final = false
	}
}

func (g *Game) finish() {
	if g.final {
		return
	}
	if a, ok := g.sim.(advancer); ok {
		a.Advance(g.iterations)
	} else {
		for i := 0; i < g.iterations; i++ {
			g.sim.Step()
		}
	}
	g.final = true
}

// Update handles input. Enter jumps to the final generation in one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.finish()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.restore()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.random {
		g.Reset(time.Now().UnixNano())
	}
	g.hud.Update()
	return nil
}

// Draw renders the current generation and the info panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
