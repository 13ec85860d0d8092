//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"multilife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// HUD renders the info panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	iterations int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width, iterations int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, iterations: iterations, title: buildTitle(sim)}
}

// Update refreshes the cached lines from the simulation's parameters.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, h.title, "", "Iterations: "+strconv.Itoa(h.iterations))
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, g := range provider.Parameters().Groups {
		h.lines = append(h.lines, "", g.Name)
		for _, p := range g.Params {
			h.lines = append(h.lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	h.lines = append(h.lines, "", "Enter  final generation", "Bksp   initial generation", "R/S    reseed", "Q      quit")
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i, line := range h.lines {
		y := 8 + (i+1)*lineHeight
		if y > height {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, 8, y, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "World"
	}
	return strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
}
