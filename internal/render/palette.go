package render

import (
	"image/color"
	"math"
)

// Background is the colour of dead cells.
var Background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// Palette returns Background followed by one colour per species, capped at
// 255 species to match life.Cell.PaletteIndex.
func Palette(species int) []color.RGBA {
	if species < 0 {
		species = 0
	}
	if species > 255 {
		species = 255
	}
	p := make([]color.RGBA, species+1)
	p[0] = Background
	for s := 0; s < species; s++ {
		// golden-ratio hue walk keeps neighbouring ids apart
		h := math.Mod(float64(s)*0.618033988749895, 1)
		p[s+1] = hsv(h, 0.75, 0.95)
	}
	return p
}

func hsv(h, s, v float64) color.RGBA {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 255}
}
