package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"multilife/pkg/sims/life"
)

// Image draws g with each cell as a scale x scale block.
func Image(g life.Grid, palette []color.RGBA, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	size := g.Size()
	cells := g.Cells()
	row := make([]uint8, size)
	line := make([]byte, 4*size)
	img := image.NewRGBA(image.Rect(0, 0, size*scale, size*scale))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			row[x] = cells[y*size+x].PaletteIndex()
		}
		FillPaletteRGBA(line, row, palette)
		for dy := 0; dy < scale; dy++ {
			off := img.PixOffset(0, y*scale+dy)
			for x := 0; x < size; x++ {
				px := line[4*x : 4*x+4]
				for dx := 0; dx < scale; dx++ {
					copy(img.Pix[off+4*(x*scale+dx):], px)
				}
			}
		}
	}
	return img
}

// WritePNG encodes Image(g, palette, scale) as PNG.
func WritePNG(w io.Writer, g life.Grid, palette []color.RGBA, scale int) error {
	if err := png.Encode(w, Image(g, palette, scale)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
