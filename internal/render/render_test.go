package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"multilife/pkg/sims/life"
)

func TestPalette(t *testing.T) {
	p := Palette(4)
	if len(p) != 5 {
		t.Fatalf("len(Palette(4)) = %d, want 5", len(p))
	}
	if p[0] != Background {
		t.Fatalf("palette[0] = %v, want background", p[0])
	}
	seen := map[color.RGBA]bool{}
	for i, c := range p[1:] {
		if c.A != 255 {
			t.Fatalf("species %d colour not opaque: %v", i, c)
		}
		if seen[c] {
			t.Fatalf("species %d reuses colour %v", i, c)
		}
		seen[c] = true
	}
	if got := len(Palette(1000)); got != 256 {
		t.Fatalf("len(Palette(1000)) = %d, want 256", got)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 255, A: 255}}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{0, 0, 0, 255, 255, 0, 0, 255, 255, 0, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}

	FillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if !bytes.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette left %v", buf)
	}
}

func TestImageScalesCells(t *testing.T) {
	g := life.NewGrid(2).With(1, 0, life.Alive(0))
	p := Palette(1)
	img := Image(g, p, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	if got := img.RGBAAt(4, 2); got != p[1] {
		t.Fatalf("pixel in live block = %v, want %v", got, p[1])
	}
	if got := img.RGBAAt(1, 4); got != Background {
		t.Fatalf("pixel in dead block = %v, want background", got)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, life.NewGrid(3), Palette(2), 2); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
}
