package world

import (
	"encoding/xml"
	"fmt"
	"io"
)

type xmlLife struct {
	XMLName   xml.Name      `xml:"life"`
	World     xmlHeader     `xml:"world"`
	Organisms []xmlOrganism `xml:"organisms>organism"`
}

type xmlHeader struct {
	Cells      *int `xml:"cells"`
	Species    *int `xml:"species"`
	Iterations *int `xml:"iterations"`
}

type xmlOrganism struct {
	X       *int `xml:"x_pos"`
	Y       *int `xml:"y_pos"`
	Species *int `xml:"species"`
}

// XML is the codec for the <life> document format.
type XML struct{}

// Load decodes and validates a <life> document.
func (XML) Load(r io.Reader) (World, error) {
	var doc xmlLife
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return World{}, fmt.Errorf("decoding world xml: %w", err)
	}
	h := doc.World
	switch {
	case h.Cells == nil:
		return World{}, fmt.Errorf("%w: missing world/cells", ErrInvalidWorld)
	case h.Species == nil:
		return World{}, fmt.Errorf("%w: missing world/species", ErrInvalidWorld)
	case h.Iterations == nil:
		return World{}, fmt.Errorf("%w: missing world/iterations", ErrInvalidWorld)
	}

	organisms := make([]Organism, 0, len(doc.Organisms))
	for i, o := range doc.Organisms {
		if o.X == nil || o.Y == nil || o.Species == nil {
			return World{}, fmt.Errorf("%w: organism %d needs x_pos, y_pos and species", ErrInvalidWorld, i)
		}
		organisms = append(organisms, Organism{X: *o.X, Y: *o.Y, Species: *o.Species})
	}
	return Build(*h.Cells, *h.Species, *h.Iterations, organisms)
}

// Write encodes wd as an indented <life> document.
func (XML) Write(w io.Writer, wd World) error {
	zero := 0
	size, species := wd.Size, wd.Species
	doc := xmlLife{World: xmlHeader{Cells: &size, Species: &species, Iterations: &zero}}
	for _, o := range Organisms(wd.Grid) {
		x, y, s := o.X, o.Y, o.Species
		doc.Organisms = append(doc.Organisms, xmlOrganism{X: &x, Y: &y, Species: &s})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing world xml: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding world xml: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing world xml: %w", err)
	}
	return nil
}
