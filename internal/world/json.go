package world

import (
	"encoding/json"
	"fmt"
	"io"
)

// Snapshot is the JSON representation of a World. Fields are pointers so
// that missing keys can be told apart from zero values.
type Snapshot struct {
	Size       *int               `json:"size"`
	Species    *int               `json:"species"`
	Iterations *int               `json:"iterations"`
	Organisms  []SnapshotOrganism `json:"organisms"`
}

// SnapshotOrganism is one live cell inside a Snapshot.
type SnapshotOrganism struct {
	X       *int `json:"x"`
	Y       *int `json:"y"`
	Species *int `json:"species"`
}

// JSON is the codec for Snapshot documents.
type JSON struct{}

// Load decodes and validates a Snapshot.
func (JSON) Load(r io.Reader) (World, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return World{}, fmt.Errorf("decoding world json: %w", err)
	}
	switch {
	case snap.Size == nil:
		return World{}, fmt.Errorf("%w: missing size", ErrInvalidWorld)
	case snap.Species == nil:
		return World{}, fmt.Errorf("%w: missing species", ErrInvalidWorld)
	case snap.Iterations == nil:
		return World{}, fmt.Errorf("%w: missing iterations", ErrInvalidWorld)
	}

	organisms := make([]Organism, 0, len(snap.Organisms))
	for i, o := range snap.Organisms {
		if o.X == nil || o.Y == nil || o.Species == nil {
			return World{}, fmt.Errorf("%w: organism %d needs x, y and species", ErrInvalidWorld, i)
		}
		organisms = append(organisms, Organism{X: *o.X, Y: *o.Y, Species: *o.Species})
	}
	return Build(*snap.Size, *snap.Species, *snap.Iterations, organisms)
}

// Write encodes wd as an indented Snapshot.
func (JSON) Write(w io.Writer, wd World) error {
	zero := 0
	size, species := wd.Size, wd.Species
	snap := Snapshot{Size: &size, Species: &species, Iterations: &zero, Organisms: []SnapshotOrganism{}}
	for _, o := range Organisms(wd.Grid) {
		x, y, s := o.X, o.Y, o.Species
		snap.Organisms = append(snap.Organisms, SnapshotOrganism{X: &x, Y: &y, Species: &s})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding world json: %w", err)
	}
	return nil
}
