// Package view projects an ordered annotation collection onto the three
// page views: per-residue sequence cells, a 3D selection scheme, and the
// annotation list. Projections are pure and rebuild from scratch on every
// call; callers re-run them whenever the collection changes.
package view

import "github.com/protanno/protanno/internal/protein"

// ResidueCell is the display state of one residue in the sequence view.
type ResidueCell struct {
	Index int    `json:"index"`
	Code  string `json:"code"`
	Color string `json:"color,omitempty"`
	Title string `json:"title,omitempty"`
}

// SequenceCells builds one cell per residue of sequence, colored by the
// annotations in collection order. Every cell starts with empty color and
// title, then each annotation paints its inclusive [start, end] range, so
// later annotations overwrite earlier ones on shared residues. Indices
// outside the sequence are skipped.
func SequenceCells(sequence string, annotations []protein.Annotation) []ResidueCell {
	cells := make([]ResidueCell, len(sequence))
	for i := range cells {
		cells[i] = ResidueCell{Index: i, Code: string(sequence[i])}
	}

	for _, a := range annotations {
		for i := a.StartIndex; i <= a.EndIndex; i++ {
			if i < 0 || i >= len(cells) {
				continue
			}
			cells[i].Color = a.Color
			cells[i].Title = a.Label
		}
	}

	return cells
}
