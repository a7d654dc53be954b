package view

import (
	"fmt"

	"github.com/protanno/protanno/internal/protein"
)

// DefaultStructureColor is the neutral color applied to every residue not
// covered by an annotation.
const DefaultStructureColor = "#4b5563"

// SelectionScheme translates annotations into an ordered list of
// (color, residue-range-selector) pairs for the structure viewer, with a
// trailing catch-all so coloring is total over the structure.
//
// Residue selectors assume the structure is numbered 1..N in sequence
// order, so sequence index i maps to residue i+1. Structures with gaps,
// insertion codes, or multiple chains will color incorrectly; the offset
// is not validated against the file's actual numbering.
func SelectionScheme(annotations []protein.Annotation) [][2]string {
	scheme := make([][2]string, 0, len(annotations)+1)
	for _, a := range annotations {
		selector := fmt.Sprintf("%d-%d", a.StartIndex+1, a.EndIndex+1)
		scheme = append(scheme, [2]string{a.Color, selector})
	}
	scheme = append(scheme, [2]string{DefaultStructureColor, "*"})
	return scheme
}
