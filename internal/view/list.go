package view

import (
	"fmt"

	"github.com/protanno/protanno/internal/protein"
)

// ListEntry is one line of the annotation list view.
type ListEntry struct {
	// Color is the swatch color; empty for the placeholder entry.
	Color string `json:"color,omitempty"`
	// Text is "[start-end] label" for annotations, or the placeholder text.
	Text string `json:"text"`
	// Placeholder marks the single entry shown when there are no annotations.
	Placeholder bool `json:"placeholder,omitempty"`
}

// PlaceholderText is shown when a protein has no annotations yet.
const PlaceholderText = "No annotations yet."

// ListEntries rebuilds the annotation list from scratch: one entry per
// annotation in collection order, or exactly one placeholder entry when
// the collection is empty.
func ListEntries(annotations []protein.Annotation) []ListEntry {
	if len(annotations) == 0 {
		return []ListEntry{{Text: PlaceholderText, Placeholder: true}}
	}

	entries := make([]ListEntry, 0, len(annotations))
	for _, a := range annotations {
		entries = append(entries, ListEntry{
			Color: a.Color,
			Text:  fmt.Sprintf("[%d-%d] %s", a.StartIndex, a.EndIndex, a.Label),
		})
	}
	return entries
}
