// Package session holds the page session's annotation collection and the
// submission controller that keeps the sequence, 3D, and list views
// consistent with it. The collection is seeded once from a server
// snapshot, grows only through Controller.Submit, and is never edited or
// shrunk within a session.
package session

import (
	"context"

	"github.com/protanno/protanno/internal/protein"
)

// State is the ordered in-memory annotation collection, the single source
// of truth for a viewer session. View binders read it through Records;
// only the controller mutates it.
type State struct {
	records []protein.Annotation
}

// NewState creates a State seeded from a server-provided snapshot.
// The snapshot slice is copied; the caller keeps ownership of its own.
func NewState(initial []protein.Annotation) *State {
	s := &State{}
	s.records = append(s.records, initial...)
	return s
}

// Append adds one record to the end of the collection.
func (s *State) Append(record protein.Annotation) {
	s.records = append(s.records, record)
}

// Len returns the number of records.
func (s *State) Len() int {
	return len(s.records)
}

// Records returns the full ordered collection. The returned slice is a
// copy; mutating it does not affect the state.
func (s *State) Records() []protein.Annotation {
	out := make([]protein.Annotation, len(s.records))
	copy(out, s.records)
	return out
}

// Store is the remote keeper of annotation records. Create persists one
// record scoped to its ProteinID and returns an error when the store
// rejects it; the record's ID field is ignored.
type Store interface {
	Create(ctx context.Context, record protein.Annotation) error
}

// Views re-projects the annotation collection onto the three page views.
// Implementations must handle each call as a full rebuild from the given
// records; nothing is diffed against previous calls.
type Views interface {
	RenderList(records []protein.Annotation)
	ApplySequenceColoring(records []protein.Annotation)
	ApplyStructureColoring(records []protein.Annotation)
}
