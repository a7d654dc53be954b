package session

import (
	"context"
	"sync"

	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/protein"
)

// Controller validates proposed annotations, sends them to the store, and
// on success appends them to the session state and re-projects all three
// views. A failed submission is terminal for that attempt; nothing is
// retried and the state is left untouched.
type Controller struct {
	proteinID string
	state     *State
	store     Store
	views     Views

	// Serializes submissions so a second submit cannot interleave its
	// append and re-render with an in-flight one.
	mu sync.Mutex
}

// NewController creates a Controller for one viewer session.
func NewController(proteinID string, state *State, store Store, views Views) *Controller {
	return &Controller{
		proteinID: proteinID,
		state:     state,
		store:     store,
		views:     views,
	}
}

// Submit validates the proposed annotation, persists it, appends it to the
// session state, and re-renders the list, sequence, and 3D views in that
// order. The appended record is built from the submitted values exactly,
// never from anything the store returns.
func (c *Controller) Submit(ctx context.Context, startIndex, endIndex int, label, color string) error {
	if startIndex < 0 || endIndex < startIndex {
		return errors.NewInvalidRange(startIndex, endIndex)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	record := protein.Annotation{
		ProteinID:  c.proteinID,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		Label:      label,
		Color:      color,
	}

	if err := c.store.Create(ctx, record); err != nil {
		return err
	}

	c.state.Append(record)

	records := c.state.Records()
	c.views.RenderList(records)
	c.views.ApplySequenceColoring(records)
	c.views.ApplyStructureColoring(records)

	return nil
}
