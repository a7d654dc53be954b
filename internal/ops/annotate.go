package ops

import (
	"context"
	"database/sql"
	"time"

	"github.com/protanno/protanno/internal/db"
	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/protein"
)

// AddAnnotationInput contains parameters for the AddAnnotation operation.
// StartIndex and EndIndex are zero-based and inclusive.
type AddAnnotationInput struct {
	ProteinID  string
	StartIndex int
	EndIndex   int
	Label      string // may be empty
	Color      string // CSS color token, used verbatim by both views
}

// AddAnnotationOutput contains the created annotation record.
type AddAnnotationOutput struct {
	Annotation protein.Annotation `json:"annotation"`
}

// AddAnnotation validates an annotation range against the protein's
// sequence and appends it to the protein's annotation collection.
func AddAnnotation(ctx context.Context, database *sql.DB, input AddAnnotationInput) (*AddAnnotationOutput, error) {
	if input.Color == "" {
		return nil, errors.NewInvalidRequest("color is required")
	}

	p, err := db.GetProtein(database, input.ProteinID)
	if err != nil {
		return nil, err
	}

	if !protein.ValidRange(input.StartIndex, input.EndIndex, len(p.Sequence)) {
		return nil, errors.NewInvalidRange(input.StartIndex, input.EndIndex)
	}

	a := &protein.Annotation{
		ProteinID:  p.ID,
		StartIndex: input.StartIndex,
		EndIndex:   input.EndIndex,
		Label:      input.Label,
		Color:      input.Color,
		CreatedAt:  time.Now().Unix(),
	}

	if err := db.InsertAnnotation(database, a); err != nil {
		return nil, err
	}

	return &AddAnnotationOutput{Annotation: *a}, nil
}

// ListAnnotationsInput contains parameters for the ListAnnotations operation.
type ListAnnotationsInput struct {
	ProteinID string
}

// ListAnnotationsOutput contains a protein's annotations in insertion order.
type ListAnnotationsOutput struct {
	Items []protein.Annotation `json:"items"`
}

// ListAnnotations retrieves a protein's annotations in insertion order.
func ListAnnotations(ctx context.Context, database *sql.DB, input ListAnnotationsInput) (*ListAnnotationsOutput, error) {
	// Verify the protein exists so an unknown ID is a 404, not an empty list
	if _, err := db.GetProtein(database, input.ProteinID); err != nil {
		return nil, err
	}

	items, err := db.ListAnnotations(database, input.ProteinID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []protein.Annotation{}
	}

	return &ListAnnotationsOutput{Items: items}, nil
}
