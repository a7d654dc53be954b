package ops

import (
	"context"
	"database/sql"

	"github.com/protanno/protanno/internal/db"
	"github.com/protanno/protanno/internal/protein"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID string // required
}

// FetchOutput contains a protein and its annotations in insertion order.
type FetchOutput struct {
	ID          string               `json:"id"`
	Filename    string               `json:"filename"`
	Description *string              `json:"description,omitempty"`
	Sequence    string               `json:"sequence"`
	CreatedAt   int64                `json:"created_at"`
	Annotations []protein.Annotation `json:"annotations"`
}

// Fetch retrieves a protein by ID together with its annotations.
func Fetch(ctx context.Context, database *sql.DB, input FetchInput) (*FetchOutput, error) {
	p, err := db.GetProtein(database, input.ID)
	if err != nil {
		return nil, err
	}

	annotations, err := db.ListAnnotations(database, p.ID)
	if err != nil {
		return nil, err
	}
	// Ensure we return an empty array rather than nil
	if annotations == nil {
		annotations = []protein.Annotation{}
	}

	return &FetchOutput{
		ID:          p.ID,
		Filename:    p.Filename,
		Description: p.Description,
		Sequence:    p.Sequence,
		CreatedAt:   p.CreatedAt,
		Annotations: annotations,
	}, nil
}
