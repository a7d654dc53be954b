package ops

import (
	"bytes"
	"context"
	"crypto/rand"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/protanno/protanno/internal/config"
	"github.com/protanno/protanno/internal/db"
	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/protein"
)

// UploadInput contains parameters for the Upload operation.
type UploadInput struct {
	Filename    string  // original file name, must end in .pdb
	Data        []byte  // file contents
	Description *string // optional markdown shown on the viewer page
}

// UploadOutput contains the result of the Upload operation.
type UploadOutput struct {
	ID             string `json:"id"`
	SequenceLength int    `json:"sequence_length"`
}

// Upload parses a PDB file, stores it under the uploads directory, and
// registers the protein. The stored file is named <id>.pdb so the viewer
// can serve it back for 3D rendering.
func Upload(ctx context.Context, database *sql.DB, cfg *config.Config, baseDir string, input UploadInput) (*UploadOutput, error) {
	if !strings.HasSuffix(strings.ToLower(input.Filename), ".pdb") {
		return nil, errors.NewInvalidUpload("Please upload a .pdb file.")
	}
	if len(input.Data) == 0 {
		return nil, errors.NewInvalidUpload("uploaded file is empty")
	}
	if cfg != nil && cfg.UploadMaxBytes > 0 && int64(len(input.Data)) > cfg.UploadMaxBytes {
		return nil, errors.NewInvalidUpload("uploaded file exceeds the size limit")
	}

	sequence, err := protein.ExtractSequence(bytes.NewReader(input.Data))
	if err != nil {
		return nil, errors.NewInvalidUpload("could not parse PDB file: " + err.Error())
	}
	if sequence == "" {
		return nil, errors.NewInvalidUpload("no ATOM records found in PDB file")
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	filename := id + ".pdb"
	path := filepath.Join(db.UploadsDir(baseDir), filename)
	if err := os.WriteFile(path, input.Data, 0600); err != nil {
		return nil, errors.NewInternal(err)
	}

	p := &protein.Protein{
		ID:          id,
		Filename:    filename,
		Description: cleanOptionalString(input.Description),
		Sequence:    sequence,
		CreatedAt:   time.Now().Unix(),
	}

	if err := db.InsertProtein(database, p); err != nil {
		// Keep uploads dir consistent with the table
		_ = os.Remove(path)
		return nil, err
	}

	return &UploadOutput{
		ID:             id,
		SequenceLength: len(sequence),
	}, nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// cleanOptionalString trims an optional string, returning nil if empty.
func cleanOptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
