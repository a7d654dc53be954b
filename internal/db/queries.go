package db

import (
	"database/sql"

	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/protein"
)

// InsertProtein stores a new protein in the database.
func InsertProtein(db *sql.DB, p *protein.Protein) error {
	description := toNullString(p.Description)

	query := `
		INSERT INTO proteins (id, filename, description, sequence, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, p.ID, p.Filename, description, p.Sequence, p.CreatedAt)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetProtein retrieves a protein by its ULID.
func GetProtein(db *sql.DB, id string) (*protein.Protein, error) {
	query := `
		SELECT id, filename, description, sequence, created_at
		FROM proteins
		WHERE id = ?
	`

	var (
		p           protein.Protein
		description sql.NullString
	)
	err := db.QueryRow(query, id).Scan(&p.ID, &p.Filename, &description, &p.Sequence, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	p.Description = fromNullString(description)

	return &p, nil
}

// ListProteins retrieves protein summaries, newest first, with their
// annotation counts. Returns the page plus the total number of proteins.
func ListProteins(db *sql.DB, limit, offset int) ([]protein.ProteinSummary, int, error) {
	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM proteins").Scan(&total); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	query := `
		SELECT p.id, p.filename, LENGTH(p.sequence), COUNT(a.id), p.created_at
		FROM proteins p
		LEFT JOIN annotations a ON a.protein_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	defer rows.Close()

	var items []protein.ProteinSummary
	for rows.Next() {
		var s protein.ProteinSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.SequenceLength, &s.AnnotationCount, &s.CreatedAt); err != nil {
			return nil, 0, errors.NewInternal(err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	return items, total, nil
}

// InsertAnnotation stores a new annotation and fills in its assigned ID.
func InsertAnnotation(db *sql.DB, a *protein.Annotation) error {
	query := `
		INSERT INTO annotations (protein_id, start_index, end_index, label, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query, a.ProteinID, a.StartIndex, a.EndIndex, a.Label, a.Color, a.CreatedAt)
	if err != nil {
		return errors.NewInternal(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewInternal(err)
	}
	a.ID = id

	return nil
}

// ListAnnotations retrieves a protein's annotations in insertion order.
func ListAnnotations(db *sql.DB, proteinID string) ([]protein.Annotation, error) {
	query := `
		SELECT id, protein_id, start_index, end_index, label, color, created_at
		FROM annotations
		WHERE protein_id = ?
		ORDER BY id ASC
	`

	rows, err := db.Query(query, proteinID)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var items []protein.Annotation
	for rows.Next() {
		var a protein.Annotation
		if err := rows.Scan(&a.ID, &a.ProteinID, &a.StartIndex, &a.EndIndex, &a.Label, &a.Color, &a.CreatedAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return items, nil
}

// toNullString converts a *string to sql.NullString.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString converts a sql.NullString to *string.
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
