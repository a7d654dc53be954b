package protein

// Protein represents an uploaded structure and its extracted sequence.
type Protein struct {
	// ID is a ULID that uniquely identifies this protein; it is also the
	// URL path segment for the viewer page
	ID string

	// Filename is the stored structure file name under the uploads directory
	Filename string

	// Description is optional markdown shown on the viewer page (nullable)
	Description *string

	// Sequence is the one-letter amino-acid sequence extracted from the
	// structure file
	Sequence string

	// CreatedAt is the Unix timestamp when the protein was uploaded
	CreatedAt int64
}

// Annotation is a labeled, colored range over sequence positions.
// Indices are zero-based and inclusive on both ends.
type Annotation struct {
	ID         int64  `json:"id"`
	ProteinID  string `json:"protein_id"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	Label      string `json:"label"`
	Color      string `json:"color"`
	CreatedAt  int64  `json:"created_at"`
}

// ProteinSummary is a lightweight view for listings.
type ProteinSummary struct {
	ID              string `json:"id"`
	Filename        string `json:"filename"`
	SequenceLength  int    `json:"sequence_length"`
	AnnotationCount int    `json:"annotation_count"`
	CreatedAt       int64  `json:"created_at"`
}

// ValidRange reports whether [start, end] is a well-formed annotation range
// for a sequence of seqLen residues. Both ends are inclusive.
func ValidRange(start, end, seqLen int) bool {
	return start >= 0 && end >= start && end < seqLen
}
