package protein

import (
	"fmt"
	"strings"
	"testing"
)

// atomLine builds a minimal fixed-width PDB ATOM record for one atom.
func atomLine(serial int, atom, resName, chain string, resSeq int) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s %s%4d      0.000   0.000   0.000",
		serial, atom, resName, chain, resSeq)
}

func TestExtractSequence_Basic(t *testing.T) {
	pdb := strings.Join([]string{
		"HEADER    TEST PROTEIN",
		atomLine(1, " N", "MET", "A", 1),
		atomLine(2, " CA", "MET", "A", 1),
		atomLine(3, " N", "GLY", "A", 2),
		atomLine(4, " N", "ALA", "A", 3),
		"TER",
		"END",
	}, "\n")

	seq, err := ExtractSequence(strings.NewReader(pdb))
	if err != nil {
		t.Fatalf("ExtractSequence: %v", err)
	}
	if seq != "MGA" {
		t.Errorf("sequence = %q, want %q", seq, "MGA")
	}
}

func TestExtractSequence_OneResiduePerAtomGroup(t *testing.T) {
	// Many atoms per residue still contribute a single letter.
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, atomLine(i+1, " CA", "TRP", "A", 1))
	}
	seq, err := ExtractSequence(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("ExtractSequence: %v", err)
	}
	if seq != "W" {
		t.Errorf("sequence = %q, want %q", seq, "W")
	}
}

func TestExtractSequence_UnknownResidue(t *testing.T) {
	pdb := strings.Join([]string{
		atomLine(1, " CA", "SEC", "A", 1), // selenocysteine, not in the standard twenty
		atomLine(2, " CA", "LYS", "A", 2),
	}, "\n")

	seq, err := ExtractSequence(strings.NewReader(pdb))
	if err != nil {
		t.Fatalf("ExtractSequence: %v", err)
	}
	if seq != "XK" {
		t.Errorf("sequence = %q, want %q", seq, "XK")
	}
}

func TestExtractSequence_MultipleChains(t *testing.T) {
	// Same residue number on different chains counts twice.
	pdb := strings.Join([]string{
		atomLine(1, " CA", "SER", "A", 1),
		atomLine(2, " CA", "THR", "B", 1),
	}, "\n")

	seq, err := ExtractSequence(strings.NewReader(pdb))
	if err != nil {
		t.Fatalf("ExtractSequence: %v", err)
	}
	if seq != "ST" {
		t.Errorf("sequence = %q, want %q", seq, "ST")
	}
}

func TestExtractSequence_IgnoresHetatmAndShortLines(t *testing.T) {
	pdb := strings.Join([]string{
		"HETATM    1  O   HOH A 101      0.000   0.000   0.000",
		"ATOM short",
		atomLine(2, " CA", "VAL", "A", 1),
	}, "\n")

	seq, err := ExtractSequence(strings.NewReader(pdb))
	if err != nil {
		t.Fatalf("ExtractSequence: %v", err)
	}
	if seq != "V" {
		t.Errorf("sequence = %q, want %q", seq, "V")
	}
}

func TestExtractSequence_Empty(t *testing.T) {
	seq, err := ExtractSequence(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ExtractSequence: %v", err)
	}
	if seq != "" {
		t.Errorf("sequence = %q, want empty", seq)
	}
}

func TestValidRange(t *testing.T) {
	cases := []struct {
		start, end, seqLen int
		want               bool
	}{
		{0, 0, 1, true},
		{2, 4, 10, true},
		{0, 9, 10, true},
		{-1, 3, 10, false},
		{5, 2, 10, false},
		{0, 10, 10, false},
		{0, 0, 0, false},
	}
	for _, tc := range cases {
		if got := ValidRange(tc.start, tc.end, tc.seqLen); got != tc.want {
			t.Errorf("ValidRange(%d, %d, %d) = %v, want %v",
				tc.start, tc.end, tc.seqLen, got, tc.want)
		}
	}
}
