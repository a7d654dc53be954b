package protein

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// res3to1 maps PDB three-letter residue names to one-letter codes.
var res3to1 = map[string]byte{
	"ALA": 'A', "CYS": 'C', "ASP": 'D', "GLU": 'E',
	"PHE": 'F', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LYS": 'K', "LEU": 'L', "MET": 'M', "ASN": 'N',
	"PRO": 'P', "GLN": 'Q', "ARG": 'R', "SER": 'S',
	"THR": 'T', "VAL": 'V', "TRP": 'W', "TYR": 'Y',
}

// ExtractSequence reads a PDB file and returns the one-letter amino-acid
// sequence in ATOM-record order. Each (chain, residue number) pair
// contributes one residue, taken from its first ATOM line. Residue names
// outside the standard twenty map to 'X'.
//
// Columns follow the fixed-width PDB format: residue name 18-20, chain ID
// 22, residue sequence number 23-26 (1-based columns).
func ExtractSequence(r io.Reader) (string, error) {
	var seq strings.Builder
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "ATOM") || len(line) < 26 {
			continue
		}

		resName := strings.TrimSpace(line[17:20])
		chainID := strings.TrimSpace(line[21:22])
		resSeq := strings.TrimSpace(line[22:26])

		key := chainID + ":" + resSeq
		if seen[key] {
			continue
		}
		seen[key] = true

		aa, ok := res3to1[resName]
		if !ok {
			aa = 'X'
		}
		seq.WriteByte(aa)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read pdb: %w", err)
	}

	return seq.String(), nil
}
