package ops

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/protanno/protanno/internal/config"
	"github.com/protanno/protanno/internal/db"
)

// validPDB is a minimal three-residue structure (MET-GLY-ALA).
var validPDB = strings.Join([]string{
	"HEADER    TEST STRUCTURE",
	pdbAtom(1, "MET", "A", 1),
	pdbAtom(2, "GLY", "A", 2),
	pdbAtom(3, "ALA", "A", 3),
	"END",
}, "\n")

func pdbAtom(serial int, resName, chain string, resSeq int) string {
	return fmt.Sprintf("ATOM  %5d  CA  %3s %s%4d      0.000   0.000   0.000",
		serial, resName, chain, resSeq)
}

func setupTest(t *testing.T) (*sql.DB, *config.Config, string) {
	t.Helper()
	baseDir := t.TempDir()
	database, err := db.Init(baseDir)
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database, config.DefaultConfig(), baseDir
}

func seedUpload(t *testing.T, database *sql.DB, cfg *config.Config, baseDir string) string {
	t.Helper()
	out, err := Upload(context.Background(), database, cfg, baseDir, UploadInput{
		Filename: "structure.pdb",
		Data:     []byte(validPDB),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return out.ID
}
