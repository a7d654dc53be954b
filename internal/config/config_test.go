package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UploadMaxBytes != DefaultConfig().UploadMaxBytes {
		t.Fatalf("UploadMaxBytes = %d, want %d", cfg.UploadMaxBytes, DefaultConfig().UploadMaxBytes)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"upload_max_bytes": 1024, "db_max_open_conns": 1}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UploadMaxBytes != 1024 {
		t.Fatalf("UploadMaxBytes = %d, want 1024", cfg.UploadMaxBytes)
	}
	if cfg.DBMaxOpenConns != 1 {
		t.Fatalf("DBMaxOpenConns = %d, want 1", cfg.DBMaxOpenConns)
	}
}

func TestLoad_UnsetScalarFallsBackToDefault(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"disabled_tools": ["annotation_add"]}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UploadMaxBytes != DefaultConfig().UploadMaxBytes {
		t.Fatalf("UploadMaxBytes = %d, want default %d", cfg.UploadMaxBytes, DefaultConfig().UploadMaxBytes)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "annotation_add" {
		t.Fatalf("DisabledTools = %v, want [annotation_add]", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}
