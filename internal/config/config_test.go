package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ShouldIgnoreMissing("anything") {
		t.Error("Default config should not ignore anything")
	}
	if cfg.BaseFilename() != DefaultBaseLanguageFile {
		t.Errorf("BaseFilename = %q, want %q", cfg.BaseFilename(), DefaultBaseLanguageFile)
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	content := `base_language_file: base.json
ignores:
  missing:
    - dynamic.key
    - backend.provided
  folders:
    - fixtures
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.ShouldIgnoreMissing("dynamic.key") {
		t.Error("dynamic.key should be ignored")
	}
	if cfg.ShouldIgnoreMissing("other.key") {
		t.Error("other.key should not be ignored")
	}
	if len(cfg.Ignores.Folders) != 1 || cfg.Ignores.Folders[0] != "fixtures" {
		t.Errorf("Folders = %v, want [fixtures]", cfg.Ignores.Folders)
	}
	if cfg.BaseFilename() != "base.json" {
		t.Errorf("BaseFilename = %q, want base.json", cfg.BaseFilename())
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("ignores: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(tmpDir); err == nil {
		t.Error("Expected an error for a malformed config file")
	}
}
