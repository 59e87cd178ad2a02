package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `
log:
  verbose: true
output:
  format: "pretty"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !cfg.Log.Verbose {
		t.Error("expected verbose logging to be enabled")
	}

	if cfg.Output.Format != "pretty" {
		t.Errorf("expected output format 'pretty', got %s", cfg.Output.Format)
	}
}

func TestLoadConfig_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Log.Verbose {
		t.Error("expected verbose logging to be disabled by default")
	}

	if cfg.Output.Format != "compact" {
		t.Errorf("expected default output format 'compact', got %s", cfg.Output.Format)
	}
}

func TestLoadConfig_MissingFormatDefaultsToCompact(t *testing.T) {
	content := `
log:
  verbose: false
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Output.Format != "compact" {
		t.Errorf("expected output format 'compact', got %s", cfg.Output.Format)
	}
}

func TestLoadConfig_InvalidFormatRejected(t *testing.T) {
	content := `
output:
  format: "sideways"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected an error for an invalid output format")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
