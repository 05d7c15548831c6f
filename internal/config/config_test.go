package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amorgan/folio/internal/profile"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Title != "My Portfolio" {
		t.Errorf("expected default title %q, got %q", "My Portfolio", cfg.Title)
	}
	if cfg.OutputDir != "static_output" {
		t.Errorf("expected default output_dir %q, got %q", "static_output", cfg.OutputDir)
	}
	if cfg.ProfilePath != "assets/data/profile.json" {
		t.Errorf("expected default profile_path %q, got %q", "assets/data/profile.json", cfg.ProfilePath)
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("expected default serve.port 8080, got %d", cfg.Serve.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Title = "Ada's Corner"
	original.Description = "Notes on machines"
	original.BaseURL = "https://ada.example.com"
	original.OutputDir = "public"
	original.Serve.Port = 3000
	original.Serve.Open = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.Description != original.Description {
		t.Errorf("description: got %q, want %q", loaded.Description, original.Description)
	}
	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Serve.Port != original.Serve.Port {
		t.Errorf("serve.port: got %d, want %d", loaded.Serve.Port, original.Serve.Port)
	}
	if loaded.Serve.Open != original.Serve.Open {
		t.Errorf("serve.open: got %v, want %v", loaded.Serve.Open, original.Serve.Open)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Title != "My Portfolio" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override the output dir via env var.
	os.Setenv("FOLIO_OUTPUT_DIR", "env_output")
	defer os.Unsetenv("FOLIO_OUTPUT_DIR")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "env_output" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "env_output")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyTitle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty title")
	}
}

func TestValidateEmptyProfilePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProfilePath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty profile_path")
	}
}

func TestValidateEmptyBundleDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BundleDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty bundle_dir")
	}
}

func TestValidateEmptyOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty output_dir")
	}
}

func TestValidateBaseURL(t *testing.T) {
	cfg := DefaultConfig()

	cfg.BaseURL = "ftp://example.com"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for non-http base_url")
	}

	cfg.BaseURL = "https://example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("https base_url should be valid, got: %v", err)
	}

	cfg.BaseURL = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty base_url should be valid, got: %v", err)
	}
}

func TestValidatePortRange(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Serve.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative port")
	}

	cfg.Serve.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestWriteStarterProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "profile.json")

	err := writeStarterProfile(path, "Ada Lovelace", "ada@example.com", "adalovelace", "https://ada.example.com")
	if err != nil {
		t.Fatalf("writeStarterProfile failed: %v", err)
	}

	p, err := profile.Load(path)
	if err != nil {
		t.Fatalf("loading starter profile: %v", err)
	}
	if p.Name != "Ada Lovelace" {
		t.Errorf("name: got %q, want %q", p.Name, "Ada Lovelace")
	}
	if p.Contact.Email != "ada@example.com" {
		t.Errorf("email: got %q, want %q", p.Contact.Email, "ada@example.com")
	}
	if p.Contact.GitHub != "adalovelace" {
		t.Errorf("github: got %q, want %q", p.Contact.GitHub, "adalovelace")
	}
	if p.Updated == "" {
		t.Error("expected updated date to be set")
	}
}
