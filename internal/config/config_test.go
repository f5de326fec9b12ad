package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv isolates a test from the caller's LIFEOS_* variables.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvHome, EnvCatalog, EnvLogMode, EnvSilent} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// --- Load ---

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %s, want %s", cfg.DataDir, dir)
	}
	if cfg.LogMode != LogDevelopment {
		t.Errorf("LogMode = %s, want %s", cfg.LogMode, LogDevelopment)
	}
	if cfg.SilentMode || cfg.CatalogFile != "" {
		t.Errorf("unexpected non-default config: %+v", cfg)
	}
}

func TestLoadFrom_ReadsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "catalog_file: mine.yaml\nlog_mode: production\nsilent_mode: true\n")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.CatalogFile != "mine.yaml" || cfg.LogMode != LogProduction || !cfg.SilentMode {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "silent_mode: [not a bool\n")

	if _, err := LoadFrom(dir); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "log_mode: production\nsilent_mode: true\n")
	t.Setenv(EnvLogMode, "development")
	t.Setenv(EnvSilent, "false")
	t.Setenv(EnvCatalog, "/etc/lifeos/catalog.yaml")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.LogMode != LogDevelopment || cfg.SilentMode || cfg.CatalogFile != "/etc/lifeos/catalog.yaml" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadFrom_BadSilentEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSilent, "sometimes")
	_, err := LoadFrom(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), EnvSilent) {
		t.Errorf("err = %v, want mention of %s", err, EnvSilent)
	}
}

func TestLoadFrom_BadLogMode(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogMode, "verbose")
	if _, err := LoadFrom(t.TempDir()); err == nil {
		t.Error("expected error for unknown log mode")
	}
}

func TestLoad_HonorsHomeEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %s, want %s", cfg.DataDir, dir)
	}
}

// --- Save ---

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "fresh")
	cfg := Default()
	cfg.DataDir = dir
	cfg.SilentMode = true
	cfg.CatalogFile = "catalog.yaml"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), dir) {
		t.Error("data dir must not be written to the file")
	}

	got, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestUpdate_DoesNotPersistEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "require_photo: true\n")
	t.Setenv(EnvCatalog, "/tmp/other-catalog.yaml")
	t.Setenv(EnvLogMode, LogProduction)

	if err := Update(dir, func(c *Config) { c.SilentMode = true }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if strings.Contains(text, "other-catalog") || strings.Contains(text, LogProduction) {
		t.Errorf("environment overrides leaked into the file:\n%s", text)
	}
	if !strings.Contains(text, "silent_mode: true") || !strings.Contains(text, "require_photo: true") {
		t.Errorf("file lost its own settings:\n%s", text)
	}

	clearEnv(t)
	got, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.CatalogFile != "" || got.LogMode != LogDevelopment || !got.SilentMode || !got.RequirePhoto {
		t.Errorf("reloaded = %+v", got)
	}
}

func TestUpdate_MalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "silent_mode: [\n")

	if err := Update(dir, func(c *Config) { c.SilentMode = true }); err == nil {
		t.Fatal("Update() over a malformed file should fail")
	}
	data, _ := os.ReadFile(filepath.Join(dir, FileName))
	if string(data) != "silent_mode: [\n" {
		t.Errorf("malformed file was overwritten: %q", data)
	}
}

// --- Catalog ---

func TestCatalog_DefaultWhenUnset(t *testing.T) {
	cfg := Default()
	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() == 0 {
		t.Error("built-in catalog should not be empty")
	}
}

func TestCatalog_RelativeFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog.yaml"), `questions:
  - id: namaz
    label: Namaz Prayed (0-5)
    type: NUMBER
    category: discipline
`)
	cfg := Config{DataDir: dir, CatalogFile: "catalog.yaml"}

	if cfg.CatalogPath() != filepath.Join(dir, "catalog.yaml") {
		t.Errorf("CatalogPath() = %s", cfg.CatalogPath())
	}
	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cat.Len())
	}
}

func TestCatalog_MissingFile(t *testing.T) {
	cfg := Config{DataDir: t.TempDir(), CatalogFile: "/nonexistent/catalog.yaml"}
	if _, err := cfg.Catalog(); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
