// Package config loads lifeos settings from <DataDir>/config.yaml and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/HendryAvila/lifeos/internal/questions"
)

// FileName is the config file inside the data directory.
const FileName = "config.yaml"

// Environment overrides.
const (
	EnvHome    = "LIFEOS_HOME"
	EnvCatalog = "LIFEOS_CATALOG"
	EnvLogMode = "LIFEOS_LOG_MODE"
	EnvSilent  = "LIFEOS_SILENT"
)

// Log modes understood by the logger.
const (
	LogDevelopment = "development"
	LogProduction  = "production"
)

// Config holds application settings.
type Config struct {
	// DataDir holds the journal database and config file. It comes from
	// LIFEOS_HOME or the default; the file itself cannot move it.
	DataDir string `yaml:"-"`

	// CatalogFile is a YAML question catalog. Empty means the built-in one.
	// Relative paths resolve against DataDir.
	CatalogFile string `yaml:"catalog_file,omitempty"`

	LogMode string `yaml:"log_mode,omitempty"`

	// SilentMode asks the assistant for a terse, no-lecture tone.
	SilentMode bool `yaml:"silent_mode"`

	// RequirePhoto refuses the first save of a day without an identity photo.
	RequirePhoto bool `yaml:"require_photo,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".lifeos"),
		LogMode: LogDevelopment,
	}
}

// Load resolves the data directory, reads its config file and applies
// environment overrides.
func Load() (Config, error) {
	dir := Default().DataDir
	if v := strings.TrimSpace(os.Getenv(EnvHome)); v != "" {
		dir = v
	}
	return LoadFrom(dir)
}

// LoadFrom reads <dir>/config.yaml (a missing file is fine) and applies
// environment overrides other than LIFEOS_HOME.
func LoadFrom(dir string) (Config, error) {
	cfg, err := readFile(dir)
	if err != nil {
		return Config{}, err
	}

	if v := strings.TrimSpace(os.Getenv(EnvCatalog)); v != "" {
		cfg.CatalogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogMode)); v != "" {
		cfg.LogMode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSilent)); v != "" {
		silent, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSilent, err)
		}
		cfg.SilentMode = silent
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readFile returns defaults overlaid with <dir>/config.yaml only.
func readFile(dir string) (Config, error) {
	cfg := Default()
	cfg.DataDir = dir

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
		}
	}
	return cfg, nil
}

// Update applies mutate to the file-backed config in dir and writes it
// back. Environment overrides are never persisted.
func Update(dir string, mutate func(*Config)) error {
	cfg, err := readFile(dir)
	if err != nil {
		return err
	}
	mutate(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.Save()
}

// Validate checks field values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("config: data dir is required")
	}
	switch strings.ToLower(c.LogMode) {
	case "", LogDevelopment, "dev", LogProduction, "prod":
		return nil
	default:
		return fmt.Errorf("config: invalid log mode %q (use %s or %s)", c.LogMode, LogDevelopment, LogProduction)
	}
}

// Save writes the file-backed fields to <DataDir>/config.yaml.
func (c Config) Save() error {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.DataDir, FileName), data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// CatalogPath returns the resolved catalog file, or "" for the built-in one.
func (c Config) CatalogPath() string {
	if c.CatalogFile == "" {
		return ""
	}
	if filepath.IsAbs(c.CatalogFile) {
		return c.CatalogFile
	}
	return filepath.Join(c.DataDir, c.CatalogFile)
}

// Catalog loads the configured question catalog.
func (c Config) Catalog() (*questions.Catalog, error) {
	path := c.CatalogPath()
	if path == "" {
		return questions.Default(), nil
	}
	return questions.Load(path)
}
