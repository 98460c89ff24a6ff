package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"board-stubgen/internal/boards"
	"board-stubgen/internal/gen"
	"board-stubgen/internal/metadata"
)

// DefaultFilename is looked up in the repository root when no config path is
// given.
const DefaultFilename = "board-stubgen.yaml"

// Default locations relative to the repository root.
const (
	DefaultCircuitPythonDir = "circuitpython"
	DefaultGenericStub      = "stubs/board/__init__.pyi"
	DefaultOutputDir        = "boards"
)

// Config is the generator configuration.
type Config struct {
	Version string `yaml:"version"`
	// Root is the repository root other paths are relative to. It is not
	// read from the file.
	Root                  string         `yaml:"-"`
	CircuitPythonDir      string         `yaml:"circuitpython_dir"`
	GenericStub           string         `yaml:"generic_stub"`
	OutputDir             string         `yaml:"output_dir"`
	SiteURL               string         `yaml:"site_url"`
	MetadataOrder         metadata.Order `yaml:"metadata_order"`
	ExcludedManufacturers []string       `yaml:"excluded_manufacturers"`
}

// Default returns the configuration used when no file is present.
func Default(root string) Config {
	cfg := Config{Root: root}
	applyDefaults(&cfg)

	return cfg
}

// Load reads the config at path, or the default file in root when path is
// empty. A missing default file is not an error.
func Load(root, path string) (Config, error) {
	if path == "" {
		path = filepath.Join(root, DefaultFilename)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Default(root), nil
		}
	}

	return LoadFile(root, path)
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(root, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(root, data)
}

// Parse parses YAML data into a Config.
func Parse(root string, data []byte) (Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.Root = root
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for optional fields. An explicitly
// empty excluded_manufacturers list is kept empty.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.CircuitPythonDir == "" {
		cfg.CircuitPythonDir = DefaultCircuitPythonDir
	}

	if cfg.GenericStub == "" {
		cfg.GenericStub = DefaultGenericStub
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = gen.DefaultSiteURL
	}

	if cfg.MetadataOrder == "" {
		cfg.MetadataOrder = metadata.OrderNone
	}

	if cfg.ExcludedManufacturers == nil {
		cfg.ExcludedManufacturers = slices.Clone(boards.DefaultExcludedManufacturers)
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if c.Version != "1" {
		return fmt.Errorf("unsupported config version %q", c.Version)
	}

	if !c.MetadataOrder.Valid() {
		return fmt.Errorf("unknown metadata_order %q (want none, site_path or vid_pid)", c.MetadataOrder)
	}

	return nil
}

// Resolve returns p joined to the root unless it is already absolute.
func (c Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.Root, filepath.FromSlash(p))
}

// CircuitPythonPath is the absolute CircuitPython checkout location.
func (c Config) CircuitPythonPath() string { return c.Resolve(c.CircuitPythonDir) }

// GenericStubPath is the absolute generic stub location.
func (c Config) GenericStubPath() string { return c.Resolve(c.GenericStub) }

// OutputPath is the absolute output directory.
func (c Config) OutputPath() string { return c.Resolve(c.OutputDir) }

// MetadataPath is the absolute metadata.json location.
func (c Config) MetadataPath() string {
	return filepath.Join(c.OutputPath(), metadata.Filename)
}

// Policy returns the board policy described by the config.
func (c Config) Policy() boards.Policy {
	return boards.Policy{ExcludedManufacturers: slices.Clone(c.ExcludedManufacturers)}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
