package boards

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"board-stubgen/internal/diagnostic"
)

const (
	// ConfigGlob locates board makefiles relative to a CircuitPython checkout.
	ConfigGlob = "ports/*/boards/*/mpconfigboard.mk"
	// PinsFile is the pin table expected next to each makefile.
	PinsFile = "pins.c"
)

// DefaultExcludedManufacturers is the manufacturer policy used when none is
// configured.
var DefaultExcludedManufacturers = []string{"Nadda-Reel Company LLC"}

// Policy controls which discovered boards are kept.
type Policy struct {
	// ExcludedManufacturers drops boards whose manufacturer matches exactly.
	ExcludedManufacturers []string
}

// DefaultPolicy returns the default board policy.
func DefaultPolicy() Policy {
	return Policy{ExcludedManufacturers: slices.Clone(DefaultExcludedManufacturers)}
}

// Excludes reports whether a board with the given manufacturer is dropped.
func (p Policy) Excludes(manufacturer string) bool {
	return slices.Contains(p.ExcludedManufacturers, manufacturer)
}

// Board is a discovered board definition with a pin table.
type Board struct {
	// SitePath is the board directory name, also used on circuitpython.org.
	SitePath string
	// Dir is the board directory within the scanned file system.
	Dir string
	// ConfigPath is the mpconfigboard.mk path within the scanned file system.
	ConfigPath string
	// PinsPath is the pins.c path within the scanned file system.
	PinsPath string
	// Config holds the normalized USB identity.
	Config Config
}

// Description is "<manufacturer> <product>" when both are known, otherwise
// the board directory name.
func (b Board) Description() string {
	if b.Config.Manufacturer != "" && b.Config.Product != "" {
		return b.Config.Manufacturer + " " + b.Config.Product
	}

	return b.SitePath
}

// Scan finds every board under fsys in lexical path order. Skipped boards are
// reported as info diagnostics; read failures abort the scan.
func Scan(fsys fs.FS, policy Policy) ([]Board, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	configs, err := fs.Glob(fsys, ConfigGlob)
	if err != nil {
		return nil, diags, fmt.Errorf("matching %s: %w", ConfigGlob, err)
	}

	var boards []Board

	for _, configPath := range configs {
		dir := path.Dir(configPath)
		site := path.Base(dir)
		pinsPath := path.Join(dir, PinsFile)

		ok, err := bothRegular(fsys, configPath, pinsPath)
		if err != nil {
			return nil, diags, err
		}

		if !ok {
			diags.AddInfo(diagnostic.CodeMissingPins, "no "+PinsFile+" next to board config", site, configPath)
			continue
		}

		cfg, err := readConfig(fsys, configPath)
		if err != nil {
			return nil, diags, err
		}

		if policy.Excludes(cfg.Manufacturer) {
			diags.AddInfo(diagnostic.CodeExcludedBoard,
				fmt.Sprintf("manufacturer %q is excluded", cfg.Manufacturer), site, configPath)
			continue
		}

		boards = append(boards, Board{
			SitePath:   site,
			Dir:        dir,
			ConfigPath: configPath,
			PinsPath:   pinsPath,
			Config:     cfg.Normalized(),
		})
	}

	return boards, diags, nil
}

func readConfig(fsys fs.FS, name string) (Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Config{}, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}

	return cfg, nil
}

// bothRegular reports whether every name exists as a regular file. Only
// absence is treated as a negative answer; other stat errors are returned.
func bothRegular(fsys fs.FS, names ...string) (bool, error) {
	for _, name := range names {
		info, err := fs.Stat(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("checking %s: %w", name, err)
		}

		if !info.Mode().IsRegular() {
			return false, nil
		}
	}

	return true, nil
}
