// Package config holds the engine settings: output filenames, accepted
// input extensions, and axis labels used by the shell. Settings load from
// an optional TOML file; every field has a default, so a partial or
// missing file is fine.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the root configuration.
type Settings struct {
	// LedgerFilename is the persisted results table, written into the
	// working directory. It is excluded from candidate input files.
	LedgerFilename string `toml:"ledger_filename"`

	// SpreadsheetFilename is the best-effort xlsx mirror of the ledger.
	SpreadsheetFilename string `toml:"spreadsheet_filename"`

	// SupportedExtensions lists the input file extensions considered when
	// scanning a working directory. Matched case-insensitively.
	SupportedExtensions []string `toml:"supported_extensions"`

	// Axis labels, used by the shell when presenting curves.
	PotentialLabel string `toml:"potential_label"`
	CurrentLabel   string `toml:"current_label"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		LedgerFilename:      "data.csv",
		SpreadsheetFilename: "data.xlsx",
		SupportedExtensions: []string{".csv"},
		PotentialLabel:      "Potential (V)",
		CurrentLabel:        "Current (A)",
	}
}

// Load reads settings from a TOML file layered over the defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (Settings, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// normalize lowercases extensions and ensures the leading dot.
func (s *Settings) normalize() {
	for i, ext := range s.SupportedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.SupportedExtensions[i] = ext
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.LedgerFilename == "" {
		return errors.New("ledger_filename must not be empty")
	}
	if s.SpreadsheetFilename == "" {
		return errors.New("spreadsheet_filename must not be empty")
	}
	if s.LedgerFilename == s.SpreadsheetFilename {
		return errors.New("ledger_filename and spreadsheet_filename must differ")
	}
	if len(s.SupportedExtensions) == 0 {
		return errors.New("supported_extensions must not be empty")
	}
	for _, ext := range s.SupportedExtensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}
	return nil
}

// Supported reports whether filename has one of the accepted extensions.
func (s Settings) Supported(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range s.SupportedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
