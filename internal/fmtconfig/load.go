package fmtconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestName = "gdformat.toml"

type fileConfig struct {
	LineLengthMaximum      *int `toml:"line_length_maximum"`
	IndentInMultilineBlock *int `toml:"indent_in_multiline_block"`
}

// Find walks up from startDir looking for a gdformat.toml, the same way
// a project root is located. It returns ok=false, no error, if none is
// found before reaching the filesystem root.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("fmtconfig: resolve start dir: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("fmtconfig: stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads and decodes the TOML file at path onto Default(), so that
// any field the file omits keeps its spec default.
func Load(path string) (Options, error) {
	opts := Default()
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if fc.LineLengthMaximum != nil {
		opts.LineLengthMaximum = *fc.LineLengthMaximum
	}
	if fc.IndentInMultilineBlock != nil {
		opts.IndentInMultilineBlock = *fc.IndentInMultilineBlock
	}
	return opts, nil
}

// LoadFromDir finds and loads a gdformat.toml starting at dir, or
// returns Default() unchanged if none exists.
func LoadFromDir(dir string) (Options, error) {
	path, ok, err := Find(dir)
	if err != nil {
		return Options{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
