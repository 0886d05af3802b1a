// Package config loads the optional TOML defaults file shared by the
// problem CLI binaries (spec.md §9.2). Precedence is CLI flag > config file
// > built-in default; this package only supplies the middle tier.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults holds the fields every `cmd/<problem>` binary may pin in a
// config file instead of repeating on every invocation.
type Defaults struct {
	Solver    string  `toml:"solver"`
	History   string  `toml:"history"`
	TimeLimit float64 `toml:"time_limit"`
	Epsilon   float64 `toml:"epsilon"`
}

// Load reads path and decodes it into a Defaults. A missing file is not an
// error: it returns the zero Defaults, so callers can unconditionally
// overlay CLI flags on top.
func Load(path string) (Defaults, error) {
	var d Defaults
	if path == "" {
		return d, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return d, nil
	}
	_, err := toml.DecodeFile(path, &d)
	return d, err
}
