// Package config loads arena settings from an optional TOML file.
package config

import (
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvVar names the environment variable that points at an explicit
// config file, useful during development or other non-standard setups.
const EnvVar = "GAMEARENA_CONFIG"

// DefaultPath is the config file looked up in the working directory
// when EnvVar is unset.
const DefaultPath = "gamearena.toml"

// DefaultTitle is the window title every arena has opened with since
// the original release.
const DefaultTitle = "Let's Play!"

// Config holds the window settings an arena starts with. Options
// passed to New always win over file values.
type Config struct {
	Title            string `toml:"title"`
	TicksPerSecond   int    `toml:"ticks_per_second"`
	BackgroundColour string `toml:"background_colour"`
	BackgroundImage  string `toml:"background_image"`
	Vsync            bool   `toml:"vsync"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Title:            DefaultTitle,
		TicksPerSecond:   100,
		BackgroundColour: "BLACK",
		Vsync:            true,
	}
}

// Load resolves the arena config. The file named by EnvVar wins;
// otherwise DefaultPath is used when present. The returned Config is
// always usable, even alongside an error.
func Load() (Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return LoadFile(path)
	}
	cfg, err := LoadFile(DefaultPath)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	return cfg, err
}

// LoadFile reads one TOML file. Errors come back beside the defaults
// so the caller can log them and keep running.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WithStack(err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}
