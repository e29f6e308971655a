// Package config loads sortlist settings from TOML.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/sortlist/internal/shared"
)

//go:embed config.example.toml
var exampleConf []byte

// Env overrides, applied after the file.
const (
	EnvTheme    = "SORTLIST_THEME"
	EnvLogLevel = "SORTLIST_LOG_LEVEL"
)

// Themes lists the theme names the UI knows about.
var Themes = []string{"classic", "neon", "mono"}

// Config is the application configuration.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig controls the terminal surface.
type UIConfig struct {
	Theme       string `toml:"theme"`
	AltScreen   bool   `toml:"alt_screen"`
	Mouse       bool   `toml:"mouse"`
	Placeholder string `toml:"placeholder"`
	CharLimit   int    `toml:"char_limit"`
}

// LogConfig controls file logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration embedded in the binary.
func Default() *Config {
	var cfg Config
	if err := toml.Unmarshal(exampleConf, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &cfg
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true; the defaults are returned instead.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", shared.ErrInvalidConfig, path, err)
		}
	case errors.Is(err, os.ErrNotExist) && optional:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvTheme)); v != "" {
		c.UI.Theme = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
}

// Validate checks values that have a closed set of choices.
func (c *Config) Validate() error {
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if !slices.Contains(Themes, c.UI.Theme) {
		return fmt.Errorf("%w: theme %q (want one of %s)", shared.ErrInvalidConfig, c.UI.Theme, strings.Join(Themes, ", "))
	}
	if _, err := shared.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.UI.CharLimit < 0 {
		return fmt.Errorf("%w: char_limit must not be negative", shared.ErrInvalidConfig)
	}
	return nil
}

// Init writes the example configuration to path. It refuses to overwrite.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", shared.ErrConfigExists, path)
	}
	if err := os.WriteFile(path, exampleConf, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Write encodes the configuration as TOML.
func (c *Config) Write(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
