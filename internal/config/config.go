package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// Config represents ~/.tuikit/config.toml.
type Config struct {
	LogLevel string            `toml:"log_level"`
	Profile  string            `toml:"profile"`
	Toolbar  Toolbar           `toml:"toolbar"`
	Keymap   map[string]string `toml:"keymap"`
}

// Toolbar configures the demo window's toolbar.
type Toolbar struct {
	Orientation string `toml:"orientation"`
	ButtonSize  int    `toml:"button_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Profile:  "default",
		Toolbar: Toolbar{
			Orientation: "horizontal",
			ButtonSize:  1,
		},
		Keymap: map[string]string{},
	}
}

// Load reads config from the given path. Keys missing from the file keep
// their defaults. Returns an error if the file is missing or invalid.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks values that toml cannot.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Toolbar.Orientation) {
	case "horizontal", "vertical", "h", "v":
	default:
		return fmt.Errorf("toolbar.orientation %q: want horizontal or vertical", c.Toolbar.Orientation)
	}
	if c.Toolbar.ButtonSize < 0 {
		return fmt.Errorf("toolbar.button_size %d: must not be negative", c.Toolbar.ButtonSize)
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
