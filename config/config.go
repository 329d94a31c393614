// Package config loads project settings from .ifexpr.yml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rubiojr/ifexpr/macro"
)

// FileName is the project configuration file looked up in the working
// directory.
const FileName = ".ifexpr.yml"

// Config holds the settings the CLI runs with.
type Config struct {
	// Macro is the module specifier chains are imported from.
	Macro string `yaml:"macro"`
	// Extensions lists the file extensions processed when walking directories.
	Extensions []string `yaml:"extensions"`
	// Jobs is the number of files processed in parallel.
	Jobs int `yaml:"jobs"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Macro:      macro.DefaultSource,
		Extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		Jobs:       1,
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.Macro == "" {
		c.Macro = macro.DefaultSource
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Jobs == 0 {
		c.Jobs = 1
	}
	for i, ext := range c.Extensions {
		if ext == "" {
			return fmt.Errorf("empty extension")
		}
		if !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = Default().Extensions
	}
	return nil
}
