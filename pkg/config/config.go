// Package config holds runtime configuration: defaults, the optional YAML
// config file, environment overrides and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI styling of report headings.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

var _ pflag.Value = (*ColorMode)(nil)

func (m *ColorMode) String() string { return string(*m) }

func (m *ColorMode) Set(v string) error {
	switch ColorMode(strings.ToLower(v)) {
	case ColorAuto, ColorAlways, ColorNever:
		*m = ColorMode(strings.ToLower(v))
		return nil
	}
	return fmt.Errorf("invalid color mode %q (must be auto, always, or never)", v)
}

func (m *ColorMode) Type() string { return "mode" }

// Environment variables consulted between the config file and flags.
const (
	EnvDataDir = "BIKESHARE_DATA_DIR"
	EnvBaseURL = "BIKESHARE_BASE_URL"
)

// Config holds all runtime settings. DefaultConfig supplies the base, Load
// layers a YAML file on top, and the root command applies explicit flags last.
type Config struct {
	DataDir     string            `yaml:"data_dir"`
	BaseURL     string            `yaml:"base_url"`     // When set, city files are fetched over HTTP.
	Cities      map[string]string `yaml:"cities"`       // City name -> CSV file name.
	PageSize    int               `yaml:"page_size"`    // Raw rows shown per confirmation. Default: 5.
	Color       ColorMode         `yaml:"color"`        // Default: "auto".
	HTTPTimeout time.Duration     `yaml:"http_timeout"` // Default: 10s.
	Debug       bool              `yaml:"debug"`
}

// DefaultConfig returns the built-in settings: the three bundled cities read
// from the working directory, five rows per page.
func DefaultConfig() Config {
	return Config{
		DataDir: ".",
		Cities: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		PageSize:    5,
		Color:       ColorAuto,
		HTTPTimeout: 10 * time.Second,
	}
}

// Load returns DefaultConfig overlaid with the YAML file at path (if path is
// non-empty) and the BIKESHARE_* environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
		cfg.merge(file)
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if len(o.Cities) > 0 {
		c.Cities = make(map[string]string, len(o.Cities))
		for name, file := range o.Cities {
			c.Cities[strings.ToLower(strings.TrimSpace(name))] = file
		}
	}
	if o.PageSize != 0 {
		c.PageSize = o.PageSize
	}
	if o.Color != "" {
		c.Color = ColorMode(strings.ToLower(strings.TrimSpace(string(o.Color))))
	}
	if o.HTTPTimeout != 0 {
		c.HTTPTimeout = o.HTTPTimeout
	}
	c.Debug = c.Debug || o.Debug
}

// Validate checks settings that would otherwise fail later in the session.
func (c *Config) Validate() error {
	if len(c.Cities) == 0 {
		return errors.New("no cities configured")
	}
	for name, file := range c.Cities {
		if name == "" || file == "" {
			return fmt.Errorf("invalid city entry %q: %q", name, file)
		}
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", c.PageSize)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

// CityNames returns the configured city names in sorted order.
func (c *Config) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for name := range c.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
