// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/pathkit/pkg/locate"
	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
	"github.com/user/pathkit/pkg/semver"
)

// EnvFile names the environment variable holding the config file location.
const EnvFile = "PATHKIT_CONFIG"

// Output formats understood by the info command.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config represents the full configuration for pathkit.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Path rendering
	NativeOutput bool   `yaml:"native_output"`
	NativeInput  bool   `yaml:"native_input"`
	OutputFormat string `yaml:"output_format"`

	// Search
	SearchDepth int       `yaml:"search_depth"`
	MarkerFile  string    `yaml:"marker_file"`
	Base        path.Path `yaml:"base"`

	// MinVersion is the lowest tool version this config accepts.
	MinVersion semver.Version `yaml:"min_version"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel:     "info",
		OutputFormat: FormatText,
		SearchDepth:  locate.DefaultMaxDepth,
		MarkerFile:   "Recipe.sml",
		Base:         path.Empty(),
		MinVersion:   semver.New(0),
	}
}

// Load parses YAML over the defaults.
func Load(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(fs ports.FileSystem, file path.Path) (Config, error) {
	r, err := fs.OpenRead(file)
	if err != nil {
		return Defaults(), err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return Defaults(), fmt.Errorf("read config %s: %w", file, err)
	}
	return Load(data)
}

// Validate checks field values that YAML decoding cannot.
func (c Config) Validate() error {
	switch c.OutputFormat {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown output_format %q", c.OutputFormat)
	}
	if c.SearchDepth < 0 {
		return fmt.Errorf("search_depth must not be negative: %d", c.SearchDepth)
	}
	if c.MarkerFile == "" || strings.ContainsAny(c.MarkerFile, "/\\") {
		return fmt.Errorf("marker_file must be a plain file name: %q", c.MarkerFile)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// ParsePath reads a user supplied path, honoring native_input.
func (c Config) ParsePath(raw string) path.Path {
	if c.NativeInput {
		return path.FromNative(raw)
	}
	return path.Parse(raw)
}

// FormatPath renders a path, honoring native_output.
func (c Config) FormatPath(p path.Path) string {
	if c.NativeOutput {
		return p.NativeString()
	}
	return p.String()
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
