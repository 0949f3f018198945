package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonderfulspam/textsmith/pkg/differ"
)

// DefaultFileName is the config file looked up in the working directory when
// no --config flag is given.
const DefaultFileName = ".textsmith.yml"

// Config holds the tool configuration loaded from a .textsmith.yml file.
type Config struct {
	Differ differ.Options `yaml:"differ" json:"differ"`
	Limits LimitsConfig   `yaml:"limits" json:"limits"`
	Output OutputConfig   `yaml:"output" json:"output"`
}

// LimitsConfig bounds the inputs accepted before the engine runs. MaxLines
// caps the line count of either input; 0 means unlimited.
type LimitsConfig struct {
	MaxLines int `yaml:"max_lines" json:"max_lines"`
}

type OutputConfig struct {
	Format      string `yaml:"format" json:"format"`
	ShowSummary bool   `yaml:"show_summary" json:"show_summary"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Differ: differ.Options{},
		Limits: LimitsConfig{
			MaxLines: 0,
		},
		Output: OutputConfig{
			Format:      "table",
			ShowSummary: true,
		},
	}
}

// Load reads and validates a configuration file. Settings omitted from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file '%s': %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file '%s': %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}

	return config, nil
}

var validFormats = map[string]bool{
	"":             true, // empty falls back to table
	"table":        true,
	"json":         true,
	"unified":      true,
	"side-by-side": true,
}

func (c *Config) Validate() error {
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("unsupported output format: %s (supported: unified, json, table, side-by-side)", c.Output.Format)
	}

	if c.Limits.MaxLines < 0 {
		return fmt.Errorf("max_lines must not be negative, got %d", c.Limits.MaxLines)
	}

	return nil
}
