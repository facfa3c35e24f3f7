package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/csonify/internal/converter"
	"github.com/mcncl/csonify/internal/emitter"
)

// Config represents the complete configuration for csonify
type Config struct {
	Indent         string       `yaml:"indent"`
	MaxDepth       int          `yaml:"max_depth"`
	EnumsAsStrings bool         `yaml:"enums_as_strings"`
	Naming         NamingConfig `yaml:"naming"`
	Output         OutputConfig `yaml:"output"`
	Dev            DevConfig    `yaml:"dev"`
}

// NamingConfig controls how mapping keys are written
type NamingConfig struct {
	// KeyStyle is one of preserve, snake, camel, pascal, kebab.
	KeyStyle string `yaml:"key_style"`
	// KeyMappings renames individual keys and wins over KeyStyle.
	KeyMappings map[string]string `yaml:"key_mappings"`
}

// OutputConfig controls document-level output options
type OutputConfig struct {
	// LineEnding is one of lf, crlf, platform.
	LineEnding string `yaml:"line_ending"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:         "  ",
		MaxDepth:       20,
		EnumsAsStrings: false,
		Naming: NamingConfig{
			KeyStyle:    converter.StylePreserve,
			KeyMappings: make(map[string]string),
		},
		Output: OutputConfig{
			LineEnding: "lf",
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// EmitterOptions returns the serialization options this config describes.
func (c *Config) EmitterOptions() emitter.Options {
	return emitter.Options{
		Indent:         c.Indent,
		MaxDepth:       c.MaxDepth,
		EnumsAsStrings: c.EnumsAsStrings,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so absent keys keep their default values
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".csonify.yml", ".csonify.yaml", "csonify.yml", "csonify.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// override the file only when they differ from the built-in defaults, so a
// config file still applies when the flags are left alone.
func LoadConfigWithCLI(configPath, cliIndent string, cliMaxDepth int, cliKeyStyle, cliLineEnding string) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	defaults := NewConfig()
	if cliIndent != "" && cliIndent != defaults.Indent {
		cfg.Indent = cliIndent
	}
	if cliMaxDepth != 0 && cliMaxDepth != defaults.MaxDepth {
		cfg.MaxDepth = cliMaxDepth
	}
	if cliKeyStyle != "" && cliKeyStyle != defaults.Naming.KeyStyle {
		cfg.Naming.KeyStyle = cliKeyStyle
	}
	if cliLineEnding != "" && cliLineEnding != defaults.Output.LineEnding {
		cfg.Output.LineEnding = cliLineEnding
	}

	return cfg, nil
}
