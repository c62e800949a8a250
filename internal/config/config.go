// Package config loads the site configuration: docs location, output
// settings, and the flat property map consumed by directives.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Docs       DocsConfig        `yaml:"docs"`
	Output     OutputConfig      `yaml:"output"`
	Snippets   SnippetConfig     `yaml:"snippets"`
	Toc        TocConfig         `yaml:"toc"`
	Preview    PreviewConfig     `yaml:"preview"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// DocsConfig locates the markdown sources.
type DocsConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig controls where rendered fragments land.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// SnippetConfig controls snippet inclusion.
type SnippetConfig struct {
	// Dir is the base directory absolute snippet paths resolve against.
	// Defaults to the docs directory.
	Dir string `yaml:"dir,omitempty"`
}

// TocConfig holds table-of-contents defaults.
type TocConfig struct {
	Depth int `yaml:"depth,omitempty"`
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env if present; its values feed ${VAR} expansion below.
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Docs.Dir == "" {
		c.Docs.Dir = "docs"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./site"
	}
	if c.Snippets.Dir == "" {
		c.Snippets.Dir = c.Docs.Dir
	}
	if c.Toc.Depth <= 0 {
		c.Toc.Depth = 6
	}
	if c.Preview.Addr == "" {
		c.Preview.Addr = "127.0.0.1:4000"
	}
	if c.Properties == nil {
		c.Properties = map[string]string{}
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Docs.Dir == "" {
		return fmt.Errorf("docs.dir must not be empty")
	}
	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory must not be empty")
	}
	return nil
}

// Init writes an example configuration file to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Docs:   DocsConfig{Dir: "docs"},
		Output: OutputConfig{Directory: "./site", Clean: true},
		Toc:    TocConfig{Depth: 6},
		Preview: PreviewConfig{
			Addr: "127.0.0.1:4000",
		},
		Properties: map[string]string{
			"version":             "0.1.0",
			"github.base_url":     "https://github.com/example/project",
			"extref.rfc.base_url": "https://www.rfc-editor.org/rfc/rfc%s.html",
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
