// Package config assembles process configuration from an optional YAML file
// overlaid with environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/varunvj2006/sniffd-ai/pkg/llm"
	"github.com/varunvj2006/sniffd-ai/pkg/scrape"
	"github.com/varunvj2006/sniffd-ai/pkg/search"
)

const DefaultAddr = ":8080"

// Config is the full process configuration.
type Config struct {
	Addr      string         `yaml:"addr"`
	StaticDir string         `yaml:"static_dir"`
	Model     llm.Config     `yaml:"model"`
	Search    *search.Config `yaml:"search"`
	Scrape    scrape.Config  `yaml:"scrape"`
}

// WithDefaults fills zero fields with defaults.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	c.Search = c.Search.WithDefaults()
	return c
}

// LoadFile parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
