package config

import (
	"os"
	"strconv"

	"github.com/varunvj2006/sniffd-ai/pkg/search"
	"github.com/varunvj2006/sniffd-ai/pkg/shared/stringutil"
)

// Load builds the process config: optional YAML file (SNIFFD_CONFIG), then
// environment overlay, then defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if path := os.Getenv("SNIFFD_CONFIG"); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return ApplyEnvDefaults(cfg), nil
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}

	cfg.Addr = stringutil.EnvOr(cfg.Addr, os.Getenv("SNIFFD_ADDR"))
	cfg.StaticDir = stringutil.EnvOr(cfg.StaticDir, os.Getenv("STATIC_DIR"))

	cfg.Model.BaseURL = stringutil.EnvOr(cfg.Model.BaseURL, os.Getenv("MODEL_BASE_URL"))
	cfg.Model.APIKey = stringutil.EnvOr(cfg.Model.APIKey, os.Getenv("MODEL_API_KEY"))
	cfg.Model.Model = stringutil.EnvOr(cfg.Model.Model, os.Getenv("MODEL_NAME"))
	if raw := os.Getenv("MODEL_TEMPERATURE"); raw != "" && cfg.Model.Temperature == 0 {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.Model.Temperature = parsed
		}
	}

	if raw := os.Getenv("SCRAPE_TIMEOUT_SECONDS"); raw != "" && cfg.Scrape.TimeoutSecs == 0 {
		if parsed, err := strconv.Atoi(raw); err == nil {
			cfg.Scrape.TimeoutSecs = parsed
		}
	}

	cfg.Search = search.ApplyEnvDefaults(cfg.Search)
	return cfg.WithDefaults()
}
