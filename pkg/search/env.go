package search

import (
	"os"
	"strings"

	"github.com/varunvj2006/sniffd-ai/pkg/shared/stringutil"
)

// ConfigFromEnv builds a search config from environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}

	if provider := strings.TrimSpace(os.Getenv("SEARCH_PROVIDER")); provider != "" {
		cfg.Provider = provider
	}
	if fallbacks := strings.TrimSpace(os.Getenv("SEARCH_FALLBACKS")); fallbacks != "" {
		cfg.Fallbacks = stringutil.SplitCSV(fallbacks)
	}
	if sites := strings.TrimSpace(os.Getenv("SEARCH_SITES")); sites != "" {
		cfg.Sites = stringutil.SplitCSV(sites)
	}

	cfg.Serper.APIKey = stringutil.EnvOr(cfg.Serper.APIKey, os.Getenv("SERPER_API_KEY"))
	cfg.Serper.BaseURL = stringutil.EnvOr(cfg.Serper.BaseURL, os.Getenv("SERPER_BASE_URL"))

	cfg.Brave.APIKey = stringutil.EnvOr(cfg.Brave.APIKey, os.Getenv("BRAVE_API_KEY"))
	cfg.Brave.BaseURL = stringutil.EnvOr(cfg.Brave.BaseURL, os.Getenv("BRAVE_BASE_URL"))

	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	envCfg := ConfigFromEnv()
	if cfg.Provider == "" {
		cfg.Provider = envCfg.Provider
	}
	if cfg.Sites == nil && os.Getenv("SEARCH_SITES") != "" {
		cfg.Sites = envCfg.Sites
	}

	current := cfg.WithDefaults()
	if current.Serper.APIKey == "" {
		current.Serper.APIKey = envCfg.Serper.APIKey
	}
	if current.Brave.APIKey == "" {
		current.Brave.APIKey = envCfg.Brave.APIKey
	}
	return current
}
