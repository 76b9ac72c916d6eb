package search

import "strings"

const (
	ProviderSerper = "serper"
	ProviderBrave  = "brave"

	DefaultSearchCount = 6
	MaxSearchCount     = 10
	DefaultTimeoutSecs = 30
)

var DefaultFallbackOrder = []string{
	ProviderSerper,
	ProviderBrave,
}

// DefaultSites is the stock allow-list of trusted fragrance retail and
// database domains. Overridable via config or SEARCH_SITES.
var DefaultSites = []string{
	"fragrantica.com",
	"parfumo.com",
	"sephora.com",
	"notino.com",
	"luckyscent.com",
}

// Config controls provider selection, credentials, and the domain allow-list.
type Config struct {
	Provider  string   `yaml:"provider"`
	Fallbacks []string `yaml:"fallbacks"`
	Sites     []string `yaml:"sites"`

	Serper SerperConfig `yaml:"serper"`
	Brave  BraveConfig  `yaml:"brave"`
}

type SerperConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

type BraveConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = ProviderSerper
	}
	if len(c.Fallbacks) == 0 {
		c.Fallbacks = append([]string{}, DefaultFallbackOrder...)
	}
	if c.Sites == nil {
		c.Sites = append([]string{}, DefaultSites...)
	}
	c.Serper = c.Serper.withDefaults()
	c.Brave = c.Brave.withDefaults()
	return c
}

func (c SerperConfig) withDefaults() SerperConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://google.serper.dev/search"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func (c BraveConfig) withDefaults() BraveConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.search.brave.com/res/v1/web/search"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}
