package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/varunvj2006/sniffd-ai/pkg/shared/httputil"
)

type serperProvider struct {
	cfg SerperConfig
}

func newSerperProvider(cfg *Config) Provider {
	if cfg == nil || !isEnabled(cfg.Serper.Enabled, true) {
		return nil
	}
	if strings.TrimSpace(cfg.Serper.APIKey) == "" {
		return nil
	}
	return &serperProvider{cfg: cfg.Serper}
}

func (p *serperProvider) Name() string {
	return ProviderSerper
}

func (p *serperProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if p.cfg.BaseURL == "" {
		return nil, errors.New("serper base_url is empty")
	}

	body := map[string]any{
		"q":    req.Query,
		"num":  req.Limit,
		"hl":   "en",
		"gl":   "us",
		"safe": "active",
	}

	start := time.Now()
	data, _, err := httputil.PostJSON(ctx, p.cfg.BaseURL, map[string]string{
		"X-API-KEY": p.cfg.APIKey,
	}, body, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(resp.Organic))
	for _, entry := range resp.Organic {
		if len(results) >= req.Limit {
			break
		}
		results = append(results, Result{
			Title:   strings.TrimSpace(entry.Title),
			Link:    entry.Link,
			Snippet: strings.TrimSpace(entry.Snippet),
		})
	}

	return &Response{
		Query:    req.Query,
		Provider: ProviderSerper,
		Results:  results,
		TookMs:   time.Since(start).Milliseconds(),
	}, nil
}
