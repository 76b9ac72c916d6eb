package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/varunvj2006/sniffd-ai/pkg/shared/httputil"
)

type braveProvider struct {
	cfg BraveConfig
}

func newBraveProvider(cfg *Config) Provider {
	if cfg == nil || !isEnabled(cfg.Brave.Enabled, true) {
		return nil
	}
	if strings.TrimSpace(cfg.Brave.APIKey) == "" {
		return nil
	}
	return &braveProvider{cfg: cfg.Brave}
}

func (p *braveProvider) Name() string {
	return ProviderBrave
}

func (p *braveProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if p.cfg.BaseURL == "" {
		return nil, errors.New("brave base_url is empty")
	}
	searchURL, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	queryValues := searchURL.Query()
	queryValues.Set("q", req.Query)
	queryValues.Set("count", fmt.Sprintf("%d", req.Limit))
	queryValues.Set("search_lang", "en")
	queryValues.Set("safesearch", "strict")
	searchURL.RawQuery = queryValues.Encode()

	start := time.Now()
	data, _, err := httputil.GetJSON(ctx, searchURL.String(), map[string]string{
		"Accept":               "application/json",
		"X-Subscription-Token": p.cfg.APIKey,
	}, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(resp.Web.Results))
	for _, entry := range resp.Web.Results {
		if len(results) >= req.Limit {
			break
		}
		results = append(results, Result{
			Title:   strings.TrimSpace(entry.Title),
			Link:    entry.URL,
			Snippet: strings.TrimSpace(entry.Description),
		})
	}

	return &Response{
		Query:    req.Query,
		Provider: ProviderBrave,
		Results:  results,
		TookMs:   time.Since(start).Milliseconds(),
	}, nil
}
