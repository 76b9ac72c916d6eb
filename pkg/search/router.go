package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoCredentials is returned before any network call when no provider in
// the chain has usable credentials.
var ErrNoCredentials = errors.New("no search provider credentials configured")

// Search executes a site-restricted search using the configured provider
// chain. The domain allow-list is applied once, before provider dispatch, so
// every provider sees the same restricted query.
func Search(ctx context.Context, req Request, cfg *Config) (*Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("missing query")
	}
	cfg = cfg.WithDefaults()
	req = normalizeRequest(req)
	req.Query = RestrictToSites(req.Query, cfg.Sites)

	registry := NewRegistry()
	registerProviders(registry, cfg)
	order := buildOrder(cfg)

	attempted := false
	var lastErr error
	for _, name := range order {
		provider := registry.Get(name)
		if provider == nil {
			continue
		}
		attempted = true
		resp, err := provider.Search(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp == nil {
			lastErr = fmt.Errorf("provider %s returned empty response", name)
			continue
		}
		return resp, nil
	}
	if !attempted {
		return nil, ErrNoCredentials
	}
	return nil, lastErr
}

// RestrictToSites appends an OR-combined site: clause for the allow-list.
// An empty list leaves the query unmodified.
func RestrictToSites(query string, sites []string) string {
	clauses := make([]string, 0, len(sites))
	for _, site := range sites {
		site = strings.TrimSpace(site)
		if site == "" {
			continue
		}
		clauses = append(clauses, "site:"+site)
	}
	if len(clauses) == 0 {
		return query
	}
	return query + " (" + strings.Join(clauses, " OR ") + ")"
}

func normalizeRequest(req Request) Request {
	if req.Limit <= 0 {
		req.Limit = DefaultSearchCount
	}
	if req.Limit > MaxSearchCount {
		req.Limit = MaxSearchCount
	}
	return req
}

func buildOrder(cfg *Config) []string {
	order := make([]string, 0, len(cfg.Fallbacks)+1)
	if provider := strings.TrimSpace(cfg.Provider); provider != "" {
		order = append(order, provider)
	}
	order = append(order, cfg.Fallbacks...)

	seen := make(map[string]bool, len(order))
	result := make([]string, 0, len(order))
	for _, name := range order {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

func registerProviders(registry *Registry, cfg *Config) {
	if p := newSerperProvider(cfg); p != nil {
		registry.Register(p)
	}
	if p := newBraveProvider(cfg); p != nil {
		registry.Register(p)
	}
}
