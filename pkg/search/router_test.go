package search

import (
	"context"
	"errors"
	"testing"
)

func TestRestrictToSites(t *testing.T) {
	got := RestrictToSites("vanilla perfume", []string{"fragrantica.com", "sephora.com"})
	want := "vanilla perfume (site:fragrantica.com OR site:sephora.com)"
	if got != want {
		t.Fatalf("RestrictToSites = %q, want %q", got, want)
	}
}

func TestRestrictToSitesEmptyListLeavesQueryAlone(t *testing.T) {
	if got := RestrictToSites("vanilla perfume", nil); got != "vanilla perfume" {
		t.Fatalf("empty allow-list must not modify the query, got %q", got)
	}
}

func TestSearchWithoutCredentialsFailsFast(t *testing.T) {
	cfg := &Config{Sites: []string{"fragrantica.com"}}

	_, err := Search(context.Background(), Request{Query: "rose perfume"}, cfg)
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	if _, err := Search(context.Background(), Request{Query: "  "}, &Config{}); err == nil {
		t.Fatal("expected error for empty query")
	}
}
