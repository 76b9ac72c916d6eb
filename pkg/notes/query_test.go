package notes

import (
	"strings"
	"testing"
)

func TestBuildQueryJoinsBucketsWithSuffix(t *testing.T) {
	set := NoteSet{
		Top:    []string{"bergamot", "lemon"},
		Middle: []string{},
		Base:   []string{"musk"},
	}

	got := BuildQuery(set)
	if !strings.Contains(got, "bergamot lemon musk perfume with price") {
		t.Fatalf("unexpected query: %q", got)
	}
}

func TestBuildQueryTakesAtMostThreePerBucket(t *testing.T) {
	set := NoteSet{
		Top: []string{"one", "two", "three", "four"},
	}

	got := BuildQuery(set)
	if strings.Contains(got, "four") {
		t.Fatalf("query should not include a fourth top note: %q", got)
	}
}

func TestBuildQueryFallsBackToSingleBucket(t *testing.T) {
	set := NoteSet{Top: []string{"oud"}}

	got := BuildQuery(set)
	if got != "oud perfume" {
		t.Fatalf("expected short note set to fall back, got %q", got)
	}
}

func TestBuildQueryFallbackPrefersMiddle(t *testing.T) {
	set := NoteSet{Top: []string{"fig"}, Middle: []string{"iris"}}

	got := BuildQuery(set)
	if got != "iris perfume" {
		t.Fatalf("expected middle bucket preferred in fallback, got %q", got)
	}
}

func TestBuildQueryNeverEmpty(t *testing.T) {
	got := BuildQuery(NoteSet{})
	if got == "" {
		t.Fatal("all-empty note set must still yield a query")
	}
}
