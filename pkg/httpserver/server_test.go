package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/varunvj2006/sniffd-ai/pkg/config"
	"github.com/varunvj2006/sniffd-ai/pkg/notes"
	"github.com/varunvj2006/sniffd-ai/pkg/scrape"
	"github.com/varunvj2006/sniffd-ai/pkg/search"
	"github.com/varunvj2006/sniffd-ai/pkg/suggest"
)

type stubExtractor struct {
	set notes.NoteSet
	err error
}

func (s *stubExtractor) Extract(context.Context, string) (notes.NoteSet, error) {
	return s.set, s.err
}

type stubScraper struct{}

func (stubScraper) Scrape(_ context.Context, url string) scrape.Result {
	return scrape.Result{URL: url, OK: true}
}

func newTestServer(extractor suggest.NoteExtractor, searchCfg *search.Config) *Server {
	cfg := (&config.Config{}).WithDefaults()
	service := suggest.NewService(extractor, stubScraper{}, searchCfg, zerolog.Nop())
	return New(cfg, service, zerolog.Nop())
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	server := newTestServer(&stubExtractor{}, &search.Config{})
	rec := doJSON(t, server.Handler(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
}

func TestExtractNotesRejectsShortScene(t *testing.T) {
	server := newTestServer(&stubExtractor{}, &search.Config{})

	rec := doJSON(t, server.Handler(), http.MethodPost, "/api/notes", `{"scene": "rain"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "at least 5 characters") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}

	// Whitespace padding must not satisfy the minimum.
	rec = doJSON(t, server.Handler(), http.MethodPost, "/api/notes", `{"scene": "  hi   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("padded scene status = %d, want 400", rec.Code)
	}
}

func TestExtractNotesRejectsMalformedBody(t *testing.T) {
	server := newTestServer(&stubExtractor{}, &search.Config{})
	rec := doJSON(t, server.Handler(), http.MethodPost, "/api/notes", `{"scene": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExtractNotesReturnsNoteSet(t *testing.T) {
	extractor := &stubExtractor{set: notes.NoteSet{
		Top:    []string{"bergamot"},
		Middle: []string{"rose"},
		Base:   []string{"musk"},
	}}
	server := newTestServer(extractor, &search.Config{})

	rec := doJSON(t, server.Handler(), http.MethodPost, "/api/notes", `{"scene": "a summer market in marrakech"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Notes notes.NoteSet `json:"notes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Notes.Top) != 1 || resp.Notes.Top[0] != "bergamot" {
		t.Fatalf("unexpected notes %+v", resp.Notes)
	}
}

func TestExtractNotesModelFailureMapsToBadGateway(t *testing.T) {
	server := newTestServer(&stubExtractor{err: errors.New("model unreachable")}, &search.Config{})
	rec := doJSON(t, server.Handler(), http.MethodPost, "/api/notes", `{"scene": "a summer market"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestSuggestionsWithoutCredentialsIsUnavailable(t *testing.T) {
	server := newTestServer(&stubExtractor{}, &search.Config{})
	rec := doJSON(t, server.Handler(), http.MethodPost, "/api/suggestions", `{"notes": {"top": ["oud"]}}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestSceneRunsFullPipeline(t *testing.T) {
	searchStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"organic": [{"title": "Hit", "link": "https://shop.example/p/1", "snippet": "s"}]}`))
	}))
	defer searchStub.Close()

	extractor := &stubExtractor{set: notes.NoteSet{Top: []string{"bergamot", "lemon"}}}
	server := newTestServer(extractor, &search.Config{
		Serper: search.SerperConfig{APIKey: "k", BaseURL: searchStub.URL},
	})

	rec := doJSON(t, server.Handler(), http.MethodPost, "/api/scene", `{"scene": "an orchard after the rain"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Notes       notes.NoteSet `json:"notes"`
		Query       string        `json:"query"`
		Suggestions []struct {
			URL string `json:"url"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Notes.Top) != 2 {
		t.Fatalf("expected extracted notes in response, got %+v", resp.Notes)
	}
	if !strings.Contains(resp.Query, "bergamot lemon") {
		t.Fatalf("unexpected query %q", resp.Query)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0].URL != "https://shop.example/p/1" {
		t.Fatalf("unexpected suggestions %+v", resp.Suggestions)
	}
}

func TestRequestIDHeaderPreserved(t *testing.T) {
	server := newTestServer(&stubExtractor{}, &search.Config{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("expected incoming request ID echoed, got %q", got)
	}

	rec = doJSON(t, server.Handler(), http.MethodGet, "/healthz", "")
	if got := rec.Header().Get("X-Request-ID"); !strings.HasPrefix(got, "snf_") {
		t.Fatalf("expected generated snf_ request ID, got %q", got)
	}
}
