package suggest

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/varunvj2006/sniffd-ai/pkg/notes"
	"github.com/varunvj2006/sniffd-ai/pkg/scrape"
	"github.com/varunvj2006/sniffd-ai/pkg/search"
)

// Scraper is the page-scraping dependency of the service.
type Scraper interface {
	Scrape(ctx context.Context, url string) scrape.Result
}

// NoteExtractor is the scene-to-notes dependency of the service.
type NoteExtractor interface {
	Extract(ctx context.Context, scene string) (notes.NoteSet, error)
}

// Service runs the scene-to-suggestions pipeline.
type Service struct {
	extractor NoteExtractor
	scraper   Scraper
	searchCfg *search.Config
	limit     int
	log       zerolog.Logger
}

// NewService wires the pipeline stages together.
func NewService(extractor NoteExtractor, scraper Scraper, searchCfg *search.Config, log zerolog.Logger) *Service {
	return &Service{
		extractor: extractor,
		scraper:   scraper,
		searchCfg: searchCfg.WithDefaults(),
		limit:     search.DefaultSearchCount,
		log:       log.With().Str("component", "suggest").Logger(),
	}
}

// ExtractNotes infers fragrance notes from scene text. Model failures
// propagate; an empty note set is a valid success.
func (s *Service) ExtractNotes(ctx context.Context, scene string) (notes.NoteSet, error) {
	return s.extractor.Extract(ctx, scene)
}

// FindSuggestions searches for products matching the notes and enriches each
// hit with scraped page data. Individual scrape failures never fail the call.
func (s *Service) FindSuggestions(ctx context.Context, set notes.NoteSet) (*SuggestionsResult, error) {
	query := notes.BuildQuery(set.Normalized())

	resp, err := search.Search(ctx, search.Request{Query: query, Limit: s.limit}, s.searchCfg)
	if err != nil {
		return nil, err
	}

	scraped := s.scrapeAll(ctx, resp.Results)
	s.log.Debug().
		Str("query", query).
		Int("results", len(resp.Results)).
		Msg("Assembled suggestions")

	return &SuggestionsResult{
		Query:       query,
		Suggestions: assemble(resp.Results, scraped),
	}, nil
}

// FindFromScene runs the full pipeline: notes, then search and scrape.
func (s *Service) FindFromScene(ctx context.Context, scene string) (*SceneResult, error) {
	set, err := s.ExtractNotes(ctx, scene)
	if err != nil {
		return nil, err
	}
	result, err := s.FindSuggestions(ctx, set)
	if err != nil {
		return nil, err
	}
	return &SceneResult{
		Notes:       set,
		Query:       result.Query,
		Suggestions: result.Suggestions,
	}, nil
}

// scrapeAll fetches every result page concurrently. Results are keyed by
// index so order survives the fan-out, and the join waits for every page
// regardless of individual failures.
func (s *Service) scrapeAll(ctx context.Context, results []search.Result) []scrape.Result {
	scraped := make([]scrape.Result, len(results))
	var wg sync.WaitGroup
	for i, res := range results {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()
			scraped[idx] = s.scraper.Scrape(ctx, url)
		}(i, res.Link)
	}
	wg.Wait()
	return scraped
}
