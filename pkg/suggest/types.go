package suggest

import (
	"github.com/varunvj2006/sniffd-ai/pkg/notes"
	"github.com/varunvj2006/sniffd-ai/pkg/scrape"
	"github.com/varunvj2006/sniffd-ai/pkg/search"
)

// Suggestion is one enriched candidate product: the search hit merged with
// whatever its page scrape yielded.
type Suggestion struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Snippet     string   `json:"snippet"`
	Price       string   `json:"price,omitempty"`
	SourceTitle string   `json:"sourceTitle,omitempty"`
	Notes       []string `json:"notes"`
}

// SuggestionsResult is the output of the search+scrape half of the pipeline.
type SuggestionsResult struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

// SceneResult is the output of the full scene-to-suggestions pipeline.
type SceneResult struct {
	Notes       notes.NoteSet `json:"notes"`
	Query       string        `json:"query"`
	Suggestions []Suggestion  `json:"suggestions"`
}

// assemble pairs search results with their positionally-corresponding scrape
// results, preserving search order. Failed scrapes contribute empty fields.
func assemble(results []search.Result, scraped []scrape.Result) []Suggestion {
	suggestions := make([]Suggestion, len(results))
	for i, res := range results {
		suggestion := Suggestion{
			Title:   res.Title,
			URL:     res.Link,
			Snippet: res.Snippet,
			Notes:   []string{},
		}
		if i < len(scraped) && scraped[i].OK {
			suggestion.Price = scraped[i].Price
			suggestion.SourceTitle = scraped[i].Title
			if len(scraped[i].Notes) > 0 {
				suggestion.Notes = scraped[i].Notes
			}
		}
		suggestions[i] = suggestion
	}
	return suggestions
}
