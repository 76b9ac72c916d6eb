package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Price candidates in decreasing specificity. The full-page fallback can
// match unrelated amounts (shipping, bundles); that imprecision is accepted
// in exchange for recall on sparsely marked-up shops.
var priceCandidates = []func(doc *goquery.Document) string{
	func(doc *goquery.Document) string { return doc.Find(`[itemprop="offers"]`).First().Text() },
	func(doc *goquery.Document) string { return doc.Find(`[itemprop="price"]`).First().Text() },
	func(doc *goquery.Document) string { return doc.Find(`[class*="price"]`).First().Text() },
	func(doc *goquery.Document) string { return doc.Find(`[id*="price"]`).First().Text() },
	func(doc *goquery.Document) string { return doc.Find("body").Text() },
}

func extractPagePrice(doc *goquery.Document) string {
	for _, candidate := range priceCandidates {
		if price := ExtractPrice(candidate(doc)); price != "" {
			return price
		}
	}
	return ""
}

// Containers that fragrance databases and shops use for note pyramids,
// ordered by priority. The first selector that matches anything wins;
// later ones are never consulted.
var noteSelectors = []string{
	"#pyramid .notes-box a",
	"#pyramid a",
	".pyramid-level .note",
	"[class*='pyramid'] [class*='note']",
	".fragrance-notes li",
	".notes li",
	"[class*='accord']",
}

const (
	maxNoteLength = 60
	maxPageNotes  = 20
)

func extractPageNotes(doc *goquery.Document) []string {
	for _, selector := range noteSelectors {
		selection := doc.Find(selector)
		if selection.Length() == 0 {
			continue
		}

		seen := make(map[string]bool)
		var notes []string
		selection.EachWithBreak(func(_ int, el *goquery.Selection) bool {
			text := strings.TrimSpace(el.Text())
			if text == "" || len(text) >= maxNoteLength || seen[text] {
				return true
			}
			seen[text] = true
			notes = append(notes, text)
			return len(notes) < maxPageNotes
		})
		return notes
	}
	return nil
}
