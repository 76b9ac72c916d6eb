package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/varunvj2006/sniffd-ai/pkg/shared/stringutil"
)

const (
	DefaultTimeoutSecs = 15

	// Product pages behind bot walls reply differently to obvious robots.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config controls page fetching.
type Config struct {
	TimeoutSecs int    `yaml:"timeout_seconds"`
	UserAgent   string `yaml:"user_agent"`
}

func (c Config) withDefaults() Config {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return c
}

// Result holds whatever could be extracted from one page. OK=false marks a
// fetch or parse failure; derived fields are then empty rather than partial.
type Result struct {
	URL         string   `json:"url"`
	OK          bool     `json:"ok"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price,omitempty"`
	Notes       []string `json:"notes"`
	Error       string   `json:"error,omitempty"`
}

// Scraper fetches product pages and pulls structured signals out of them.
type Scraper struct {
	client *resty.Client
	log    zerolog.Logger
}

// NewScraper creates a scraper with the given fetch config.
func NewScraper(cfg Config, log zerolog.Logger) *Scraper {
	cfg = cfg.withDefaults()
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSecs) * time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")
	return &Scraper{
		client: client,
		log:    log.With().Str("component", "scrape").Logger(),
	}
}

// Scrape fetches url and extracts title, description, price, and fragrance
// notes. It never fails hard: every fetch or parse problem resolves to an
// OK=false result so one bad page cannot abort a batch.
func (s *Scraper) Scrape(ctx context.Context, url string) Result {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		s.log.Debug().Err(err).Str("url", url).Msg("Fetch failed")
		return Result{URL: url, Error: err.Error()}
	}

	// Soft-404s and consent walls still carry usable markup, so any status
	// is accepted as long as the body is textual.
	finalURL := url
	if resp.RawResponse != nil && resp.RawResponse.Request != nil && resp.RawResponse.Request.URL != nil {
		finalURL = resp.RawResponse.Request.URL.String()
	}

	body := string(resp.Body())
	if !isTextual(resp.Header().Get("Content-Type"), body) {
		return Result{URL: finalURL}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return Result{URL: finalURL, Error: err.Error()}
	}

	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(body)); err != nil {
		og = opengraph.NewOpenGraph()
	}

	title := strings.TrimSpace(stringutil.FirstNonEmpty(og.Title, doc.Find("title").First().Text()))

	metaDescription, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	description := strings.TrimSpace(stringutil.FirstNonEmpty(metaDescription, og.Description))

	return Result{
		URL:         finalURL,
		OK:          true,
		Title:       title,
		Description: description,
		Price:       extractPagePrice(doc),
		Notes:       extractPageNotes(doc),
	}
}

func isTextual(contentType, body string) bool {
	ct := strings.ToLower(contentType)
	if strings.HasPrefix(ct, "text/") ||
		strings.Contains(ct, "html") ||
		strings.Contains(ct, "xml") {
		return true
	}
	if ct == "" {
		head := strings.ToLower(body[:min(512, len(body))])
		return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype")
	}
	return false
}
