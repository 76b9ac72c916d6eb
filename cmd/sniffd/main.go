// sniffd turns free-text scene descriptions into ranked fragrance
// suggestions: a local language model infers notes, a site-restricted web
// search finds candidate products, and each result page is scraped for
// price and note data.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/varunvj2006/sniffd-ai/pkg/config"
	"github.com/varunvj2006/sniffd-ai/pkg/httpserver"
	"github.com/varunvj2006/sniffd-ai/pkg/llm"
	"github.com/varunvj2006/sniffd-ai/pkg/notes"
	"github.com/varunvj2006/sniffd-ai/pkg/scrape"
	"github.com/varunvj2006/sniffd-ai/pkg/suggest"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if os.Getenv("SNIFFD_DEBUG") != "" {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	completer := llm.NewClient(cfg.Model, log)
	extractor := notes.NewExtractor(completer, log)
	scraper := scrape.NewScraper(cfg.Scrape, log)
	service := suggest.NewService(extractor, scraper, cfg.Search, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := httpserver.New(cfg, service, log)
	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}
