package notes

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Completer is the generative-model dependency of the extractor.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const extractPrompt = `You are a perfumer. Read the scene description below and infer the fragrance notes it evokes.

Reply with strictly a JSON object and nothing else, no commentary, in this exact shape:
{"top": [...], "middle": [...], "base": [...]}

Each array holds lowercase perfume note words (e.g. "bergamot", "rose", "musk"). Aim for 5 to 8 notes in total across the three arrays.

Scene description:
%s`

// Extractor turns scene text into a structured note set via a model call.
type Extractor struct {
	completer Completer
	log       zerolog.Logger
}

// NewExtractor creates an extractor backed by the given completer.
func NewExtractor(completer Completer, log zerolog.Logger) *Extractor {
	return &Extractor{
		completer: completer,
		log:       log.With().Str("component", "notes").Logger(),
	}
}

// Extract asks the model for notes matching the scene. Model call failures
// propagate; unparseable replies degrade to empty buckets, which is a valid
// result. The caller is responsible for rejecting too-short scene text.
func (e *Extractor) Extract(ctx context.Context, scene string) (NoteSet, error) {
	reply, err := e.completer.Complete(ctx, fmt.Sprintf(extractPrompt, scene))
	if err != nil {
		return NoteSet{}, fmt.Errorf("note extraction: %w", err)
	}

	set := ParseReply(reply)
	if set.IsEmpty() {
		e.log.Warn().Int("reply_chars", len(reply)).Msg("Model reply yielded no notes")
	} else {
		e.log.Debug().
			Int("top", len(set.Top)).
			Int("middle", len(set.Middle)).
			Int("base", len(set.Base)).
			Msg("Extracted notes")
	}
	return set, nil
}
