package notes

import (
	"strings"

	"github.com/varunvj2006/sniffd-ai/pkg/shared/stringutil"
)

const (
	queryNotesPerBucket = 3
	minQueryLength      = 10
)

// BuildQuery turns a note set into a single web search query. It takes the
// first few notes from each bucket and appends "perfume with price". When the
// buckets are too sparse for that to produce a meaningful query, it falls back
// to the first non-empty bucket (middle preferred, then top, then base) joined
// with "perfume", so a non-trivial query is produced whenever any note exists.
func BuildQuery(n NoteSet) string {
	terms := make([]string, 0, 3*queryNotesPerBucket)
	terms = append(terms, headOf(n.Top)...)
	terms = append(terms, headOf(n.Middle)...)
	terms = append(terms, headOf(n.Base)...)

	joined := stringutil.CollapseSpaces(strings.Join(terms, " "))
	if len(joined) >= minQueryLength {
		return joined + " perfume with price"
	}

	for _, bucket := range [][]string{n.Middle, n.Top, n.Base} {
		if len(bucket) > 0 {
			return stringutil.CollapseSpaces(strings.Join(bucket, " ") + " perfume")
		}
	}
	return "perfume"
}

func headOf(bucket []string) []string {
	if len(bucket) > queryNotesPerBucket {
		return bucket[:queryNotesPerBucket]
	}
	return bucket
}
