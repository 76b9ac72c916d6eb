package notes

import "strings"

// MaxPerBucket caps each pyramid level after normalization.
const MaxPerBucket = 8

// NoteSet groups extracted fragrance notes by pyramid level. Order within a
// bucket reflects extraction order.
type NoteSet struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// Normalized returns a copy with every bucket lower-cased, trimmed,
// deduplicated, stripped of empties, and capped at MaxPerBucket.
func (n NoteSet) Normalized() NoteSet {
	return NoteSet{
		Top:    normalizeBucket(n.Top),
		Middle: normalizeBucket(n.Middle),
		Base:   normalizeBucket(n.Base),
	}
}

// IsEmpty reports whether every bucket is empty.
func (n NoteSet) IsEmpty() bool {
	return len(n.Top) == 0 && len(n.Middle) == 0 && len(n.Base) == 0
}

func normalizeBucket(entries []string) []string {
	seen := make(map[string]bool, len(entries))
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		note := strings.ToLower(strings.TrimSpace(entry))
		if note == "" || seen[note] {
			continue
		}
		seen[note] = true
		result = append(result, note)
		if len(result) >= MaxPerBucket {
			break
		}
	}
	return result
}
