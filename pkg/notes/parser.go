package notes

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Model replies are free text and only usually contain the JSON we asked for.
// Parsing runs through an ordered list of strategies, each returning the
// parsed set and whether it succeeded; the first success wins. When every
// strategy fails the result is an empty set, which is a valid outcome rather
// than an error.
type parserStrategy func(reply string) (NoteSet, bool)

var parserStrategies = []parserStrategy{
	parseTrailingJSON,
	parseWholeJSON,
	parseLabeledLines,
}

// ParseReply extracts a note set from a raw model reply and normalizes it.
func ParseReply(reply string) NoteSet {
	for _, parse := range parserStrategies {
		if set, ok := parse(reply); ok {
			return set.Normalized()
		}
	}
	return NoteSet{}
}

// Matches a {...} block that runs to the end of the text. Models often prefix
// the object with commentary despite being told not to.
var trailingObjectRE = regexp.MustCompile(`(?s)\{.*\}$`)

func parseTrailingJSON(reply string) (NoteSet, bool) {
	match := trailingObjectRE.FindString(strings.TrimSpace(reply))
	if match == "" {
		return NoteSet{}, false
	}
	return unmarshalNoteSet(match)
}

func parseWholeJSON(reply string) (NoteSet, bool) {
	return unmarshalNoteSet(strings.TrimSpace(reply))
}

func unmarshalNoteSet(text string) (NoteSet, bool) {
	var set NoteSet
	if err := json.Unmarshal([]byte(text), &set); err != nil {
		return NoteSet{}, false
	}
	return set, true
}

const maxHeuristicNotes = 6

var nonNoteCharsRE = regexp.MustCompile(`[^a-z, ]`)

// parseLabeledLines is the last-resort scan for replies with no parseable
// JSON: for each bucket label it finds the first line mentioning the label
// and reads comma-separated note words from everything after that line.
func parseLabeledLines(reply string) (NoteSet, bool) {
	lines := strings.Split(strings.ToLower(reply), "\n")
	set := NoteSet{
		Top:    notesAfterLabel(lines, "top"),
		Middle: notesAfterLabel(lines, "middle"),
		Base:   notesAfterLabel(lines, "base"),
	}
	return set, true
}

func notesAfterLabel(lines []string, label string) []string {
	start := -1
	for i, line := range lines {
		if strings.Contains(line, label) {
			start = i
			break
		}
	}
	if start == -1 || start+1 >= len(lines) {
		return nil
	}

	text := strings.Join(lines[start+1:], " ")
	text = nonNoteCharsRE.ReplaceAllString(text, "")

	var result []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
		if len(result) >= maxHeuristicNotes {
			break
		}
	}
	return result
}
