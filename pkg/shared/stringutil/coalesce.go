package stringutil

import (
	"regexp"
	"strings"
)

// EnvOr returns value (trimmed) if non-empty, otherwise returns existing.
func EnvOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}

// FirstNonEmpty returns the first non-empty string after trimming.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// SplitCSV splits a comma-separated list, trimming entries and dropping empties.
func SplitCSV(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
	}
	return result
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// CollapseSpaces trims the string and collapses every whitespace run to a single space.
func CollapseSpaces(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}
