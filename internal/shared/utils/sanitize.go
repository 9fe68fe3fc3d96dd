package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all HTML from user-authored text. Titles, descriptions,
// headlines and review bodies are stored as plain text.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes any HTML markup from s and trims surrounding
// whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
