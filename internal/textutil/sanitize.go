package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pathSegmentReplacer strips characters that would escape a single path segment.
var pathSegmentReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	"\x00", "",
)

// FolderName derives the storage folder for a person name. Spaces become
// underscores and path separators become dashes so the result is always a
// single path segment.
func FolderName(name string) string {
	return pathSegmentReplacer.Replace(strings.ReplaceAll(name, " ", "_"))
}

// Tokens splits a name into whitespace-separated index tokens.
func Tokens(name string) []string {
	return strings.Fields(name)
}

// TitleCase renders a stored lowercase name for display ("ada lovelace" -> "Ada Lovelace").
func TitleCase(name string) string {
	return cases.Title(language.Und).String(name)
}
