package textutil

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	bracketedRE     = regexp.MustCompile(`\(.*?\)|\[.*?\]|\{.*?\}`)
	leadingNumberRE = regexp.MustCompile(`^\d+\s*[.\-_]?\s*`)
)

// CleanTitle derives a search/prompt-friendly title from an ebook filename.
// It strips the extension, bracketed or parenthesized annotations, and any
// leading numeric prefix such as "01 - " or "12. ".
func CleanTitle(filename string) string {
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	title = bracketedRE.ReplaceAllString(title, "")
	title = leadingNumberRE.ReplaceAllString(title, "")
	return CollapseWhitespace(title)
}
