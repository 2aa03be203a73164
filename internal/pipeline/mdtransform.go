package pipeline

import (
	"regexp"

	"github.com/alnah/go-markup/internal/vault"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// PrepareDocument normalizes line endings, neutralizes any vault delimiter
// runes present in authored text, and surrounds the result with the synthetic
// newlines that let line rules treat the document edges like any other line.
func PrepareDocument(content string) string {
	content = normalizeLineEndings(content)
	content = vault.Sanitize(content)
	return "\n" + content + "\n"
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
