// Package slug derives URL-safe heading identifiers.
package slug

import "strings"

// Make maps heading text to an identifier.
//
// ASCII letters are lowercased and digits kept. Whitespace, '-', '_' and '/'
// each become '-'. Every other rune is dropped, so "Hello, World!" yields
// "hello-world". Runs of separators are not collapsed.
func Make(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == ' ', r == '\t', r == '-', r == '_', r == '/':
			b.WriteByte('-')
		}
	}

	return b.String()
}
