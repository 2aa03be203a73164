// Package vault hides rendered fragments from later rewrite passes.
//
// A fragment handed to Preserve is replaced in the document by a short token
// built from two Unicode Private Use Area runes around a decimal index. No
// rewrite rule matches those runes, and authored text cannot contain them
// once Sanitize has run, so a token survives every pass untouched and can
// never be confused with a literal "{0}" typed by an author.
package vault

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Token delimiters.
const (
	Open  = "\uE000"
	Close = "\uE001"
)

// Sentinel errors for placeholder resolution.
var (
	ErrUnresolvedBlob       = errors.New("placeholder references an unknown fragment")
	ErrMalformedPlaceholder = errors.New("malformed placeholder")
)

// Vault is an append-only list of fragments owned by a single conversion.
// The zero value is ready to use. Each conversion takes a new Vault, which
// is how tokens are kept from leaking between documents.
type Vault struct {
	blobs []string
}

// New returns an empty Vault.
func New() *Vault {
	return &Vault{}
}

// Preserve stores fragment and returns the token that stands in for it.
func (v *Vault) Preserve(fragment string) string {
	v.blobs = append(v.blobs, fragment)
	return Token(len(v.blobs) - 1)
}

// Resolve replaces every token in text with its fragment in a single pass.
// Substituted fragments are never rescanned.
func (v *Vault) Resolve(text string) (string, error) {
	if !strings.Contains(text, Open) && !strings.Contains(text, Close) {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))

	rest := text
	for {
		start := strings.Index(rest, Open)
		if start == -1 {
			if strings.Contains(rest, Close) {
				return "", fmt.Errorf("%w: stray terminator", ErrMalformedPlaceholder)
			}
			b.WriteString(rest)
			return b.String(), nil
		}
		if strings.Contains(rest[:start], Close) {
			return "", fmt.Errorf("%w: stray terminator", ErrMalformedPlaceholder)
		}
		b.WriteString(rest[:start])
		rest = rest[start+len(Open):]

		end := strings.Index(rest, Close)
		if end == -1 {
			return "", fmt.Errorf("%w: unterminated token", ErrMalformedPlaceholder)
		}
		digits := rest[:end]
		rest = rest[end+len(Close):]

		idx, err := parseIndex(digits)
		if err != nil {
			return "", err
		}
		if idx >= len(v.blobs) {
			return "", fmt.Errorf("%w: index %d (have %d)", ErrUnresolvedBlob, idx, len(v.blobs))
		}
		b.WriteString(v.blobs[idx])
	}
}

// Token returns the placeholder for index i.
func Token(i int) string {
	return Open + strconv.Itoa(i) + Close
}

// HasTokenPrefix reports whether s starts with a placeholder token.
func HasTokenPrefix(s string) bool {
	return strings.HasPrefix(s, Open)
}

// Sanitize replaces delimiter runes in authored text with U+FFFD.
func Sanitize(s string) string {
	if !strings.ContainsAny(s, Open+Close) {
		return s
	}
	return strings.NewReplacer(Open, "\uFFFD", Close, "\uFFFD").Replace(s)
}

func parseIndex(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("%w: empty index", ErrMalformedPlaceholder)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: index %q", ErrMalformedPlaceholder, digits)
		}
	}
	idx, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q: %v", ErrMalformedPlaceholder, digits, err)
	}
	return idx, nil
}
