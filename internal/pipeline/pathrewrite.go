package pipeline

import (
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RebasePaths rewrites relative img[src] and a[href] values, written relative
// to sourceDir, so they resolve from outputDir instead. The input is an HTML
// fragment. Only the attribute values change; every other byte, including
// preserved code areas, is copied through. The fragment is returned unchanged
// when both directories are the same.
//
// URLs, anchors and absolute paths are left alone.
func RebasePaths(fragment, sourceDir, outputDir string) (string, error) {
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSource == absOutput {
		return fragment, nil
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var buf strings.Builder
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				buf.Write(z.Raw())
				return buf.String(), nil
			}
			return "", z.Err()
		}

		// Raw is copied first: TagName lowercases the tokenizer buffer.
		raw := string(z.Raw())
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Img:
				raw = rebaseAttr(raw, "src", absSource, absOutput)
			case atom.A:
				raw = rebaseAttr(raw, "href", absSource, absOutput)
			}
		}
		buf.WriteString(raw)
	}
}

// tagAttr matches one attribute assignment inside a raw start tag.
var tagAttr = regexp.MustCompile(`(\s)([A-Za-z:-]+)(\s*=\s*)("[^"]*"|'[^']*'|[^\s"'>]+)`)

func rebaseAttr(tag, key, sourceDir, outputDir string) string {
	return tagAttr.ReplaceAllStringFunc(tag, func(m string) string {
		sub := tagAttr.FindStringSubmatch(m)
		if !strings.EqualFold(sub[2], key) {
			return m
		}

		quote, val := "", sub[4]
		if val[0] == '"' || val[0] == '\'' {
			quote, val = val[:1], val[1:len(val)-1]
		}
		rebased, ok := rebasePath(html.UnescapeString(val), sourceDir, outputDir)
		if !ok {
			return m
		}
		return sub[1] + sub[2] + sub[3] + quote + html.EscapeString(rebased) + quote
	})
}

func rebasePath(val, sourceDir, outputDir string) (string, bool) {
	if !isRelativePath(val) {
		return "", false
	}
	target := filepath.Join(sourceDir, filepath.FromSlash(val))
	rel, err := filepath.Rel(outputDir, target)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// isRelativePath reports whether path is a relative filesystem reference.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	// URLs with a scheme, protocol-relative URLs and anchors.
	if strings.Contains(path, "://") ||
		strings.HasPrefix(path, "data:") ||
		strings.HasPrefix(path, "mailto:") ||
		strings.HasPrefix(path, "//") ||
		strings.HasPrefix(path, "#") {
		return false
	}

	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}
