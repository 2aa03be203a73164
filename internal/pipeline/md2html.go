package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates the CommonMark engine failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// GoldmarkEngine converts CommonMark (with GFM) to an HTML fragment.
type GoldmarkEngine struct {
	md goldmark.Markdown
}

// NewGoldmarkEngine creates a GoldmarkEngine with GFM, footnotes, syntax
// highlighting and heading ids.
func NewGoldmarkEngine() *GoldmarkEngine {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML is kept, matching the lightweight engine's verbatim regions.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkEngine{md: md}
}

// ToHTML converts content and returns the trimmed fragment with a trailing
// newline. sourceDir is unused: the CommonMark engine never reads files.
// Goldmark has no context support, so conversion runs in a goroutine and the
// call returns early on cancellation.
func (g *GoldmarkEngine) ToHTML(ctx context.Context, content, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(normalizeLineEndings(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: strings.TrimSpace(buf.String()) + "\n"}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
