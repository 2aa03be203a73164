package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-markup/internal/vault"
)

// HTMLConverter abstracts document to HTML fragment conversion.
// sourceDir anchors relative references found in content.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content, sourceDir string) (string, error)
}

// RuleEngineOptions configures a RuleEngine. Zero values select defaults.
type RuleEngineOptions struct {
	ImageExtensions []string
	CodeExtensions  []string
	CodeAreaClass   string
	// ReadFile reads inlined source files. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// RuleEngine converts the lightweight syntax through the ordered rule cascade.
// It holds no per-document state and is safe for concurrent use.
type RuleEngine struct {
	rules    []Rule
	images   []string
	code     []string
	codeArea CodeArea
	readFile func(string) ([]byte, error)
}

// NewRuleEngine creates a RuleEngine with the default rule order.
func NewRuleEngine(opts RuleEngineOptions) *RuleEngine {
	return &RuleEngine{
		rules:    defaultRules(),
		images:   normalizeExtensions(opts.ImageExtensions),
		code:     normalizeExtensions(opts.CodeExtensions),
		codeArea: CodeArea{Class: opts.CodeAreaClass},
		readFile: opts.ReadFile,
	}
}

// ToHTML runs every rule over the document, resolves preserved fragments and
// returns the trimmed result with a single trailing newline. Each call owns a
// fresh vault, so tokens never leak between documents.
func (e *RuleEngine) ToHTML(ctx context.Context, content, sourceDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := &conversion{
		vault:    vault.New(),
		codeArea: e.codeArea,
		resources: &ResourceResolver{
			SourceDir: sourceDir,
			Images:    e.images,
			Code:      e.code,
			ReadFile:  e.readFile,
			CodeArea:  e.codeArea,
		},
	}

	doc := PrepareDocument(content)
	for _, r := range e.rules {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		var err error
		doc, err = r.apply(c, doc)
		if err != nil {
			return "", fmt.Errorf("%s: %w", r.Name, err)
		}
	}

	out, err := c.vault.Resolve(strings.TrimSpace(doc))
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

// normalizeExtensions lowercases and strips leading dots. nil stays nil so
// the resolver falls back to its defaults.
func normalizeExtensions(exts []string) []string {
	if exts == nil {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
