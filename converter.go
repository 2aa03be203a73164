package markup

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-markup/internal/assets"
	"github.com/alnah/go-markup/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter    = (*pipeline.RuleEngine)(nil)
	_ pipeline.HTMLConverter    = (*pipeline.GoldmarkEngine)(nil)
	_ pipeline.DocumentInjector = (*pipeline.MarkerInjection)(nil)
)

// Input is one document to convert.
type Input struct {
	// Document is the source text.
	Document string
	// Template is the host template. Empty selects the configured named
	// template (see WithTemplateName).
	Template string
	// SourceDir anchors relative inlined file paths. Empty falls back to
	// WithSourceDir, then to the working directory.
	SourceDir string
}

// Result holds the converted document.
type Result struct {
	// HTML is the template with the rendered fragment inserted.
	HTML []byte
	// Body is the rendered fragment: trimmed, ending with one newline.
	Body string
}

// Converter orchestrates the conversion pipeline.
// It holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	htmlConverter pipeline.HTMLConverter
	injector      pipeline.DocumentInjector
}

// NewConverter creates a Converter. Returns ErrInvalidEngine for an unknown
// engine and ErrInvalidAssetPath for an unusable asset directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:       EngineMarkup,
			marker:       pipeline.DefaultMarker,
			templateName: assets.DefaultTemplateName,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.htmlConverter == nil {
		switch strings.ToLower(c.cfg.engine) {
		case "", EngineMarkup:
			c.htmlConverter = pipeline.NewRuleEngine(pipeline.RuleEngineOptions{
				ImageExtensions: c.cfg.images,
				CodeExtensions:  c.cfg.code,
				CodeAreaClass:   c.cfg.codeAreaClass,
				ReadFile:        c.cfg.readFile,
			})
		case EngineCommonMark:
			c.htmlConverter = pipeline.NewGoldmarkEngine()
		default:
			return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, c.cfg.engine, EngineMarkup, EngineCommonMark)
		}
	}

	if c.assetLoader == nil {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if c.injector == nil {
		c.injector = &pipeline.MarkerInjection{Marker: c.cfg.marker}
	}

	return c, nil
}

// Convert renders input.Document and inserts it into the template.
// The context is checked between rules. Internal panics are recovered and
// returned as errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	body, err := c.toHTML(ctx, input.Document, input.SourceDir)
	if err != nil {
		return nil, err
	}

	template := input.Template
	if template == "" {
		template, err = c.assetLoader.LoadTemplate(c.cfg.templateName)
		if err != nil {
			return nil, fmt.Errorf("loading template: %w", err)
		}
	}

	out, err := c.injector.InjectDocument(ctx, template, body)
	if err != nil {
		return nil, fmt.Errorf("inserting document: %w", err)
	}

	return &Result{HTML: []byte(out), Body: body}, nil
}

// Markup renders text to an HTML fragment without a template. Inlined files
// resolve against the WithSourceDir directory.
func (c *Converter) Markup(ctx context.Context, text string) (string, error) {
	return c.toHTML(ctx, text, "")
}

// Marker returns the template insertion marker in use.
func (c *Converter) Marker() string {
	return c.cfg.marker
}

func (c *Converter) toHTML(ctx context.Context, text, sourceDir string) (string, error) {
	if sourceDir == "" {
		sourceDir = c.cfg.sourceDir
	}
	body, err := c.htmlConverter.ToHTML(ctx, text, sourceDir)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	return body, nil
}
