package markup

import (
	"github.com/alnah/go-markup/internal/assets"
	"github.com/alnah/go-markup/internal/pipeline"
)

// Engine names.
const (
	// EngineMarkup is the built-in lightweight rule engine.
	EngineMarkup = "markup"

	// EngineCommonMark renders CommonMark with GFM extensions.
	EngineCommonMark = "commonmark"
)

// Defaults re-exported for callers that build configuration.
const (
	DefaultMarker        = pipeline.DefaultMarker
	DefaultCodeAreaClass = pipeline.DefaultCodeAreaClass
	DefaultTemplate      = assets.DefaultTemplateName
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine        string
	marker        string
	images        []string
	code          []string
	codeAreaClass string
	sourceDir     string
	assetPath     string
	templateName  string
	readFile      func(string) ([]byte, error)
}

// WithEngine selects the conversion engine: EngineMarkup (default) or
// EngineCommonMark. Unknown names make NewConverter fail with ErrInvalidEngine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithMarker sets the template insertion marker (default {{content}}).
func WithMarker(marker string) Option {
	return func(c *Converter) {
		c.cfg.marker = marker
	}
}

// WithImageExtensions replaces the extensions rendered as <img> by
// ![title](path). Extensions are given without the dot.
func WithImageExtensions(exts ...string) Option {
	return func(c *Converter) {
		c.cfg.images = append([]string{}, exts...)
	}
}

// WithCodeExtensions replaces the extensions whose files are inlined as code
// areas by ![title](path). Extensions are given without the dot.
func WithCodeExtensions(exts ...string) Option {
	return func(c *Converter) {
		c.cfg.code = append([]string{}, exts...)
	}
}

// WithCodeAreaClass sets the class attribute of rendered code areas.
func WithCodeAreaClass(class string) Option {
	return func(c *Converter) {
		c.cfg.codeAreaClass = class
	}
}

// WithSourceDir sets the directory inlined files are resolved against when
// Input.SourceDir is empty. The default is the working directory.
func WithSourceDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.sourceDir = dir
	}
}

// WithAssetPath sets a directory whose templates/{name}.tpl files override
// the built-in templates.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithTemplateName selects the named template used when Input.Template is
// empty (default "default").
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithFileReader replaces os.ReadFile for inlined source files.
func WithFileReader(fn func(name string) ([]byte, error)) Option {
	return func(c *Converter) {
		c.cfg.readFile = fn
	}
}
