package main

import (
	"errors"

	"github.com/alnah/go-markup"
	"github.com/alnah/go-markup/internal/config"
	"github.com/alnah/go-markup/internal/fileutil"
	"github.com/alnah/go-markup/internal/hints"
	"github.com/alnah/go-markup/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrReadTemplate       = errors.New("failed to read template file")
	ErrReadDocument       = errors.New("failed to read document file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrNoDocuments        = errors.New("no documents found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrBatchFailed        = errors.New("conversions failed")
	ErrSelfTest           = errors.New("self-test failed")
)

// hintFor returns an actionable hint for err, or "" when none applies.
// cfg supplies the effective marker and extension lists.
func hintFor(err error, cfg *config.Config) string {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	switch {
	case errors.Is(err, markup.ErrUnresolvableInline):
		images, code := cfg.Inline.Images, cfg.Inline.Code
		if images == nil {
			images = pipeline.DefaultImageExtensions
		}
		if code == nil {
			code = pipeline.DefaultCodeExtensions
		}
		return hints.ForUnresolvableInline(images, code)
	case errors.Is(err, markup.ErrTemplateMarker):
		marker := cfg.Template.Marker
		if marker == "" {
			marker = markup.DefaultMarker
		}
		return hints.ForTemplateMarker(marker)
	case errors.Is(err, fileutil.ErrInvalidExtension):
		return hints.ForInvalidExtension()
	case errors.Is(err, markup.ErrUnresolvedBlob), errors.Is(err, markup.ErrMalformedPlaceholder):
		return hints.ForVaultFault()
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *configNotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(config.SearchPaths(nf.name))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrSelfTest):
		return hints.ForSelfTest()
	}
	return ""
}

// configNotFoundError remembers the config name that could not be found so
// the hint can list where it was looked for.
type configNotFoundError struct {
	name string
	err  error
}

func (e *configNotFoundError) Error() string { return e.err.Error() }
func (e *configNotFoundError) Unwrap() error { return e.err }
