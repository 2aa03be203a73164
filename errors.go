package markup

import (
	"errors"

	"github.com/alnah/go-markup/internal/assets"
	"github.com/alnah/go-markup/internal/pipeline"
	"github.com/alnah/go-markup/internal/vault"
)

// Sentinel errors for library operations.
var (
	// ErrUnresolvableInline indicates ![title](path) with an extension that is
	// neither an image nor an inlinable source file.
	ErrUnresolvableInline = pipeline.ErrUnresolvableInline

	// ErrTemplateMarker indicates a template without exactly one insertion marker.
	ErrTemplateMarker = pipeline.ErrTemplateMarker

	// ErrHTMLConversion indicates the CommonMark engine failed.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// ErrInvalidEngine indicates an unknown engine name.
	ErrInvalidEngine = errors.New("invalid engine")

	// ErrInvalidAssetPath indicates the custom asset directory is unusable.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrTemplateNotFound indicates a named template that does not exist.
	ErrTemplateNotFound = assets.ErrTemplateNotFound
)

// Internal-consistency faults. They signal a rule ordering or escaping bug
// and are never expected from well-formed input.
var (
	ErrUnresolvedBlob       = vault.ErrUnresolvedBlob
	ErrMalformedPlaceholder = vault.ErrMalformedPlaceholder
)
