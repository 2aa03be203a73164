package main

import (
	"errors"
	"os"

	"github.com/alnah/go-markup"
	"github.com/alnah/go-markup/internal/assets"
	"github.com/alnah/go-markup/internal/config"
	"github.com/alnah/go-markup/internal/fileutil"
)

// Exit codes for the markup CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid arguments, config, or precondition
	ExitIO         = 3 // File not found, permission denied, write failure
	ExitConversion = 4 // Document could not be converted, or self-test mismatch
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion faults (exit 4)
	if errors.Is(err, markup.ErrUnresolvableInline) ||
		errors.Is(err, markup.ErrUnresolvedBlob) ||
		errors.Is(err, markup.ErrMalformedPlaceholder) ||
		errors.Is(err, markup.ErrHTMLConversion) ||
		errors.Is(err, ErrSelfTest) {
		return ExitConversion
	}

	// Usage/config/precondition errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoDocuments) ||
		errors.Is(err, fileutil.ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, markup.ErrInvalidEngine) ||
		errors.Is(err, markup.ErrInvalidAssetPath) ||
		errors.Is(err, markup.ErrTemplateMarker) ||
		errors.Is(err, markup.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, assets.ErrFixtureNotFound) ||
		errors.Is(err, assets.ErrIncompleteFixture) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
