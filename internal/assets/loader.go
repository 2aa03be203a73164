package assets

import (
	"fmt"
	"strings"
)

// AssetLoader defines the contract for loading host templates and fixtures.
type AssetLoader interface {
	// LoadTemplate loads a host template by name (without .tpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadFixture loads a document and its expected rendering by name.
	// Returns ErrFixtureNotFound if neither file exists.
	// Returns ErrIncompleteFixture if only one of them exists.
	LoadFixture(name string) (*Fixture, error)
}

// ValidateAssetName rejects names that are empty, contain whitespace, or
// contain path separators or dots. Names map to a single file per kind, so
// anything that could select another directory or extension is refused.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\. \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
