package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed templates/*
var templates embed.FS

//go:embed fixtures/*
var fixtures embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a host template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + templateExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadFixture loads a fixture pair from embedded assets by name.
func (e *EmbeddedLoader) LoadFixture(name string) (*Fixture, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	doc, docErr := fixtures.ReadFile("fixtures/" + name + fixtureDocumentExt)
	want, wantErr := fixtures.ReadFile("fixtures/" + name + fixtureExpectedExt)

	return buildFixture(name, doc, docErr, want, wantErr)
}

// buildFixture classifies the two read results shared by every loader.
func buildFixture(name string, doc []byte, docErr error, want []byte, wantErr error) (*Fixture, error) {
	docMissing := errors.Is(docErr, fs.ErrNotExist)
	wantMissing := errors.Is(wantErr, fs.ErrNotExist)

	if docMissing && wantMissing {
		return nil, fmt.Errorf("%w: %q", ErrFixtureNotFound, name)
	}
	if docErr != nil && !docMissing {
		return nil, fmt.Errorf("%w: reading %s%s: %v", ErrAssetRead, name, fixtureDocumentExt, docErr)
	}
	if wantErr != nil && !wantMissing {
		return nil, fmt.Errorf("%w: reading %s%s: %v", ErrAssetRead, name, fixtureExpectedExt, wantErr)
	}
	if docMissing {
		return nil, fmt.Errorf("%w: %q missing %s%s", ErrIncompleteFixture, name, name, fixtureDocumentExt)
	}
	if wantMissing {
		return nil, fmt.Errorf("%w: %q missing %s%s", ErrIncompleteFixture, name, name, fixtureExpectedExt)
	}

	return &Fixture{
		Name:     name,
		Document: string(doc),
		Expected: string(want),
	}, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
