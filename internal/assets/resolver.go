package assets

import "errors"

// AssetResolver tries a custom directory first and falls back to the
// embedded assets when the asset is not found there.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// embedded assets only. Returns an error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a host template, custom directory first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.LoadTemplate(name)
		if err == nil || !isNotFoundError(err) {
			return content, err
		}
	}
	return r.embedded.LoadTemplate(name)
}

// LoadFixture loads a fixture, custom directory first. An incomplete custom
// fixture is an error, not a reason to fall back.
func (r *AssetResolver) LoadFixture(name string) (*Fixture, error) {
	if r.custom != nil {
		fx, err := r.custom.LoadFixture(name)
		if err == nil || !isNotFoundError(err) {
			return fx, err
		}
	}
	return r.embedded.LoadFixture(name)
}

// isNotFoundError reports whether err allows falling back to embedded assets.
// Validation and I/O errors do not.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrFixtureNotFound)
}

// HasCustomLoader returns true if a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
