package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a host template by name using the embedded loader.
// Returns ErrTemplateNotFound if the template does not exist.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// LoadFixture loads a fixture by name using the embedded loader.
// Returns ErrFixtureNotFound if the fixture does not exist.
func LoadFixture(name string) (*Fixture, error) {
	return defaultLoader.LoadFixture(name)
}
