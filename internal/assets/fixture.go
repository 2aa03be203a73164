package assets

// Fixture pairs an input document with its expected rendered fragment.
type Fixture struct {
	Name     string
	Document string
	Expected string
}

// DefaultTemplateName is the name of the built-in host template.
const DefaultTemplateName = "default"

// SelfTestFixtureName is the name of the fixture used by the self-test.
const SelfTestFixtureName = "selftest"

// Asset file extensions.
const (
	templateExt        = ".tpl"
	fixtureDocumentExt = ".md"
	fixtureExpectedExt = ".html"
)
