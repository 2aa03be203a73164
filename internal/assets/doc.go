// Package assets provides host templates and the self-test fixture.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded on not-found
//
// # Directory Structure
//
//	{basePath}/
//	├── templates/
//	│   └── {name}.tpl           # host template with one insertion marker
//	└── fixtures/
//	    ├── {name}.md            # fixture input document
//	    └── {name}.html          # expected rendered fragment
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
