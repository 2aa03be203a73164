// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForUnresolvableInline lists the extensions ![title](path) accepts.
func ForUnresolvableInline(images, code []string) string {
	return format(fmt.Sprintf("images: %s; inlined sources: %s; extend with inline.images or inline.code in the config file",
		joinOrNone(images), joinOrNone(code)))
}

// ForTemplateMarker explains the single-marker requirement.
func ForTemplateMarker(marker string) string {
	return format(fmt.Sprintf("the template must contain %q exactly once; use --marker to change it", marker))
}

// ForInvalidExtension shows the expected argument shapes.
func ForInvalidExtension() string {
	return format("usage: markup TEMPLATE.tpl DOCUMENT.md OUTPUT.html")
}

// ForVaultFault marks placeholder errors as internal faults.
func ForVaultFault() string {
	return format("this is an internal fault; please report it with the input document")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and a file in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-markup/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForSelfTest points at the diff printed above the error.
func ForSelfTest() string {
	return format("lines starting with - are expected, + are produced")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
