package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-markup/internal/vault"
)

// ErrUnresolvableInline indicates an embedded reference whose extension is
// neither an image nor an inlinable source file.
var ErrUnresolvableInline = errors.New("cannot inline reference")

// Extension sets recognized by ResourceResolver (lowercase, no dot).
var (
	DefaultImageExtensions = []string{"png", "jpg", "jpeg", "gif", "svg"}
	DefaultCodeExtensions  = []string{"py", "js"}
)

// ResourceResolver turns ![title](path) references into HTML.
type ResourceResolver struct {
	// SourceDir anchors relative source paths. Empty means the working directory.
	SourceDir string
	// Images and Code list extensions without the dot, matched case-insensitively.
	Images []string
	Code   []string
	// ReadFile reads inlined sources. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
	CodeArea CodeArea
}

// Resolve renders an image tag for image extensions. Source files are read,
// rendered as a code area and preserved in v; the returned fragment is the
// vault token. Any other extension fails with ErrUnresolvableInline.
func (r *ResourceResolver) Resolve(v *vault.Vault, title, src string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(src), "."))

	switch {
	case ext != "" && slices.Contains(r.images(), ext):
		return fmt.Sprintf(`<img src="%s" title="%s"/>`, src, title), nil
	case ext != "" && slices.Contains(r.code(), ext):
		content, err := r.read(src)
		if err != nil {
			return "", err
		}
		return v.Preserve(r.CodeArea.Render(normalizeLineEndings(string(content)))), nil
	default:
		return "", fmt.Errorf("%w: <%s>", ErrUnresolvableInline, src)
	}
}

func (r *ResourceResolver) read(src string) ([]byte, error) {
	name := filepath.FromSlash(src)
	if r.SourceDir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(r.SourceDir, name)
	}

	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	content, err := readFile(name) // #nosec G304 -- path comes from the document author
	if err != nil {
		return nil, fmt.Errorf("reading inline source: %w", err)
	}
	return content, nil
}

func (r *ResourceResolver) images() []string {
	if r.Images == nil {
		return DefaultImageExtensions
	}
	return r.Images
}

func (r *ResourceResolver) code() []string {
	if r.Code == nil {
		return DefaultCodeExtensions
	}
	return r.Code
}
