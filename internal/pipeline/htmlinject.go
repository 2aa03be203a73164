package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultMarker is the insertion point recognized in host templates.
const DefaultMarker = "{{content}}"

// ErrTemplateMarker indicates a template without exactly one insertion marker.
var ErrTemplateMarker = errors.New("template must contain exactly one insertion marker")

// DocumentInjector defines the contract for placing a rendered document into
// a host template.
type DocumentInjector interface {
	InjectDocument(ctx context.Context, template, body string) (string, error)
}

// MarkerInjection splices the body verbatim at the template's marker.
type MarkerInjection struct {
	Marker string
}

// InjectDocument replaces the single marker in template with body.
// Zero or several markers fail with ErrTemplateMarker.
func (m *MarkerInjection) InjectDocument(ctx context.Context, template, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	marker := m.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	if n := strings.Count(template, marker); n != 1 {
		return "", fmt.Errorf("%w: found %d of %q", ErrTemplateMarker, n, marker)
	}

	idx := strings.Index(template, marker)

	var b strings.Builder
	b.Grow(len(template) - len(marker) + len(body))
	b.WriteString(template[:idx])
	b.WriteString(body)
	b.WriteString(template[idx+len(marker):])
	return b.String(), nil
}
