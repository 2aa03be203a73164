package markup

import (
	"context"

	"github.com/alnah/go-markup/internal/pipeline"
)

// Render inserts body into template at its single {{content}} marker.
// Zero or several markers fail with ErrTemplateMarker.
func Render(template, body string) (string, error) {
	return RenderWithMarker(template, body, pipeline.DefaultMarker)
}

// RenderWithMarker is Render with a custom insertion marker.
func RenderWithMarker(template, body, marker string) (string, error) {
	inj := &pipeline.MarkerInjection{Marker: marker}
	return inj.InjectDocument(context.Background(), template, body)
}
