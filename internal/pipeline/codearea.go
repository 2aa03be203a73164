package pipeline

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultCodeAreaClass is the class attribute of rendered code areas.
const DefaultCodeAreaClass = "codearea"

// CodeArea renders source text as a fixed-size read-only textarea.
type CodeArea struct {
	Class string
}

// Render trims code and sizes the textarea to its line count and to the
// widest line plus one column. Widths are display columns, with every rune
// counting at least one.
func (c CodeArea) Render(code string) string {
	code = strings.TrimSpace(code)
	lines := strings.Split(code, "\n")

	width := 0
	for _, l := range lines {
		if w := displayWidth(l); w > width {
			width = w
		}
	}

	class := c.Class
	if class == "" {
		class = DefaultCodeAreaClass
	}

	return fmt.Sprintf(`<textarea class="%s" rows="%d" cols="%d" readonly>%s</textarea>`,
		class, len(lines), width+1, code)
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw < 1 {
			rw = 1
		}
		w += rw
	}
	return w
}
