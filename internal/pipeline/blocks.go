package pipeline

import "strings"

// Block rules work on lines. A document always starts and ends with an empty
// line (see PrepareDocument), so every content line has a neighbour on both
// sides and the edges behave like blank lines.

// blankAware rewrites every line accepted by match. The rewrite replaces the
// line together with the newline in front of it, so emit decides whether the
// line starts on its own or joins the previous one.
func blankAware(doc string, match func(line string) (string, bool), emit func(text string, prevBlank, nextBlank bool) string) string {
	lines := strings.Split(doc, "\n")

	var b strings.Builder
	b.Grow(len(doc) + len(doc)/4)
	b.WriteString(lines[0])

	for i := 1; i < len(lines); i++ {
		text, ok := match(lines[i])
		if !ok {
			b.WriteByte('\n')
			b.WriteString(lines[i])
			continue
		}
		prevBlank := lines[i-1] == ""
		nextBlank := i+1 >= len(lines) || lines[i+1] == ""
		b.WriteString(emit(text, prevBlank, nextBlank))
	}

	return b.String()
}

// describe turns "term:" followed by a four-space indented block into a
// <dt>/<dd> pair. The block runs until the next blank line and loses one level
// of indentation.
func describe(doc string) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines)+8)

	for i := 0; i < len(lines); {
		if i > 0 && i+1 < len(lines) && strings.HasPrefix(lines[i+1], indent) {
			if term, ok := descriptionTerm(lines[i]); ok {
				if end := descriptionEnd(lines, i); end != -1 {
					out = append(out, "<dt>"+term+"</dt>", "<dd>")
					for _, l := range lines[i+1 : end] {
						out = append(out, strings.TrimPrefix(l, indent))
					}
					out = append(out, "</dd>")
					i = end
					continue
				}
			}
		}
		out = append(out, lines[i])
		i++
	}

	return strings.Join(out, "\n")
}

const indent = "    "

func descriptionTerm(line string) (string, bool) {
	if len(line) < 2 || !strings.HasSuffix(line, ":") {
		return "", false
	}
	return line[:len(line)-1], true
}

// descriptionEnd returns the index of the blank line closing the definition
// that starts at lines[term+1], or -1 when there is none. The synthetic last
// line counts as blank.
func descriptionEnd(lines []string, term int) int {
	for k := term + 2; k < len(lines); k++ {
		if lines[k] == "" {
			return k
		}
	}
	return -1
}

// quoteIndented wraps runs of lines indented by four or more spaces in a
// blockquote. A run preceded by a blank line opens the quote; one followed by
// a blank line closes it. Otherwise lines are joined with <br/>.
func quoteIndented(doc string) string {
	return blankAware(doc, indentedText, func(text string, prevBlank, nextBlank bool) string {
		pre, post := "", "\n<br/>"
		if prevBlank {
			pre = "\n<blockquote>"
		}
		if nextBlank {
			post = "</blockquote>"
		}
		return pre + text + post
	})
}

func indentedText(line string) (string, bool) {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	switch {
	case n < 4:
		return "", false
	case n < len(line):
		return line[n:], true
	case n > 4:
		// All spaces: the last one is the text.
		return " ", true
	}
	return "", false
}

// listItems renders list item lines. The first item after a blank line opens
// the container and the last item before a blank line closes it.
func listItems(tag string, match func(string) (string, bool)) func(string) string {
	open, closing := "\n<"+tag+">\n", "</"+tag+">"
	return func(doc string) string {
		return blankAware(doc, match, func(text string, prevBlank, nextBlank bool) string {
			pre, post := "", ""
			if prevBlank {
				pre = open
			}
			if nextBlank {
				post = closing
			}
			return pre + "<li>" + text + "</li>\n" + post
		})
	}
}

func bulletText(line string) (string, bool) {
	if len(line) < 3 || (line[0] != '-' && line[0] != '*') || line[1] != ' ' {
		return "", false
	}
	return line[2:], true
}

func numberedText(line string) (string, bool) {
	n := 0
	for n < len(line) && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n == 0 || len(line) < n+3 || line[n] != ')' || line[n+1] != ' ' {
		return "", false
	}
	return line[n+2:], true
}
