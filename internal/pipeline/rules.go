package pipeline

import (
	"fmt"

	"github.com/alnah/go-markup/internal/slug"
	"github.com/alnah/go-markup/internal/vault"
)

// Replacement templates.
const (
	codeTmpl      = `<code>${1}</code>`
	strikeTmpl    = `<del>${1}</del>`
	underlineTmpl = `<u>${1}</u>`
	italicsTmpl   = `<i>${1}</i>`
	boldTmpl      = `<b>${1}</b>`
	breakTmpl     = `<hr/>`
	quoteTmpl     = `<blockquote>${1}</blockquote>`
	dateTmpl      = `<span class="date">${1}</span>`
	emDashTmpl    = `&mdash;`
	anchorTmpl    = `<a href="${1}">${1}</a>`
	referenceTmpl = `<a href="${2}">${1}</a>`
	noteTextTmpl  = `<a id="${1}text" href="#${1}foot">&#91;${1}&#93;</a>`
	noteFootTmpl  = `<a id="${1}foot" href="#${1}text">&#91;${1}&#93;</a>`
)

// defaultRules returns the rule cascade in execution order.
//
// Preserving rules come first so nothing else sees code or verbatim markup.
// Footnote definitions run before references so "[1]:" is not read as
// "[1]" followed by a colon. Paragraph wrapping runs after every block rule.
// Bold runs before italics, and inline code runs last among emphasis rules.
func defaultRules() []Rule {
	return []Rule{
		rewrite("fenced-code", "```([\\s\\S]+?)```", fencedCode),
		verbatim("svg"),
		verbatim("pre"),
		verbatim("style"),
		verbatim("script"),
		scan("description", describe),
		scan("indented-quote", quoteIndented),
		scan("unordered-list", listItems("ul", bulletText)),
		scan("ordered-list", listItems("ol", numberedText)),
		rewrite("inline-resource", `!\[([^\]]*)\]\(([^\)]+)\)`, inlineResource),
		substitute("quote", `(?m)^> (.+)$`, quoteTmpl),
		rewrite("heading", `(?m)^(#+) (.+)$`, heading),
		substitute("thematic-break", `(?m)^---$`, breakTmpl),
		substitute("footnote-definition", `\[(\d+)\]:`, noteFootTmpl),
		substitute("footnote-reference", `\[(\d+)\]`, noteTextTmpl),
		rewrite("paragraph", `(?m)^(.+)$`, paragraph),
		substitute("bold", `\*\*(.+?)\*\*`, boldTmpl),
		substitute("italics", `\*(.+?)\*`, italicsTmpl),
		substitute("underline", `__(.+?)__`, underlineTmpl),
		substitute("strike", `~~(.+?)~~`, strikeTmpl),
		substitute("code", "`(.+?)`", codeTmpl),
		bounded("date", `(\d{4}/\d{2}/\d{2})`, isSpaceOrTagEnd, isSpace, dateTmpl),
		substitute("em-dash", `--`, emDashTmpl),
		substitute("autolink", `<(https?://[^>]+?)>`, anchorTmpl),
		substitute("link", `\[([^\]]+?)\]\(([^\)]+?)\)`, referenceTmpl),
	}
}

// verbatim preserves <tag ...>...</tag> regions byte for byte.
func verbatim(tag string) Rule {
	pattern := fmt.Sprintf(`<%s[\s\S]+?</%s>`, tag, tag)
	return rewrite("verbatim-"+tag, pattern, func(c *conversion, m []string) (string, error) {
		return c.vault.Preserve(m[0]), nil
	})
}

func fencedCode(c *conversion, m []string) (string, error) {
	return c.vault.Preserve(c.codeArea.Render(m[1])), nil
}

func inlineResource(c *conversion, m []string) (string, error) {
	return c.resources.Resolve(c.vault, m[1], m[2])
}

func heading(_ *conversion, m []string) (string, error) {
	level, text := len(m[1]), m[2]
	return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, slug.Make(text), text, level), nil
}

// paragraph wraps a line unless it already starts with markup or a vault token.
func paragraph(_ *conversion, m []string) (string, error) {
	line := m[1]
	if line[0] == '<' || vault.HasTokenPrefix(line) {
		return line, nil
	}
	return "<p>" + line + "</p>", nil
}
