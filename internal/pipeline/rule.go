package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-markup/internal/vault"
)

// conversion is the state owned by one ToHTML call.
type conversion struct {
	vault     *vault.Vault
	resources *ResourceResolver
	codeArea  CodeArea
}

// Rule is one document-wide rewrite pass.
type Rule struct {
	Name  string
	apply func(c *conversion, doc string) (string, error)
}

// substitute builds a rule that expands template for every match of pattern.
// Templates use regexp.Expand syntax (${1}).
func substitute(name, pattern, template string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		apply: func(_ *conversion, doc string) (string, error) {
			return re.ReplaceAllString(doc, template), nil
		},
	}
}

// rewrite builds a rule whose replacement is computed from the submatches.
func rewrite(name, pattern string, fn func(c *conversion, m []string) (string, error)) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		apply: func(c *conversion, doc string) (string, error) {
			return replaceAllFunc(re, doc, func(m []string) (string, error) {
				return fn(c, m)
			})
		},
	}
}

// scan builds a rule that works on the document line by line.
func scan(name string, fn func(doc string) string) Rule {
	return Rule{
		Name: name,
		apply: func(_ *conversion, doc string) (string, error) {
			return fn(doc), nil
		},
	}
}

// bounded builds a rule that expands template only where the byte before the
// match satisfies before and the byte after it satisfies after. Both
// neighbours must exist.
func bounded(name, pattern string, before, after func(byte) bool, template string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		apply: func(_ *conversion, doc string) (string, error) {
			locs := re.FindAllStringSubmatchIndex(doc, -1)
			if locs == nil {
				return doc, nil
			}

			var b strings.Builder
			b.Grow(len(doc))
			last := 0
			for _, loc := range locs {
				start, end := loc[0], loc[1]
				if start == 0 || end >= len(doc) || !before(doc[start-1]) || !after(doc[end]) {
					continue
				}
				b.WriteString(doc[last:start])
				b.Write(re.ExpandString(nil, template, doc, loc))
				last = end
			}
			b.WriteString(doc[last:])
			return b.String(), nil
		},
	}
}

// replaceAllFunc is regexp.ReplaceAllStringFunc with access to submatches
// and an error return that aborts the pass.
func replaceAllFunc(re *regexp.Regexp, s string, fn func(m []string) (string, error)) (string, error) {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		repl, err := fn(m)
		if err != nil {
			return "", err
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isSpaceOrTagEnd(c byte) bool {
	return c == '>' || isSpace(c)
}
