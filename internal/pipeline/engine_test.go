package pipeline

// Notes:
// - Cases go through RuleEngine.ToHTML so each exercises the full cascade,
//   including paragraph wrapping and vault resolution.
// - Inline sources are read through a stub ReadFile; the real filesystem path
//   is covered in resource_test.go.

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/alnah/go-markup/internal/vault"
)

func stubReader(files map[string]string) func(string) ([]byte, error) {
	return func(name string) ([]byte, error) {
		content, ok := files[name]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return []byte(content), nil
	}
}

// ---------------------------------------------------------------------------
// TestRuleEngine_ToHTML - Rule cascade output
// ---------------------------------------------------------------------------

func TestRuleEngine_ToHTML(t *testing.T) {
	t.Parallel()

	engine := NewRuleEngine(RuleEngineOptions{
		ReadFile: stubReader(map[string]string{
			"demo.py": "print('hi')\n",
		}),
	})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold before italics",
			input: "**bold** and *italic*",
			want:  "<p><b>bold</b> and <i>italic</i></p>\n",
		},
		{
			name:  "underline strike and code",
			input: "__u__ ~~s~~ `c`",
			want:  "<p><u>u</u> <del>s</del> <code>c</code></p>\n",
		},
		{
			name:  "heading with slug",
			input: "# Hello World",
			want:  "<h1 id=\"hello-world\">Hello World</h1>\n",
		},
		{
			name:  "heading slug ignores emphasis markers",
			input: "## **Big** news",
			want:  "<h2 id=\"big-news\"><b>Big</b> news</h2>\n",
		},
		{
			name:  "heading level follows hash count",
			input: "####### seven",
			want:  "<h7 id=\"seven\">seven</h7>\n",
		},
		{
			name:  "thematic break",
			input: "a\n\n---\n\nb",
			want:  "<p>a</p>\n\n<hr/>\n\n<p>b</p>\n",
		},
		{
			name:  "single line quote",
			input: "> wise words",
			want:  "<blockquote>wise words</blockquote>\n",
		},
		{
			name:  "indented quote between blank lines",
			input: "x\n\n    a\n    b\n\ny",
			want:  "<p>x</p>\n\n<blockquote>a\n<br/>b</blockquote>\n\n<p>y</p>\n",
		},
		{
			name:  "description term and definition",
			input: "Term:\n    Definition here\n    more\n\nafter",
			want:  "<dt>Term</dt>\n<dd>\n<p>Definition here</p>\n<p>more</p>\n</dd>\n\n<p>after</p>\n",
		},
		{
			name:  "description at end of document",
			input: "Term:\n    def",
			want:  "<dt>Term</dt>\n<dd>\n<p>def</p>\n</dd>\n",
		},
		{
			name:  "unordered list grouped",
			input: "intro\n\n- a\n- b\n* c\n\noutro",
			want:  "<p>intro</p>\n\n<ul>\n<li>a</li>\n<li>b</li>\n<li>c</li>\n</ul>\n\n<p>outro</p>\n",
		},
		{
			name:  "ordered list drops source numbers",
			input: "1) one\n7) two",
			want:  "<ol>\n<li>one</li>\n<li>two</li>\n</ol>\n",
		},
		{
			name:  "footnote round trip",
			input: "text[1]\n\n[1]: source",
			want: "<p>text<a id=\"1text\" href=\"#1foot\">&#91;1&#93;</a></p>\n\n" +
				"<a id=\"1foot\" href=\"#1text\">&#91;1&#93;</a> source\n",
		},
		{
			name:  "date between spaces",
			input: "Released 2026/10/19 today",
			want:  "<p>Released <span class=\"date\">2026/10/19</span> today</p>\n",
		},
		{
			name:  "date touching closing tag is left alone",
			input: "on 2026/10/19",
			want:  "<p>on 2026/10/19</p>\n",
		},
		{
			name:  "em dash",
			input: "a -- b",
			want:  "<p>a &mdash; b</p>\n",
		},
		{
			name:  "autolink",
			input: "see <https://example.com>",
			want:  "<p>see <a href=\"https://example.com\">https://example.com</a></p>\n",
		},
		{
			name:  "labelled link",
			input: "[Go](https://go.dev)",
			want:  "<p><a href=\"https://go.dev\">Go</a></p>\n",
		},
		{
			name:  "image reference",
			input: "![logo](img/Logo.PNG)",
			want:  "<img src=\"img/Logo.PNG\" title=\"logo\"/>\n",
		},
		{
			name:  "inlined source file",
			input: "![src](demo.py)",
			want:  "<textarea class=\"codearea\" rows=\"1\" cols=\"12\" readonly>print('hi')</textarea>\n",
		},
		{
			name:  "fenced code is isolated from later rules",
			input: "```\n**not bold**\n```",
			want:  "<textarea class=\"codearea\" rows=\"1\" cols=\"13\" readonly>**not bold**</textarea>\n",
		},
		{
			name:  "fenced code keeps heading and footnote markers",
			input: "```\n# title\n[1] -- x\n```",
			want:  "<textarea class=\"codearea\" rows=\"2\" cols=\"9\" readonly># title\n[1] -- x</textarea>\n",
		},
		{
			name:  "verbatim pre region",
			input: "<pre>**x** -- [1]</pre>",
			want:  "<pre>**x** -- [1]</pre>\n",
		},
		{
			name:  "verbatim style region keeps braces",
			input: "<style>\na { color: red; }\n</style>",
			want:  "<style>\na { color: red; }\n</style>\n",
		},
		{
			name:  "literal braces pass through",
			input: "{0} stays",
			want:  "<p>{0} stays</p>\n",
		},
		{
			name:  "forged placeholder is neutralized",
			input: vault.Token(0),
			want:  "<p>\uFFFD0\uFFFD</p>\n",
		},
		{
			name:  "crlf input",
			input: "a\r\n\r\nb",
			want:  "<p>a</p>\n\n<p>b</p>\n",
		},
		{
			name:  "empty document",
			input: "",
			want:  "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := engine.ToHTML(context.Background(), tt.input, "")
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToHTML() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRuleEngine_ToHTML_Errors - Fatal conversion faults
// ---------------------------------------------------------------------------

func TestRuleEngine_ToHTML_Errors(t *testing.T) {
	t.Parallel()

	engine := NewRuleEngine(RuleEngineOptions{ReadFile: stubReader(nil)})

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unsupported extension",
			input:   "![x](file.pdf)",
			wantErr: ErrUnresolvableInline,
			wantMsg: "file.pdf",
		},
		{
			name:    "missing source file",
			input:   "![x](missing.js)",
			wantErr: fs.ErrNotExist,
			wantMsg: "missing.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := engine.ToHTML(context.Background(), tt.input, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToHTML() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
			if got != "" {
				t.Errorf("ToHTML() returned output %q alongside error", got)
			}
		})
	}
}

func TestRuleEngine_ToHTML_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRuleEngine(RuleEngineOptions{}).ToHTML(ctx, "text", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestRuleEngine_VaultIsolation - No state shared between documents
// ---------------------------------------------------------------------------

func TestRuleEngine_VaultIsolation(t *testing.T) {
	t.Parallel()

	engine := NewRuleEngine(RuleEngineOptions{})
	ctx := context.Background()

	first, err := engine.ToHTML(ctx, "```\nfirst\n```\n\n```\nsecond\n```", "")
	if err != nil {
		t.Fatalf("first document: %v", err)
	}
	if !strings.Contains(first, ">first<") || !strings.Contains(first, ">second<") {
		t.Fatalf("first document lost a code block: %q", first)
	}

	second, err := engine.ToHTML(ctx, "```\nthird\n```", "")
	if err != nil {
		t.Fatalf("second document: %v", err)
	}
	if strings.Contains(second, "first") || strings.Contains(second, "second") {
		t.Errorf("second document leaked fragments from the first: %q", second)
	}
	if !strings.Contains(second, ">third<") {
		t.Errorf("second document = %q, want its own code block", second)
	}
}

func TestRuleEngine_ConcurrentUse(t *testing.T) {
	t.Parallel()

	engine := NewRuleEngine(RuleEngineOptions{})
	ctx := context.Background()

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := engine.ToHTML(ctx, "```\ncode\n```\n\n<svg><g/></svg>", "")
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent ToHTML: %v", err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRuleEngine_ListGrouping - Structure checked through a parsed tree
// ---------------------------------------------------------------------------

func TestRuleEngine_ListGrouping(t *testing.T) {
	t.Parallel()

	out, err := NewRuleEngine(RuleEngineOptions{}).ToHTML(context.Background(), "\n- one\n- two\n- three\n", "")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	counts := map[string]int{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if counts["ul"] != 1 {
		t.Errorf("ul elements = %d, want 1", counts["ul"])
	}
	if counts["li"] != 3 {
		t.Errorf("li elements = %d, want 3", counts["li"])
	}
	if strings.Count(out, "<ul>") != 1 || strings.Count(out, "</ul>") != 1 {
		t.Errorf("output should open and close exactly one list: %q", out)
	}
}

func TestDefaultRules_Order(t *testing.T) {
	t.Parallel()

	rules := defaultRules()
	index := make(map[string]int, len(rules))
	names := make([]string, len(rules))
	for i, r := range rules {
		index[r.Name] = i
		names[i] = r.Name
	}

	before := [][2]string{
		{"fenced-code", "verbatim-svg"},
		{"description", "indented-quote"},
		{"unordered-list", "paragraph"},
		{"ordered-list", "paragraph"},
		{"heading", "paragraph"},
		{"footnote-definition", "footnote-reference"},
		{"paragraph", "bold"},
		{"bold", "italics"},
		{"strike", "code"},
		{"thematic-break", "em-dash"},
	}
	for _, pair := range before {
		if index[pair[0]] >= index[pair[1]] {
			t.Errorf("rule %q must run before %q", pair[0], pair[1])
		}
	}
	if names[0] != "fenced-code" || names[len(names)-1] != "link" {
		t.Errorf("rule order = %v", names)
	}
}
