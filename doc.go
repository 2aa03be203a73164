// Package markup converts a terse, markdown-like text format to HTML and
// splices the result into a host template.
//
// # Quick Start
//
//	conv, err := markup.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, markup.Input{
//	    Document: "# Hello\n\nSome **bold** text.",
//	    Template: "<body>{{content}}</body>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0o644)
//
// result.Body holds the rendered fragment before template insertion.
// Leave Input.Template empty to use the built-in template.
//
// # Conversion Pipeline
//
//  1. Line endings are normalized and the document is framed by blank lines.
//  2. An ordered cascade of rules rewrites the whole document. Code fences,
//     raw svg/pre/style/script regions and inlined source files are rendered
//     once and stashed behind opaque tokens so later rules cannot touch them.
//  3. Block rules (description lists, indented quotes, lists, quotes,
//     headings, rules, footnotes, paragraphs) run before inline rules
//     (bold, italics, underline, strike, code, dates, dashes, links).
//  4. Tokens are resolved in one pass and the trimmed fragment is spliced into
//     the template at its single insertion marker.
//
// Every conversion owns its token store, so a Converter is safe for
// concurrent use.
//
// # Syntax
//
//	# Heading              <h1 id="heading">Heading</h1>
//	**b** *i* __u__ ~~s~~  <b>, <i>, <u>, <del>
//	`code`                 <code>
//	- item / * item        <ul><li>
//	1) item                <ol><li>
//	> quote                <blockquote>
//	    indented           <blockquote> spanning the indented run
//	Term:                  <dt>Term</dt><dd>...</dd>
//	    definition
//	---                    <hr/>
//	text[1] / [1]: note    cross-linked footnote anchors
//	2026/10/19             <span class="date">
//	--                     &mdash;
//	<https://x> [t](url)   links
//	![title](a.png)        <img>
//	![title](a.py)         the file's content in a read-only textarea
//
// # Configuration
//
//	conv, err := markup.NewConverter(
//	    markup.WithEngine(markup.EngineCommonMark),
//	    markup.WithMarker("<!-- body -->"),
//	    markup.WithCodeExtensions("py", "js", "go"),
//	)
//
// # Parallel Processing
//
// ConverterPool bounds the number of converters used by batch jobs:
//
//	pool := markup.NewConverterPool(markup.ResolvePoolSize(0))
//	conv, err := pool.Acquire()
//	defer pool.Release(conv)
package markup
