// Package pipeline implements the text-to-HTML conversion pipeline.
//
// The lightweight engine rewrites the whole document through an ordered list
// of rules:
//   - Document preparation (line normalisation, placeholder sanitising)
//   - Preserving rules that move rendered fragments into a vault
//     (fenced code, verbatim svg/pre/style/script regions, inlined sources)
//   - Block rules (description lists, indented quotes, lists, headings,
//     thematic breaks, footnotes, paragraphs)
//   - Inline rules (emphasis, dates, dashes, links)
//   - Vault resolution and trimming
//
// Rule order is significant. Bold runs before italics because both use '*'.
// Lists and quotes run before paragraph wrapping so their lines are not
// wrapped twice, and paragraph wrapping skips lines that begin with a vault
// token.
//
// A CommonMark engine backed by Goldmark is available for documents that need
// the full syntax. Both engines produce a fragment that InjectDocument splices
// into a host template.
package pipeline
