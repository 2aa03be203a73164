//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkRuleEngine_ToHTML measures the full rule cascade on documents of
// increasing size.
func BenchmarkRuleEngine_ToHTML(b *testing.B) {
	engine := NewRuleEngine(RuleEngineOptions{})
	ctx := context.Background()

	for _, sections := range []int{1, 10, 100} {
		content := generateDocument(sections)
		b.Run(fmt.Sprintf("sections_%d", sections), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(content)))
			for i := 0; i < b.N; i++ {
				if _, err := engine.ToHTML(ctx, content, ""); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkGoldmarkEngine_ToHTML is the CommonMark baseline.
func BenchmarkGoldmarkEngine_ToHTML(b *testing.B) {
	engine := NewGoldmarkEngine()
	ctx := context.Background()
	content := generateDocument(10)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := engine.ToHTML(ctx, content, ""); err != nil {
			b.Fatal(err)
		}
	}
}

func generateDocument(sections int) string {
	var sb strings.Builder
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&sb, "## Section %d\n\n", i+1)
		sb.WriteString("Some **bold** and *italic* text -- with `code` and a [link](https://go.dev).\n\n")
		sb.WriteString("- one\n- two\n- three\n\n")
		sb.WriteString("```\nfor i in range(3):\n    print(i)\n```\n\n")
		fmt.Fprintf(&sb, "Note[%d] on 2026/10/19 here.\n\n[%d]: source\n\n", i+1, i+1)
	}
	return sb.String()
}
