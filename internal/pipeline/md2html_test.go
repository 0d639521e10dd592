package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkConverter(t *testing.T) {
	conv := NewGoldmarkConverter()
	ctx := context.Background()

	t.Run("renders heading with anchor id", func(t *testing.T) {
		out, err := conv.ToHTML(ctx, "# Hello World")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(out, "<h1 id=\"hello-world\">Hello World</h1>") {
			t.Errorf("output = %q, want h1 with anchor id", out)
		}
	})

	t.Run("returns fragment without document wrapper", func(t *testing.T) {
		out, err := conv.ToHTML(ctx, "plain text")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if strings.Contains(out, "<html") || strings.Contains(out, "<body") {
			t.Errorf("output = %q, want bare fragment", out)
		}
	})

	t.Run("renders GFM table", func(t *testing.T) {
		md := "| a | b |\n|---|---|\n| 1 | 2 |"
		out, err := conv.ToHTML(ctx, md)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(out, "<table>") {
			t.Errorf("output = %q, want a table element", out)
		}
	})

	t.Run("renders GFM strikethrough", func(t *testing.T) {
		out, err := conv.ToHTML(ctx, "~~gone~~")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(out, "<del>gone</del>") {
			t.Errorf("output = %q, want del element", out)
		}
	})

	t.Run("passes raw HTML through", func(t *testing.T) {
		out, err := conv.ToHTML(ctx, "<kbd>Ctrl</kbd>")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(out, "<kbd>Ctrl</kbd>") {
			t.Errorf("output = %q, want raw HTML preserved", out)
		}
	})

	t.Run("highlights fenced code with classes", func(t *testing.T) {
		md := "```go\npackage main\n```"
		out, err := conv.ToHTML(ctx, md)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(out, "<pre") || !strings.Contains(out, "class") {
			t.Errorf("output = %q, want class-based highlighting", out)
		}
	})

	t.Run("cancelled context returns error", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := conv.ToHTML(cancelled, "# Hi")
		if err == nil {
			t.Fatal("ToHTML() error = nil, want context error")
		}
	})
}
