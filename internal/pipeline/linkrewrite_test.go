package pipeline

import (
	"strings"
	"testing"
)

func TestRewriteMarkdownLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "relative md link rewritten",
			in:   `<p><a href="docs/guide.md">guide</a></p>`,
			want: `href="docs/guide.html"`,
		},
		{
			name: "markdown extension rewritten",
			in:   `<p><a href="NOTES.markdown">notes</a></p>`,
			want: `href="NOTES.html"`,
		},
		{
			name: "fragment preserved",
			in:   `<p><a href="CHANGELOG.md#v2">v2</a></p>`,
			want: `href="CHANGELOG.html#v2"`,
		},
		{
			name: "query preserved",
			in:   `<p><a href="page.md?x=1">q</a></p>`,
			want: `href="page.html?x=1"`,
		},
		{
			name: "absolute URL untouched",
			in:   `<p><a href="https://example.com/README.md">r</a></p>`,
			want: `href="https://example.com/README.md"`,
		},
		{
			name: "bare anchor untouched",
			in:   `<p><a href="#section">s</a></p>`,
			want: `href="#section"`,
		},
		{
			name: "absolute path untouched",
			in:   `<p><a href="/docs/guide.md">g</a></p>`,
			want: `href="/docs/guide.md"`,
		},
		{
			name: "non-markdown link untouched",
			in:   `<p><a href="image.png">i</a></p>`,
			want: `href="image.png"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RewriteMarkdownLinks(tt.in)
			if err != nil {
				t.Fatalf("RewriteMarkdownLinks() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want contains %q", out, tt.want)
			}
		})
	}

	t.Run("full document preserved", func(t *testing.T) {
		in := `<!DOCTYPE html><html><head><title>t</title></head><body><a href="a.md">a</a></body></html>`
		out, err := RewriteMarkdownLinks(in)
		if err != nil {
			t.Fatalf("RewriteMarkdownLinks() error = %v", err)
		}
		if !strings.Contains(out, `href="a.html"`) {
			t.Errorf("output = %q, want rewritten link", out)
		}
		if !strings.Contains(out, "<title>t</title>") {
			t.Errorf("output = %q, want head preserved", out)
		}
	})
}
