package pipeline

import (
	"context"
	"strings"
	"testing"
)

const cornerTestTemplate = `<a href="{{.Href}}" class="github-corner" aria-label="{{.Label}}"><svg></svg></a>`

func TestCornerInjection(t *testing.T) {
	ctx := context.Background()

	inj, err := NewCornerInjection(cornerTestTemplate)
	if err != nil {
		t.Fatalf("NewCornerInjection() error = %v", err)
	}

	page := "<!DOCTYPE html>\n<html>\n<head></head>\n<body>\n<h1>Hi</h1>\n</body>\n</html>"

	t.Run("injects after body open tag", func(t *testing.T) {
		out, err := inj.InjectCorner(ctx, page, &CornerData{Href: "https://example.com/r"})
		if err != nil {
			t.Fatalf("InjectCorner() error = %v", err)
		}

		bodyIdx := strings.Index(out, "<body>")
		cornerIdx := strings.Index(out, "github-corner")
		h1Idx := strings.Index(out, "<h1>")
		if cornerIdx == -1 {
			t.Fatal("output missing corner element")
		}
		if !(bodyIdx < cornerIdx && cornerIdx < h1Idx) {
			t.Errorf("corner not between <body> and content: body=%d corner=%d h1=%d", bodyIdx, cornerIdx, h1Idx)
		}
		if !strings.Contains(out, `href="https://example.com/r"`) {
			t.Error("output missing corner href")
		}
	})

	t.Run("uses view label by default", func(t *testing.T) {
		out, err := inj.InjectCorner(ctx, page, &CornerData{Href: "https://example.com/r"})
		if err != nil {
			t.Fatalf("InjectCorner() error = %v", err)
		}
		if !strings.Contains(out, "View source on GitHub") {
			t.Errorf("output = %q, want view label", out)
		}
	})

	t.Run("fork variant switches label", func(t *testing.T) {
		out, err := inj.InjectCorner(ctx, page, &CornerData{Href: "https://example.com/r", Fork: true})
		if err != nil {
			t.Fatalf("InjectCorner() error = %v", err)
		}
		if !strings.Contains(out, "Fork me on GitHub") {
			t.Errorf("output = %q, want fork label", out)
		}
	})

	t.Run("nil data returns content unchanged", func(t *testing.T) {
		out, err := inj.InjectCorner(ctx, page, nil)
		if err != nil {
			t.Fatalf("InjectCorner() error = %v", err)
		}
		if out != page {
			t.Error("content changed for nil data")
		}
	})

	t.Run("empty href returns content unchanged", func(t *testing.T) {
		out, err := inj.InjectCorner(ctx, page, &CornerData{})
		if err != nil {
			t.Fatalf("InjectCorner() error = %v", err)
		}
		if out != page {
			t.Error("content changed for empty href")
		}
	})

	t.Run("no body tag prepends corner", func(t *testing.T) {
		out, err := inj.InjectCorner(ctx, "<h1>Hi</h1>", &CornerData{Href: "https://example.com/r"})
		if err != nil {
			t.Fatalf("InjectCorner() error = %v", err)
		}
		if !strings.HasPrefix(out, "<a href=") {
			t.Errorf("output = %q, want corner prepended", out)
		}
	})

	t.Run("invalid template returns error", func(t *testing.T) {
		if _, err := NewCornerInjection("{{.Unclosed"); err == nil {
			t.Fatal("NewCornerInjection() error = nil, want parse error")
		}
	})
}
