package pipeline

import (
	"strings"
	"testing"
)

func TestApplyAnnotations(t *testing.T) {
	t.Run("style applied to preceding element", func(t *testing.T) {
		in := "<h1>Hi</h1>\n<!--md2html:style=color:red;-->\n<p>body</p>"
		out, err := ApplyAnnotations(in)
		if err != nil {
			t.Fatalf("ApplyAnnotations() error = %v", err)
		}
		if !strings.Contains(out, `<h1 style="color:red;">Hi</h1>`) {
			t.Errorf("output = %q, want styled h1", out)
		}
	})

	t.Run("class appended to preceding element", func(t *testing.T) {
		in := `<p class="note">x</p><!--md2html:class=highlight-->`
		out, err := ApplyAnnotations(in)
		if err != nil {
			t.Fatalf("ApplyAnnotations() error = %v", err)
		}
		if !strings.Contains(out, `class="note highlight"`) {
			t.Errorf("output = %q, want appended class", out)
		}
	})

	t.Run("annotation comment removed from output", func(t *testing.T) {
		in := "<p>x</p>\n<!--md2html:style=color:red;-->"
		out, err := ApplyAnnotations(in)
		if err != nil {
			t.Fatalf("ApplyAnnotations() error = %v", err)
		}
		if strings.Contains(out, "md2html:") {
			t.Errorf("output = %q, annotation comment leaked", out)
		}
	})

	t.Run("ordinary comments preserved", func(t *testing.T) {
		in := "<p>x</p>\n<!-- just a note -->"
		out, err := ApplyAnnotations(in)
		if err != nil {
			t.Fatalf("ApplyAnnotations() error = %v", err)
		}
		if !strings.Contains(out, "just a note") {
			t.Errorf("output = %q, want ordinary comment preserved", out)
		}
	})

	t.Run("no annotations returns input unchanged", func(t *testing.T) {
		in := "<p>plain</p>"
		out, err := ApplyAnnotations(in)
		if err != nil {
			t.Fatalf("ApplyAnnotations() error = %v", err)
		}
		if out != in {
			t.Errorf("output = %q, want input unchanged", out)
		}
	})

	t.Run("unknown annotation key dropped", func(t *testing.T) {
		in := "<p>x</p>\n<!--md2html:frobnicate=1-->"
		out, err := ApplyAnnotations(in)
		if err != nil {
			t.Fatalf("ApplyAnnotations() error = %v", err)
		}
		if strings.Contains(out, "frobnicate") {
			t.Errorf("output = %q, unknown annotation leaked", out)
		}
		if !strings.Contains(out, "<p>x</p>") {
			t.Errorf("output = %q, content damaged", out)
		}
	})

	t.Run("annotation without target is removed silently", func(t *testing.T) {
		in := "<!--md2html:style=color:red;-->\n<p>x</p>"
		out, err := ApplyAnnotations(in)
		if err != nil {
			t.Fatalf("ApplyAnnotations() error = %v", err)
		}
		if strings.Contains(out, "md2html:") {
			t.Errorf("output = %q, annotation comment leaked", out)
		}
		if strings.Contains(out, "style=") {
			t.Errorf("output = %q, style applied with no preceding element", out)
		}
	})
}
