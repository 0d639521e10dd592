package main

import (
	"strings"
	"testing"
)

func fakeGetenv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadEnvConfig(t *testing.T) {
	env := loadEnvConfig(fakeGetenv(map[string]string{
		"MD2HTML_CONFIG":         "conf.json",
		"MD2HTML_SOURCE":         "doc.md",
		"MD2HTML_OUTPUT":         "out.html",
		"MD2HTML_FAVICON":        "f.ico",
		"MD2HTML_GITHUB_CORNERS": "https://example.com/r",
	}))

	if env.ConfigPath != "conf.json" {
		t.Errorf("ConfigPath = %q", env.ConfigPath)
	}
	if env.Source != "doc.md" {
		t.Errorf("Source = %q", env.Source)
	}
	if env.Output != "out.html" {
		t.Errorf("Output = %q", env.Output)
	}
	if env.Favicon != "f.ico" {
		t.Errorf("Favicon = %q", env.Favicon)
	}
	if env.Corner != "https://example.com/r" {
		t.Errorf("Corner = %q", env.Corner)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Run("fills unset flags", func(t *testing.T) {
		f := &cliFlags{}
		applyEnvConfig(f, &envConfig{Source: "env.md", Output: "env.html"})
		if f.source != "env.md" {
			t.Errorf("source = %q, want %q", f.source, "env.md")
		}
		if f.output != "env.html" {
			t.Errorf("output = %q, want %q", f.output, "env.html")
		}
	})

	t.Run("flags win over environment", func(t *testing.T) {
		f := &cliFlags{source: "flag.md"}
		applyEnvConfig(f, &envConfig{Source: "env.md"})
		if f.source != "flag.md" {
			t.Errorf("source = %q, want %q", f.source, "flag.md")
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("warns on typos", func(t *testing.T) {
		var buf strings.Builder
		warnUnknownEnvVars([]string{"MD2HTML_OUPUT=x", "PATH=/bin"}, &buf)
		if !strings.Contains(buf.String(), "MD2HTML_OUPUT") {
			t.Errorf("output = %q, want warning about MD2HTML_OUPUT", buf.String())
		}
	})

	t.Run("silent for known vars", func(t *testing.T) {
		var buf strings.Builder
		warnUnknownEnvVars([]string{"MD2HTML_CONFIG=x", "HOME=/home"}, &buf)
		if buf.Len() != 0 {
			t.Errorf("output = %q, want no warnings", buf.String())
		}
	})
}
