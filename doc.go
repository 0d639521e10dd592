// Package md2html converts Markdown documents into standalone HTML pages.
//
// # Quick Start
//
// Create a service and render markdown:
//
//	svc := md2html.New()
//
//	page, err := svc.Render(ctx, md2html.Options{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    "hello",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(page), 0644)
//
// # Rendering Pipeline
//
// The conversion follows these stages:
//
//  1. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  2. Inline annotation comments (<!--md2html:style=...-->) applied to elements
//  3. Relative *.md links rewritten to *.html
//  4. Document wrapping (title, meta, links, stylesheet, dark mode)
//  5. Github corner badge injection
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2html.New(
//	    md2html.WithStylesheet(customCSS),
//	)
//
// Per-render options are passed via Options. The md2html command resolves
// Options by merging defaults, environment variables, CLI flags, the
// project manifest (package.json), and the manifest's md2html section.
package md2html
