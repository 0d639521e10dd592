package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrDocumentRender indicates the page template failed to render.
var ErrDocumentRender = errors.New("document template rendering failed")

// pageTemplate produces the standalone HTML5 page. Meta and link entries
// come from the resolved options; the body is the already-rendered
// fragment wrapped in the markdown-body container.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}" data-color-mode="{{.ColorMode}}">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.Title}}</title>
{{- range .Meta}}
<meta name="{{.Name}}" content="{{.Content}}" />
{{- end}}
{{- range .Links}}
<link rel="{{.Rel}}"{{with .Type}} type="{{.}}"{{end}} href="{{.Href}}" />
{{- end}}
{{- range .Styles}}
<style>
{{.}}
</style>
{{- end}}
</head>
<body>
<article class="markdown-body">
{{.Body}}
</article>
</body>
</html>
`

// MetaEntry is a <meta name content> pair in the page head.
type MetaEntry struct {
	Name    string
	Content string
}

// LinkEntry is a <link> element in the page head. Type may be empty.
type LinkEntry struct {
	Rel  string
	Type string
	Href string
}

// DocumentData holds everything the page template needs.
type DocumentData struct {
	Lang      string
	ColorMode string // "auto", "light", "dark"
	Title     string
	Meta      []MetaEntry
	Links     []LinkEntry
	Styles    []template.CSS
	Body      template.HTML
}

// DocumentWrapper defines the contract for wrapping a fragment in a page.
type DocumentWrapper interface {
	Wrap(ctx context.Context, data *DocumentData) (string, error)
}

// DocumentWrapping renders the standalone page template.
type DocumentWrapping struct {
	tmpl *template.Template
}

// NewDocumentWrapping creates a DocumentWrapping with the built-in template.
func NewDocumentWrapping() *DocumentWrapping {
	return &DocumentWrapping{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Wrap renders the full HTML page for the given document data.
// Empty Lang and ColorMode fall back to "en" and "auto".
func (w *DocumentWrapping) Wrap(ctx context.Context, data *DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d := *data
	if d.Lang == "" {
		d.Lang = "en"
	}
	if d.ColorMode == "" {
		d.ColorMode = "auto"
	}

	var buf bytes.Buffer
	if err := w.tmpl.Execute(&buf, &d); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	return buf.String(), nil
}

// Compile-time interface check.
var _ DocumentWrapper = (*DocumentWrapping)(nil)
