package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrCornerRender indicates the corner template failed to render.
var ErrCornerRender = errors.New("corner template rendering failed")

// Corner badge labels, switched by the fork variant.
const (
	cornerViewLabel = "View source on GitHub"
	cornerForkLabel = "Fork me on GitHub"
)

// CornerData holds github-corner information for injection into HTML.
type CornerData struct {
	Href string
	Fork bool
}

// CornerInjector defines the contract for corner badge injection.
type CornerInjector interface {
	InjectCorner(ctx context.Context, htmlContent string, data *CornerData) (string, error)
}

// CornerInjection renders the corner badge and injects it after <body>.
type CornerInjection struct {
	tmpl *template.Template
}

// NewCornerInjection creates a CornerInjection from template content.
// Returns error if the template cannot be parsed.
func NewCornerInjection(tmplContent string) (*CornerInjection, error) {
	tmpl, err := template.New("corner").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing corner template: %w", err)
	}

	return &CornerInjection{tmpl: tmpl}, nil
}

// InjectCorner renders the corner badge and injects it right after the
// opening <body> tag. If data is nil or the Href is empty, returns
// htmlContent unchanged.
func (c *CornerInjection) InjectCorner(ctx context.Context, htmlContent string, data *CornerData) (string, error) {
	if data == nil || data.Href == "" {
		return htmlContent, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	label := cornerViewLabel
	if data.Fork {
		label = cornerForkLabel
	}

	var buf bytes.Buffer
	err := c.tmpl.Execute(&buf, struct {
		Href  string
		Label string
	}{Href: data.Href, Label: label})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCornerRender, err)
	}

	cornerHTML := buf.String()
	lowerHTML := strings.ToLower(htmlContent)

	// Insert after the closing > of <body...>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + "\n" + cornerHTML + htmlContent[insertPos:], nil
		}
	}

	// Fallback: prepend
	return cornerHTML + htmlContent, nil
}

// Compile-time interface check.
var _ CornerInjector = (*CornerInjection)(nil)
