package md2html

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Service orchestrates the markdown-to-HTML page pipeline.
type Service struct {
	converter  pipeline.HTMLConverter
	wrapper    pipeline.DocumentWrapper
	corner     pipeline.CornerInjector
	stylesheet string
}

// Option customizes a Service.
type Option func(*Service)

// WithHTMLConverter replaces the markdown converter (e.g., by tests).
func WithHTMLConverter(c pipeline.HTMLConverter) Option {
	return func(s *Service) { s.converter = c }
}

// WithStylesheet replaces the default embedded stylesheet.
func WithStylesheet(css string) Option {
	return func(s *Service) { s.stylesheet = css }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	corner, err := pipeline.NewCornerInjection(mustLoadTemplate(assets.CornerTemplateName))
	if err != nil {
		// The embedded template is part of the build; failing to parse it
		// is a defect, not a runtime condition.
		panic("md2html: embedded corner template invalid: " + err.Error())
	}

	s := &Service{
		converter:  pipeline.NewGoldmarkConverter(),
		wrapper:    pipeline.NewDocumentWrapping(),
		corner:     corner,
		stylesheet: assets.DefaultStylesheet(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Render runs the full pipeline and returns the standalone HTML page.
// The context is used for cancellation.
func (s *Service) Render(ctx context.Context, opts Options) (string, error) {
	if err := s.validate(opts); err != nil {
		return "", err
	}

	// Convert markdown to an HTML fragment
	fragment, err := s.converter.ToHTML(ctx, opts.Markdown)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	// Interpret inline style annotations
	fragment, err = pipeline.ApplyAnnotations(fragment)
	if err != nil {
		return "", fmt.Errorf("applying annotations: %w", err)
	}

	// Point markdown cross-references at their HTML counterparts
	fragment, err = pipeline.RewriteMarkdownLinks(fragment)
	if err != nil {
		return "", fmt.Errorf("rewriting links: %w", err)
	}

	// Wrap the fragment in a standalone page
	page, err := s.wrapper.Wrap(ctx, s.documentData(opts, fragment))
	if err != nil {
		return "", fmt.Errorf("wrapping document: %w", err)
	}

	// Inject the github corner badge
	page, err = s.corner.InjectCorner(ctx, page, &pipeline.CornerData{
		Href: opts.Corner,
		Fork: opts.CornerFork,
	})
	if err != nil {
		return "", fmt.Errorf("injecting corner: %w", err)
	}

	return page, nil
}

// validate checks the options before rendering.
func (s *Service) validate(opts Options) error {
	if strings.TrimSpace(opts.Markdown) == "" {
		return ErrEmptyMarkdown
	}

	switch opts.DarkMode {
	case "", DarkModeAuto, DarkModeLight, DarkModeDark:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDarkMode, opts.DarkMode)
	}

	return nil
}

// documentData builds the page template input from the resolved options.
func (s *Service) documentData(opts Options, fragment string) *pipeline.DocumentData {
	data := &pipeline.DocumentData{
		ColorMode: opts.DarkMode,
		Title:     opts.PageTitle(),
		Body:      template.HTML(fragment), // #nosec G203 -- fragment is pipeline output, not caller input
	}

	for _, m := range opts.Document.Meta {
		data.Meta = append(data.Meta, pipeline.MetaEntry{Name: m.Name, Content: m.Content})
	}
	for _, l := range opts.Document.Link {
		data.Links = append(data.Links, pipeline.LinkEntry{Rel: l.Rel, Type: l.Type, Href: l.Href})
	}

	data.Styles = append(data.Styles, template.CSS(s.stylesheet)) // #nosec G203 -- embedded asset
	if opts.Style != "" {
		data.Styles = append(data.Styles, template.CSS(opts.Style)) // #nosec G203 -- project-supplied CSS
	}

	return data
}

// mustLoadTemplate loads an embedded template or panics.
func mustLoadTemplate(name string) string {
	content, err := assets.LoadTemplate(name)
	if err != nil {
		panic("md2html: embedded template missing: " + err.Error())
	}
	return content
}
