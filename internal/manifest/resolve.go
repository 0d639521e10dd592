package manifest

import (
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Flags carries the values parsed from the command line, already folded
// with environment overrides. Empty strings and nil slices mean unset.
type Flags struct {
	Markdown    string
	Source      string
	Output      string
	Title       string
	Description string
	Keywords    []string
	Author      string
	Favicon     string
	Corner      string
	CornerFork  *bool // nil means the flag was not given
	DarkMode    string
}

// Favicon link entry shape.
const (
	faviconRel  = "icon"
	faviconType = "image/x-icon"
)

// Resolve merges the four configuration sources into one effective option
// set. Precedence per field is an ordered candidate list evaluated left to
// right, first non-empty wins: tool section, then flags, then manifest
// top-level fields, then caller defaults. The document sub-record inside
// the tool section wins over everything for page head fields.
func Resolve(defaults md2html.Options, fl Flags, m *Manifest) md2html.Options {
	opts := defaults
	ts := m.Tool

	// I/O paths: flags only, defaults as fallback
	opts.Markdown = firstNonEmpty(fl.Markdown, defaults.Markdown)
	opts.Source = firstNonEmpty(fl.Source, defaults.Source, md2html.DefaultSource)
	opts.Output = firstNonEmpty(fl.Output, defaults.Output, md2html.DefaultOutput)

	// Title: explicit sources first, then the manifest's package name
	opts.Title = firstNonEmpty(ts.Title, fl.Title, m.Name, defaults.Title)

	// Github corner: explicit sources first, then the repository field
	opts.Corner = resolveCorner(ts.Corner, fl.Corner, m.Repository.URL, defaults.Corner)
	opts.CornerFork = defaults.CornerFork
	if fl.CornerFork != nil {
		opts.CornerFork = *fl.CornerFork
	}
	if ts.CornerFork != nil {
		opts.CornerFork = *ts.CornerFork
	}

	// Metadata fields: first non-empty source wins, appended exactly once
	opts.Description = firstNonEmpty(ts.Description, fl.Description, m.Description, defaults.Description)
	opts.Author = firstNonEmpty(ts.Author, fl.Author, m.Author.Name, defaults.Author)
	opts.Keywords = firstNonEmptyList(ts.Keywords, fl.Keywords, m.Keywords, defaults.Keywords)

	opts.Favicon = firstNonEmpty(ts.Favicon, fl.Favicon, defaults.Favicon)
	opts.DarkMode = firstNonEmpty(ts.DarkMode, fl.DarkMode, defaults.DarkMode)
	opts.Style = firstNonEmpty(ts.Style, defaults.Style)

	opts.Document = resolveDocument(defaults.Document, ts.Document, opts)

	return opts
}

// resolveDocument builds the page head configuration. The tool section's
// document sub-record replaces the defaults field-by-field, then the
// resolved metadata and favicon are appended without duplicating entries
// the sub-record already declares.
func resolveDocument(base md2html.Document, ds DocumentSection, opts md2html.Options) md2html.Document {
	doc := base

	if ds.Title != "" {
		doc.Title = ds.Title
	}
	if doc.Title == "" {
		doc.Title = opts.Title
	}

	if ds.Meta != nil {
		doc.Meta = nil
		for _, m := range ds.Meta {
			doc.Meta = append(doc.Meta, md2html.MetaEntry{Name: m.Name, Content: m.Content})
		}
	}
	if ds.Links != nil {
		doc.Link = nil
		for _, l := range ds.Links {
			doc.Link = append(doc.Link, md2html.LinkEntry{Rel: l.Rel, Type: l.Type, Href: l.Href})
		}
	}

	appendMeta(&doc, "description", opts.Description)
	appendMeta(&doc, "keywords", strings.Join(opts.Keywords, ","))
	appendMeta(&doc, "author", opts.Author)

	if opts.Favicon != "" && !hasLink(doc.Link, faviconRel) {
		doc.Link = append(doc.Link, md2html.LinkEntry{
			Rel:  faviconRel,
			Type: faviconType,
			Href: opts.Favicon,
		})
	}

	return doc
}

// appendMeta appends a meta entry unless the content is empty or an entry
// with that name already exists.
func appendMeta(doc *md2html.Document, name, content string) {
	if content == "" {
		return
	}
	for _, m := range doc.Meta {
		if m.Name == name {
			return
		}
	}
	doc.Meta = append(doc.Meta, md2html.MetaEntry{Name: name, Content: content})
}

// hasLink reports whether a link entry with the given rel exists.
func hasLink(links []md2html.LinkEntry, rel string) bool {
	for _, l := range links {
		if l.Rel == rel {
			return true
		}
	}
	return false
}

// StripGitScheme removes the git+ prefix npm manifests put on repository
// URLs, e.g. "git+https://example.com/r" becomes "https://example.com/r".
func StripGitScheme(url string) string {
	return strings.TrimPrefix(url, "git+")
}

// resolveCorner picks the first non-empty candidate and strips the git+
// prefix. Non-HTTP values, such as ssh remotes from a repository field,
// would render a dead badge link and are dropped instead.
func resolveCorner(candidates ...string) string {
	url := StripGitScheme(firstNonEmpty(candidates...))
	if !fileutil.IsURL(url) {
		return ""
	}
	return url
}

// firstNonEmpty returns the first non-empty candidate, or empty.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// firstNonEmptyList returns the first non-empty list, or nil.
// Lists do not concatenate across sources; the winning source is used
// whole so the result stays deterministic.
func firstNonEmptyList(candidates ...[]string) []string {
	for _, c := range candidates {
		if len(c) > 0 {
			return c
		}
	}
	return nil
}
