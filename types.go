package md2html

// Color mode constants for the rendered page.
const (
	DarkModeAuto  = "auto"
	DarkModeLight = "light"
	DarkModeDark  = "dark"
)

// Default input and output paths.
const (
	DefaultSource = "README.md"
	DefaultOutput = "index.html"
)

// MetaEntry is a <meta name content> pair injected into the page head.
type MetaEntry struct {
	Name    string
	Content string
}

// LinkEntry is a <link> element injected into the page head.
// Type may be empty for rel-only links.
type LinkEntry struct {
	Rel  string
	Type string
	Href string
}

// Document holds the page-level head configuration: the <title> text and
// any extra meta and link entries.
type Document struct {
	Title string
	Meta  []MetaEntry
	Link  []LinkEntry
}

// Options is the effective option set driving one render invocation.
// It is assembled once by the resolver, consumed by Render, and discarded.
type Options struct {
	Markdown string // Literal markdown source; wins over Source when set
	Source   string // Markdown file path (default README.md)
	Output   string // HTML output path (default index.html)

	Title       string   // Fallback page title
	Description string   // Becomes a description meta entry
	Keywords    []string // Become a keywords meta entry
	Author      string   // Becomes an author meta entry
	Favicon     string   // Becomes an icon link entry

	Corner     string // Github corner URL; empty disables the badge
	CornerFork bool   // Use the fork-me corner variant

	DarkMode string // "auto", "light", "dark" (default auto)
	Style    string // Extra CSS appended after the default stylesheet

	Document Document // Page head configuration, highest-priority source
}

// DefaultOptions returns the caller-supplied defaults used when no other
// configuration source sets a field.
func DefaultOptions() Options {
	return Options{
		Source:   DefaultSource,
		Output:   DefaultOutput,
		DarkMode: DarkModeAuto,
	}
}

// PageTitle returns the effective <title> text: the document sub-record
// title when set, otherwise the top-level title.
func (o *Options) PageTitle() string {
	if o.Document.Title != "" {
		return o.Document.Title
	}
	return o.Title
}
