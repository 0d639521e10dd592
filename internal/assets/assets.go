// Package assets provides the default stylesheet and HTML templates used
// when wrapping rendered Markdown in a standalone page. Assets are embedded
// so the binary is self-contained.
package assets

// Names of built-in assets.
const (
	DefaultStyleName   = "markdown"
	CornerTemplateName = "corner"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the default embedded loader.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// DefaultStylesheet returns the built-in github-flavored page stylesheet.
// Panics only if the embedded asset is missing, which is a build defect.
func DefaultStylesheet() string {
	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		panic("assets: embedded default stylesheet missing: " + err.Error())
	}
	return css
}
