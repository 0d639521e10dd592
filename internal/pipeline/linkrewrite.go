package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteMarkdownLinks converts relative links pointing at Markdown files
// into links pointing at their HTML counterparts, so cross-references keep
// working once a set of documents is converted.
//
// Rewrites a[href] values like "docs/guide.md" or "CHANGELOG.md#v2" to
// "docs/guide.html" and "CHANGELOG.html#v2".
//
// Does NOT rewrite:
//   - absolute URLs (http, https, file, data, protocol-relative)
//   - bare anchors (#section)
//   - absolute paths (/docs/guide.md) which may be served as-is
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteLinks(doc)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.TrimSpace(content)

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(strings.ToLower(trimmed), "<!doctype") ||
		strings.HasPrefix(strings.ToLower(trimmed), "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteLinks traverses the DOM and rewrites markdown hrefs in place.
func rewriteLinks(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key == "href" && isRelativeMarkdownRef(attr.Val) {
				n.Attr[i].Val = markdownRefToHTML(attr.Val)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteLinks(c)
	}
}

// isRelativeMarkdownRef returns true if the href is a relative reference
// to a markdown file, optionally carrying a fragment or query.
func isRelativeMarkdownRef(href string) bool {
	if href == "" {
		return false
	}

	// Skip URLs, anchors, and absolute paths
	if strings.HasPrefix(href, "http://") ||
		strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "file://") ||
		strings.HasPrefix(href, "data:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "//") ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "/") {
		return false
	}

	base, _, _ := splitRef(href)
	ext := strings.ToLower(path.Ext(base))
	return ext == ".md" || ext == ".markdown"
}

// markdownRefToHTML swaps the markdown extension for .html, preserving
// any query string or fragment.
func markdownRefToHTML(href string) string {
	base, sep, rest := splitRef(href)
	ext := path.Ext(base)
	return base[:len(base)-len(ext)] + ".html" + sep + rest
}

// splitRef splits an href into the path part and a trailing "#..." or
// "?..." suffix. sep is "#", "?", or empty.
func splitRef(href string) (base, sep, rest string) {
	if idx := strings.IndexAny(href, "#?"); idx != -1 {
		return href[:idx], string(href[idx]), href[idx+1:]
	}
	return href, "", ""
}
