package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// annotationPrefix introduces an inline annotation comment in the source:
//
//	## Heading
//	<!--md2html:style=color:red;-->
//
// The annotation applies to the nearest preceding element sibling.
const annotationPrefix = "md2html:"

// Supported annotation keys.
const (
	annotationStyle = "style"
	annotationClass = "class"
)

// ApplyAnnotations interprets md2html annotation comments in the rendered
// fragment, setting style or class attributes on the preceding element.
// The consumed comments are removed from the output. Unknown annotation
// keys are dropped silently.
func ApplyAnnotations(htmlContent string) (string, error) {
	if !strings.Contains(htmlContent, annotationPrefix) {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	annotateNode(doc)

	return renderHTML(doc, isFragment)
}

// annotateNode walks the tree, applying and removing annotation comments.
func annotateNode(n *html.Node) {
	var pending []*html.Node

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode {
			if key, value, ok := parseAnnotation(c.Data); ok {
				applyToPrevElement(c, key, value)
				pending = append(pending, c)
			}
			continue
		}
		annotateNode(c)
	}

	for _, c := range pending {
		n.RemoveChild(c)
	}
}

// parseAnnotation extracts key and value from a comment like
// "md2html:style=color:red;". Returns ok=false for ordinary comments.
func parseAnnotation(comment string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(comment)
	if !strings.HasPrefix(trimmed, annotationPrefix) {
		return "", "", false
	}

	body := trimmed[len(annotationPrefix):]
	key, value, found := strings.Cut(body, "=")
	if !found || key == "" {
		return "", "", false
	}

	return key, value, true
}

// applyToPrevElement sets the annotation on the nearest preceding element
// sibling of the comment node. Text-only siblings (whitespace between
// blocks) are skipped.
func applyToPrevElement(comment *html.Node, key, value string) {
	var target *html.Node
	for p := comment.PrevSibling; p != nil; p = p.PrevSibling {
		if p.Type == html.ElementNode {
			target = p
			break
		}
	}
	if target == nil {
		return
	}

	switch key {
	case annotationStyle:
		setAttr(target, "style", value)
	case annotationClass:
		appendAttr(target, "class", value)
	}
}

// setAttr sets or replaces an attribute on the node.
func setAttr(n *html.Node, key, value string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// appendAttr appends to a space-separated attribute, creating it if absent.
func appendAttr(n *html.Node, key, value string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = attr.Val + " " + value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}
