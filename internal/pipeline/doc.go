// Package pipeline implements the Markdown to HTML transformation stages:
// goldmark conversion, inline style annotations, markdown-link rewriting,
// document wrapping, and github-corner injection. Stages are small
// interfaces so the service layer can compose or replace them.
package pipeline
