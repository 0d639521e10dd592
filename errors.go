package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrInvalidDarkMode = errors.New("invalid dark mode")
)
