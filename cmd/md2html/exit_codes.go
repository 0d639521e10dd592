package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/manifest"
)

// Exit codes for the md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, manifest, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, manifest.ErrManifestRead) {
		return ExitIO
	}

	// Usage/manifest/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, md2html.ErrEmptyMarkdown) ||
		errors.Is(err, md2html.ErrInvalidDarkMode) {
		return ExitUsage
	}

	return ExitGeneral
}
