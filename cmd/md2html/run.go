package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/manifest"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write HTML file")
)

// defaultManifestPath is consulted when --config is not given.
const defaultManifestPath = "package.json"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Renderer is the interface for the render service.
type Renderer interface {
	Render(ctx context.Context, opts md2html.Options) (string, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*md2html.Service)(nil)

// run resolves the effective options, renders the page, and writes it to
// the output path. Help and version short-circuit before any file I/O.
// Returns the version string when invoked with the version flag, and an
// empty string otherwise.
func run(args []string, env *Environment, svc Renderer) (string, error) {
	flags, positional, err := parseFlags(args[1:], env.Stderr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return "", nil
	}
	if flags.version {
		v := versionString()
		fmt.Fprintln(env.Stdout, v)
		return v, nil
	}

	warnUnknownEnvVars(env.Environ(), env.Stderr)

	// A single positional argument is shorthand for --source; fold it in
	// before the environment so it keeps flag-level precedence.
	if flags.source == "" && len(positional) > 0 {
		flags.source = positional[0]
	}

	applyEnvConfig(flags, loadEnvConfig(env.Getenv))

	opts, err := resolveOptions(flags, env)
	if err != nil {
		return "", err
	}

	if opts.Markdown == "" {
		content, err := readMarkdownFile(resolvePath(env.WorkDir, opts.Source))
		if err != nil {
			return "", err
		}
		opts.Markdown = content
	}

	page, err := svc.Render(context.Background(), opts)
	if err != nil {
		return "", err
	}

	outputPath := resolvePath(env.WorkDir, opts.Output)
	if err := writeOutputFile(outputPath, page); err != nil {
		return "", err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", displayPath(env.WorkDir, outputPath))
	}
	return "", nil
}

// resolveOptions loads the manifest and merges all configuration sources.
func resolveOptions(flags *cliFlags, env *Environment) (md2html.Options, error) {
	configPath := flags.config
	if configPath == "" {
		configPath = defaultManifestPath
	}

	m, err := manifest.Load(resolvePath(env.WorkDir, configPath))
	if err != nil {
		return md2html.Options{}, err
	}

	fl := manifest.Flags{
		Markdown:    flags.markdown,
		Source:      flags.source,
		Output:      flags.output,
		Title:       flags.title,
		Description: flags.description,
		Keywords:    flags.keywords,
		Author:      flags.author,
		Favicon:     flags.favicon,
		Corner:      flags.corner,
		DarkMode:    flags.darkMode,
	}
	if flags.cornerForkSet {
		fork := flags.cornerFork
		fl.CornerFork = &fork
	}

	return manifest.Resolve(md2html.DefaultOptions(), fl, m), nil
}

// readMarkdownFile reads the content of a Markdown file.
func readMarkdownFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- source path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// writeOutputFile writes the page, creating parent directories as needed.
func writeOutputFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resolvePath makes a path absolute relative to the working directory.
func resolvePath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// displayPath reports the output path relative to the working directory
// when possible, matching what the user typed.
func displayPath(workDir, path string) string {
	if rel, err := filepath.Rel(workDir, path); err == nil && !filepath.IsAbs(rel) {
		return rel
	}
	return path
}
