package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all recognized command-line flags.
type cliFlags struct {
	help    bool
	version bool
	quiet   bool

	config   string
	source   string
	output   string
	markdown string

	title       string
	description string
	author      string
	keywords    []string
	favicon     string

	corner        string
	cornerFork    bool
	cornerForkSet bool

	darkMode string
}

// parseFlags parses the argument vector (without the program name) and
// returns the flags and remaining positional arguments. Parse errors print
// usage to stderr. Unknown flags are tolerated and pass through unused, so
// project-specific extras don't abort the run.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.ParseErrorsWhitelist = flag.ParseErrorsWhitelist{UnknownFlags: true}
	f := &cliFlags{}

	fs.BoolVarP(&f.help, "help", "h", false, "show usage and exit")
	fs.BoolVarP(&f.version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")

	fs.StringVarP(&f.config, "config", "c", "", "manifest file path (default package.json)")
	fs.StringVarP(&f.source, "source", "s", "", "markdown source path (default README.md)")
	fs.StringVarP(&f.output, "output", "o", "", "HTML output path (default index.html)")
	fs.StringVar(&f.markdown, "markdown", "", "literal markdown string, bypasses --source")

	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVar(&f.description, "description", "", "description meta content")
	fs.StringVar(&f.author, "author", "", "author meta content")
	fs.StringSliceVar(&f.keywords, "keywords", nil, "comma-separated keywords meta content")
	fs.StringVar(&f.favicon, "favicon", "", "favicon URL or path")

	fs.StringVar(&f.corner, "github-corners", "", "github corner link URL")
	fs.BoolVar(&f.cornerFork, "github-corners-fork", false, "use the fork-me corner variant")

	fs.StringVar(&f.darkMode, "dark-mode", "", "color mode: auto, light, dark")

	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.cornerForkSet = fs.Changed("github-corners-fork")

	return f, fs.Args(), nil
}
