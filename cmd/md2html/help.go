package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] [source.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown document into a standalone HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -s, --source <path>         Markdown source (default: README.md)")
	fmt.Fprintln(w, "  -o, --output <path>         HTML output (default: index.html)")
	fmt.Fprintln(w, "  -c, --config <path>         Project manifest (default: package.json)")
	fmt.Fprintln(w, "      --markdown <string>     Literal markdown, bypasses --source")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --title <s>             Page title (default: manifest name)")
	fmt.Fprintln(w, "      --description <s>       Description meta content")
	fmt.Fprintln(w, "      --author <s>            Author meta content")
	fmt.Fprintln(w, "      --keywords <a,b,c>      Keywords meta content")
	fmt.Fprintln(w, "      --favicon <url>         Favicon link")
	fmt.Fprintln(w, "      --dark-mode <s>         Color mode: auto, light, dark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Github corner:")
	fmt.Fprintln(w, "      --github-corners <url>  Corner link (default: manifest repository)")
	fmt.Fprintln(w, "      --github-corners-fork   Use the fork-me variant")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --version               Print version and exit")
	fmt.Fprintln(w, "  -h, --help                  Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The manifest may carry an \"md2html\" section overriding any of the")
	fmt.Fprintln(w, "above, plus a nested \"document\" record for page head entries.")
}
