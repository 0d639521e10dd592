package main

import (
	"fmt"
	"io"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without touching flags or manifests.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: manifest file path
	Source     string // MD2HTML_SOURCE: markdown source path
	Output     string // MD2HTML_OUTPUT: HTML output path
	Favicon    string // MD2HTML_FAVICON: favicon URL
	Corner     string // MD2HTML_GITHUB_CORNERS: corner link URL
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":         true,
	"MD2HTML_SOURCE":         true,
	"MD2HTML_OUTPUT":         true,
	"MD2HTML_FAVICON":        true,
	"MD2HTML_GITHUB_CORNERS": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
		Source:     getenv("MD2HTML_SOURCE"),
		Output:     getenv("MD2HTML_OUTPUT"),
		Favicon:    getenv("MD2HTML_FAVICON"),
		Corner:     getenv("MD2HTML_GITHUB_CORNERS"),
	}
}

// warnUnknownEnvVars writes a warning for each MD2HTML_* variable that is
// not recognized, catching typos like MD2HTML_OUPUT.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "MD2HTML_") && !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s\n", name)
		}
	}
}

// applyEnvConfig fills flag values left unset from the environment.
// Flags always win over environment variables.
func applyEnvConfig(f *cliFlags, env *envConfig) {
	if f.config == "" {
		f.config = env.ConfigPath
	}
	if f.source == "" {
		f.source = env.Source
	}
	if f.output == "" {
		f.output = env.Output
	}
	if f.favicon == "" {
		f.favicon = env.Favicon
	}
	if f.corner == "" {
		f.corner = env.Corner
	}
}
