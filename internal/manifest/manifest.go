// Package manifest loads the project manifest (package.json or a YAML
// equivalent) and resolves the effective render options by merging the
// configuration sources in precedence order.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestRead  = errors.New("failed to read manifest")
	ErrManifestParse = errors.New("failed to parse manifest")
)

// ToolKey is the manifest key holding the tool section.
const ToolKey = "md2html"

// Manifest is the subset of a project manifest the tool consumes.
type Manifest struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Keywords    []string    `json:"keywords" yaml:"keywords"`
	Author      Person      `json:"author" yaml:"author"`
	Repository  Repository  `json:"repository" yaml:"repository"`
	Tool        ToolSection `json:"md2html" yaml:"md2html"`
}

// Person is a manifest author field: either a plain string or an object
// with a name key.
type Person struct {
	Name string
}

func (p *Person) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Name = obj.Name
	return nil
}

func (p *Person) UnmarshalYAML(data []byte) error {
	var s string
	if err := yamlutil.Unmarshal(data, &s); err == nil {
		p.Name = s
		return nil
	}

	var obj struct {
		Name string `yaml:"name"`
	}
	if err := yamlutil.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Name = obj.Name
	return nil
}

// Repository is a manifest repository field: either a plain URL string or
// an object with a url key.
type Repository struct {
	URL string
}

func (r *Repository) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.URL = s
		return nil
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.URL = obj.URL
	return nil
}

func (r *Repository) UnmarshalYAML(data []byte) error {
	var s string
	if err := yamlutil.Unmarshal(data, &s); err == nil {
		r.URL = s
		return nil
	}

	var obj struct {
		URL string `yaml:"url"`
	}
	if err := yamlutil.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.URL = obj.URL
	return nil
}

// ToolSection is the tool-specific manifest section, keyed by ToolKey.
// Its fields are the highest-precedence configuration source.
type ToolSection struct {
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Keywords    []string        `json:"keywords" yaml:"keywords"`
	Author      string          `json:"author" yaml:"author"`
	Favicon     string          `json:"favicon" yaml:"favicon"`
	Corner      string          `json:"github-corners" yaml:"github-corners"`
	CornerFork  *bool           `json:"github-corners-fork" yaml:"github-corners-fork"`
	DarkMode    string          `json:"dark-mode" yaml:"dark-mode"`
	Style       string          `json:"style" yaml:"style"`
	Document    DocumentSection `json:"document" yaml:"document"`
}

// DocumentSection is the nested document sub-record inside the tool
// section: page title plus extra head entries.
type DocumentSection struct {
	Title string      `json:"title" yaml:"title"`
	Meta  []MetaEntry `json:"meta" yaml:"meta"`
	Links []LinkEntry `json:"links" yaml:"links"`
}

// MetaEntry is a meta name/content pair as written in the manifest.
type MetaEntry struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// LinkEntry is a link rel/type/href triple as written in the manifest.
type LinkEntry struct {
	Rel  string `json:"rel" yaml:"rel"`
	Type string `json:"type" yaml:"type"`
	Href string `json:"href" yaml:"href"`
}

// Load reads and parses the manifest at path. A missing file yields an
// empty manifest with no error; a present but unparseable file is fatal.
// Files with a .yaml or .yml extension parse as YAML, everything else as
// JSON. YAML configs are tool-specific, so they parse strictly and an
// unknown key is an error; package.json carries many unrelated fields
// and parses tolerantly.
func Load(path string) (*Manifest, error) {
	if !fileutil.FileExists(path) {
		return &Manifest{}, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestRead, err)
	}
	if len(data) == 0 {
		return &Manifest{}, nil
	}

	var m Manifest
	if fileutil.HasYAMLExtension(path) {
		if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
		}
	} else {
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
		}
	}

	return &m, nil
}
