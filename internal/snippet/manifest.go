package snippet

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Manifest configures which directories are scanned and how the snippets
// file is produced.
type Manifest struct {
	Dirs          []string `yaml:"dirs"`
	ExtraSnippets string   `yaml:"extra_snippets"`
	Output        string   `yaml:"output"`
	Scope         string   `yaml:"scope"`
}

// ReadManifest parses a YAML manifest and fills in defaults.
func ReadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := new(Manifest)
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("err parsing manifest %s: %w", path, err)
	}
	if len(m.Dirs) == 0 {
		m.Dirs = []string{"."}
	}
	if m.Output == "" {
		m.Output = "algosnip.code-snippets"
	}
	if m.Scope == "" {
		m.Scope = "go"
	}
	return m, nil
}
