package snippet

import (
	"encoding/json"
	"fmt"
	"strings"
)

// VSCodeSnippet is one entry of a VSCode *.code-snippets file.
type VSCodeSnippet struct {
	Prefix      string   `json:"prefix"`
	Body        []string `json:"body"`
	Description string   `json:"description,omitempty"`
	Scope       string   `json:"scope,omitempty"`
}

// VSCode renders every snippet of the graph as a self-contained VSCode
// snippet, transitive includes inlined.
func (g *Graph) VSCode(scope string) (map[string]VSCodeSnippet, error) {
	out := make(map[string]VSCodeSnippet, len(g.names))
	for _, name := range g.names {
		bundle, err := g.Bundle(name)
		if err != nil {
			return nil, err
		}
		out[name] = VSCodeSnippet{
			Prefix: name,
			Body:   strings.Split(bundle, "\n"),
			Scope:  scope,
		}
	}
	return out, nil
}

// MergeExtra merges hand-written snippets from a JSON document into
// snips. Extracted snippets win on name collision.
func MergeExtra(snips map[string]VSCodeSnippet, extraJSON []byte) (map[string]VSCodeSnippet, error) {
	extra := map[string]VSCodeSnippet{}
	if err := json.Unmarshal(extraJSON, &extra); err != nil {
		return nil, fmt.Errorf("err parsing extra snippets: %w", err)
	}
	for name, s := range snips {
		extra[name] = s
	}
	return extra, nil
}

// EncodeVSCode marshals a snippet map the way editors expect it, indented
// and without HTML escaping.
func EncodeVSCode(snips map[string]VSCodeSnippet) ([]byte, error) {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snips); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
