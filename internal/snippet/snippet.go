// Package snippet extracts tagged declarations from Go source trees and
// renders them as editor snippets.
//
// A declaration is tagged by directives in its doc comment:
//
//	//snip:dsu
//	//snip:include gcd
//
// The first form assigns the declaration to a named snippet, the second
// declares a dependency on another snippet. Directives placed before the
// package clause apply to every declaration in the file.
package snippet

import (
	"strings"
)

const (
	directivePrefix = "//snip:"
	includeKeyword  = "include"
)

// Fragment is one tagged declaration lifted from a source file.
type Fragment struct {
	Name     string
	Includes []string
	Body     string
	Path     string
}

// parseDirective splits a comment line into a directive name, if any.
// For include directives the returned name is the dependency.
func parseDirective(line string) (name string, include bool, ok bool) {
	if !strings.HasPrefix(line, directivePrefix) {
		return "", false, false
	}
	rest := strings.TrimPrefix(line, directivePrefix)
	if dep, found := strings.CutPrefix(rest, includeKeyword+" "); found {
		dep = strings.TrimSpace(dep)
		if dep == "" {
			return "", false, false
		}
		return dep, true, true
	}
	rest = strings.TrimSpace(rest)
	if rest == "" || strings.ContainsAny(rest, " \t") {
		return "", false, false
	}
	return rest, false, true
}

// stripDirectives removes directive lines from a snippet body.
func stripDirectives(body string) string {
	lines := strings.Split(body, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if _, _, ok := parseDirective(strings.TrimSpace(l)); ok {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}
