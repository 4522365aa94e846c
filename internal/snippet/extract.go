package snippet

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ExtractDirs walks every dir recursively and extracts fragments from all
// non-test Go files, in deterministic walk order.
func ExtractDirs(dirs []string) ([]Fragment, error) {
	fragments := []Fragment{}
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != dir && (d.Name() == "testdata" || strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			frs, err := ExtractFile(path)
			if err != nil {
				return err
			}
			fragments = append(fragments, frs...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return fragments, nil
}

// ExtractFile extracts every tagged top-level declaration from one file.
func ExtractFile(path string) ([]Fragment, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("err parsing %s: %w", path, err)
	}

	fileName, fileIncludes := fileDirectives(fset, file)

	fragments := []Fragment{}
	for _, decl := range file.Decls {
		doc, skip := declDoc(decl)
		if skip {
			continue
		}

		name := fileName
		includes := append([]string{}, fileIncludes...)
		if doc != nil {
			for _, c := range doc.List {
				d, include, ok := parseDirective(c.Text)
				if !ok {
					continue
				}
				if include {
					includes = append(includes, d)
				} else {
					name = d
				}
			}
		}
		if name == "" {
			continue
		}

		fragments = append(fragments, Fragment{
			Name:     name,
			Includes: includes,
			Body:     declBody(fset, src, decl, doc),
			Path:     path,
		})
	}
	return fragments, nil
}

// fileDirectives collects directives from comment groups preceding the
// package clause. They apply to the whole file.
func fileDirectives(fset *token.FileSet, file *ast.File) (string, []string) {
	name := ""
	includes := []string{}
	for _, group := range file.Comments {
		if group.End() >= file.Package {
			break
		}
		for _, c := range group.List {
			d, include, ok := parseDirective(c.Text)
			if !ok {
				continue
			}
			if include {
				includes = append(includes, d)
			} else {
				name = d
			}
		}
	}
	return name, includes
}

// declDoc returns the doc group of a top-level declaration. Import and
// package clauses never become fragments.
func declDoc(decl ast.Decl) (doc *ast.CommentGroup, skip bool) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return d.Doc, false
	case *ast.GenDecl:
		if d.Tok == token.IMPORT {
			return nil, true
		}
		return d.Doc, false
	default:
		return nil, true
	}
}

// declBody slices the original source for the declaration, doc comment
// included, with directive lines removed.
func declBody(fset *token.FileSet, src []byte, decl ast.Decl, doc *ast.CommentGroup) string {
	start := decl.Pos()
	if doc != nil {
		start = doc.Pos()
	}
	lo := fset.Position(start).Offset
	hi := fset.Position(decl.End()).Offset
	return stripDirectives(string(src[lo:hi]))
}
