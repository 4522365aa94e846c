package snippet

import (
	"container/heap"
	"fmt"
	"slices"
	"strings"
)

// Snippet is a named snippet with its merged body and dependencies.
type Snippet struct {
	Name     string
	Includes []string // sorted, unique, never self
	Body     string
	Path     string // first contributing file
}

// Graph is an immutable, validated snippet dependency graph.
//
// It is safe for concurrent read access.
type Graph struct {
	byName map[string]*Snippet
	names  []string // sorted
}

type invalidError struct{ msg string }

func (e invalidError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return invalidError{msg: fmt.Sprintf(format, args...)}
}

// NewGraph merges fragments by snippet name and validates the include
// graph. It rejects:
//   - includes referencing unknown snippets
//   - self-includes
//   - any include cycle (direct or indirect)
func NewGraph(fragments []Fragment) (*Graph, error) {
	byName := map[string]*Snippet{}
	names := []string{}
	for _, f := range fragments {
		s, ok := byName[f.Name]
		if !ok {
			s = &Snippet{Name: f.Name, Path: f.Path}
			byName[f.Name] = s
			names = append(names, f.Name)
		}
		if s.Body != "" {
			s.Body += "\n\n"
		}
		s.Body += strings.TrimSpace(f.Body)
		s.Includes = append(s.Includes, f.Includes...)
	}
	slices.Sort(names)

	for _, name := range names {
		s := byName[name]
		slices.Sort(s.Includes)
		s.Includes = slices.Compact(s.Includes)
		for _, dep := range s.Includes {
			if dep == name {
				return nil, invalidf("snippet %q includes itself", name)
			}
			if _, ok := byName[dep]; !ok {
				return nil, invalidf("snippet %q includes unknown snippet %q", name, dep)
			}
		}
	}

	g := &Graph{byName: byName, names: names}
	if err := g.validateAcyclic(); err != nil {
		return nil, err
	}
	return g, nil
}

// Names returns every snippet name in sorted order.
func (g *Graph) Names() []string {
	return slices.Clone(g.names)
}

// Get returns the snippet with the given name.
func (g *Graph) Get(name string) (*Snippet, bool) {
	s, ok := g.byName[name]
	return s, ok
}

// Bundle renders a snippet with its transitive includes inlined,
// dependencies before dependents, each body exactly once and in
// deterministic order.
func (g *Graph) Bundle(name string) (string, error) {
	if _, ok := g.byName[name]; !ok {
		return "", invalidf("unknown snippet %q", name)
	}

	reachable := map[string]bool{}
	var mark func(string)
	mark = func(n string) {
		if reachable[n] {
			return
		}
		reachable[n] = true
		for _, dep := range g.byName[n].Includes {
			mark(dep)
		}
	}
	mark(name)

	bodies := []string{}
	for _, n := range g.topoOrder() {
		if reachable[n] {
			bodies = append(bodies, g.byName[n].Body)
		}
	}
	return strings.Join(bodies, "\n\n"), nil
}

// validateAcyclic proves the include graph has no cycles using Kahn's
// algorithm, extracting a deterministic witness path on failure.
func (g *Graph) validateAcyclic() error {
	if len(g.topoOrder()) == len(g.names) {
		return nil
	}
	return invalidf("include cycle: %s", strings.Join(g.findCycle(), " -> "))
}

type stringMinHeap []string

func (h stringMinHeap) Len() int           { return len(h) }
func (h stringMinHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h stringMinHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *stringMinHeap) Push(x any)        { *h = append(*h, x.(string)) }
func (h *stringMinHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topoOrder returns a deterministic dependency-first ordering. The ready
// queue is a min-heap by name.
func (g *Graph) topoOrder() []string {
	dependents := map[string][]string{}
	indeg := map[string]int{}
	for _, name := range g.names {
		indeg[name] = len(g.byName[name].Includes)
		for _, dep := range g.byName[name].Includes {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	ready := &stringMinHeap{}
	heap.Init(ready)
	for _, name := range g.names {
		if indeg[name] == 0 {
			heap.Push(ready, name)
		}
	}

	out := []string{}
	for ready.Len() > 0 {
		n := heap.Pop(ready).(string)
		out = append(out, n)
		for _, m := range dependents[n] {
			indeg[m]--
			if indeg[m] == 0 {
				heap.Push(ready, m)
			}
		}
	}
	return out
}

// findCycle performs a deterministic DFS over sorted names to extract one
// cycle path as a stable witness.
func (g *Graph) findCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	stack := []string{}

	var visit func(string) []string
	visit = func(n string) []string {
		color[n] = gray
		stack = append(stack, n)
		for _, dep := range g.byName[n].Includes {
			switch color[dep] {
			case gray:
				i := slices.Index(stack, dep)
				return append(slices.Clone(stack[i:]), dep)
			case white:
				if cycle := visit(dep); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[n] = black
		return nil
	}

	for _, name := range g.names {
		if color[name] == white {
			if cycle := visit(name); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
