package module

// Registry stores loaded modules and answers the graph queries spec.md
// §4.5 requires: a dependency graph keyed by absolute path, a
// deterministic topological order, a cycle detector, and entry-point/
// dead-code candidate queries.
type Registry struct {
	modules map[string]*Module
	order   []string
}

// NewRegistry builds a Registry from a Loader's accumulated state.
func NewRegistry(l *Loader) *Registry {
	return &Registry{modules: l.Modules(), order: l.Order()}
}

// Module looks up a loaded module by absolute path.
func (r *Registry) Module(path string) (*Module, bool) {
	m, ok := r.modules[path]
	return m, ok
}

// Graph returns the dependency graph keyed by absolute path.
func (r *Registry) Graph() map[string][]string {
	graph := make(map[string][]string, len(r.modules))
	for path, m := range r.modules {
		graph[path] = append([]string(nil), m.DependencyPaths...)
	}
	return graph
}

// TopoOrder returns a deterministic topological order: DFS postorder over
// the dependency graph, visiting each node's first-load order so
// dependencies precede their dependents and ties break by which module
// loaded first.
func (r *Registry) TopoOrder() []string {
	visited := make(map[string]bool, len(r.modules))
	post := make([]string, 0, len(r.modules))
	var visit func(path string)
	visit = func(path string) {
		if visited[path] {
			return
		}
		visited[path] = true
		if m, ok := r.modules[path]; ok {
			for _, dep := range m.DependencyPaths {
				visit(dep)
			}
		}
		post = append(post, path)
	}
	for _, path := range r.order {
		visit(path)
	}
	return post
}

// Cycles returns every strongly connected component of size greater than
// one, via Tarjan's algorithm over the dependency graph.
func (r *Registry) Cycles() [][]string {
	t := &tarjan{graph: r.Graph(), index: map[string]int{}, lowlink: map[string]int{}, onStack: map[string]bool{}}
	for _, path := range r.order {
		if _, seen := t.index[path]; !seen {
			t.strongconnect(path)
		}
	}
	var cycles [][]string
	for _, scc := range t.sccs {
		if len(scc) > 1 {
			cycles = append(cycles, scc)
		}
	}
	return cycles
}

type tarjan struct {
	graph   map[string][]string
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	counter int
	sccs    [][]string
}

func (t *tarjan) strongconnect(v string) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.graph[v] {
		if _, seen := t.index[w]; !seen {
			t.strongconnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var scc []string
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}

// EntryPoints returns modules that no other loaded module depends on.
func (r *Registry) EntryPoints() []string {
	referenced := make(map[string]bool, len(r.modules))
	for _, m := range r.modules {
		for _, dep := range m.DependencyPaths {
			referenced[dep] = true
		}
	}
	var entries []string
	for _, path := range r.order {
		if !referenced[path] {
			entries = append(entries, path)
		}
	}
	return entries
}

// DeadCode returns modules reachable from no entry point.
func (r *Registry) DeadCode() []string {
	reachable := make(map[string]bool, len(r.modules))
	var visit func(string)
	visit = func(path string) {
		if reachable[path] {
			return
		}
		reachable[path] = true
		if m, ok := r.modules[path]; ok {
			for _, dep := range m.DependencyPaths {
				visit(dep)
			}
		}
	}
	for _, e := range r.EntryPoints() {
		visit(e)
	}
	var dead []string
	for _, path := range r.order {
		if !reachable[path] {
			dead = append(dead, path)
		}
	}
	return dead
}

// Validate re-resolves every recorded dependency specifier from every
// registered module, surfacing missing files, and runs the cycle check.
func (r *Registry) Validate(resolver *Resolver) (bool, []string) {
	var errs []string
	for _, cycle := range r.Cycles() {
		errs = append(errs, "circular dependency: "+joinPaths(cycle))
	}
	for path, m := range r.modules {
		for _, dep := range m.Dependencies {
			if _, err := resolver.Resolve(dep, path); err != nil {
				errs = append(errs, err.Error())
			}
		}
	}
	return len(errs) == 0, errs
}

func joinPaths(paths []string) string {
	out := ""
	for i, p := range paths {
		if i > 0 {
			out += " -> "
		}
		out += p
	}
	return out
}
