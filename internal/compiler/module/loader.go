package module

import (
	"fmt"
	"os"

	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/lexer"
	"github.com/somonscript/somon/internal/compiler/parser"
)

// CircularPolicy governs how the Loader reacts to a re-entrant load of a
// module that is still in the middle of loading.
type CircularPolicy string

const (
	PolicyError  CircularPolicy = "error"
	PolicyWarn   CircularPolicy = "warn"
	PolicyIgnore CircularPolicy = "ignore"
)

// Status tracks a Module's position in the load lifecycle.
type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
)

// FileReader reads the contents of path. Injected so tests can supply an
// in-memory filesystem instead of touching disk - the same seam the
// teacher hardcodes as a direct os.ReadFile call in resolver.loadFile.
type FileReader func(path string) ([]byte, error)

// Module is a single loaded compilation unit.
type Module struct {
	ID   string
	Source  string
	Program *ast.Program
	// Dependencies holds each import/re-export source exactly as written.
	Dependencies []string
	// DependencyPaths holds the resolved absolute path for the
	// corresponding entry in Dependencies, populated once that
	// dependency's own load completes.
	DependencyPaths []string
	Status          Status
}

// Loader resolves, reads, and parses modules, caching by absolute path and
// enforcing a circular-dependency policy across re-entrant loads - the
// teacher's `loading[absPath] = true; defer delete(...)` guard
// generalized into a configurable policy instead of an unconditional
// error.
type Loader struct {
	Resolver *Resolver
	Policy   CircularPolicy
	Read     FileReader
	// Externals lists specifiers the loader must not try to resolve or
	// read - spec.md §4.5's bundler passes these through untouched so the
	// host runtime's own loader handles them.
	Externals map[string]bool

	cache    map[string]*Module
	order    []string
	warnings []string
}

// NewLoader builds a Loader. A nil resolver defaults to New(); a nil read
// callback defaults to os.ReadFile; an empty policy defaults to
// PolicyError.
func NewLoader(resolver *Resolver, read FileReader, policy CircularPolicy) *Loader {
	if resolver == nil {
		resolver = New()
	}
	if read == nil {
		read = os.ReadFile
	}
	if policy == "" {
		policy = PolicyError
	}
	return &Loader{
		Resolver: resolver,
		Policy:   policy,
		Read:     read,
		cache:    make(map[string]*Module),
	}
}

// Warnings returns circular-dependency warnings accumulated under
// PolicyWarn.
func (l *Loader) Warnings() []string {
	return append([]string(nil), l.warnings...)
}

// Load resolves specifier relative to fromFile, reads and parses it if not
// already cached, recursively loads its own dependencies, and returns the
// resulting Module.
func (l *Loader) Load(specifier, fromFile string) (*Module, error) {
	resolved, err := l.Resolver.Resolve(specifier, fromFile)
	if err != nil {
		return nil, errors.NewError(errors.CodeModuleNotFound, err.Error(), errors.Position{File: fromFile}, "", errors.CategoryResolution)
	}
	absPath := resolved.AbsolutePath

	if mod, ok := l.cache[absPath]; ok {
		if mod.Status == StatusLoading {
			return l.handleCircular(fromFile, mod)
		}
		return mod, nil
	}

	mod := &Module{ID: absPath, Status: StatusLoading}
	l.cache[absPath] = mod

	data, err := l.Read(absPath)
	if err != nil {
		delete(l.cache, absPath)
		return nil, errors.NewError(errors.CodeModuleNotFound, err.Error(), errors.Position{File: absPath}, "", errors.CategoryResolution)
	}
	mod.Source = string(data)

	bag := errors.NewBag(0)
	prog := parser.Parse(lexer.New(mod.Source), absPath, bag)
	if bag.HasErrors() {
		delete(l.cache, absPath)
		return nil, fmt.Errorf("parse errors in %s: %v", absPath, bag.Diagnostics())
	}
	mod.Program = prog
	mod.Dependencies = dependenciesOf(prog)

	for _, dep := range mod.Dependencies {
		if l.Externals[dep] {
			mod.DependencyPaths = append(mod.DependencyPaths, dep)
			continue
		}
		depMod, err := l.Load(dep, absPath)
		if err != nil {
			return nil, err
		}
		mod.DependencyPaths = append(mod.DependencyPaths, depMod.ID)
	}

	mod.Status = StatusLoaded
	l.order = append(l.order, absPath)
	return mod, nil
}

// handleCircular applies l.Policy when a load of target is re-entered
// while target is still loading (fromFile is the module that triggered
// the re-entrant load, so the pair names both ends of the cycle edge).
func (l *Loader) handleCircular(fromFile string, target *Module) (*Module, error) {
	switch l.Policy {
	case PolicyWarn:
		l.warnings = append(l.warnings, fmt.Sprintf("circular dependency: %s <-> %s", fromFile, target.ID))
		return target, nil
	case PolicyIgnore:
		return target, nil
	default:
		return nil, errors.NewError(errors.CodeCircularDependency,
			fmt.Sprintf("circular dependency: %s <-> %s", fromFile, target.ID),
			errors.Position{File: fromFile}, "", errors.CategoryResolution)
	}
}

// Modules returns every module loaded so far, keyed by absolute path.
func (l *Loader) Modules() map[string]*Module {
	return l.cache
}

// Order returns the order in which modules finished loading.
func (l *Loader) Order() []string {
	return append([]string(nil), l.order...)
}

func dependenciesOf(prog *ast.Program) []string {
	var deps []string
	for _, stmt := range prog.Body {
		switch s := stmt.(type) {
		case *ast.Import:
			deps = append(deps, s.Source)
		case *ast.Export:
			if s.Source != "" {
				deps = append(deps, s.Source)
			}
		}
	}
	return deps
}
