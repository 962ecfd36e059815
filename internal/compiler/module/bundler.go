package module

import (
	"fmt"
	"strings"

	"github.com/somonscript/somon/internal/compiler/generator"
)

// BundleOptions configures Bundle's output.
type BundleOptions struct {
	// Externals lists specifiers whose require(...) calls must pass
	// through untouched for the host runtime's own loader to handle.
	Externals []string
}

// Bundler codegens every module in a Registry's topological order into a
// self-contained CommonJS bundle, per spec.md §4.5's five-step recipe.
type Bundler struct {
	Registry  *Registry
	Generator *generator.Generator
}

// NewBundler builds a Bundler. A nil generator defaults to
// generator.New(nil).
func NewBundler(reg *Registry, gen *generator.Generator) *Bundler {
	if gen == nil {
		gen = generator.New(nil)
	}
	return &Bundler{Registry: reg, Generator: gen}
}

// Bundle emits the bundle text for entry: codegen each module into a map
// literal keyed by absolute path, a small runtime require loader prepended
// ahead of it, internal requires rewritten to map keys, externals left
// untouched, and the entry point invoked at the bottom.
func (b *Bundler) Bundle(entry string, opts BundleOptions) (string, error) {
	order := b.Registry.TopoOrder()
	if len(order) == 0 {
		return "", fmt.Errorf("bundle: empty module graph")
	}

	isExternal := make(map[string]bool, len(opts.Externals))
	for _, e := range opts.Externals {
		isExternal[e] = true
	}

	var sb strings.Builder
	sb.WriteString(runtimeLoaderPrelude)
	sb.WriteString("var __somon_modules = {\n")
	for _, path := range order {
		mod, ok := b.Registry.Module(path)
		if !ok {
			continue
		}
		code := rewriteRequires(b.Generator.Generate(mod.Program), mod, isExternal)
		sb.WriteString(fmt.Sprintf("  %q: function(exports, require, module) {\n", path))
		for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteString("  },\n")
	}
	sb.WriteString("};\n\n")
	sb.WriteString(fmt.Sprintf("__somon_require(%q);\n", entry))
	return sb.String(), nil
}

// rewriteRequires rewrites require(...) calls that name a bundled
// dependency to use that dependency's absolute path as its map key,
// leaving externals (and anything the loader couldn't resolve) as-is.
func rewriteRequires(code string, mod *Module, isExternal map[string]bool) string {
	for i, dep := range mod.Dependencies {
		if isExternal[dep] || i >= len(mod.DependencyPaths) {
			continue
		}
		from := fmt.Sprintf("require(%q)", bundleRewriteExtension(dep))
		to := fmt.Sprintf("require(%q)", mod.DependencyPaths[i])
		code = strings.ReplaceAll(code, from, to)
	}
	return code
}

// bundleRewriteExtension mirrors generator's own ".som" -> ".js" source
// rewrite so the require(...) text this function searches for matches
// what the generator actually emitted.
func bundleRewriteExtension(source string) string {
	if strings.HasSuffix(source, ".som") {
		return strings.TrimSuffix(source, ".som") + ".js"
	}
	return source
}

const runtimeLoaderPrelude = `var __somon_cache = {};
function __somon_require(path) {
  if (__somon_cache[path]) {
    return __somon_cache[path].exports;
  }
  var module = { exports: {} };
  __somon_cache[path] = module;
  __somon_modules[path](module.exports, __somon_require, module);
  return module.exports;
}

`
