// Package module implements the resolver, loader, registry, and bundler
// described in spec.md §4.5, generalizing the teacher's resolver.Resolver
// (path-join + parsed-file cache + a loading map for circular-import
// detection) from its single .gmx-extension, component-merging design to
// a general-purpose CommonJS-flavored module system.
package module

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Extensions lists the suffixes tried, in order, once the exact specifier
// doesn't name a file directly.
var Extensions = []string{".som", ".js", ".json"}

// Resolved is the outcome of resolving an import specifier to a concrete
// file on disk.
type Resolved struct {
	AbsolutePath string
	Extension    string
}

// PathMapping maps a bare-specifier prefix to a candidate base directory,
// analogous to a tsconfig "paths" entry.
type PathMapping struct {
	Prefix string
	Dir    string
}

// Resolver implements spec.md §4.5's resolution algorithm: a relative or
// absolute specifier tries the exact file, then each configured extension,
// then an index file under that directory; a bare specifier consults
// configured path mappings, then a node_modules-style walk upward from
// fromFile's directory honoring a package manifest's "main" field.
type Resolver struct {
	Extensions   []string
	PathMappings []PathMapping
	ManifestName string

	stat     func(string) (os.FileInfo, error)
	readFile func(string) ([]byte, error)
}

// New builds a Resolver backed by the real filesystem.
func New() *Resolver {
	return &Resolver{
		Extensions:   append([]string(nil), Extensions...),
		ManifestName: "package.json",
		stat:         os.Stat,
		readFile:     os.ReadFile,
	}
}

// Resolve resolves specifier as imported from fromFile.
func (r *Resolver) Resolve(specifier, fromFile string) (Resolved, error) {
	var tried []string

	if isRelativeOrAbsolute(specifier) {
		base := specifier
		if !filepath.IsAbs(specifier) {
			base = filepath.Join(filepath.Dir(fromFile), specifier)
		}
		if res, ok := r.tryFile(base, &tried); ok {
			return res, nil
		}
		if res, ok := r.tryIndex(base, &tried); ok {
			return res, nil
		}
		return Resolved{}, fmt.Errorf("cannot resolve %q from %q, tried: %s", specifier, fromFile, strings.Join(tried, ", "))
	}

	for _, pm := range r.PathMappings {
		if !strings.HasPrefix(specifier, pm.Prefix) {
			continue
		}
		base := filepath.Join(pm.Dir, strings.TrimPrefix(specifier, pm.Prefix))
		if res, ok := r.tryFile(base, &tried); ok {
			return res, nil
		}
		if res, ok := r.tryIndex(base, &tried); ok {
			return res, nil
		}
	}

	if res, ok := r.tryNodeModules(specifier, fromFile, &tried); ok {
		return res, nil
	}

	return Resolved{}, fmt.Errorf("cannot resolve %q from %q, tried: %s", specifier, fromFile, strings.Join(tried, ", "))
}

func isRelativeOrAbsolute(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") || filepath.IsAbs(specifier)
}

// tryFile probes the exact path, then base+ext for every configured
// extension - spec.md §4.5's "try exact file, then each configured
// extension" step.
func (r *Resolver) tryFile(base string, tried *[]string) (Resolved, bool) {
	*tried = append(*tried, base)
	if r.isFile(base) {
		return Resolved{AbsolutePath: base, Extension: filepath.Ext(base)}, true
	}
	for _, ext := range r.Extensions {
		candidate := base + ext
		*tried = append(*tried, candidate)
		if r.isFile(candidate) {
			return Resolved{AbsolutePath: candidate, Extension: ext}, true
		}
	}
	return Resolved{}, false
}

func (r *Resolver) tryIndex(base string, tried *[]string) (Resolved, bool) {
	for _, ext := range r.Extensions {
		candidate := filepath.Join(base, "index"+ext)
		*tried = append(*tried, candidate)
		if r.isFile(candidate) {
			return Resolved{AbsolutePath: candidate, Extension: ext}, true
		}
	}
	return Resolved{}, false
}

// tryNodeModules walks upward from fromFile's directory looking for
// node_modules/<specifier>, honoring the package manifest's "main" field
// when present.
func (r *Resolver) tryNodeModules(specifier, fromFile string, tried *[]string) (Resolved, bool) {
	dir := filepath.Dir(fromFile)
	for {
		pkgDir := filepath.Join(dir, "node_modules", specifier)
		manifestPath := filepath.Join(pkgDir, r.ManifestName)
		*tried = append(*tried, manifestPath)
		if data, err := r.readFile(manifestPath); err == nil {
			main := gjson.GetBytes(data, "main").String()
			if main == "" {
				main = "index.js"
			}
			base := filepath.Join(pkgDir, main)
			if res, ok := r.tryFile(base, tried); ok {
				return res, true
			}
			if res, ok := r.tryIndex(base, tried); ok {
				return res, true
			}
		} else {
			if res, ok := r.tryFile(pkgDir, tried); ok {
				return res, true
			}
			if res, ok := r.tryIndex(pkgDir, tried); ok {
				return res, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Resolved{}, false
}

func (r *Resolver) isFile(path string) bool {
	info, err := r.stat(path)
	return err == nil && !info.IsDir()
}
