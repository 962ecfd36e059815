package module

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundleEmitsMapLiteralAndRuntimeLoader(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.som": `ворид { add } аз "./math"; console.log(add(1, 2));`,
		"math.som": `содир функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`,
	})

	l := NewLoader(New(), nil, PolicyError)
	mod, err := l.Load("./main.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)

	reg := NewRegistry(l)
	bundler := NewBundler(reg, nil)
	out, err := bundler.Bundle(mod.ID, BundleOptions{})
	require.NoError(t, err)

	require.Contains(t, out, "function __somon_require(path)")
	require.Contains(t, out, fmt.Sprintf("%q: function(exports, require, module)", filepath.Join(dir, "math.som")))
	require.Contains(t, out, fmt.Sprintf("%q: function(exports, require, module)", mod.ID))
	require.Contains(t, out, fmt.Sprintf("require(%q)", filepath.Join(dir, "math.som")))
	require.Contains(t, out, fmt.Sprintf("__somon_require(%q);", mod.ID))
}

func TestBundleLeavesExternalsUntouched(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.som": `ворид { throttle } аз "lodash"; throttle();`,
	})

	l := NewLoader(New(), nil, PolicyError)
	l.Externals = map[string]bool{"lodash": true}
	mod, err := l.Load("./main.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)
	require.Equal(t, []string{"lodash"}, mod.DependencyPaths)

	reg := NewRegistry(l)
	bundler := NewBundler(reg, nil)
	out, err := bundler.Bundle(mod.ID, BundleOptions{Externals: []string{"lodash"}})
	require.NoError(t, err)
	require.Contains(t, out, `require("lodash")`)
}

func TestBundleEmptyGraphErrors(t *testing.T) {
	reg := &Registry{modules: map[string]*Module{}}
	bundler := NewBundler(reg, nil)
	_, err := bundler.Bundle("whatever", BundleOptions{})
	require.Error(t, err)
}
