package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestLoaderLoadsAndCachesDependencies(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.som": `ворид { add } аз "./math"; console.log(add(1, 2));`,
		"math.som": `содир функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`,
	})

	l := NewLoader(New(), nil, PolicyError)
	mod, err := l.Load("./main.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)
	require.Len(t, mod.Dependencies, 1)
	require.Equal(t, "./math", mod.Dependencies[0])
	require.Len(t, mod.DependencyPaths, 1)
	require.Equal(t, filepath.Join(dir, "math.som"), mod.DependencyPaths[0])

	require.Len(t, l.Modules(), 2)
}

func TestLoaderCircularPolicyError(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.som": `ворид "./b";`,
		"b.som": `ворид "./a";`,
	})

	l := NewLoader(New(), nil, PolicyError)
	_, err := l.Load("./a.som", filepath.Join(dir, "entry.placeholder"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "a.som")
	require.Contains(t, err.Error(), "b.som")
}

func TestLoaderCircularPolicyWarnRecordsWarningAndSucceeds(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.som": `ворид "./b";`,
		"b.som": `ворид "./a";`,
	})

	l := NewLoader(New(), nil, PolicyWarn)
	_, err := l.Load("./a.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)
	require.NotEmpty(t, l.Warnings())
}

func TestLoaderCircularPolicyIgnoreSucceedsSilently(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.som": `ворид "./b";`,
		"b.som": `ворид "./a";`,
	})

	l := NewLoader(New(), nil, PolicyIgnore)
	_, err := l.Load("./a.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)
	require.Empty(t, l.Warnings())
}

func TestLoaderMissingFileReturnsResolutionError(t *testing.T) {
	dir := writeFiles(t, map[string]string{})
	l := NewLoader(New(), nil, PolicyError)
	_, err := l.Load("./missing.som", filepath.Join(dir, "entry.placeholder"))
	require.Error(t, err)
}
