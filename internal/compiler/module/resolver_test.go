package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveExactFileWins(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "math.js")
	require.NoError(t, os.WriteFile(target, []byte("module.exports = {};\n"), 0644))

	r := New()
	from := filepath.Join(dir, "main.som")
	res, err := r.Resolve("./math.js", from)
	require.NoError(t, err)
	require.Equal(t, target, res.AbsolutePath)
}

func TestResolveProbesConfiguredExtensions(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "math.som")
	require.NoError(t, os.WriteFile(target, []byte(""), 0644))

	r := New()
	from := filepath.Join(dir, "main.som")
	res, err := r.Resolve("./math", from)
	require.NoError(t, err)
	require.Equal(t, target, res.AbsolutePath)
	require.Equal(t, ".som", res.Extension)
}

func TestResolveFallsBackToIndexFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "utils")
	require.NoError(t, os.MkdirAll(sub, 0755))
	target := filepath.Join(sub, "index.som")
	require.NoError(t, os.WriteFile(target, []byte(""), 0644))

	r := New()
	from := filepath.Join(dir, "main.som")
	res, err := r.Resolve("./utils", from)
	require.NoError(t, err)
	require.Equal(t, target, res.AbsolutePath)
}

func TestResolveMissingFileReportsTriedPaths(t *testing.T) {
	dir := t.TempDir()
	r := New()
	from := filepath.Join(dir, "main.som")
	_, err := r.Resolve("./nope", from)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope")
}

func TestResolveNodeModulesHonorsManifestMain(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "node_modules", "leftpad")
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "package.json"), []byte(`{"main":"lib/index.js"}`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(pkgDir, "lib"), 0755))
	target := filepath.Join(pkgDir, "lib", "index.js")
	require.NoError(t, os.WriteFile(target, []byte(""), 0644))

	r := New()
	from := filepath.Join(dir, "main.som")
	res, err := r.Resolve("leftpad", from)
	require.NoError(t, err)
	require.Equal(t, target, res.AbsolutePath)
}

func TestResolvePathMapping(t *testing.T) {
	dir := t.TempDir()
	aliasDir := filepath.Join(dir, "shared")
	require.NoError(t, os.MkdirAll(aliasDir, 0755))
	target := filepath.Join(aliasDir, "util.som")
	require.NoError(t, os.WriteFile(target, []byte(""), 0644))

	r := New()
	r.PathMappings = []PathMapping{{Prefix: "@shared/", Dir: aliasDir}}
	from := filepath.Join(dir, "main.som")
	res, err := r.Resolve("@shared/util", from)
	require.NoError(t, err)
	require.Equal(t, target, res.AbsolutePath)
}
