package module

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryTopoOrderDependenciesPrecedeDependents(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.som": `ворид { add } аз "./math"; console.log(add(1, 2));`,
		"math.som": `содир функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`,
	})

	l := NewLoader(New(), nil, PolicyError)
	_, err := l.Load("./main.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)

	reg := NewRegistry(l)
	order := reg.TopoOrder()
	require.Len(t, order, 2)
	require.Equal(t, filepath.Join(dir, "math.som"), order[0])
	require.Equal(t, filepath.Join(dir, "main.som"), order[1])
}

func TestRegistryCyclesDetectsStronglyConnectedComponent(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.som": `ворид "./b";`,
		"b.som": `ворид "./a";`,
	})

	l := NewLoader(New(), nil, PolicyIgnore)
	_, err := l.Load("./a.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)

	reg := NewRegistry(l)
	cycles := reg.Cycles()
	require.Len(t, cycles, 1)
	require.Len(t, cycles[0], 2)
}

func TestRegistryNoCyclesOnAcyclicGraph(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.som": `ворид { add } аз "./math";`,
		"math.som": `содир функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`,
	})

	l := NewLoader(New(), nil, PolicyError)
	_, err := l.Load("./main.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)

	reg := NewRegistry(l)
	require.Empty(t, reg.Cycles())
}

func TestRegistryEntryPointsExcludesReferencedModules(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.som": `ворид { add } аз "./math";`,
		"math.som": `содир функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`,
	})

	l := NewLoader(New(), nil, PolicyError)
	_, err := l.Load("./main.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)

	reg := NewRegistry(l)
	entries := reg.EntryPoints()
	require.Equal(t, []string{filepath.Join(dir, "main.som")}, entries)
}

func TestRegistryValidateSurfacesMissingDependency(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.som": `ворид { add } аз "./math";`,
		"math.som": `содир функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`,
	})

	l := NewLoader(New(), nil, PolicyError)
	_, err := l.Load("./main.som", filepath.Join(dir, "entry.placeholder"))
	require.NoError(t, err)

	reg := NewRegistry(l)
	ok, errs := reg.Validate(New())
	require.True(t, ok)
	require.Empty(t, errs)
}
