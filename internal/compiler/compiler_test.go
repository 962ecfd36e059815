package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileSimpleVariable(t *testing.T) {
	result, err := Compile(`собит PI = 3.14;`, DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, result.Diagnostics)
	require.Equal(t, "const PI = 3.14;\n", result.Code)
}

func TestCompileFunction(t *testing.T) {
	result, err := Compile(`функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`, DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, result.Diagnostics)
	require.Equal(t, "function add(a, b) {\n  return a + b;\n}\n", result.Code)
}

// TestCompileUnionAssignmentErrorReportsSingleDiagnostic covers spec.md §8
// scenario 4: an assignment target typed as a union still rejects a value
// that matches no union member, producing exactly one diagnostic.
func TestCompileUnionAssignmentErrorReportsSingleDiagnostic(t *testing.T) {
	result, err := Compile(`собит x: сатр | рақам = нодуруст;`, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	require.Equal(t, "TYPE_NOT_ASSIGNABLE", result.Diagnostics[0].Code)
}

func TestCompileStrictModeSuppressesCodegenOnTypeError(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true
	result, err := Compile(`собит x: рақам = "панҷ";`, opts)
	require.NoError(t, err)
	require.NotEmpty(t, result.Diagnostics)
	require.Empty(t, result.Code)
}

func TestCompileWithoutTypeCheckSkipsChecker(t *testing.T) {
	opts := DefaultOptions()
	opts.TypeCheck = false
	result, err := Compile(`собит x: рақам = "панҷ";`, opts)
	require.NoError(t, err)
	require.Empty(t, result.Diagnostics)
	require.NotEmpty(t, result.Code)
}

func TestCompileIsDeterministic(t *testing.T) {
	src := `функсия square(x: рақам): рақам { бозгашт x * x; }`
	first, err := Compile(src, DefaultOptions())
	require.NoError(t, err)
	second, err := Compile(src, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, first.Code, second.Code)
}
