package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/lexer"
	"github.com/somonscript/somon/internal/compiler/parser"
	"github.com/somonscript/somon/internal/compiler/errors"
)

func checkSource(t *testing.T, src string) Result {
	t.Helper()
	bag := errors.NewBag(100)
	prog := parser.Parse(lexer.New(src), "test.som", bag)
	require.False(t, bag.HasErrors(), "unexpected parse errors: %v", bag.Diagnostics())
	c := NewChecker("test.som")
	return c.Check(prog)
}

func TestAssignableLiteralToPrimitive(t *testing.T) {
	result := checkSource(t, `собит x: рақам = 5;`)
	assert.Empty(t, result.Errors)
}

func TestNotAssignableStringToNumber(t *testing.T) {
	result := checkSource(t, `собит x: рақам = "панҷ";`)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, errors.CodeTypeNotAssignable, result.Errors[0].Code)
}

func TestUnionTargetAcceptsAnyMember(t *testing.T) {
	result := checkSource(t, `собит x: сатр | рақам = 5;`)
	assert.Empty(t, result.Errors)
}

func TestAnyAcceptsAnything(t *testing.T) {
	result := checkSource(t, `собит x: ҳар = "метавонад чизе бошад";`)
	assert.Empty(t, result.Errors)
}

func TestClassExtendingUnknownClassReportsClassNotFound(t *testing.T) {
	result := checkSource(t, `синф Сагбача мерос Дарахт { конструктор() {} }`)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, errors.CodeClassNotFound, result.Errors[0].Code)
}

func TestClassExtendingInterfaceReportsInvalidExtends(t *testing.T) {
	result := checkSource(t, `
интерфейс Ҳайвон { ном: сатр; }
синф Саг мерос Ҳайвон { конструктор() {} }
`)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, errors.CodeInvalidExtends, result.Errors[0].Code)
}

func TestCircularInheritanceDetected(t *testing.T) {
	result := checkSource(t, `
синф А мерос Б { конструктор() {} }
синф Б мерос А { конструктор() {} }
`)
	var found bool
	for _, e := range result.Errors {
		if e.Code == errors.CodeCircularInheritance {
			found = true
		}
	}
	assert.True(t, found, "expected a %s diagnostic, got %+v", errors.CodeCircularInheritance, result.Errors)
}

func TestValidInheritanceChainReportsNoErrors(t *testing.T) {
	result := checkSource(t, `
синф Ҳайвон { конструктор() {} }
синф Саг мерос Ҳайвон { конструктор() {} }
`)
	assert.Empty(t, result.Errors)
}

func TestArrayElementTypeInferredUniform(t *testing.T) {
	bag := errors.NewBag(100)
	prog := parser.Parse(lexer.New(`тағйирёбанда рӯйхат = [1, 2, 3];`), "test.som", bag)
	require.False(t, bag.HasErrors())
	c := NewChecker("test.som")
	c.Check(prog)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	arr := decl.Init.(*ast.Array)
	got := c.inferArray(arr, c.scope)
	require.Equal(t, KindArray, got.Kind)
	assert.Equal(t, NumberType.Name, got.Element.Name)
}

func TestIsAssignableArrayRule(t *testing.T) {
	numArr := Type{Kind: KindArray, Element: &NumberType}
	assert.True(t, isAssignable(numArr, numArr))

	strArr := Type{Kind: KindArray, Element: &StringType}
	assert.False(t, isAssignable(numArr, strArr))
}

func TestIsAssignableTupleToInterfaceRelaxed(t *testing.T) {
	tuple := Type{Kind: KindTuple, Members: []Type{NumberType, StringType}}
	iface := Type{Kind: KindInterface, Name: "Х", Properties: map[string]Property{}}
	assert.True(t, isAssignable(tuple, iface))
}

func TestIsAssignableClassNominal(t *testing.T) {
	a := Type{Kind: KindClass, Name: "A"}
	b := Type{Kind: KindClass, Name: "B"}
	assert.True(t, isAssignable(a, a))
	assert.False(t, isAssignable(a, b))
}

func TestIsAssignableUniqueDoesNotMixWithNonUnique(t *testing.T) {
	u := Type{Kind: KindUnique, BaseType: &StringType}
	assert.False(t, isAssignable(StringType, u))
	assert.True(t, isAssignable(u, u))
}
