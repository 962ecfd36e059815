package parser

import (
	"testing"

	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/lexer"
)

func parseSource(t *testing.T, src string) (*ast.Program, *errors.Bag) {
	t.Helper()
	bag := errors.NewBag(100)
	prog := Parse(lexer.New(src), "test.som", bag)
	return prog, bag
}

func TestEmptySourceYieldsEmptyProgram(t *testing.T) {
	prog, bag := parseSource(t, "")
	if len(prog.Body) != 0 {
		t.Errorf("expected empty Program.body, got %d statements", len(prog.Body))
	}
	if bag.HasErrors() {
		t.Errorf("unexpected errors: %v", bag.Diagnostics())
	}
}

func TestParseSimpleVariable(t *testing.T) {
	prog, bag := parseSource(t, `собит PI = 3.14;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", prog.Body[0])
	}
	if decl.Kind != ast.Const {
		t.Errorf("Kind = %s, want const", decl.Kind)
	}
	id, ok := decl.Target.(*ast.Identifier)
	if !ok || id.Name != "PI" {
		t.Errorf("Target = %+v, want identifier PI", decl.Target)
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog, bag := parseSource(t, `функсия add(a: рақам, b: рақам): рақам { бозгашт a + b; }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	fn, ok := prog.Body[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", prog.Body[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Errorf("fn = %+v", fn)
	}
	if len(fn.Body.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Body))
	}
	ret, ok := fn.Body.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", fn.Body.Body[0])
	}
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Operator != "+" {
		t.Errorf("expected binary +, got %+v", ret.Value)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	prog, bag := parseSource(t, `тағйирёбанда x = 1 + 2 * 3;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	decl := prog.Body[0].(*ast.VariableDeclaration)
	bin := decl.Init.(*ast.Binary)
	if bin.Operator != "+" {
		t.Fatalf("top-level operator = %s, want +", bin.Operator)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Operator != "*" {
		t.Errorf("right operand should be a * expression, got %+v", bin.Right)
	}
}

func TestImportNamedForm(t *testing.T) {
	prog, bag := parseSource(t, `ворид { add } аз "./math";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	imp := prog.Body[0].(*ast.Import)
	if imp.Kind != ast.ImportNamed || imp.Source != "./math" {
		t.Errorf("imp = %+v", imp)
	}
	if len(imp.Specifiers) != 1 || imp.Specifiers[0].Imported != "add" {
		t.Errorf("specifiers = %+v", imp.Specifiers)
	}
}

func TestUnionTypeAnnotation(t *testing.T) {
	prog, bag := parseSource(t, `собит x: сатр | рақам = "a";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	decl := prog.Body[0].(*ast.VariableDeclaration)
	union, ok := decl.TypeAnnotation.(*ast.UnionType)
	if !ok || len(union.Types) != 2 {
		t.Fatalf("expected a 2-member union type, got %+v", decl.TypeAnnotation)
	}
}

func TestArrowFunctionDisambiguation(t *testing.T) {
	prog, bag := parseSource(t, `тағйирёбанда f = (a, b) => a + b;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	decl := prog.Body[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Init.(*ast.Arrow)
	if !ok {
		t.Fatalf("expected *ast.Arrow, got %T", decl.Init)
	}
	if len(arrow.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(arrow.Params))
	}
}

func TestParenthesizedExpressionNotMisreadAsArrow(t *testing.T) {
	prog, bag := parseSource(t, `тағйирёбанда x = (1 + 2) * 3;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	decl := prog.Body[0].(*ast.VariableDeclaration)
	bin, ok := decl.Init.(*ast.Binary)
	if !ok || bin.Operator != "*" {
		t.Fatalf("expected top-level *, got %+v", decl.Init)
	}
}

func TestSynchronizeRecoversAfterBadStatement(t *testing.T) {
	_, bag := parseSource(t, "собит = ; собит y = 1;")
	if !bag.HasErrors() {
		t.Fatal("expected at least one parse error")
	}
}

func TestClassDeclarationWithExtends(t *testing.T) {
	prog, bag := parseSource(t, `синф Сагбача мерос Ҳайвон { конструктор() {} }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	cls, ok := prog.Body[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected *ast.ClassDeclaration, got %T", prog.Body[0])
	}
	if cls.SuperClass != "Ҳайвон" {
		t.Errorf("SuperClass = %q, want Ҳайвон", cls.SuperClass)
	}
	if len(cls.Body) != 1 || !cls.Body[0].IsConstructor {
		t.Errorf("expected 1 constructor member, got %+v", cls.Body)
	}
}
