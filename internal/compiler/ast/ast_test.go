package ast

import (
	"testing"

	"github.com/somonscript/somon/internal/compiler/token"
)

func TestNodePositions(t *testing.T) {
	pos := token.Position{Line: 3, Column: 7, Offset: 20}
	ident := &Identifier{BaseNode: BaseNode{Position: pos}, Name: "рӯз"}

	if got := ident.Pos(); got != pos {
		t.Errorf("Pos() = %+v, want %+v", got, pos)
	}
}

func TestVariableDeclarationKindFixed(t *testing.T) {
	decl := &VariableDeclaration{
		Kind:   Const,
		Target: &Identifier{Name: "PI"},
	}
	if decl.Kind != Const {
		t.Errorf("Kind = %s, want %s", decl.Kind, Const)
	}
}

func TestArrayPatternAllowsHoles(t *testing.T) {
	pat := &ArrayPattern{Elements: []Pattern{nil, &Identifier{Name: "b"}}}
	if pat.Elements[0] != nil {
		t.Error("expected a nil hole at index 0")
	}
}

func TestExportExactlyOneForm(t *testing.T) {
	exp := &Export{Wildcard: true, Source: "./mod"}
	if exp.Declaration != nil || exp.Specifiers != nil {
		t.Error("wildcard export must not also carry a declaration or specifiers")
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Statement  = (*Program)(nil)
	_ Statement  = (*VariableDeclaration)(nil)
	_ Statement  = (*Import)(nil)
	_ Statement  = (*Export)(nil)
	_ Expression = (*Binary)(nil)
	_ Expression = (*Member)(nil)
	_ Pattern    = (*ObjectPattern)(nil)
	_ TypeNode   = (*UnionType)(nil)
	_ TypeNode   = (*KeyofType)(nil)
)
