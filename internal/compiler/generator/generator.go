// Package generator renders a checked SomonScript program back out as
// JavaScript. It generalizes the buffer-and-indent discipline of the
// teacher's script.Transpiler (emit/emitIndent, a switch dispatched per
// node kind) to the target grammar described in spec.md §4.4.
package generator

import (
	"fmt"
	"strings"

	"github.com/somonscript/somon/internal/compiler/ast"
)

// Generator turns an *ast.Program into JavaScript source text. It holds no
// state that survives a Generate call other than the configured built-in
// remap table, matching spec.md §4.4's "stateless w.r.t. callers" contract.
type Generator struct {
	sb            strings.Builder
	indent        int
	importCounter int
	builtins      *BuiltinTable
}

// New builds a Generator using table, or DefaultBuiltinTable() if table is
// nil.
func New(table *BuiltinTable) *Generator {
	if table == nil {
		table = DefaultBuiltinTable()
	}
	return &Generator{builtins: table}
}

// Generate renders program as JavaScript. It never returns an error: a
// well-formed, type-checked *ast.Program has no construct this generator
// cannot emit.
func (g *Generator) Generate(program *ast.Program) string {
	g.sb.Reset()
	g.indent = 0
	g.importCounter = 0
	for _, stmt := range program.Body {
		g.genStmt(stmt)
	}
	return g.sb.String()
}

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.sb, format, args...)
}

func (g *Generator) emitIndent() {
	g.sb.WriteString(strings.Repeat("  ", g.indent))
}

// nextImportTemp mints the next "__somon_import_N" CommonJS binding name
// used by import/re-export emission (spec.md §4.4, §4.5).
func (g *Generator) nextImportTemp() string {
	name := fmt.Sprintf("__somon_import_%d", g.importCounter)
	g.importCounter++
	return name
}

// rewriteExtension maps a ".som" import/export source to its compiled
// ".js" counterpart; any other source (bare package names, ".json", ...)
// passes through unchanged.
func rewriteExtension(source string) string {
	if strings.HasSuffix(source, ".som") {
		return strings.TrimSuffix(source, ".som") + ".js"
	}
	return source
}

// renderBlockBody renders body as a standalone indented block using a
// fresh, independent Generator sharing only this one's built-in table and
// import counter. Expression-producing constructs (arrow function bodies)
// need their statements rendered to a string rather than appended to the
// caller's own buffer, so they get their own scratch Generator instead of
// reusing g.sb mid-render.
func (g *Generator) renderBlockBody(body []ast.Statement, startIndent int) string {
	sub := &Generator{indent: startIndent, builtins: g.builtins, importCounter: g.importCounter}
	for _, s := range body {
		sub.genStmt(s)
	}
	g.importCounter = sub.importCounter
	return sub.sb.String()
}

func declaredName(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		return s.Name
	case *ast.ClassDeclaration:
		return s.Name
	case *ast.NamespaceDeclaration:
		return s.Name
	case *ast.VariableDeclaration:
		if id, ok := s.Target.(*ast.Identifier); ok {
			return id.Name
		}
	}
	return ""
}
