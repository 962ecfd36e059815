package generator

import (
	"github.com/somonscript/somon/internal/compiler/ast"
)

// genStmt dispatches a single statement to its emission routine, mirroring
// script.Transpiler.transpileStmt's per-node-kind switch.
func (g *Generator) genStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		g.genVariableDeclaration(s)
	case *ast.FunctionDeclaration:
		g.genFunctionDeclaration(s)
	case *ast.ClassDeclaration:
		g.genClassDeclaration(s)
	case *ast.InterfaceDeclaration:
		g.genInterfaceDeclaration(s)
	case *ast.TypeAlias:
		g.genTypeAlias(s)
	case *ast.NamespaceDeclaration:
		g.genNamespaceDeclaration(s)
	case *ast.Block:
		g.emitIndent()
		g.emit("{\n")
		g.indent++
		for _, st := range s.Body {
			g.genStmt(st)
		}
		g.indent--
		g.emitIndent()
		g.emit("}\n")
	case *ast.If:
		g.genIf(s)
	case *ast.While:
		g.genWhile(s)
	case *ast.For:
		g.genFor(s)
	case *ast.ForIn:
		g.genForIn(s)
	case *ast.ForOf:
		g.genForOf(s)
	case *ast.Return:
		g.genReturn(s)
	case *ast.Throw:
		g.emitIndent()
		g.emit("throw %s;\n", g.genExpr(s.Value))
	case *ast.Try:
		g.genTry(s)
	case *ast.Switch:
		g.genSwitch(s)
	case *ast.Break:
		g.emitIndent()
		if s.Label != "" {
			g.emit("break %s;\n", s.Label)
		} else {
			g.emit("break;\n")
		}
	case *ast.Continue:
		g.emitIndent()
		if s.Label != "" {
			g.emit("continue %s;\n", s.Label)
		} else {
			g.emit("continue;\n")
		}
	case *ast.Import:
		g.genImport(s)
	case *ast.Export:
		g.genExport(s)
	case *ast.ExpressionStatement:
		g.emitIndent()
		g.emit("%s;\n", g.genExpr(s.Expr))
	}
}

// genBodyStatements renders a control-flow body, normalizing a bare
// single-statement body (the grammar permits `if (x) doThing();`) into the
// same block-shaped emission as an explicit *ast.Block. This keeps output
// uniformly braced rather than tracking the source's braced/unbraced shape.
func (g *Generator) genBodyStatements(body ast.Statement) {
	if block, ok := body.(*ast.Block); ok {
		for _, s := range block.Body {
			g.genStmt(s)
		}
		return
	}
	g.genStmt(body)
}

func (g *Generator) genVariableDeclaration(decl *ast.VariableDeclaration) {
	g.emitIndent()
	g.emit("%s;\n", g.genVarDeclInline(decl))
}

func (g *Generator) genVarDeclInline(decl *ast.VariableDeclaration) string {
	kw := "let"
	if decl.Kind == ast.Const {
		kw = "const"
	}
	target := g.genPattern(decl.Target)
	if decl.Init != nil {
		return kw + " " + target + " = " + g.genExpr(decl.Init)
	}
	return kw + " " + target
}

func (g *Generator) genIf(s *ast.If) {
	g.emitIndent()
	g.genIfHeader(s)
}

// genIfHeader renders "if (...) { ... }" and, recursively, any chained
// "else if" on the same line, so an else-if ladder doesn't grow an extra
// indentation level per rung.
func (g *Generator) genIfHeader(s *ast.If) {
	g.emit("if (%s) {\n", g.genExpr(s.Test))
	g.indent++
	g.genBodyStatements(s.Then)
	g.indent--
	g.emitIndent()
	g.emit("}")
	if s.Else == nil {
		g.emit("\n")
		return
	}
	g.emit(" else ")
	if elseIf, ok := s.Else.(*ast.If); ok {
		g.genIfHeader(elseIf)
		return
	}
	g.emit("{\n")
	g.indent++
	g.genBodyStatements(s.Else)
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

func (g *Generator) genWhile(s *ast.While) {
	g.emitIndent()
	g.emit("while (%s) {\n", g.genExpr(s.Test))
	g.indent++
	g.genBodyStatements(s.Body)
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

func (g *Generator) genFor(s *ast.For) {
	g.emitIndent()
	init := ""
	switch n := s.Init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		init = g.genVarDeclInline(n)
	case *ast.ExpressionStatement:
		init = g.genExpr(n.Expr)
	}
	test := ""
	if s.Test != nil {
		test = g.genExpr(s.Test)
	}
	update := ""
	if s.Update != nil {
		update = g.genExpr(s.Update)
	}
	g.emit("for (%s; %s; %s) {\n", init, test, update)
	g.indent++
	g.genBodyStatements(s.Body)
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

func (g *Generator) genForIn(s *ast.ForIn) {
	g.genForEach("in", s.Decl, s.Target, s.Right, s.Body)
}

func (g *Generator) genForOf(s *ast.ForOf) {
	g.genForEach("of", s.Decl, s.Target, s.Right, s.Body)
}

func (g *Generator) genForEach(kw string, decl ast.Statement, target ast.Pattern, right ast.Expression, body ast.Statement) {
	g.emitIndent()
	binding := g.genPattern(target)
	prefix := "let "
	if vd, ok := decl.(*ast.VariableDeclaration); ok && vd.Kind == ast.Const {
		prefix = "const "
	}
	if decl == nil {
		prefix = ""
	}
	g.emit("for (%s%s %s %s) {\n", prefix, binding, kw, g.genExpr(right))
	g.indent++
	g.genBodyStatements(body)
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

func (g *Generator) genReturn(s *ast.Return) {
	g.emitIndent()
	if s.Value == nil {
		g.emit("return;\n")
		return
	}
	g.emit("return %s;\n", g.genExpr(s.Value))
}

func (g *Generator) genTry(s *ast.Try) {
	g.emitIndent()
	g.emit("try {\n")
	g.indent++
	for _, st := range s.Block.Body {
		g.genStmt(st)
	}
	g.indent--
	g.emitIndent()
	g.emit("}")
	if s.Handler != nil {
		if s.Handler.Param != nil {
			g.emit(" catch (%s) {\n", g.genPattern(s.Handler.Param.Name))
		} else {
			g.emit(" catch {\n")
		}
		g.indent++
		for _, st := range s.Handler.Body.Body {
			g.genStmt(st)
		}
		g.indent--
		g.emitIndent()
		g.emit("}")
	}
	if s.Finalizer != nil {
		g.emit(" finally {\n")
		g.indent++
		for _, st := range s.Finalizer.Body {
			g.genStmt(st)
		}
		g.indent--
		g.emitIndent()
		g.emit("}")
	}
	g.emit("\n")
}

func (g *Generator) genSwitch(s *ast.Switch) {
	g.emitIndent()
	g.emit("switch (%s) {\n", g.genExpr(s.Discriminant))
	g.indent++
	for _, c := range s.Cases {
		g.emitIndent()
		if c.Test != nil {
			g.emit("case %s:\n", g.genExpr(c.Test))
		} else {
			g.emit("default:\n")
		}
		g.indent++
		for _, st := range c.Consequent {
			g.genStmt(st)
		}
		g.indent--
	}
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

func (g *Generator) genFunctionDeclaration(decl *ast.FunctionDeclaration) {
	g.emitIndent()
	prefix := ""
	if decl.Async {
		prefix = "async "
	}
	g.emit("%sfunction %s(%s) {\n", prefix, decl.Name, g.genParams(decl.Params))
	g.indent++
	for _, s := range decl.Body.Body {
		g.genStmt(s)
	}
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

func (g *Generator) genParams(params []*ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = g.genPattern(p.Name)
		if p.Default != nil {
			parts[i] += " = " + g.genExpr(p.Default)
		}
	}
	return joinComma(parts)
}

// genClassDeclaration erases modifiers, visibility, and type annotations;
// a JS class only needs member names, static/async flags, and bodies.
func (g *Generator) genClassDeclaration(decl *ast.ClassDeclaration) {
	g.emitIndent()
	g.emit("class %s", decl.Name)
	if decl.SuperClass != "" {
		g.emit(" extends %s", decl.SuperClass)
	}
	g.emit(" {\n")
	g.indent++
	for _, m := range decl.Body {
		g.genClassMember(m)
	}
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

func (g *Generator) genClassMember(m *ast.ClassMember) {
	g.emitIndent()
	if m.IsStatic {
		g.emit("static ")
	}
	if !m.IsMethod && !m.IsConstructor {
		if m.Init != nil {
			g.emit("%s = %s;\n", m.Name, g.genExpr(m.Init))
		} else {
			g.emit("%s;\n", m.Name)
		}
		return
	}
	if m.Async {
		g.emit("async ")
	}
	if m.IsConstructor {
		g.emit("constructor(%s)", g.genParams(m.Params))
	} else {
		g.emit("%s(%s)", m.Name, g.genParams(m.Params))
	}
	if m.Body == nil {
		// Abstract method: no body to emit.
		g.emit(";\n")
		return
	}
	g.emit(" {\n")
	g.indent++
	for _, s := range m.Body.Body {
		g.genStmt(s)
	}
	g.indent--
	g.emitIndent()
	g.emit("}\n")
}

// genInterfaceDeclaration and genTypeAlias carry no runtime behavior; only
// a marker comment survives into the generated output.
func (g *Generator) genInterfaceDeclaration(decl *ast.InterfaceDeclaration) {
	g.emitIndent()
	g.emit("// Interface: %s\n", decl.Name)
}

func (g *Generator) genTypeAlias(decl *ast.TypeAlias) {
	g.emitIndent()
	g.emit("// Type: %s\n", decl.Name)
}

// genNamespaceDeclaration lowers a namespace to an IIFE that builds and
// returns an `exports` object; exported members attach to it.
func (g *Generator) genNamespaceDeclaration(decl *ast.NamespaceDeclaration) {
	g.emitIndent()
	g.emit("const %s = (function() {\n", decl.Name)
	g.indent++
	g.emitIndent()
	g.emit("const exports = {};\n")
	for _, stmt := range decl.Body {
		if exp, ok := stmt.(*ast.Export); ok && exp.Declaration != nil {
			g.genStmt(exp.Declaration)
			if name := declaredName(exp.Declaration); name != "" {
				g.emitIndent()
				g.emit("exports.%s = %s;\n", name, name)
			}
			continue
		}
		g.genStmt(stmt)
	}
	g.emitIndent()
	g.emit("return exports;\n")
	g.indent--
	g.emitIndent()
	g.emit("})();\n")
}

// genImport lowers an import declaration to a CommonJS require bound to a
// fresh temporary, with default/namespace/named bindings destructured off
// it (spec.md §4.4/§4.5).
func (g *Generator) genImport(decl *ast.Import) {
	g.emitIndent()
	temp := g.nextImportTemp()
	g.emit("const %s = require(%q);\n", temp, rewriteExtension(decl.Source))
	if decl.Kind == ast.ImportSideEffect {
		return
	}
	if decl.Default != "" {
		g.emitIndent()
		g.emit("const %s = %s;\n", decl.Default, temp)
	}
	if decl.Namespace != "" {
		g.emitIndent()
		g.emit("const %s = %s;\n", decl.Namespace, temp)
	}
	if len(decl.Specifiers) > 0 {
		g.emitIndent()
		g.emit("const { %s } = %s;\n", g.genImportSpecifiers(decl.Specifiers), temp)
	}
}

func (g *Generator) genImportSpecifiers(specs []ast.ImportSpecifier) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		if s.Local != "" && s.Local != s.Imported {
			parts[i] = s.Imported + ": " + s.Local
		} else {
			parts[i] = s.Imported
		}
	}
	return joinComma(parts)
}

// genExport lowers every export form to its module.exports.* assignment,
// or - for re-exports - a require plus assignment/forwarding loop.
func (g *Generator) genExport(decl *ast.Export) {
	if decl.Declaration != nil {
		g.genStmt(decl.Declaration)
		name := declaredName(decl.Declaration)
		if name == "" {
			return
		}
		g.emitIndent()
		if decl.Default {
			g.emit("module.exports.default = %s;\n", name)
		} else {
			g.emit("module.exports.%s = %s;\n", name, name)
		}
		return
	}
	if decl.Wildcard {
		g.emitIndent()
		temp := g.nextImportTemp()
		g.emit("const %s = require(%q);\n", temp, rewriteExtension(decl.Source))
		g.emitIndent()
		g.emit("Object.keys(%s).forEach(function(key) {\n", temp)
		g.indent++
		g.emitIndent()
		g.emit("if (key !== \"default\") module.exports[key] = %s[key];\n", temp)
		g.indent--
		g.emitIndent()
		g.emit("});\n")
		return
	}
	if decl.Source != "" {
		g.emitIndent()
		temp := g.nextImportTemp()
		g.emit("const %s = require(%q);\n", temp, rewriteExtension(decl.Source))
		for _, s := range decl.Specifiers {
			g.emitIndent()
			g.emit("module.exports.%s = %s.%s;\n", s.Exported, temp, s.Local)
		}
		return
	}
	for _, s := range decl.Specifiers {
		g.emitIndent()
		g.emit("module.exports.%s = %s;\n", s.Exported, s.Local)
	}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
