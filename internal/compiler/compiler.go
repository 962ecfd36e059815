// Package compiler is the top-level entry point: lex, parse, type-check,
// and generate, aggregating diagnostics along the way per spec.md §6/§7.
package compiler

import (
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/generator"
	"github.com/somonscript/somon/internal/compiler/lexer"
	"github.com/somonscript/somon/internal/compiler/parser"
	"github.com/somonscript/somon/internal/compiler/types"
)

// Target names the JavaScript dialect the caller intends the output for.
// Only the default, ES2020-flavored emission is implemented by the core;
// other targets are left to a separate downstream transpiler per
// spec.md §6.
type Target string

const (
	TargetES5    Target = "es5"
	TargetES2015 Target = "es2015"
	TargetES2020 Target = "es2020"
	TargetESNext Target = "esnext"
)

// Options configures a Compile call.
type Options struct {
	// TypeCheck runs the type checker (C4) over the parsed program.
	// Defaults to true via DefaultOptions; a caller constructing Options{}
	// directly must opt in explicitly.
	TypeCheck bool
	// Strict aborts code generation when the type checker reports any
	// error-severity diagnostic.
	Strict bool
	Target Target
	// SourceMap and Minify are accepted for interface compatibility with
	// spec.md §6; neither is implemented by this core (source maps need a
	// dedicated mapping format, minification a separate pass - both are
	// out of scope for the reference generator described in spec.md §4.4).
	SourceMap bool
	Minify    bool
}

// DefaultOptions returns the spec's documented defaults: type checking on,
// strict mode off, ES2020 target.
func DefaultOptions() Options {
	return Options{TypeCheck: true, Target: TargetES2020}
}

// Result is Compile's output: the generated code (empty if strict mode
// suppressed codegen) plus every diagnostic collected along the way.
type Result struct {
	Code        string
	Diagnostics []errors.Diagnostic
}

// Compile runs the full lex -> parse -> check -> generate pipeline over
// source text for a single file, per spec.md §6's entry point.
func Compile(source string, opts Options) (Result, error) {
	return CompileFile(source, "source.som", opts)
}

// CompileFile is Compile with an explicit file name, used by diagnostics
// and by callers (the module subsystem) that already know the path.
func CompileFile(source, file string, opts Options) (Result, error) {
	bag := errors.NewBag(0)

	program := parser.Parse(lexer.New(source), file, bag)

	if opts.TypeCheck {
		checker := types.NewChecker(file)
		checkResult := checker.Check(program)
		for _, d := range checkResult.Errors {
			bag.Add(d)
		}
	}

	result := Result{Diagnostics: bag.Diagnostics()}

	if opts.Strict && bag.HasErrors() {
		return result, nil
	}

	gen := generator.New(nil)
	result.Code = gen.Generate(program)
	return result, nil
}
