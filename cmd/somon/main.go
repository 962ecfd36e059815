package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/somonscript/somon/internal/compiler"
	"github.com/somonscript/somon/internal/compiler/errors"
)

func main() {
	var outputFile string
	var strict bool
	var noTypeCheck bool
	flag.StringVar(&outputFile, "o", "", "output file path (defaults to the input file with a .js extension)")
	flag.BoolVar(&strict, "strict", false, "abort code generation on any type error")
	flag.BoolVar(&noTypeCheck, "no-typecheck", false, "skip the type checker")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: somon [-o output.js] [-strict] <input.som>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	opts := compiler.DefaultOptions()
	opts.Strict = strict
	opts.TypeCheck = !noTypeCheck

	result, err := compiler.CompileFile(string(data), inputFile, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		os.Exit(2)
	}

	exitCode := printDiagnostics(result.Diagnostics)
	if result.Code == "" {
		os.Exit(exitCode)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".js"
	}
	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(outputFile, []byte(result.Code), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("generated %s\n", outputFile)
	os.Exit(exitCode)
}

// printDiagnostics prints every collected diagnostic, grouped by file and
// sorted by line per §7 (reusing Bag's own grouping rather than
// re-deriving it), and returns the process exit code the driver is
// responsible for (0 clean, 1 errors, 2 critical).
func printDiagnostics(diags []errors.Diagnostic) int {
	bag := errors.NewBag(len(diags) + 1)
	for _, d := range diags {
		bag.Add(d)
	}
	code := 0
	for _, d := range diags {
		switch d.Severity {
		case errors.SeverityCritical:
			code = 2
		case errors.SeverityError:
			if code < 2 {
				code = 1
			}
		}
	}
	for _, fileDiags := range bag.GroupedByFile() {
		for _, d := range fileDiags {
			fmt.Fprintf(os.Stderr, "%s [%s] %s: %s\n", d.Severity, d.Code, d.Pos.String(), d.Message)
		}
	}
	return code
}
