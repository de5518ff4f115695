// Command lumen runs a single source file to completion and prints its
// result value, the way the teacher's cmd/funxy runs a module: read,
// parse, evaluate, report.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumenlang/lumen/internal/config"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/eval"
	"github.com/lumenlang/lumen/internal/parser"
	"github.com/lumenlang/lumen/internal/stdlib"
	"github.com/lumenlang/lumen/internal/value"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file%s>\n", os.Args[0], config.SourceFileExt)
		os.Exit(1)
	}
	os.Exit(run(os.Args[1]))
}

func run(path string) int {
	eval.SetParser(parser.Parse)

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	src, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %s\n", path, err)
		return 1
	}

	ev := eval.New(config.ImportPathsFromEnv(config.ImportPathEnvVar), "", config.SourceFileExt,
		func(e *eval.Evaluator) *env.Environment { return stdlib.NewRootEnv(e) })

	root, perr := parser.Parse(src, absPath)
	if perr != nil {
		fmt.Fprint(os.Stderr, diag.Render(perr))
		return 1
	}

	ctx := diag.NewContext()
	ctx.CurrentFile = absPath
	ctx.Sources[absPath] = string(src)

	rootEnv := ev.NewRootEnv(ev)
	result, eerr := ev.Eval(root, rootEnv, filepath.Dir(absPath), ctx)
	if eerr != nil {
		fmt.Fprint(os.Stderr, diag.Render(eerr))
		if msg, ok := ev.TakeCrashMessage(); ok {
			fmt.Fprintf(os.Stderr, "crash: %s\n", msg)
		}
		return 1
	}

	out, ferr := value.Format(result)
	if ferr != nil {
		fmt.Fprint(os.Stderr, diag.Render(ferr))
		return 1
	}
	fmt.Println(out)
	return 0
}
