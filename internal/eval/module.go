package eval

import (
	"os"
	"path/filepath"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// ParseFunc parses source text from a named file into a root
// expression. It is supplied by the driver (cmd/lumen) rather than
// imported directly, the same way value.ApplyFunc avoids a dependency
// from value on eval: internal/eval must not import internal/parser,
// since parser already depends on internal/ast and internal/lexer and
// nothing requires the reverse edge.
type ParseFunc func(source []byte, filename string) (ast.Expr, *diag.Error)

// parseSource is set once by the driver before the first import is resolved.
var parseSource ParseFunc

// SetParser installs the parser the module loader uses to turn source
// text into an AST (spec §4.7 "Loading": "read the file, parse it to
// an AST").
func SetParser(p ParseFunc) { parseSource = p }

// evalImport implements spec §4.7: resolve an import path, load (or
// fetch from cache) the module, return its exported value.
func (ev *Evaluator) evalImport(x *ast.Import, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	resolved, rerr := ev.resolve(x.Path, currentDir)
	if rerr != nil {
		merr := diag.New(diag.ModuleNotFound, "module not found: %q", x.Path)
		merr.Path = x.Path
		return nil, ctx.Capture(merr, loc(x.PathPos))
	}
	v, lerr := ev.load(resolved, ctx)
	if lerr != nil {
		return nil, ctx.Capture(lerr, loc(x.PathPos))
	}
	return v, nil
}

// resolve implements the search order of spec §4.7: configured import
// paths, then the bundled stdlib directory; a relative path (./ or
// ../) resolves against currentDir instead.
func (ev *Evaluator) resolve(path, currentDir string) (string, error) {
	withExt := path
	if !hasAnyExt(withExt) {
		withExt += ev.Ext
	}

	if len(path) >= 2 && (path[:2] == "./" || path[:2] == "..") {
		candidate := filepath.Join(currentDir, withExt)
		if fileExists(candidate) {
			return candidate, nil
		}
		return "", os.ErrNotExist
	}

	for _, dir := range ev.ImportPaths {
		candidate := filepath.Join(dir, withExt)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	if ev.StdlibDir != "" {
		candidate := filepath.Join(ev.StdlibDir, withExt)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", os.ErrNotExist
}

func hasAnyExt(path string) bool { return filepath.Ext(path) != "" }

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// load reads, parses and evaluates a module exactly once per resolved
// path (spec §4.7 "Loading" / "Cycle handling"): the cache is keyed by
// resolved path, and the active filename is saved/restored around
// evaluation so errors record the right file (spec §4.7
// "Error-context file tracking").
func (ev *Evaluator) load(resolved string, ctx *diag.Context) (value.Value, *diag.Error) {
	if v, ok := ev.modules[resolved]; ok {
		return v, nil
	}
	if parseSource == nil {
		return nil, diag.New(diag.ModuleNotFound, "no parser installed to load %q", resolved)
	}

	src, err := os.ReadFile(resolved)
	if err != nil {
		merr := diag.New(diag.ModuleNotFound, "cannot read module %q", resolved)
		merr.Path = resolved
		return nil, merr
	}

	root, perr := parseSource(src, resolved)
	if perr != nil {
		return nil, perr
	}

	prevFile := ctx.CurrentFile
	ctx.CurrentFile = resolved
	defer func() { ctx.CurrentFile = prevFile }()

	moduleEnv := ev.NewRootEnv(ev)
	moduleDir := filepath.Dir(resolved)
	v, eerr := ev.Eval(root, moduleEnv, moduleDir, ctx)
	if eerr != nil {
		return nil, eerr
	}
	ev.modules[resolved] = v
	return v, nil
}
