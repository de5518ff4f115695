package eval

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/pattern"
	"github.com/lumenlang/lumen/internal/value"
)

// evalLet implements spec §4.4. A simple-identifier pattern gets a
// self-reference placeholder frame so `let f = x -> ... f ... in ...`
// can see itself; any other pattern shape evaluates its value first,
// then destructures strictly.
func (ev *Evaluator) evalLet(x *ast.Let, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	if id, ok := x.Pattern.(*ast.IdentPattern); ok {
		frame := env.Extend(e, id.Name, value.Nil) // placeholder, back-patched below
		v, err := ev.Eval(x.Value, frame, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		if fn, isFn := v.(*value.Function); isFn && x.Doc != "" && fn.Doc == "" {
			fn.Doc = x.Doc
		}
		frame.SetValue(v)
		return ev.Eval(x.Body, frame, currentDir, ctx)
	}

	v, err := ev.Eval(x.Value, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	extended, merr := pattern.Match(x.Pattern, v, e)
	if merr != nil {
		return nil, ctx.Capture(merr, loc(x.Pattern.Pos()))
	}
	return ev.Eval(x.Body, extended, currentDir, ctx)
}

// evalWhere implements the two-pass-then-back-patch mutual-recursion
// protocol of spec §4.5.
func (ev *Evaluator) evalWhere(x *ast.Where, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	// finalEnv is reassigned as each identifier-bound frame is added; the
	// thunks below close over this variable (not its value at creation
	// time), so by the time Force runs they see the fully extended chain.
	// This is the "back-patch" step: no mutation API is needed because Go
	// closures already capture variables, not values.
	finalEnv := e

	var nonIdent []ast.WhereBinding
	for _, b := range x.Bindings {
		b := b
		if id, ok := b.Pattern.(*ast.IdentPattern); ok {
			th := value.NewThunk(func() (value.Value, *diag.Error) {
				v, err := ev.Eval(b.Value, finalEnv, currentDir, ctx)
				if err != nil {
					return nil, err
				}
				if fn, isFn := v.(*value.Function); isFn && b.Doc != "" && fn.Doc == "" {
					fn.Doc = b.Doc
				}
				return v, nil
			})
			th.DefLoc = loc(b.Value.Pos())
			th.Expr = b.Value
			finalEnv = env.Extend(finalEnv, id.Name, th)
		} else {
			nonIdent = append(nonIdent, b)
		}
	}

	for _, b := range nonIdent {
		v, err := ev.Eval(b.Value, finalEnv, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		extended, merr := pattern.Match(b.Pattern, v, finalEnv)
		if merr != nil {
			return nil, ctx.Capture(merr, loc(b.Pattern.Pos()))
		}
		finalEnv = extended
	}

	return ev.Eval(x.Body, finalEnv, currentDir, ctx)
}
