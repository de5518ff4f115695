package eval

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/pattern"
	"github.com/lumenlang/lumen/internal/value"
)

func (ev *Evaluator) evalApply(x *ast.Apply, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	fn, err := ev.Eval(x.Func, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	arg, err := ev.Eval(x.Arg, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	return ev.Apply(fn, arg, x.Func.Pos(), x.Arg.Pos(), ctx, calleeName(x.Func))
}

// calleeName recovers the identifier name of a direct call's function
// expression, used to enrich the "calling function `name`" operation
// label on a pattern-match failure (spec §4.3).
func calleeName(fnExpr ast.Expr) string {
	if id, ok := fnExpr.(*ast.Identifier); ok {
		return id.Name
	}
	return ""
}

// Apply implements spec §4.3 "Application" given an already-evaluated
// function and argument value. fnLoc is the function expression's
// source location, used to anchor the "expected a function" diagnostic
// (spec §4.3: non-callable reports at the function's location, not the
// argument's). argLoc is the argument expression's source location,
// used to relocate pattern-match-failure diagnostics.
func (ev *Evaluator) Apply(fn, arg value.Value, fnLoc, argLoc ast.Position, ctx *diag.Context, callee string) (value.Value, *diag.Error) {
	ffn, err := value.Force(fn)
	if err != nil {
		return nil, ctx.Capture(err, loc(fnLoc))
	}
	switch f := ffn.(type) {
	case *value.Function:
		callerEnv, ok := f.Env.(*env.Environment)
		if !ok {
			callerEnv = nil
		}
		extended, merr := pattern.Match(f.Param, arg, callerEnv)
		if merr != nil {
			merr.Location = loc(argLoc)
			if callee != "" {
				merr.Operation = "calling function `" + callee + "`"
			}
			return nil, ctx.Capture(merr, loc(argLoc))
		}
		ctx.PushFrame(diag.Frame{FuncName: f.Name, File: ctx.CurrentFile, Location: diag.Location{Line: f.DefLine, Column: f.DefCol}})
		result, berr := ev.Eval(f.Body, extended, f.DefDir, ctx)
		ctx.PopFrame()
		if berr != nil {
			return nil, ctx.Capture(berr, loc(argLoc))
		}
		return result, nil

	case *value.Native:
		ctx.PushFrame(diag.Frame{FuncName: f.Name, IsNative: true})
		result, nerr := f.Fn(arg, ev.applyFunc(ctx))
		ctx.PopFrame()
		if nerr != nil {
			return nil, ctx.Capture(nerr, loc(argLoc))
		}
		return result, nil

	default:
		e := diag.New(diag.ExpectedFunction, "expected a function, found %s", ffn.Kind())
		return nil, ctx.Capture(e, loc(fnLoc))
	}
}

// applyFunc adapts Apply to value.ApplyFunc so natives (Array.fold,
// etc.) can call back into user closures without this package
// importing value's ApplyFunc-typed callers directly.
func (ev *Evaluator) applyFunc(ctx *diag.Context) value.ApplyFunc {
	return func(fn value.Value, arg value.Value) (value.Value, *diag.Error) {
		return ev.Apply(fn, arg, ast.Position{}, ast.Position{}, ctx, "")
	}
}
