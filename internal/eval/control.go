package eval

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/pattern"
	"github.com/lumenlang/lumen/internal/value"
)

func (ev *Evaluator) evalIf(x *ast.If, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	cv, err := ev.Eval(x.Cond, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	b, ok := cv.(value.Bool)
	if !ok {
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Bool, found %s", cv.Kind()), loc(x.Cond.Pos()))
	}
	if b.Value {
		return ev.Eval(x.Then, e, currentDir, ctx)
	}
	if x.Else == nil {
		return value.Nil, nil
	}
	return ev.Eval(x.Else, e, currentDir, ctx)
}

// evalWhenMatches implements spec §4.3: try each branch's pattern in
// order; a mismatch is silently consumed and the next branch tried.
// Non-mismatch errors from a branch body propagate.
func (ev *Evaluator) evalWhenMatches(x *ast.WhenMatches, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	sv, err := ev.Eval(x.Scrutinee, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	for _, branch := range x.Branches {
		extended, merr := pattern.Match(branch.Pattern, sv, e)
		if merr != nil {
			if merr.Kind == diag.TypeMismatch {
				continue
			}
			return nil, ctx.Capture(merr, loc(branch.Pattern.Pos()))
		}
		return ev.Eval(branch.Body, extended, currentDir, ctx)
	}
	if x.Otherwise != nil {
		return ev.Eval(x.Otherwise, e, currentDir, ctx)
	}
	return nil, ctx.Capture(diag.New(diag.TypeMismatch, "no branch matched and no otherwise clause"), loc(x.Position))
}
