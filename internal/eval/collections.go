package eval

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

func (ev *Evaluator) evalArrayLiteral(x *ast.ArrayLiteral, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	elements := make([]value.Value, 0, len(x.Elements))
	for _, el := range x.Elements {
		switch el.ElementKind {
		case ast.ArrayElemNormal:
			v, err := ev.Eval(el.Value, e, currentDir, ctx)
			if err != nil {
				return nil, err
			}
			elements = append(elements, v)

		case ast.ArrayElemSpread:
			v, err := ev.Eval(el.Value, e, currentDir, ctx)
			if err != nil {
				return nil, err
			}
			arr, ok := v.(*value.Array)
			if !ok {
				return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Array to spread, found %s", v.Kind()), loc(el.Value.Pos()))
			}
			elements = append(elements, arr.Elements...)

		case ast.ArrayElemIf, ast.ArrayElemUnless:
			cv, err := ev.Eval(el.Condition, e, currentDir, ctx)
			if err != nil {
				return nil, err
			}
			b, ok := cv.(value.Bool)
			if !ok {
				return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Bool, found %s", cv.Kind()), loc(el.Condition.Pos()))
			}
			include := b.Value
			if el.ElementKind == ast.ArrayElemUnless {
				include = !include
			}
			if include {
				v, err := ev.Eval(el.Value, e, currentDir, ctx)
				if err != nil {
					return nil, err
				}
				elements = append(elements, v)
			}
		}
	}
	return &value.Array{Elements: elements}, nil
}

func (ev *Evaluator) evalTupleLiteral(x *ast.TupleLiteral, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	elements := make([]value.Value, len(x.Elements))
	for i, elExpr := range x.Elements {
		v, err := ev.Eval(elExpr, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return &value.Tuple{Elements: elements}, nil
}
