package eval

import (
	"math"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

func (ev *Evaluator) evalUnary(x *ast.Unary, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	v, err := ev.Eval(x.Operand, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	if x.Operator == "!" {
		b, ok := v.(value.Bool)
		if !ok {
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Bool, found %s", v.Kind()), loc(x.Operand.Pos()))
		}
		return value.BoolOf(!b.Value), nil
	}
	return nil, ctx.Capture(diag.New(diag.TypeMismatch, "unknown unary operator %q", x.Operator), loc(x.Position))
}

func (ev *Evaluator) evalBinary(x *ast.Binary, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	switch x.Operator {
	case "\\": // pipeline: x \ f ≡ f(x)
		lv, err := ev.Eval(x.Left, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		fv, err := ev.Eval(x.Right, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		return ev.Apply(fv, lv, x.Right.Pos(), x.Left.Pos(), ctx, calleeName(x.Right))

	case "&": // object merge
		lv, err := ev.Eval(x.Left, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		rv, err := ev.Eval(x.Right, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		lo, ok := lv.(*value.Object)
		if !ok {
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Object, found %s", lv.Kind()), loc(x.Left.Pos()))
		}
		ro, ok := rv.(*value.Object)
		if !ok {
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Object, found %s", rv.Kind()), loc(x.Right.Pos()))
		}
		merged, merr := value.Merge(lo, ro)
		if merr != nil {
			return nil, ctx.Capture(merr, loc(x.Position))
		}
		return merged, nil

	case "==", "!=":
		lv, err := ev.Eval(x.Left, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		rv, err := ev.Eval(x.Right, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		eq, eerr := value.Equal(lv, rv)
		if eerr != nil {
			return nil, ctx.Capture(eerr, loc(x.Position))
		}
		if x.Operator == "!=" {
			eq = !eq
		}
		return value.BoolOf(eq), nil

	case "&&", "||":
		lv, err := ev.Eval(x.Left, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		lb, ok := lv.(value.Bool)
		if !ok {
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Bool, found %s", lv.Kind()), loc(x.Left.Pos()))
		}
		rv, err := ev.Eval(x.Right, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		rb, ok := rv.(value.Bool)
		if !ok {
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Bool, found %s", rv.Kind()), loc(x.Right.Pos()))
		}
		if x.Operator == "&&" {
			return value.BoolOf(lb.Value && rb.Value), nil
		}
		return value.BoolOf(lb.Value || rb.Value), nil

	default:
		lv, err := ev.Eval(x.Left, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		rv, err := ev.Eval(x.Right, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		return arith(x.Operator, lv, rv, loc(x.Left.Pos()), loc(x.Right.Pos()), loc(x.Position), ctx)
	}
}

// arith implements spec §4.3's arithmetic/comparison rule: promote to
// float if either side is float, otherwise require both integers.
func arith(op string, l, r value.Value, lloc, rloc, opLoc diag.Location, ctx *diag.Context) (value.Value, *diag.Error) {
	li, lIsInt := l.(value.Int)
	ri, rIsInt := r.(value.Int)
	lf, lIsFloat := l.(value.Float)
	rf, rIsFloat := r.(value.Float)

	if !lIsInt && !lIsFloat {
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Int or Float, found %s", l.Kind()), lloc)
	}
	if !rIsInt && !rIsFloat {
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Int or Float, found %s", r.Kind()), rloc)
	}

	if lIsFloat || rIsFloat {
		var lval, rval float64
		if lIsFloat {
			lval = lf.Value
		} else {
			lval = float64(li.Value)
		}
		if rIsFloat {
			rval = rf.Value
		} else {
			rval = float64(ri.Value)
		}
		return arithFloat(op, lval, rval, rloc, opLoc, ctx)
	}
	return arithInt(op, li.Value, ri.Value, rloc, opLoc, ctx)
}

func arithFloat(op string, l, r float64, rloc, opLoc diag.Location, ctx *diag.Context) (value.Value, *diag.Error) {
	switch op {
	case "+":
		return value.Float{Value: l + r}, nil
	case "-":
		return value.Float{Value: l - r}, nil
	case "*":
		return value.Float{Value: l * r}, nil
	case "/":
		if r == 0 {
			return nil, ctx.Capture(diag.New(diag.DivisionByZero, "division by zero"), rloc)
		}
		return value.Float{Value: l / r}, nil
	case "<":
		return value.BoolOf(l < r), nil
	case ">":
		return value.BoolOf(l > r), nil
	case "<=":
		return value.BoolOf(l <= r), nil
	case ">=":
		return value.BoolOf(l >= r), nil
	}
	return nil, ctx.Capture(diag.New(diag.TypeMismatch, "unknown operator %q", op), opLoc)
}

func arithInt(op string, l, r int64, rloc, opLoc diag.Location, ctx *diag.Context) (value.Value, *diag.Error) {
	switch op {
	case "+":
		sum := l + r
		if (r > 0 && sum < l) || (r < 0 && sum > l) {
			return nil, ctx.Capture(diag.New(diag.Overflow, "integer overflow in addition"), opLoc)
		}
		return value.Int{Value: sum}, nil
	case "-":
		diff := l - r
		if (r < 0 && diff < l) || (r > 0 && diff > l) {
			return nil, ctx.Capture(diag.New(diag.Overflow, "integer overflow in subtraction"), opLoc)
		}
		return value.Int{Value: diff}, nil
	case "*":
		if l != 0 && r != 0 {
			prod := l * r
			if prod/r != l {
				return nil, ctx.Capture(diag.New(diag.Overflow, "integer overflow in multiplication"), opLoc)
			}
			return value.Int{Value: prod}, nil
		}
		return value.Int{Value: 0}, nil
	case "/":
		if r == 0 {
			return nil, ctx.Capture(diag.New(diag.DivisionByZero, "division by zero"), rloc)
		}
		if l == math.MinInt64 && r == -1 {
			return nil, ctx.Capture(diag.New(diag.Overflow, "integer overflow in division"), opLoc)
		}
		return value.Int{Value: l / r}, nil
	case "<":
		return value.BoolOf(l < r), nil
	case ">":
		return value.BoolOf(l > r), nil
	case "<=":
		return value.BoolOf(l <= r), nil
	case ">=":
		return value.BoolOf(l >= r), nil
	}
	return nil, ctx.Capture(diag.New(diag.TypeMismatch, "unknown operator %q", op), opLoc)
}

// operatorAsFunction reifies a binary operator as the curried function
// x -> y -> x op y (spec §4.3).
func (ev *Evaluator) operatorAsFunction(x *ast.OperatorAsFunction) value.Value {
	op := x.Operator
	return &value.Native{
		Name: "(" + op + ")",
		Fn: func(lhs value.Value, apply value.ApplyFunc) (value.Value, *diag.Error) {
			return &value.Native{
				Name: "(" + op + " " + "_)",
				Fn: func(rhs value.Value, apply2 value.ApplyFunc) (value.Value, *diag.Error) {
					ctx := diag.NewContext()
					switch op {
					case "==", "!=":
						eq, err := value.Equal(lhs, rhs)
						if err != nil {
							return nil, err
						}
						if op == "!=" {
							eq = !eq
						}
						return value.BoolOf(eq), nil
					case "&&", "||":
						lb, ok := lhs.(value.Bool)
						if !ok {
							return nil, diag.New(diag.TypeMismatch, "expected Bool, found %s", lhs.Kind())
						}
						rb, ok := rhs.(value.Bool)
						if !ok {
							return nil, diag.New(diag.TypeMismatch, "expected Bool, found %s", rhs.Kind())
						}
						if op == "&&" {
							return value.BoolOf(lb.Value && rb.Value), nil
						}
						return value.BoolOf(lb.Value || rb.Value), nil
					case "&":
						lo, ok := lhs.(*value.Object)
						if !ok {
							return nil, diag.New(diag.TypeMismatch, "expected Object, found %s", lhs.Kind())
						}
						ro, ok := rhs.(*value.Object)
						if !ok {
							return nil, diag.New(diag.TypeMismatch, "expected Object, found %s", rhs.Kind())
						}
						return value.Merge(lo, ro)
					case "\\":
						return apply2(rhs, lhs)
					default:
						zero := diag.Location{}
						return arith(op, lhs, rhs, zero, zero, zero, ctx)
					}
				},
			}, nil
		},
	}
}
