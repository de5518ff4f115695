package stdlib

import (
	"math"

	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// mathModule implements spec.md §6's math natives: min, max, abs, pow,
// sqrt, floor, ceil, round, log, exp, mod, rem. Operates on Int or
// Float, returning the broader type for mixed pairs (mirroring the
// evaluator's own promotion rule, spec §4.3).
func mathModule() *value.Object {
	binNum := func(name string, intFn func(a, b int64) (value.Value, *diag.Error), floatFn func(a, b float64) value.Value) *value.Field {
		return native(name, func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			ai, aIsInt := args[0].(value.Int)
			bi, bIsInt := args[1].(value.Int)
			if aIsInt && bIsInt && intFn != nil {
				return intFn(ai.Value, bi.Value)
			}
			a, err := asFloatLike(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asFloatLike(args[1])
			if err != nil {
				return nil, err
			}
			return floatFn(a, b), nil
		})
	}

	unaryFloat := func(name string, fn func(float64) float64) *value.Field {
		return native(name, func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			f, err := asFloatLike(arg)
			if err != nil {
				return nil, err
			}
			return value.Float{Value: fn(f)}, nil
		})
	}

	fields := []*value.Field{
		binNum("min",
			func(a, b int64) (value.Value, *diag.Error) {
				if a < b {
					return value.Int{Value: a}, nil
				}
				return value.Int{Value: b}, nil
			},
			func(a, b float64) value.Value { return value.Float{Value: math.Min(a, b)} }),

		binNum("max",
			func(a, b int64) (value.Value, *diag.Error) {
				if a > b {
					return value.Int{Value: a}, nil
				}
				return value.Int{Value: b}, nil
			},
			func(a, b float64) value.Value { return value.Float{Value: math.Max(a, b)} }),

		native("abs", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			switch n := arg.(type) {
			case value.Int:
				if n.Value < 0 {
					return value.Int{Value: -n.Value}, nil
				}
				return n, nil
			case value.Float:
				return value.Float{Value: math.Abs(n.Value)}, nil
			}
			return nil, diag.New(diag.InvalidArgument, "expected Int or Float, found %s", arg.Kind())
		}),

		binNum("pow", nil, func(a, b float64) value.Value { return value.Float{Value: math.Pow(a, b)} }),

		unaryFloat("sqrt", math.Sqrt),
		unaryFloat("floor", math.Floor),
		unaryFloat("ceil", math.Ceil),
		unaryFloat("round", math.Round),
		unaryFloat("log", math.Log),
		unaryFloat("exp", math.Exp),

		binNum("mod",
			func(a, b int64) (value.Value, *diag.Error) {
				if b == 0 {
					return nil, diag.New(diag.DivisionByZero, "division by zero")
				}
				m := a % b
				if m != 0 && (m < 0) != (b < 0) {
					m += b
				}
				return value.Int{Value: m}, nil
			},
			func(a, b float64) value.Value { return value.Float{Value: math.Mod(math.Mod(a, b)+b, b)} }),

		binNum("rem",
			func(a, b int64) (value.Value, *diag.Error) {
				if b == 0 {
					return nil, diag.New(diag.DivisionByZero, "division by zero")
				}
				return value.Int{Value: a % b}, nil
			},
			func(a, b float64) value.Value { return value.Float{Value: math.Mod(a, b)} }),

		{Name: "pi", Value: value.Float{Value: math.Pi}},
		{Name: "e", Value: value.Float{Value: math.E}},
	}
	return value.NewObject(fields)
}

// floatModule implements spec.md §6's float-specific rounding/unary
// natives (distinct from Math's mixed-type versions: these always
// take and return Float).
func floatModule() *value.Object {
	unary := func(name string, fn func(float64) float64) *value.Field {
		return native(name, func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			f, ok := arg.(value.Float)
			if !ok {
				return nil, diag.New(diag.InvalidArgument, "expected Float, found %s", arg.Kind())
			}
			return value.Float{Value: fn(f.Value)}, nil
		})
	}
	fields := []*value.Field{
		unary("round", math.Round),
		unary("floor", math.Floor),
		unary("ceil", math.Ceil),
		unary("abs", math.Abs),
		unary("sqrt", math.Sqrt),
		native("pow", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			a, aok := args[0].(value.Float)
			b, err := asFloatLike(args[1])
			if err != nil {
				return nil, err
			}
			if !aok {
				return nil, diag.New(diag.InvalidArgument, "expected Float, found %s", args[0].Kind())
			}
			return value.Float{Value: math.Pow(a.Value, b)}, nil
		}),
	}
	return value.NewObject(fields)
}
