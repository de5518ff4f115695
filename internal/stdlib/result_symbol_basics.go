package stdlib

import (
	"github.com/google/uuid"

	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// isOkTuple recognizes the (#ok, value) / (#error, message) result
// convention (spec.md §6).
func isOkTuple(v value.Value) (ok bool, payload value.Value, isResult bool) {
	t, okT := v.(*value.Tuple)
	if !okT || len(t.Elements) != 2 {
		return false, nil, false
	}
	tag, okS := t.Elements[0].(value.Symbol)
	if !okS {
		return false, nil, false
	}
	switch tag.Name {
	case "ok":
		return true, t.Elements[1], true
	case "error":
		return false, t.Elements[1], true
	}
	return false, nil, false
}

// resultModule: helpers over the (#ok,value)/(#error,message) result
// convention (spec.md §6), since the spec describes the shape but
// names no constructor/combinator helpers (SPEC_FULL §3).
func resultModule() *value.Object {
	fields := []*value.Field{
		native("isOk", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			ok, _, isResult := isOkTuple(arg)
			return value.BoolOf(isResult && ok), nil
		}),

		native("isError", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			ok, _, isResult := isOkTuple(arg)
			return value.BoolOf(isResult && !ok), nil
		}),

		native("map", func(arg value.Value, apply value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			ok, payload, isResult := isOkTuple(args[0])
			if !isResult {
				return nil, diag.New(diag.InvalidArgument, "expected a (#ok, value) or (#error, message) tuple")
			}
			if !ok {
				return args[0], nil
			}
			mapped, aerr := apply(args[1], payload)
			if aerr != nil {
				return nil, aerr
			}
			return value.Ok(mapped), nil
		}),

		native("andThen", func(arg value.Value, apply value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			ok, payload, isResult := isOkTuple(args[0])
			if !isResult {
				return nil, diag.New(diag.InvalidArgument, "expected a (#ok, value) or (#error, message) tuple")
			}
			if !ok {
				return args[0], nil
			}
			return apply(args[1], payload)
		}),

		native("unwrap", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			ok, payload, isResult := isOkTuple(arg)
			if !isResult || !ok {
				msg := "unwrap called on non-ok result"
				if isResult {
					if s, sok := payload.(value.Str); sok {
						msg = s.Value
					}
				}
				return nil, diag.New(diag.UserCrash, "%s", msg)
			}
			return payload, nil
		}),
	}
	return value.NewObject(fields)
}

// symbolModule: toString, and fresh (google/uuid-backed, SPEC_FULL §2:
// a small supplemented builtin for tooling that needs a guaranteed-fresh
// field name, not required by spec.md itself).
func symbolModule() *value.Object {
	fields := []*value.Field{
		native("toString", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			s, ok := arg.(value.Symbol)
			if !ok {
				return nil, diag.New(diag.InvalidArgument, "expected Symbol, found %s", arg.Kind())
			}
			return value.Str{Value: s.Name}, nil
		}),

		native("fresh", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			return value.Symbol{Name: "sym_" + uuid.NewString()}, nil
		}),
	}
	return value.NewObject(fields)
}

// basicsModule: the small set of always-unqualified combinators (spec
// §4.7: "the Basics module has each of its top-level fields
// additionally bound unqualified").
func basicsModule() *value.Object {
	fields := []*value.Field{
		native("identity", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			return value.Force(arg)
		}),

		native("not", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			b, ok := arg.(value.Bool)
			if !ok {
				return nil, diag.New(diag.InvalidArgument, "expected Bool, found %s", arg.Kind())
			}
			return value.BoolOf(!b.Value), nil
		}),

		native("always", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			captured := arg
			return &value.Native{
				Name: "always(_)",
				Fn: func(_ value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
					return value.Force(captured)
				},
			}, nil
		}),

		native("compose", func(arg value.Value, apply value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			f, g := args[0], args[1]
			return &value.Native{
				Name: "compose(_)",
				Fn: func(x value.Value, apply2 value.ApplyFunc) (value.Value, *diag.Error) {
					gx, gerr := apply2(g, x)
					if gerr != nil {
						return nil, gerr
					}
					return apply2(f, gx)
				},
			}, nil
		}),
	}
	return value.NewObject(fields)
}
