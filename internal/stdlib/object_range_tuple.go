package stdlib

import (
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// objectModule implements spec.md §6's object natives: keys, values, get.
func objectModule() *value.Object {
	fields := []*value.Field{
		native("keys", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			o, err := asObject(arg)
			if err != nil {
				return nil, err
			}
			names := o.Names()
			out := make([]value.Value, len(names))
			for i, n := range names {
				out[i] = value.Str{Value: n}
			}
			return &value.Array{Elements: out}, nil
		}),

		native("values", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			o, err := asObject(arg)
			if err != nil {
				return nil, err
			}
			out := make([]value.Value, len(o.Fields))
			for i, f := range o.Fields {
				fv, ferr := value.Force(f.Value)
				if ferr != nil {
					return nil, ferr
				}
				out[i] = fv
			}
			return &value.Array{Elements: out}, nil
		}),

		native("get", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			o, err := asObject(args[0])
			if err != nil {
				return nil, err
			}
			key, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			f, found := o.Get(key)
			if !found {
				return value.SentinelNoSuchKey, nil
			}
			fv, ferr := value.Force(f.Value)
			if ferr != nil {
				return nil, ferr
			}
			return value.Ok(fv), nil
		}),
	}
	return value.NewObject(fields)
}

// rangeModule: toArray (materialize) and contains, small but useful
// complement to the bare Range value the evaluator constructs (spec §4.3).
func rangeModule() *value.Object {
	fields := []*value.Field{
		native("toArray", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			r, ok := arg.(value.Range)
			if !ok {
				return nil, diag.New(diag.InvalidArgument, "expected Range, found %s", arg.Kind())
			}
			n := r.Len()
			out := make([]value.Value, 0, n)
			for i := r.Start; i < r.Start+n; i++ {
				out = append(out, value.Int{Value: i})
			}
			return &value.Array{Elements: out}, nil
		}),

		native("contains", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			r, ok := args[0].(value.Range)
			if !ok {
				return nil, diag.New(diag.InvalidArgument, "expected Range, found %s", args[0].Kind())
			}
			n, err := asInt(args[1])
			if err != nil {
				return nil, err
			}
			if r.Inclusive {
				return value.BoolOf(n >= r.Start && n <= r.End), nil
			}
			return value.BoolOf(n >= r.Start && n < r.End), nil
		}),
	}
	return value.NewObject(fields)
}

// tupleModule: first, second, length — small positional accessors.
func tupleModule() *value.Object {
	fields := []*value.Field{
		native("first", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			t, ok := arg.(*value.Tuple)
			if !ok || len(t.Elements) == 0 {
				return nil, diag.New(diag.InvalidArgument, "expected non-empty Tuple")
			}
			return value.Force(t.Elements[0])
		}),
		native("second", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			t, ok := arg.(*value.Tuple)
			if !ok || len(t.Elements) < 2 {
				return nil, diag.New(diag.InvalidArgument, "expected Tuple of arity >= 2")
			}
			return value.Force(t.Elements[1])
		}),
		native("length", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			t, ok := arg.(*value.Tuple)
			if !ok {
				return nil, diag.New(diag.InvalidArgument, "expected Tuple, found %s", arg.Kind())
			}
			return value.Int{Value: int64(len(t.Elements))}, nil
		}),
	}
	return value.NewObject(fields)
}
