package stdlib

import (
	"sort"

	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// arrayModule implements spec.md §6's array natives: length, get,
// reverse, fold, slice, sort, uniq, concat-all.
func arrayModule() *value.Object {
	fields := []*value.Field{
		native("length", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			a, err := asArray(arg)
			if err != nil {
				return nil, err
			}
			return value.Int{Value: int64(len(a.Elements))}, nil
		}),

		native("get", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			a, err := asArray(args[0])
			if err != nil {
				return nil, err
			}
			idx, err := asInt(args[1])
			if err != nil {
				return nil, err
			}
			if idx < 0 || idx >= int64(len(a.Elements)) {
				return value.SentinelOutOfBounds, nil
			}
			fv, ferr := value.Force(a.Elements[idx])
			if ferr != nil {
				return nil, ferr
			}
			return value.Ok(fv), nil
		}),

		native("reverse", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			a, err := asArray(arg)
			if err != nil {
				return nil, err
			}
			out := make([]value.Value, len(a.Elements))
			for i, v := range a.Elements {
				out[len(a.Elements)-1-i] = v
			}
			return &value.Array{Elements: out}, nil
		}),

		native("fold", func(arg value.Value, apply value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 3)
			if err != nil {
				return nil, err
			}
			a, err := asArray(args[0])
			if err != nil {
				return nil, err
			}
			acc := args[1]
			fn := args[2]
			for _, el := range a.Elements {
				fv, ferr := value.Force(el)
				if ferr != nil {
					return nil, ferr
				}
				step, aerr := apply(fn, acc)
				if aerr != nil {
					return nil, aerr
				}
				acc, aerr = apply(step, fv)
				if aerr != nil {
					return nil, aerr
				}
			}
			return acc, nil
		}),

		native("slice", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 3)
			if err != nil {
				return nil, err
			}
			a, err := asArray(args[0])
			if err != nil {
				return nil, err
			}
			from, err := asInt(args[1])
			if err != nil {
				return nil, err
			}
			to, err := asInt(args[2])
			if err != nil {
				return nil, err
			}
			n := int64(len(a.Elements))
			if from < 0 {
				from = 0
			}
			if to > n {
				to = n
			}
			if from > to {
				from = to
			}
			out := append([]value.Value{}, a.Elements[from:to]...)
			return &value.Array{Elements: out}, nil
		}),

		native("sort", func(arg value.Value, apply value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			a, err := asArray(args[0])
			if err != nil {
				return nil, err
			}
			less := args[1]
			elems, ferr := forceElements(a)
			if ferr != nil {
				return nil, ferr
			}
			out := append([]value.Value{}, elems...)
			var sortErr *diag.Error
			sort.SliceStable(out, func(i, j int) bool {
				if sortErr != nil {
					return false
				}
				pair := &value.Tuple{Elements: []value.Value{out[i], out[j]}}
				r, aerr := apply(less, pair)
				if aerr != nil {
					sortErr = aerr
					return false
				}
				b, ok := r.(value.Bool)
				if !ok {
					sortErr = diag.New(diag.TypeMismatch, "sort comparator must return Bool")
					return false
				}
				return b.Value
			})
			if sortErr != nil {
				return nil, sortErr
			}
			return &value.Array{Elements: out}, nil
		}),

		native("uniq", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			a, err := asArray(arg)
			if err != nil {
				return nil, err
			}
			elems, ferr := forceElements(a)
			if ferr != nil {
				return nil, ferr
			}
			var out []value.Value
			for _, el := range elems {
				dup := false
				for _, seen := range out {
					eq, eerr := value.Equal(el, seen)
					if eerr != nil {
						return nil, eerr
					}
					if eq {
						dup = true
						break
					}
				}
				if !dup {
					out = append(out, el)
				}
			}
			return &value.Array{Elements: out}, nil
		}),

		native("concatAll", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			outer, err := asArray(arg)
			if err != nil {
				return nil, err
			}
			var out []value.Value
			for _, el := range outer.Elements {
				fv, ferr := value.Force(el)
				if ferr != nil {
					return nil, ferr
				}
				inner, aerr := asArray(fv)
				if aerr != nil {
					return nil, aerr
				}
				out = append(out, inner.Elements...)
			}
			return &value.Array{Elements: out}, nil
		}),
	}
	return value.NewObject(fields)
}
