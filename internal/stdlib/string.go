package stdlib

import (
	"strings"

	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// stringModule implements spec.md §6's string natives: length, concat,
// split, case, chars, trim, starts-with, ends-with, contains, repeat,
// replace, slice, join.
func stringModule() *value.Object {
	fields := []*value.Field{
		native("length", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			s, err := asString(arg)
			if err != nil {
				return nil, err
			}
			return value.Int{Value: int64(len([]rune(s)))}, nil
		}),

		native("concat", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			a, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			return value.Str{Value: a + b}, nil
		}),

		native("split", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			s, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			sep, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			parts := strings.Split(s, sep)
			out := make([]value.Value, len(parts))
			for i, p := range parts {
				out[i] = value.Str{Value: p}
			}
			return &value.Array{Elements: out}, nil
		}),

		native("upper", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			s, err := asString(arg)
			if err != nil {
				return nil, err
			}
			return value.Str{Value: strings.ToUpper(s)}, nil
		}),

		native("lower", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			s, err := asString(arg)
			if err != nil {
				return nil, err
			}
			return value.Str{Value: strings.ToLower(s)}, nil
		}),

		native("chars", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			s, err := asString(arg)
			if err != nil {
				return nil, err
			}
			runes := []rune(s)
			out := make([]value.Value, len(runes))
			for i, r := range runes {
				out[i] = value.Str{Value: string(r)}
			}
			return &value.Array{Elements: out}, nil
		}),

		native("trim", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			s, err := asString(arg)
			if err != nil {
				return nil, err
			}
			return value.Str{Value: strings.TrimSpace(s)}, nil
		}),

		native("startsWith", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			s, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			prefix, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			return value.BoolOf(strings.HasPrefix(s, prefix)), nil
		}),

		native("endsWith", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			s, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			suffix, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			return value.BoolOf(strings.HasSuffix(s, suffix)), nil
		}),

		native("contains", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			s, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			sub, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			return value.BoolOf(strings.Contains(s, sub)), nil
		}),

		native("repeat", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			s, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			n, err := asInt(args[1])
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, diag.New(diag.InvalidArgument, "repeat count must be non-negative, got %d", n)
			}
			return value.Str{Value: strings.Repeat(s, int(n))}, nil
		}),

		native("replace", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 3)
			if err != nil {
				return nil, err
			}
			s, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			old, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			rep, err := asString(args[2])
			if err != nil {
				return nil, err
			}
			return value.Str{Value: strings.ReplaceAll(s, old, rep)}, nil
		}),

		native("slice", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 3)
			if err != nil {
				return nil, err
			}
			s, err := asString(args[0])
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
			runes := []rune(s)
			n := int64(len(runes))
			if from < 0 {
				from = 0
			}
			if to > n {
				to = n
			}
			if from > to {
				from = to
			}
			return value.Str{Value: string(runes[from:to])}, nil
		}),

		native("join", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
			args, err := tupleArgs(arg, 2)
			if err != nil {
				return nil, err
			}
			arr, err := asArray(args[0])
			if err != nil {
				return nil, err
			}
			sep, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			parts := make([]string, len(arr.Elements))
			for i, el := range arr.Elements {
				fv, ferr := value.Force(el)
				if ferr != nil {
					return nil, ferr
				}
				s, serr := asString(fv)
				if serr != nil {
					return nil, serr
				}
				parts[i] = s
			}
			return value.Str{Value: strings.Join(parts, sep)}, nil
		}),
	}
	return value.NewObject(fields)
}
