package eval

import (
	"strconv"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/pattern"
	"github.com/lumenlang/lumen/internal/value"
)

// iterableValues resolves one for-clause's iterable into a sequence of
// values to pattern-match against the clause pattern (spec §4.3: array
// elements, range integers, or object (key, value) tuples).
func iterableValues(v value.Value, clauseLoc diag.Location, ctx *diag.Context) ([]value.Value, *diag.Error) {
	switch it := v.(type) {
	case *value.Array:
		return it.Elements, nil
	case value.Range:
		n := it.Len()
		out := make([]value.Value, 0, n)
		for i := it.Start; i < it.Start+n; i++ {
			out = append(out, value.Int{Value: i})
		}
		return out, nil
	case *value.Object:
		out := make([]value.Value, 0, len(it.Fields))
		for _, f := range it.Fields {
			fv, err := value.Force(f.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, &value.Tuple{Elements: []value.Value{value.Str{Value: f.Name}, fv}})
		}
		return out, nil
	default:
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Array, Range, or Object to iterate, found %s", v.Kind()), clauseLoc)
	}
}

// forEachBinding iterates all clauses left-to-right (outside-in
// nesting), invoking body for every extended environment that reaches
// the innermost clause.
func (ev *Evaluator) forEachBinding(clauses []ast.ForClause, e *env.Environment, currentDir string, ctx *diag.Context, body func(*env.Environment) *diag.Error) *diag.Error {
	if len(clauses) == 0 {
		return body(e)
	}
	clause := clauses[0]
	rest := clauses[1:]

	iv, err := ev.Eval(clause.Iterable, e, currentDir, ctx)
	if err != nil {
		return err
	}
	items, ierr := iterableValues(iv, loc(clause.Iterable.Pos()), ctx)
	if ierr != nil {
		return ierr
	}
	for _, item := range items {
		extended, merr := pattern.Match(clause.Pattern, item, e)
		if merr != nil {
			return ctx.Capture(merr, loc(clause.Pattern.Pos()))
		}
		if err := ev.forEachBinding(rest, extended, currentDir, ctx, body); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evalArrayComprehension(x *ast.ArrayComprehension, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	var out []value.Value
	err := ev.forEachBinding(x.Clauses, e, currentDir, ctx, func(inner *env.Environment) *diag.Error {
		if x.Filter != nil {
			fv, ferr := ev.Eval(x.Filter, inner, currentDir, ctx)
			if ferr != nil {
				return ferr
			}
			b, ok := fv.(value.Bool)
			if !ok {
				return ctx.Capture(diag.New(diag.TypeMismatch, "expected Bool filter, found %s", fv.Kind()), loc(x.Filter.Pos()))
			}
			if !b.Value {
				return nil
			}
		}
		v, berr := ev.Eval(x.Body, inner, currentDir, ctx)
		if berr != nil {
			return berr
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &value.Array{Elements: out}, nil
}

func (ev *Evaluator) evalObjectComprehension(x *ast.ObjectComprehension, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	var fields []*value.Field
	err := ev.forEachBinding(x.Clauses, e, currentDir, ctx, func(inner *env.Environment) *diag.Error {
		if x.Filter != nil {
			fv, ferr := ev.Eval(x.Filter, inner, currentDir, ctx)
			if ferr != nil {
				return ferr
			}
			b, ok := fv.(value.Bool)
			if !ok {
				return ctx.Capture(diag.New(diag.TypeMismatch, "expected Bool filter, found %s", fv.Kind()), loc(x.Filter.Pos()))
			}
			if !b.Value {
				return nil
			}
		}
		kv, kerr := ev.Eval(x.Key, inner, currentDir, ctx)
		if kerr != nil {
			return kerr
		}
		var key string
		switch k := kv.(type) {
		case value.Str:
			key = k.Value
		case value.Symbol:
			key = k.Name
		case value.Int:
			key = strconv.FormatInt(k.Value, 10)
		default:
			return ctx.Capture(diag.New(diag.TypeMismatch, "expected String, Symbol, or Int key, found %s", kv.Kind()), loc(x.Key.Pos()))
		}
		vv, verr := ev.Eval(x.Value, inner, currentDir, ctx)
		if verr != nil {
			return verr
		}
		// Duplicate keys are kept in insertion order, not deduplicated
		// (spec §4.3), so append directly rather than using NewObject,
		// which collapses a repeated key into the first position with the
		// later value.
		fields = append(fields, &value.Field{Name: key, Value: vv})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &value.Object{Fields: fields}, nil
}

func (ev *Evaluator) evalRange(x *ast.Range, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	sv, err := ev.Eval(x.Start, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	si, ok := sv.(value.Int)
	if !ok {
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Int range start, found %s", sv.Kind()), loc(x.Start.Pos()))
	}
	ev2, err := ev.Eval(x.End, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	ei, ok := ev2.(value.Int)
	if !ok {
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Int range end, found %s", ev2.Kind()), loc(x.End.Pos()))
	}
	return value.Range{Start: si.Value, End: ei.Value, Inclusive: x.Inclusive}, nil
}
