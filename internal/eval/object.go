package eval

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

// evalObjectLiteral implements spec §4.3 "Object literal": fields
// built in source order; dynamic keys resolved eagerly, but every
// field's value wrapped in a thunk so access is lazy.
//
// selfEnv grows one frame per field, the same back-patch protocol
// evalWhere uses (internal/eval/letwhere.go): each field's thunk
// closes over the selfEnv variable itself, not its value at creation
// time, so a field can reference a sibling defined earlier or later in
// the literal. Forcing a field whose own thunk is still mid-evaluation
// (e.g. `{ a: b, b: a }.a`) hits the thunk engine's evaluating-state
// check and surfaces as a cyclic_reference, not unknown_identifier.
func (ev *Evaluator) evalObjectLiteral(x *ast.ObjectLiteral, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	selfEnv := e

	var fields []*value.Field
	for _, of := range x.Fields {
		of := of
		makeThunk := func() *value.Thunk {
			th := value.NewThunk(func() (value.Value, *diag.Error) {
				return ev.Eval(of.Value, selfEnv, currentDir, ctx)
			})
			th.Expr = of.Value
			th.DefLoc = loc(of.KeyPos)
			return th
		}

		if of.DynamicKey == nil {
			th := makeThunk()
			fields = append(fields, &value.Field{Name: of.StaticKey, Value: th, IsPatch: of.IsPatch})
			selfEnv = env.Extend(selfEnv, of.StaticKey, th)
			continue
		}

		kv, err := ev.Eval(of.DynamicKey, selfEnv, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		switch k := kv.(type) {
		case value.Null:
			// dropped
		case value.Str:
			th := makeThunk()
			fields = append(fields, &value.Field{Name: k.Value, Value: th, IsPatch: of.IsPatch})
			selfEnv = env.Extend(selfEnv, k.Value, th)
		case *value.Array:
			shared := makeThunk()
			for _, el := range k.Elements {
				ev2, eerr := value.Force(el)
				if eerr != nil {
					return nil, eerr
				}
				s, ok := ev2.(value.Str)
				if !ok {
					return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected array of strings for dynamic key, found %s", ev2.Kind()), loc(of.KeyPos))
				}
				fields = append(fields, &value.Field{Name: s.Value, Value: shared, IsPatch: of.IsPatch})
				selfEnv = env.Extend(selfEnv, s.Value, shared)
			}
		default:
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected String, Null, or Array of strings for dynamic key, found %s", kv.Kind()), loc(of.KeyPos))
		}
	}
	obj := value.NewObject(fields)
	obj.Doc = x.Doc
	return obj, nil
}

// evalObjectExtend implements spec §4.3 "Object-extend".
func (ev *Evaluator) evalObjectExtend(x *ast.ObjectExtend, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	base, err := ev.Eval(x.Base, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	switch b := base.(type) {
	case *value.Object:
		extFields, err := ev.evalExtendFieldsStrict(x.Fields, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		ext := value.NewObject(extFields)
		merged, merr := value.Merge(b, ext)
		if merr != nil {
			return nil, ctx.Capture(merr, loc(x.Position))
		}
		return merged, nil

	case *value.Function, *value.Native:
		extFields, err := ev.evalExtendFieldsStrict(x.Fields, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		arg := value.NewObject(extFields)
		return ev.Apply(base, arg, x.Base.Pos(), x.Position, ctx, calleeName(x.Base))

	default:
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Object or function to extend, found %s", base.Kind()), loc(x.Base.Pos()))
	}
}

// evalExtendFieldsStrict evaluates extension fields strictly (spec
// §4.3: "not lazily"), still resolving dynamic keys the same way
// object literals do.
func (ev *Evaluator) evalExtendFieldsStrict(ofs []ast.ObjectField, e *env.Environment, currentDir string, ctx *diag.Context) ([]*value.Field, *diag.Error) {
	var fields []*value.Field
	for _, of := range ofs {
		v, err := ev.Eval(of.Value, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		if of.DynamicKey == nil {
			fields = append(fields, &value.Field{Name: of.StaticKey, Value: v, IsPatch: of.IsPatch})
			continue
		}
		kv, err := ev.Eval(of.DynamicKey, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		switch k := kv.(type) {
		case value.Null:
		case value.Str:
			fields = append(fields, &value.Field{Name: k.Value, Value: v, IsPatch: of.IsPatch})
		case *value.Array:
			for _, el := range k.Elements {
				fv, ferr := value.Force(el)
				if ferr != nil {
					return nil, ferr
				}
				s, ok := fv.(value.Str)
				if !ok {
					return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected array of strings for dynamic key, found %s", fv.Kind()), loc(of.KeyPos))
				}
				fields = append(fields, &value.Field{Name: s.Value, Value: v, IsPatch: of.IsPatch})
			}
		default:
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected String, Null, or Array of strings for dynamic key, found %s", kv.Kind()), loc(of.KeyPos))
		}
	}
	return fields, nil
}

func (ev *Evaluator) evalFieldAccess(x *ast.FieldAccess, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	ov, err := ev.Eval(x.Object, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	obj, ok := ov.(*value.Object)
	if !ok {
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Object, found %s", ov.Kind()), loc(x.Object.Pos()))
	}
	f, found := obj.Get(x.Field)
	if !found {
		uerr := diag.New(diag.UnknownField, "unknown field %q", x.Field)
		uerr.Name = x.Field
		uerr.Available = diag.AvailableFields(obj.Names(), 10)
		uerr.Suggestion = diag.Suggest(x.Field, obj.Names())
		return nil, ctx.Capture(uerr, loc(x.FieldPos))
	}
	fv, ferr := value.Force(f.Value)
	if ferr != nil {
		return nil, ctx.Capture(ferr, loc(x.FieldPos))
	}
	return fv, nil
}

func (ev *Evaluator) evalIndex(x *ast.Index, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	ov, err := ev.Eval(x.Object, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	kv, err := ev.Eval(x.Key, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	switch o := ov.(type) {
	case *value.Array:
		idx, ok := kv.(value.Int)
		if !ok {
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Int index, found %s", kv.Kind()), loc(x.Key.Pos()))
		}
		if idx.Value < 0 || idx.Value >= int64(len(o.Elements)) {
			return nil, ctx.Capture(diag.New(diag.IndexOutOfBounds, "index %d out of bounds for array of length %d", idx.Value, len(o.Elements)), loc(x.Key.Pos()))
		}
		fv, ferr := value.Force(o.Elements[idx.Value])
		if ferr != nil {
			return nil, ctx.Capture(ferr, loc(x.Key.Pos()))
		}
		return fv, nil

	case *value.Object:
		var key string
		switch k := kv.(type) {
		case value.Str:
			key = k.Value
		case value.Symbol:
			key = k.Name
		default:
			return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected String or Symbol index, found %s", kv.Kind()), loc(x.Key.Pos()))
		}
		f, found := o.Get(key)
		if !found {
			return nil, ctx.Capture(diag.New(diag.FieldNotFound, "no such field %q", key), loc(x.Key.Pos()))
		}
		fv, ferr := value.Force(f.Value)
		if ferr != nil {
			return nil, ctx.Capture(ferr, loc(x.Key.Pos()))
		}
		return fv, nil

	default:
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Array or Object to index, found %s", ov.Kind()), loc(x.Object.Pos()))
	}
}

// fieldAccessorShorthand reifies ".a.b.c" as x -> x.a.b.c (spec §4.3).
func (ev *Evaluator) fieldAccessorShorthand(x *ast.FieldAccessorShorthand) value.Value {
	names := x.Names
	return &value.Native{
		Name: "." + joinDots(names),
		Fn: func(arg value.Value, apply value.ApplyFunc) (value.Value, *diag.Error) {
			cur := arg
			for _, name := range names {
				fv, err := value.Force(cur)
				if err != nil {
					return nil, err
				}
				obj, ok := fv.(*value.Object)
				if !ok {
					return nil, diag.New(diag.TypeMismatch, "expected Object, found %s", fv.Kind())
				}
				f, found := obj.Get(name)
				if !found {
					uerr := diag.New(diag.UnknownField, "unknown field %q", name)
					uerr.Name = name
					uerr.Available = diag.AvailableFields(obj.Names(), 10)
					return nil, uerr
				}
				cur = f.Value
			}
			return value.Force(cur)
		},
	}
}

func (ev *Evaluator) evalFieldProjection(x *ast.FieldProjection, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	ov, err := ev.Eval(x.Object, e, currentDir, ctx)
	if err != nil {
		return nil, err
	}
	obj, ok := ov.(*value.Object)
	if !ok {
		return nil, ctx.Capture(diag.New(diag.TypeMismatch, "expected Object, found %s", ov.Kind()), loc(x.Object.Pos()))
	}
	fields := make([]*value.Field, 0, len(x.Names))
	for _, name := range x.Names {
		f, found := obj.Get(name)
		if !found {
			uerr := diag.New(diag.UnknownField, "unknown field %q", name)
			uerr.Name = name
			uerr.Available = diag.AvailableFields(obj.Names(), 10)
			uerr.Suggestion = diag.Suggest(name, obj.Names())
			return nil, ctx.Capture(uerr, loc(x.Position))
		}
		fields = append(fields, f) // shared, no deep copy (spec §4.3)
	}
	return value.NewObject(fields), nil
}

func joinDots(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "."
		}
		out += n
	}
	return out
}
