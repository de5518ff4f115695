// Package stdlib builds lumen's root environment: the native-function
// registry and the ten auto-imported modules (spec.md §4.7, §6).
// Grounded in the teacher's internal/modules/virtual_packages_*.go
// (module-as-object-literal shape) and its builtins_*.go files
// (one Go function per native, argument-count checking up front).
package stdlib

import (
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// native builds a *value.Field wrapping a *value.Native under name.
func native(name string, fn func(value.Value, value.ApplyFunc) (value.Value, *diag.Error)) *value.Field {
	return &value.Field{Name: name, Value: &value.Native{Name: name, Fn: fn}}
}

// tupleArgs requires arg to be a tuple of exactly n elements, already
// forced (spec §6: "typically a tuple for multiple parameters").
func tupleArgs(arg value.Value, n int) ([]value.Value, *diag.Error) {
	t, ok := arg.(*value.Tuple)
	if !ok || len(t.Elements) != n {
		return nil, diag.New(diag.WrongNumArgs, "expected a %d-element tuple argument", n)
	}
	out := make([]value.Value, n)
	for i, el := range t.Elements {
		fv, err := value.Force(el)
		if err != nil {
			return nil, err
		}
		out[i] = fv
	}
	return out, nil
}

func asArray(v value.Value) (*value.Array, *diag.Error) {
	a, ok := v.(*value.Array)
	if !ok {
		return nil, diag.New(diag.InvalidArgument, "expected Array, found %s", v.Kind())
	}
	return a, nil
}

func asString(v value.Value) (string, *diag.Error) {
	s, ok := v.(value.Str)
	if !ok {
		return "", diag.New(diag.InvalidArgument, "expected String, found %s", v.Kind())
	}
	return s.Value, nil
}

func asInt(v value.Value) (int64, *diag.Error) {
	i, ok := v.(value.Int)
	if !ok {
		return 0, diag.New(diag.InvalidArgument, "expected Int, found %s", v.Kind())
	}
	return i.Value, nil
}

func asFloatLike(v value.Value) (float64, *diag.Error) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.Value), nil
	case value.Float:
		return n.Value, nil
	}
	return 0, diag.New(diag.InvalidArgument, "expected Int or Float, found %s", v.Kind())
}

func asObject(v value.Value) (*value.Object, *diag.Error) {
	o, ok := v.(*value.Object)
	if !ok {
		return nil, diag.New(diag.InvalidArgument, "expected Object, found %s", v.Kind())
	}
	return o, nil
}

func forceElements(arr *value.Array) ([]value.Value, *diag.Error) {
	out := make([]value.Value, len(arr.Elements))
	for i, el := range arr.Elements {
		fv, err := value.Force(el)
		if err != nil {
			return nil, err
		}
		out[i] = fv
	}
	return out, nil
}
