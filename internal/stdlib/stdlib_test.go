package stdlib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

func fieldFn(t *testing.T, obj *value.Object, name string) func(value.Value, value.ApplyFunc) (value.Value, *diag.Error) {
	t.Helper()
	f, ok := obj.Get(name)
	require.True(t, ok, "missing field %q", name)
	n, ok := f.Value.(*value.Native)
	require.True(t, ok)
	return n.Fn
}

func TestArrayLength(t *testing.T) {
	fn := fieldFn(t, arrayModule(), "length")
	arr := &value.Array{Elements: []value.Value{value.Int{Value: 1}, value.Int{Value: 2}}}
	v, err := fn(arr, nil)
	require.Nil(t, err)
	require.Equal(t, value.Int{Value: 2}, v)
}

func TestArrayGetInBoundsReturnsOk(t *testing.T) {
	fn := fieldFn(t, arrayModule(), "get")
	arr := &value.Array{Elements: []value.Value{value.Int{Value: 10}, value.Int{Value: 20}}}
	arg := &value.Tuple{Elements: []value.Value{arr, value.Int{Value: 1}}}
	v, err := fn(arg, nil)
	require.Nil(t, err)
	tup, ok := v.(*value.Tuple)
	require.True(t, ok)
	require.Equal(t, value.Symbol{Name: "ok"}, tup.Elements[0])
	require.Equal(t, value.Int{Value: 20}, tup.Elements[1])
}

func TestArrayGetOutOfBoundsReturnsSentinel(t *testing.T) {
	fn := fieldFn(t, arrayModule(), "get")
	arr := &value.Array{Elements: []value.Value{value.Int{Value: 10}}}
	arg := &value.Tuple{Elements: []value.Value{arr, value.Int{Value: 5}}}
	v, err := fn(arg, nil)
	require.Nil(t, err)
	require.Equal(t, value.SentinelOutOfBounds, v)
}

func TestArrayReverse(t *testing.T) {
	fn := fieldFn(t, arrayModule(), "reverse")
	arr := &value.Array{Elements: []value.Value{value.Int{Value: 1}, value.Int{Value: 2}, value.Int{Value: 3}}}
	v, err := fn(arr, nil)
	require.Nil(t, err)
	out, ok := v.(*value.Array)
	require.True(t, ok)
	require.Equal(t, []value.Value{value.Int{Value: 3}, value.Int{Value: 2}, value.Int{Value: 1}}, out.Elements)
}

func TestStringUpperLower(t *testing.T) {
	upper := fieldFn(t, stringModule(), "upper")
	v, err := upper(value.Str{Value: "abc"}, nil)
	require.Nil(t, err)
	require.Equal(t, value.Str{Value: "ABC"}, v)

	lower := fieldFn(t, stringModule(), "lower")
	v, err = lower(value.Str{Value: "ABC"}, nil)
	require.Nil(t, err)
	require.Equal(t, value.Str{Value: "abc"}, v)
}

func TestStringConcat(t *testing.T) {
	fn := fieldFn(t, stringModule(), "concat")
	arg := &value.Tuple{Elements: []value.Value{value.Str{Value: "foo"}, value.Str{Value: "bar"}}}
	v, err := fn(arg, nil)
	require.Nil(t, err)
	require.Equal(t, value.Str{Value: "foobar"}, v)
}

func TestNumericAbs(t *testing.T) {
	fn := fieldFn(t, mathModule(), "abs")
	v, err := fn(value.Int{Value: -5}, nil)
	require.Nil(t, err)
	require.Equal(t, value.Int{Value: 5}, v)
}

func TestJSONRoundTrip(t *testing.T) {
	encodeField := jsonEncodeField()
	encode := encodeField.Value.(*value.Native).Fn
	obj := value.NewObject([]*value.Field{{Name: "a", Value: value.Int{Value: 1}}})
	v, err := encode(obj, nil)
	require.Nil(t, err)
	tup, ok := v.(*value.Tuple)
	require.True(t, ok)
	require.Equal(t, value.Symbol{Name: "ok"}, tup.Elements[0])
	encoded := tup.Elements[1].(value.Str).Value

	parseField := jsonParseField()
	parse := parseField.Value.(*value.Native).Fn
	v2, err := parse(value.Str{Value: encoded}, nil)
	require.Nil(t, err)
	tup2, ok := v2.(*value.Tuple)
	require.True(t, ok)
	require.Equal(t, value.Symbol{Name: "ok"}, tup2.Elements[0])
	decoded, ok := tup2.Elements[1].(*value.Object)
	require.True(t, ok)
	af, ok := decoded.Get("a")
	require.True(t, ok)
	require.Equal(t, value.Int{Value: 1}, af.Value)
}

func TestJSONParseInvalidReturnsErrTuple(t *testing.T) {
	parseField := jsonParseField()
	parse := parseField.Value.(*value.Native).Fn
	v, err := parse(value.Str{Value: "{not json"}, nil)
	require.Nil(t, err)
	tup, ok := v.(*value.Tuple)
	require.True(t, ok)
	require.Equal(t, value.Symbol{Name: "error"}, tup.Elements[0])
}

type fakeEvaluator struct{ msg string }

func (f *fakeEvaluator) SetCrashMessage(msg string) { f.msg = msg }

func TestCrashSetsMessageAndReturnsUserCrashError(t *testing.T) {
	fe := &fakeEvaluator{}
	field := crashField(fe)
	fn := field.Value.(*value.Native).Fn
	_, err := fn(value.Str{Value: "boom"}, nil)
	require.NotNil(t, err)
	require.Equal(t, diag.UserCrash, err.Kind)
	require.Equal(t, "boom", fe.msg)
}

func TestNewRootEnvBindsBasicsUnqualified(t *testing.T) {
	fe := &fakeEvaluator{}
	e := NewRootEnv(fe)
	_, ok := env.Lookup(e, "identity")
	require.True(t, ok, "Basics fields must be bound unqualified at the root")
	_, ok = env.Lookup(e, "Array")
	require.True(t, ok)
}
