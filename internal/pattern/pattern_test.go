package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

func TestMatchIdentBindsUnconditionally(t *testing.T) {
	pat := &ast.IdentPattern{Name: "x"}
	e, err := Match(pat, value.Int{Value: 5}, env.Empty())
	require.Nil(t, err)
	v, ok := env.Lookup(e, "x")
	require.True(t, ok)
	require.Equal(t, value.Int{Value: 5}, v)
}

func TestMatchLiteralSuccess(t *testing.T) {
	pat := &ast.LiteralPattern{Value: &ast.IntLiteral{Value: 7}}
	_, err := Match(pat, value.Int{Value: 7}, env.Empty())
	require.Nil(t, err)
}

func TestMatchLiteralMismatch(t *testing.T) {
	pat := &ast.LiteralPattern{Value: &ast.IntLiteral{Value: 7}}
	_, err := Match(pat, value.Int{Value: 8}, env.Empty())
	require.NotNil(t, err)
	require.Equal(t, diag.TypeMismatch, err.Kind)
}

func TestMatchTupleBindsEachElement(t *testing.T) {
	pat := &ast.TuplePattern{Elements: []ast.Pattern{
		&ast.IdentPattern{Name: "a"},
		&ast.IdentPattern{Name: "b"},
	}}
	tup := &value.Tuple{Elements: []value.Value{value.Int{Value: 1}, value.Int{Value: 2}}}
	e, err := Match(pat, tup, env.Empty())
	require.Nil(t, err)
	a, _ := env.Lookup(e, "a")
	b, _ := env.Lookup(e, "b")
	require.Equal(t, value.Int{Value: 1}, a)
	require.Equal(t, value.Int{Value: 2}, b)
}

func TestMatchTupleArityMismatch(t *testing.T) {
	pat := &ast.TuplePattern{Elements: []ast.Pattern{&ast.IdentPattern{Name: "a"}}}
	tup := &value.Tuple{Elements: []value.Value{value.Int{Value: 1}, value.Int{Value: 2}}}
	_, err := Match(pat, tup, env.Empty())
	require.NotNil(t, err)
	require.Equal(t, diag.TypeMismatch, err.Kind)
}

func TestMatchArrayWithRestCapturesTail(t *testing.T) {
	pat := &ast.ArrayPattern{
		Elements: []ast.Pattern{&ast.IdentPattern{Name: "head"}},
		HasRest:  true,
		Rest:     "tail",
	}
	arr := &value.Array{Elements: []value.Value{
		value.Int{Value: 1}, value.Int{Value: 2}, value.Int{Value: 3},
	}}
	e, err := Match(pat, arr, env.Empty())
	require.Nil(t, err)
	head, _ := env.Lookup(e, "head")
	require.Equal(t, value.Int{Value: 1}, head)
	tail, _ := env.Lookup(e, "tail")
	tailArr, ok := tail.(*value.Array)
	require.True(t, ok)
	require.Equal(t, []value.Value{value.Int{Value: 2}, value.Int{Value: 3}}, tailArr.Elements)
}

func TestMatchArrayWithoutRestRequiresExactLength(t *testing.T) {
	pat := &ast.ArrayPattern{Elements: []ast.Pattern{&ast.IdentPattern{Name: "a"}}}
	arr := &value.Array{Elements: []value.Value{value.Int{Value: 1}, value.Int{Value: 2}}}
	_, err := Match(pat, arr, env.Empty())
	require.NotNil(t, err)
	require.Equal(t, diag.TypeMismatch, err.Kind)
}

func TestMatchObjectBindsNestedFields(t *testing.T) {
	obj := value.NewObject([]*value.Field{
		{Name: "x", Value: value.Int{Value: 1}},
		{Name: "y", Value: value.Int{Value: 2}},
	})
	pat := &ast.ObjectPattern{Fields: []ast.ObjectPatternField{
		{Key: "x", Nested: &ast.IdentPattern{Name: "x"}},
	}}
	e, err := Match(pat, obj, env.Empty())
	require.Nil(t, err)
	x, ok := env.Lookup(e, "x")
	require.True(t, ok)
	require.Equal(t, value.Int{Value: 1}, x)
}

func TestMatchObjectMissingKeyIsTypeMismatch(t *testing.T) {
	obj := value.NewObject([]*value.Field{{Name: "x", Value: value.Int{Value: 1}}})
	pat := &ast.ObjectPattern{Fields: []ast.ObjectPatternField{
		{Key: "missing", Nested: &ast.IdentPattern{Name: "missing"}},
	}}
	_, err := Match(pat, obj, env.Empty())
	require.NotNil(t, err)
	require.Equal(t, diag.TypeMismatch, err.Kind)
	require.Equal(t, "missing", err.Expected)
}
