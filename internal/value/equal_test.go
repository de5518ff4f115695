package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualNumericCrossKindPromotion(t *testing.T) {
	eq, err := Equal(Int{Value: 3}, Float{Value: 3.0})
	require.Nil(t, err)
	require.True(t, eq)
}

func TestEqualObjectPermutationInsensitive(t *testing.T) {
	a := NewObject([]*Field{
		{Name: "x", Value: Int{Value: 1}},
		{Name: "y", Value: Int{Value: 2}},
	})
	b := NewObject([]*Field{
		{Name: "y", Value: Int{Value: 2}},
		{Name: "x", Value: Int{Value: 1}},
	})
	eq, err := Equal(a, b)
	require.Nil(t, err)
	require.True(t, eq)
}

func TestEqualFunctionsAlwaysUnequal(t *testing.T) {
	f1 := &Function{Name: "f"}
	f2 := &Function{Name: "f"}
	eq, err := Equal(f1, f2)
	require.Nil(t, err)
	require.False(t, eq)

	eqSame, err := Equal(f1, f1)
	require.Nil(t, err)
	require.False(t, eqSame, "functions compare unequal even to themselves")
}

func TestEqualArraysByLengthAndOrder(t *testing.T) {
	a := &Array{Elements: []Value{Int{Value: 1}, Int{Value: 2}}}
	b := &Array{Elements: []Value{Int{Value: 2}, Int{Value: 1}}}
	eq, err := Equal(a, b)
	require.Nil(t, err)
	require.False(t, eq)

	c := &Array{Elements: []Value{Int{Value: 1}, Int{Value: 2}}}
	eq, err = Equal(a, c)
	require.Nil(t, err)
	require.True(t, eq)
}
