package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumen/internal/diag"
)

func TestFormatTopLevelStringIsUnquoted(t *testing.T) {
	s, err := Format(Str{Value: "hi"})
	require.Nil(t, err)
	require.Equal(t, "hi", s)
}

func TestFormatNestedStringIsQuoted(t *testing.T) {
	arr := &Array{Elements: []Value{Str{Value: "a"}, Str{Value: "b"}}}
	s, err := Format(arr)
	require.Nil(t, err)
	require.Equal(t, `["a", "b"]`, s)
}

func TestFormatObject(t *testing.T) {
	obj := NewObject([]*Field{
		{Name: "a", Value: Int{Value: 1}},
		{Name: "b", Value: Bool{Value: true}},
	})
	s, err := Format(obj)
	require.Nil(t, err)
	require.Equal(t, "{a: 1, b: true}", s)
}

func TestFormatForcesThunksInContainers(t *testing.T) {
	th := NewThunk(func() (Value, *diag.Error) { return Int{Value: 7}, nil })
	arr := &Array{Elements: []Value{th}}
	s, err := Format(arr)
	require.Nil(t, err)
	require.Equal(t, "[7]", s)
}
