package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeShallowOverwrite(t *testing.T) {
	base := NewObject([]*Field{
		{Name: "a", Value: Int{Value: 1}},
		{Name: "b", Value: Int{Value: 2}},
	})
	ext := NewObject([]*Field{
		{Name: "a", Value: Int{Value: 99}},
	})

	merged, err := Merge(base, ext)
	require.Nil(t, err)

	af, ok := merged.Get("a")
	require.True(t, ok)
	require.Equal(t, Int{Value: 99}, af.Value)

	bf, ok := merged.Get("b")
	require.True(t, ok)
	require.Equal(t, Int{Value: 2}, bf.Value)
}

func TestMergeDeepPatch(t *testing.T) {
	base := NewObject([]*Field{
		{Name: "a", Value: NewObject([]*Field{
			{Name: "x", Value: Int{Value: 1}},
			{Name: "y", Value: Int{Value: 2}},
		})},
	})
	ext := NewObject([]*Field{
		{Name: "a", Value: NewObject([]*Field{
			{Name: "y", Value: Int{Value: 20}},
		}), IsPatch: true},
	})

	merged, err := Merge(base, ext)
	require.Nil(t, err)

	af, ok := merged.Get("a")
	require.True(t, ok)
	nested, ok := af.Value.(*Object)
	require.True(t, ok)
	require.False(t, af.IsPatch, "a patched result is emitted non-patch")

	xf, ok := nested.Get("x")
	require.True(t, ok)
	require.Equal(t, Int{Value: 1}, xf.Value)

	yf, ok := nested.Get("y")
	require.True(t, ok)
	require.Equal(t, Int{Value: 20}, yf.Value)
}

func TestMergePatchOverNonObjectWinsVerbatim(t *testing.T) {
	base := NewObject([]*Field{{Name: "a", Value: Int{Value: 1}}})
	ext := NewObject([]*Field{{Name: "a", Value: Int{Value: 2}, IsPatch: true}})

	merged, err := Merge(base, ext)
	require.Nil(t, err)

	af, ok := merged.Get("a")
	require.True(t, ok)
	require.Equal(t, Int{Value: 2}, af.Value)
}

func TestMergeAppendsExtensionOnlyFields(t *testing.T) {
	base := NewObject([]*Field{{Name: "a", Value: Int{Value: 1}}})
	ext := NewObject([]*Field{{Name: "b", Value: Int{Value: 2}}})

	merged, err := Merge(base, ext)
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b"}, merged.Names())
}

func TestNewObjectCollapsesDuplicateKeysInPlace(t *testing.T) {
	obj := NewObject([]*Field{
		{Name: "a", Value: Int{Value: 1}},
		{Name: "b", Value: Int{Value: 2}},
		{Name: "a", Value: Int{Value: 3}},
	})
	require.Equal(t, []string{"a", "b"}, obj.Names())
	af, _ := obj.Get("a")
	require.Equal(t, Int{Value: 3}, af.Value)
}
