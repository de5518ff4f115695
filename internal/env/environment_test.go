package env

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumen/internal/value"
)

func TestExtendDoesNotMutateParent(t *testing.T) {
	root := Extend(Empty(), "x", value.Int{Value: 1})
	child := Extend(root, "y", value.Int{Value: 2})

	_, ok := Lookup(root, "y")
	require.False(t, ok, "extending into a child frame must not leak into the parent")

	v, ok := Lookup(child, "x")
	require.True(t, ok)
	require.Equal(t, value.Int{Value: 1}, v)
}

func TestLookupInnermostShadowsOuter(t *testing.T) {
	root := Extend(Empty(), "x", value.Int{Value: 1})
	shadowed := Extend(root, "x", value.Int{Value: 99})

	v, ok := Lookup(shadowed, "x")
	require.True(t, ok)
	require.Equal(t, value.Int{Value: 99}, v)
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	root := Extend(Empty(), "x", value.Int{Value: 1})
	_, ok := Lookup(root, "nope")
	require.False(t, ok)
}

func TestNamesWalksInnermostFirst(t *testing.T) {
	e := Extend(Extend(Extend(Empty(), "a", value.Int{Value: 1}), "b", value.Int{Value: 2}), "c", value.Int{Value: 3})
	require.Equal(t, []string{"c", "b", "a"}, Names(e))
}

// TestSetValueBackpatchesSelfReference exercises the let self-reference
// protocol: a frame is extended with a placeholder, then patched in
// place once the bound value is known, so a thunk capturing the frame
// by reference observes the final value.
func TestSetValueBackpatchesSelfReference(t *testing.T) {
	frame := Extend(Empty(), "self", value.Null{})
	frame.SetValue(value.Int{Value: 7})

	v, ok := Lookup(frame, "self")
	require.True(t, ok)
	require.Equal(t, value.Int{Value: 7}, v)
}

func TestSetValueOnlyAffectsOwnFrame(t *testing.T) {
	root := Extend(Empty(), "x", value.Int{Value: 1})
	child := Extend(root, "x", value.Int{Value: 2})
	child.SetValue(value.Int{Value: 3})

	v, ok := Lookup(root, "x")
	require.True(t, ok)
	require.Equal(t, value.Int{Value: 1}, v, "patching the child frame must not alter the parent's binding")
}
