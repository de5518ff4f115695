package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestFindsCloseMatch(t *testing.T) {
	// "length" and "height" are both at edit distance 2 from "lenght";
	// the sorted tie-break picks "height".
	got := Suggest("lenght", []string{"length", "height", "width"})
	require.Equal(t, "height", got)
}

func TestSuggestReturnsEmptyWhenTooFar(t *testing.T) {
	got := Suggest("zzz", []string{"length", "height"})
	require.Equal(t, "", got)
}

func TestSuggestExcludesExactMatch(t *testing.T) {
	got := Suggest("length", []string{"length"})
	require.Equal(t, "", got)
}

func TestErrorAtSetsLocation(t *testing.T) {
	err := New(UnknownIdentifier, "unknown identifier %q", "foo").At(Location{Line: 3, Column: 5})
	require.Equal(t, 3, err.Location.Line)
	require.Equal(t, 5, err.Location.Column)
}

func TestWithTwoSpansSetsSecondary(t *testing.T) {
	err := New(CyclicReference, "cyclic reference detected").
		At(Location{Line: 1, Column: 1}).
		WithTwoSpans("defined here", Location{Line: 9, Column: 2}, "re-entered here")
	require.NotNil(t, err.Secondary)
	require.Equal(t, 9, err.Secondary.Line)
	require.Equal(t, "defined here", err.PrimaryLabel)
	require.Equal(t, "re-entered here", err.SecondaryLabel)
}

func TestContextCapturePreservesExistingLocation(t *testing.T) {
	ctx := NewContext()
	ctx.CurrentFile = "a.lm"
	err := New(UnknownField, "no such field").At(Location{Line: 2, Column: 1})
	captured := ctx.Capture(err, Location{Line: 99, Column: 99})
	require.Equal(t, 2, captured.Location.Line)
	require.Equal(t, "a.lm", captured.Location.File)
}

func TestContextCaptureFillsZeroLocation(t *testing.T) {
	ctx := NewContext()
	ctx.CurrentFile = "a.lm"
	err := New(UnknownField, "no such field")
	captured := ctx.Capture(err, Location{Line: 7, Column: 3})
	require.Equal(t, 7, captured.Location.Line)
}

func TestAvailableFieldsTrims(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	require.Equal(t, []string{"a", "b"}, AvailableFields(names, 2))
}

func TestPushPopFrameTracksStack(t *testing.T) {
	ctx := NewContext()
	ctx.PushFrame(Frame{FuncName: "f"})
	require.Len(t, ctx.SnapshotStack(), 1)
	ctx.PopFrame()
	require.Len(t, ctx.SnapshotStack(), 0)
}
