package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderPlainIncludesKindAndMessage(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	err := New(UnknownIdentifier, "unknown identifier %q", "foo").At(Location{File: "a.lm", Line: 2, Column: 3})
	out := Render(err)
	require.Contains(t, out, "unknown_identifier")
	require.Contains(t, out, `unknown identifier "foo"`)
	require.Contains(t, out, "a.lm")
}

func TestRenderCyclicReferenceShowsBothSpans(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	err := New(CyclicReference, "cyclic reference detected").
		At(Location{File: "a.lm", Line: 1, Column: 1}).
		WithTwoSpans("defined here", Location{File: "a.lm", Line: 7, Column: 2}, "re-entered here")
	out := Render(err)
	require.Contains(t, out, "defined here")
	require.Contains(t, out, "re-entered here")
	require.True(t, strings.Count(out, "a.lm") >= 2)
}

func TestRenderIncludesSuggestion(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	err := New(UnknownIdentifier, "unknown identifier")
	err.Suggestion = "length"
	out := Render(err)
	require.Contains(t, out, "length")
}
