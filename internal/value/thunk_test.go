package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
)

func TestThunkForceIsMemoized(t *testing.T) {
	calls := 0
	th := NewThunk(func() (Value, *diag.Error) {
		calls++
		return Int{Value: 42}, nil
	})

	v1, err := th.Force()
	require.Nil(t, err)
	v2, err := th.Force()
	require.Nil(t, err)

	require.Equal(t, Int{Value: 42}, v1)
	require.Equal(t, v1, v2)
	require.Equal(t, 1, calls)
}

func TestThunkCyclicReferenceDetected(t *testing.T) {
	var th *Thunk
	th = NewThunk(func() (Value, *diag.Error) {
		return th.Force()
	})
	th.DefLoc = diag.Location{Line: 3, Column: 5}

	_, err := th.Force()
	require.NotNil(t, err)
	require.Equal(t, diag.CyclicReference, err.Kind)
	require.Equal(t, th.DefLoc, err.Location)
}

func TestThunkCyclicReferenceTwoSpans(t *testing.T) {
	fieldAccess := &ast.FieldAccess{
		Position: ast.Position{Line: 7, Column: 2},
		Field:    "b",
	}
	var th *Thunk
	th = NewThunk(func() (Value, *diag.Error) {
		return th.Force()
	})
	th.DefLoc = diag.Location{Line: 1, Column: 1}
	th.Expr = fieldAccess

	_, err := th.Force()
	require.NotNil(t, err)
	require.NotNil(t, err.Secondary)
	require.Equal(t, 7, err.Secondary.Line)
}

func TestForceIsIdentityOnNonThunk(t *testing.T) {
	v, err := Force(Int{Value: 5})
	require.Nil(t, err)
	require.Equal(t, Int{Value: 5}, v)
}
