package value

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
)

type thunkState int

const (
	thunkUnevaluated thunkState = iota
	thunkEvaluating
	thunkDone
)

// Thunk is a lazy evaluation cell with a three-state cache (spec
// §3 "Thunk invariants", §4.2). Compute is supplied by the evaluator
// at construction time and is never called more than once: the first
// Force drives it, subsequent Forces return the cached result.
type Thunk struct {
	state   thunkState
	cached  Value
	err     *diag.Error
	compute func() (Value, *diag.Error)

	// Expr/DefLoc support the two-span cyclic-reference diagnostic
	// (spec §4.2): DefLoc is the field's defining key location; Expr is
	// kept so the evaluator can locate the first field-access inside it
	// when a cycle is detected.
	Expr   ast.Expr
	DefLoc diag.Location
}

func (*Thunk) Kind() Kind { return KindThunk }

// NewThunk wraps compute in a lazy cell.
func NewThunk(compute func() (Value, *diag.Error)) *Thunk {
	return &Thunk{compute: compute}
}

// Force drives a thunk's state machine to completion, or returns the
// cached result/error if already done. Forcing a thunk in state
// "evaluating" (re-entrant) fails with cyclic_reference at DefLoc.
// When Expr contains a field access, the first one becomes the second
// span; otherwise the evaluator's identifier lookup that received the
// error adds the re-entering reference as the second span.
func (t *Thunk) Force() (Value, *diag.Error) {
	switch t.state {
	case thunkDone:
		return t.cached, t.err
	case thunkEvaluating:
		err := diag.New(diag.CyclicReference, "cyclic reference detected").At(t.DefLoc)
		if fa, ok := firstFieldAccess(t.Expr); ok {
			err = err.WithTwoSpans("defined here", diag.Location{Line: fa.Position.Line, Column: fa.Position.Column}, "re-entered here")
		}
		return nil, err
	}
	t.state = thunkEvaluating
	v, err := t.compute()
	t.cached, t.err = v, err
	t.state = thunkDone
	t.compute = nil // release the closure's captured environment
	return v, err
}

// Force is identity on any non-thunk value, and drives a Thunk's
// state machine otherwise (spec §4.2: "for thunks it drives the state
// machine; for all other values it is identity").
func Force(v Value) (Value, *diag.Error) {
	if th, ok := v.(*Thunk); ok {
		return th.Force()
	}
	return v, nil
}

// ForceDeep forces v, and if the result is itself a thunk (can't
// happen with NewThunk's contract but kept defensive for safety),
// forces again until a non-thunk value is reached.
func ForceDeep(v Value) (Value, *diag.Error) {
	for {
		nv, err := Force(v)
		if err != nil {
			return nil, err
		}
		if _, ok := nv.(*Thunk); !ok {
			return nv, nil
		}
		v = nv
	}
}
