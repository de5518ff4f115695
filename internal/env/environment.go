// Package env implements lumen's environment: a singly-linked list of
// single-binding frames (spec §3 "Environment"). Lookup walks from the
// current frame to the root. Frames are immutable once linked except
// for the two controlled mutation channels spec §3 calls out: the
// let-with-simple-identifier self-reference protocol (§4.4) and the
// where mutual-recursion back-patch protocol (§4.5).
package env

import "github.com/lumenlang/lumen/internal/value"

// Environment is one frame: a single binding plus a parent pointer.
// The root environment (builtins + stdlib) has Parent == nil.
type Environment struct {
	Name   string
	Value  value.Value
	Parent *Environment
}

// Empty returns the frame-less root (nil), the base Extend chains onto.
func Empty() *Environment { return nil }

// Extend returns a new frame binding name to val, chained in front of
// env. env itself is never mutated.
func Extend(env *Environment, name string, val value.Value) *Environment {
	return &Environment{Name: name, Value: val, Parent: env}
}

// Lookup walks the chain from the current frame to the root, returning
// the first binding for name.
func Lookup(env *Environment, name string) (value.Value, bool) {
	for e := env; e != nil; e = e.Parent {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Names returns every name visible from env, innermost first, used as
// the candidate list for did-you-mean suggestions (diag.Suggest).
func Names(env *Environment) []string {
	var names []string
	for e := env; e != nil; e = e.Parent {
		names = append(names, e.Name)
	}
	return names
}

// SetValue mutates this single frame's value in place. It is used only
// by let's self-reference placeholder back-patch; where's back-patch
// mutates no frame, since its thunks close over the growing environment
// variable instead. It must never be used to implement general mutable
// state.
func (e *Environment) SetValue(val value.Value) {
	e.Value = val
}
