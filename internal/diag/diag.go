// Package diag implements the evaluator's error side-channel: a typed
// error taxonomy (spec §7), a mutable Context carrying the active file,
// source texts and a call stack (spec §4.8), and did-you-mean
// suggestions.
//
// The evaluator returns a *Error (which implements the standard error
// interface) from every fallible operation, the idiomatic Go way; the
// error itself carries its secondary span, suggestion and captured stack
// trace, while the Context is threaded alongside for the state that
// outlives a single error (active file, source texts, the live call
// stack).
package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the evaluator's typed error categories.
type Kind string

const (
	UnknownIdentifier Kind = "unknown_identifier"
	UnknownField      Kind = "unknown_field"
	TypeMismatch      Kind = "type_mismatch"
	ExpectedFunction  Kind = "expected_function"
	WrongNumArgs      Kind = "wrong_number_of_arguments"
	InvalidArgument   Kind = "invalid_argument"
	ModuleNotFound    Kind = "module_not_found"
	UnexpectedToken   Kind = "unexpected_token"
	UnterminatedStr   Kind = "unterminated_string"
	ExpectedExpr      Kind = "expected_expression"
	Overflow          Kind = "overflow"
	DivisionByZero    Kind = "division_by_zero"
	IndexOutOfBounds  Kind = "index_out_of_bounds"
	FieldNotFound     Kind = "field_not_found"
	CyclicReference   Kind = "cyclic_reference"
	UserCrash         Kind = "user_crash"
)

// Location is a source span: a position plus the file it belongs to.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

func (l Location) IsZero() bool { return l.Line == 0 && l.Column == 0 && l.File == "" }

// Frame is one entry in the evaluator's call stack.
type Frame struct {
	FuncName string // "" for anonymous lambdas
	File     string
	Location Location
	IsNative bool
}

// Error is the evaluator's single error type; Kind selects which
// typed fields are meaningful. It implements the standard error
// interface so it composes with normal Go error handling, and it
// additionally owns the data §7 requires a diagnostic renderer to have.
type Error struct {
	Kind     Kind
	Message  string
	Location Location

	// Secondary is populated only for CyclicReference: the other span
	// of the two-span diagnostic, with labels for each side.
	Secondary      *Location
	PrimaryLabel   string
	SecondaryLabel string

	// Typed payload, populated per Kind.
	Expected  string
	Found     string
	Operation string
	Available []string
	Name      string
	Path      string

	Suggestion string
	StackTrace []Frame
}

func (e *Error) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Location)
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) At(loc Location) *Error {
	if e.Location.IsZero() {
		e.Location = loc
	}
	return e
}

// WithTwoSpans attaches the cyclic-reference secondary span.
func (e *Error) WithTwoSpans(primaryLabel string, secondary Location, secondaryLabel string) *Error {
	e.PrimaryLabel = primaryLabel
	sec := secondary
	e.Secondary = &sec
	e.SecondaryLabel = secondaryLabel
	return e
}

// Context is the mutable side-channel threaded through evaluation: the
// active filename and a call stack. It is owned by the driver and
// borrowed by the evaluator for the duration of one top-level Eval call.
type Context struct {
	Sources     map[string]string // filename -> source text, for rendering
	CurrentFile string
	CallStack   []Frame
}

func NewContext() *Context {
	return &Context{
		Sources: make(map[string]string),
	}
}

// PushFrame pushes a call-stack frame before descending into a function body.
func (c *Context) PushFrame(f Frame) {
	if c == nil {
		return
	}
	c.CallStack = append(c.CallStack, f)
}

// PopFrame pops the most recently pushed frame. Must be called exactly
// once per PushFrame, on every return path (success or error), so the
// call stack stays bracketed (spec §8's call-stack invariant).
func (c *Context) PopFrame() {
	if c == nil || len(c.CallStack) == 0 {
		return
	}
	c.CallStack = c.CallStack[:len(c.CallStack)-1]
}

// SnapshotStack returns a deep copy of the current call stack, used to
// freeze a stack trace onto an error the first time it propagates.
func (c *Context) SnapshotStack() []Frame {
	if c == nil || len(c.CallStack) == 0 {
		return nil
	}
	cp := make([]Frame, len(c.CallStack))
	copy(cp, c.CallStack)
	return cp
}

// Capture fills in the error's Location (if still zero), active file,
// and stack trace (if not already captured) at a propagation site.
// Spec §7: "capture the stack trace once (at the innermost site that
// lacks one)".
func (c *Context) Capture(err *Error, loc Location) *Error {
	if err == nil {
		return nil
	}
	if err.Location.IsZero() {
		err.Location = loc
	}
	if err.Location.File == "" && c != nil {
		err.Location.File = c.CurrentFile
	}
	if err.StackTrace == nil && c != nil {
		err.StackTrace = c.SnapshotStack()
	}
	return err
}

// Suggest returns the closest candidate to name within Levenshtein
// distance floor(len(name)/2)+1, or "" if none qualifies. candidates is
// typically every name visible in the environment at the failure site
// (env.Names). Grounded on termfx/morfx's internal/core/fuzzy.go
// levenshteinDistance, adapted to lumen's did-you-mean threshold (spec §4.3).
func Suggest(name string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	threshold := len(name)/2 + 1
	best := ""
	bestDist := threshold + 1
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted) // deterministic tie-break
	seen := make(map[string]bool, len(sorted))
	for _, cand := range sorted {
		if cand == name || seen[cand] {
			continue
		}
		seen[cand] = true
		d := levenshteinDistance(name, cand)
		if d <= threshold && d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			del := matrix[i-1][j] + 1
			ins := matrix[i][j-1] + 1
			sub := matrix[i-1][j-1] + cost
			matrix[i][j] = min3(del, ins, sub)
		}
	}
	return matrix[len(s1)][len(s2)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// AvailableFields trims a field-name list to the first n entries, used
// by unknown_field errors (spec §4.3: "available: first 10 field names").
func AvailableFields(names []string, n int) []string {
	if len(names) <= n {
		return names
	}
	return names[:n]
}

// FirstN is a small helper used when formatting suggestions in messages.
func FirstN(items []string, n int) string {
	return strings.Join(AvailableFields(items, n), ", ")
}
