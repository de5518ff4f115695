// Package eval implements the expression evaluator (spec §4.3): the
// recursive walker over the AST that produces values, threading a
// persistent environment and forcing thunks lazily. Every fallible
// operation returns a *diag.Error; the evaluator never panics on
// source-level mistakes.
//
// A note on spec §9's "arena": lumen relies on Go's garbage collector
// for the allocation lifecycle the spec describes as a per-evaluation
// arena. There is no separate Arena type here — every Value the
// evaluator builds is an ordinary heap allocation, collected once
// nothing reachable from the result (or from a surviving closure)
// references it. The one allocation the spec calls out as outliving
// the arena, the user-crash message, is handled the same way: stored
// on the *Evaluator itself, which already outlives any single Eval call.
package eval

import (
	"strings"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

// Evaluator is the long-lived object a driver constructs once per
// process: it owns the module cache and import search configuration
// (spec §4.7) and the crash-message slot (spec §5).
type Evaluator struct {
	ImportPaths []string
	StdlibDir   string
	Ext         string

	modules map[string]value.Value

	// NewRootEnv builds a fresh environment seeded with the native
	// registry and the auto-imported stdlib modules (spec §4.7); each
	// module load needs its own copy, so this is a constructor, not a
	// shared value.
	NewRootEnv func(ev *Evaluator) *env.Environment

	crashMessage *string
}

func New(importPaths []string, stdlibDir, ext string, newRootEnv func(*Evaluator) *env.Environment) *Evaluator {
	return &Evaluator{
		ImportPaths: importPaths,
		StdlibDir:   stdlibDir,
		Ext:         ext,
		modules:     make(map[string]value.Value),
		NewRootEnv:  newRootEnv,
	}
}

// SetCrashMessage records a crash(msg) builtin's message (spec §5: "a
// process-wide user-crash-message slot... allocated from a long-lived
// allocator so it survives arena release").
func (ev *Evaluator) SetCrashMessage(msg string) { ev.crashMessage = &msg }

// TakeCrashMessage returns and clears the crash message; the driver
// must call this after reading it (spec §5).
func (ev *Evaluator) TakeCrashMessage() (string, bool) {
	if ev.crashMessage == nil {
		return "", false
	}
	msg := *ev.crashMessage
	ev.crashMessage = nil
	return msg, true
}

func loc(p ast.Position) diag.Location { return diag.Location{Line: p.Line, Column: p.Column} }

// Eval dispatches on expr's dynamic type.
func (ev *Evaluator) Eval(expr ast.Expr, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	switch x := expr.(type) {
	case *ast.IntLiteral:
		return value.Int{Value: x.Value}, nil
	case *ast.FloatLiteral:
		return value.Float{Value: x.Value}, nil
	case *ast.BoolLiteral:
		return value.BoolOf(x.Value), nil
	case *ast.NullLiteral:
		return value.Nil, nil
	case *ast.SymbolLiteral:
		return value.Symbol{Name: x.Name}, nil
	case *ast.StringLiteral:
		return value.Str{Value: x.Value}, nil
	case *ast.InterpolatedString:
		return ev.evalInterpolatedString(x, e, currentDir, ctx)
	case *ast.Identifier:
		return ev.evalIdentifier(x, e, ctx)
	case *ast.Lambda:
		return &value.Function{Param: x.Param, Body: x.Body, Env: e, DefDir: currentDir, DefLine: x.Line, DefCol: x.Column}, nil
	case *ast.Apply:
		return ev.evalApply(x, e, currentDir, ctx)
	case *ast.Let:
		return ev.evalLet(x, e, currentDir, ctx)
	case *ast.Where:
		return ev.evalWhere(x, e, currentDir, ctx)
	case *ast.Unary:
		return ev.evalUnary(x, e, currentDir, ctx)
	case *ast.Binary:
		return ev.evalBinary(x, e, currentDir, ctx)
	case *ast.OperatorAsFunction:
		return ev.operatorAsFunction(x), nil
	case *ast.If:
		return ev.evalIf(x, e, currentDir, ctx)
	case *ast.WhenMatches:
		return ev.evalWhenMatches(x, e, currentDir, ctx)
	case *ast.ArrayLiteral:
		return ev.evalArrayLiteral(x, e, currentDir, ctx)
	case *ast.TupleLiteral:
		return ev.evalTupleLiteral(x, e, currentDir, ctx)
	case *ast.ObjectLiteral:
		return ev.evalObjectLiteral(x, e, currentDir, ctx)
	case *ast.ObjectExtend:
		return ev.evalObjectExtend(x, e, currentDir, ctx)
	case *ast.ArrayComprehension:
		return ev.evalArrayComprehension(x, e, currentDir, ctx)
	case *ast.ObjectComprehension:
		return ev.evalObjectComprehension(x, e, currentDir, ctx)
	case *ast.Import:
		return ev.evalImport(x, currentDir, ctx)
	case *ast.FieldAccess:
		return ev.evalFieldAccess(x, e, currentDir, ctx)
	case *ast.Index:
		return ev.evalIndex(x, e, currentDir, ctx)
	case *ast.FieldAccessorShorthand:
		return ev.fieldAccessorShorthand(x), nil
	case *ast.FieldProjection:
		return ev.evalFieldProjection(x, e, currentDir, ctx)
	case *ast.Range:
		return ev.evalRange(x, e, currentDir, ctx)
	}
	return nil, ctx.Capture(diag.New(diag.TypeMismatch, "unsupported expression node %T", expr), diag.Location{})
}

func (ev *Evaluator) evalIdentifier(x *ast.Identifier, e *env.Environment, ctx *diag.Context) (value.Value, *diag.Error) {
	v, ok := env.Lookup(e, x.Name)
	if !ok {
		err := diag.New(diag.UnknownIdentifier, "unknown identifier %q", x.Name)
		err.Name = x.Name
		err.Suggestion = diag.Suggest(x.Name, env.Names(e))
		return nil, ctx.Capture(err, loc(x.Position))
	}
	fv, ferr := value.Force(v)
	if ferr != nil {
		// A cycle closed by a bare sibling reference: this identifier is
		// the re-entering reference, so it becomes the second span.
		if ferr.Kind == diag.CyclicReference && ferr.Secondary == nil {
			ferr.WithTwoSpans("defined here", loc(x.Position), "re-entered here")
		}
		return nil, ctx.Capture(ferr, loc(x.Position))
	}
	return fv, nil
}

func (ev *Evaluator) evalInterpolatedString(x *ast.InterpolatedString, e *env.Environment, currentDir string, ctx *diag.Context) (value.Value, *diag.Error) {
	var sb strings.Builder
	for _, part := range x.Parts {
		if part.Expr == nil {
			sb.WriteString(part.Literal)
			continue
		}
		v, err := ev.Eval(part.Expr, e, currentDir, ctx)
		if err != nil {
			return nil, err
		}
		s, ferr := value.Format(v)
		if ferr != nil {
			return nil, ctx.Capture(ferr, loc(x.Position))
		}
		sb.WriteString(s)
	}
	return value.Str{Value: sb.String()}, nil
}
