package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumen/internal/config"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/eval"
	"github.com/lumenlang/lumen/internal/parser"
	"github.com/lumenlang/lumen/internal/stdlib"
	"github.com/lumenlang/lumen/internal/value"
)

func init() {
	eval.SetParser(parser.Parse)
}

// run parses and evaluates src as the top-level program of a single
// in-memory file, mirroring cmd/lumen's pipeline.
func run(t *testing.T, src string) (value.Value, *diag.Error) {
	t.Helper()
	const filename = "test.lm"
	root, perr := parser.Parse([]byte(src), filename)
	require.Nil(t, perr, "parse error: %v", perr)

	ev := eval.New(nil, "", config.SourceFileExt, func(e *eval.Evaluator) *env.Environment {
		return stdlib.NewRootEnv(e)
	})
	rootEnv := stdlib.NewRootEnv(ev)
	ctx := diag.NewContext()
	ctx.CurrentFile = filename
	ctx.Sources[filename] = src

	return ev.Eval(root, rootEnv, ".", ctx)
}

func formatted(t *testing.T, src string) string {
	t.Helper()
	v, err := run(t, src)
	require.Nil(t, err, "eval error: %v", err)
	s, ferr := value.Format(v)
	require.Nil(t, ferr)
	return s
}

func TestLetBindingArithmetic(t *testing.T) {
	require.Equal(t, "3", formatted(t, "let x = 1 in x + 2"))
}

func TestLambdaApplication(t *testing.T) {
	require.Equal(t, "42", formatted(t, "let inc = n -> n + 1 in inc 41"))
}

func TestObjectSelfReferencingField(t *testing.T) {
	require.Equal(t, "2", formatted(t, "{ a: 1, b: a + 1 }.b"))
}

func TestObjectPatchMerge(t *testing.T) {
	require.Equal(t, "{a: {b: 2, c: 3}}", formatted(t, "{ a: { b: 1, c: 3 } } & { a { b: 2 } }"))
}

func TestCyclicFieldReferenceReportsTwoSpans(t *testing.T) {
	_, err := run(t, "{ a: b, b: a }.a")
	require.NotNil(t, err)
	require.Equal(t, diag.CyclicReference, err.Kind)
	require.Equal(t, 3, err.Location.Column, "primary span is the `a` key")
	require.NotNil(t, err.Secondary)
	require.Equal(t, 12, err.Secondary.Column, "secondary span is the `a` reference inside `b`")
}

func TestArrayComprehensionWithFilter(t *testing.T) {
	require.Equal(t, "[2, 6]", formatted(t, "[ x * 2 for x in 1..=3 if x != 2 ]"))
}

func TestTupleDestructuringLet(t *testing.T) {
	require.Equal(t, "3", formatted(t, "let (x, y) = (1, 2) in x + y"))
}

func TestTupleDestructuringArityMismatchIsTypeMismatch(t *testing.T) {
	_, err := run(t, "let (x) = (1, 2) in x")
	require.NotNil(t, err)
	require.Equal(t, diag.TypeMismatch, err.Kind)
}

func TestWhenMatchesTaggedOkBranch(t *testing.T) {
	require.Equal(t, "7", formatted(t, "when (#ok, 7) matches { #ok x -> x, #error _ -> 0 }"))
}

func TestWhenMatchesTaggedErrorBranch(t *testing.T) {
	require.Equal(t, "0", formatted(t, "when (#error, \"bad\") matches { #ok x -> x, #error _ -> 0 }"))
}

func TestIfExpression(t *testing.T) {
	require.Equal(t, "1", formatted(t, "if true then 1 else 2"))
	require.Equal(t, "2", formatted(t, "if false then 1 else 2"))
}

func TestWhereMutualRecursion(t *testing.T) {
	src := `isEven 4 where {
  isEven = n -> if n == 0 then true else isOdd (n - 1),
  isOdd = n -> if n == 0 then false else isEven (n - 1)
}`
	require.Equal(t, "true", formatted(t, src))
}

func TestBasicsUnqualifiedBinding(t *testing.T) {
	require.Equal(t, "true", formatted(t, "not false"))
}

// TestApplyNonFunctionReportsFunctionLocation covers the span of the
// expected_function diagnostic: it must point at the callee, not the
// argument.
func TestApplyNonFunctionReportsFunctionLocation(t *testing.T) {
	src := "let notFn = 1 in\n  notFn\n    2"
	_, err := run(t, src)
	require.NotNil(t, err)
	require.Equal(t, diag.ExpectedFunction, err.Kind)
	require.Equal(t, 2, err.Location.Line, "error must anchor at the callee's line, not the argument's")
}
