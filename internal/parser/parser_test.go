package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumen/internal/ast"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := Parse([]byte(src), "test.lm")
	require.Nil(t, err, "parse error: %v", err)
	return e
}

func TestParseLetBinding(t *testing.T) {
	e := parseExpr(t, "let x = 1 in x")
	let, ok := e.(*ast.Let)
	require.True(t, ok)
	ident, ok := let.Pattern.(*ast.IdentPattern)
	require.True(t, ok)
	require.Equal(t, "x", ident.Name)
}

func TestParseLambda(t *testing.T) {
	e := parseExpr(t, "n -> n + 1")
	lam, ok := e.(*ast.Lambda)
	require.True(t, ok)
	_, ok = lam.Body.(*ast.Binary)
	require.True(t, ok)
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	e := parseExpr(t, "f a b")
	outer, ok := e.(*ast.Apply)
	require.True(t, ok)
	_, ok = outer.Arg.(*ast.Identifier)
	require.True(t, ok)
	inner, ok := outer.Func.(*ast.Apply)
	require.True(t, ok)
	fnIdent, ok := inner.Func.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "f", fnIdent.Name)
}

func TestParseBinaryPrecedence(t *testing.T) {
	// 1 + 2 * 3 should group as 1 + (2 * 3)
	e := parseExpr(t, "1 + 2 * 3")
	bin, ok := e.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "*", rhs.Operator)
}

func TestParseParenGroupingIsNotATuple(t *testing.T) {
	e := parseExpr(t, "(1 + 2)")
	_, ok := e.(*ast.Binary)
	require.True(t, ok, "single parenthesized expr without comma stays plain grouping")
}

func TestParseTupleLiteralRequiresComma(t *testing.T) {
	e := parseExpr(t, "(1, 2)")
	tup, ok := e.(*ast.TupleLiteral)
	require.True(t, ok)
	require.Len(t, tup.Elements, 2)
}

func TestParseObjectExtendViaJuxtaposition(t *testing.T) {
	e := parseExpr(t, "base { a: 1 }")
	ext, ok := e.(*ast.ObjectExtend)
	require.True(t, ok)
	_, ok = ext.Base.(*ast.Identifier)
	require.True(t, ok)
	require.Len(t, ext.Fields, 1)
}

func TestParseObjectPatchField(t *testing.T) {
	e := parseExpr(t, "{ a { b: 2 } }")
	obj, ok := e.(*ast.ObjectLiteral)
	require.True(t, ok)
	require.Len(t, obj.Fields, 1)
	require.True(t, obj.Fields[0].IsPatch)
}

func TestParseTaggedTuplePatternInWhenBranch(t *testing.T) {
	e := parseExpr(t, "when v matches { #ok x -> x, otherwise -> 0 }")
	w, ok := e.(*ast.WhenMatches)
	require.True(t, ok)
	require.Len(t, w.Branches, 1)
	tp, ok := w.Branches[0].Pattern.(*ast.TuplePattern)
	require.True(t, ok)
	require.Len(t, tp.Elements, 2)
	require.NotNil(t, w.Otherwise)
}

func TestParseArrayComprehension(t *testing.T) {
	e := parseExpr(t, "[ x * 2 for x in xs if x != 2 ]")
	comp, ok := e.(*ast.ArrayComprehension)
	require.True(t, ok)
	require.Len(t, comp.Clauses, 1)
	require.NotNil(t, comp.Filter)
}

func TestParseRangeInclusiveExclusive(t *testing.T) {
	e1 := parseExpr(t, "1..3")
	r1, ok := e1.(*ast.Range)
	require.True(t, ok)
	require.False(t, r1.Inclusive)

	e2 := parseExpr(t, "1..=3")
	r2, ok := e2.(*ast.Range)
	require.True(t, ok)
	require.True(t, r2.Inclusive)
}

func TestParseStringInterpolation(t *testing.T) {
	e := parseExpr(t, `"hello ${name}!"`)
	interp, ok := e.(*ast.InterpolatedString)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(interp.Parts), 2)
	var sawExpr bool
	for _, part := range interp.Parts {
		if part.Expr != nil {
			sawExpr = true
			_, isIdent := part.Expr.(*ast.Identifier)
			require.True(t, isIdent)
		}
	}
	require.True(t, sawExpr)
}

func TestParseTuplePatternInLet(t *testing.T) {
	e := parseExpr(t, "let (x, y) = (1, 2) in x")
	let, ok := e.(*ast.Let)
	require.True(t, ok)
	tp, ok := let.Pattern.(*ast.TuplePattern)
	require.True(t, ok)
	require.Len(t, tp.Elements, 2)
}

func TestParseSingleElementTuplePatternInLet(t *testing.T) {
	e := parseExpr(t, "let (x) = y in x")
	let, ok := e.(*ast.Let)
	require.True(t, ok)
	tp, ok := let.Pattern.(*ast.TuplePattern)
	require.True(t, ok, "pattern position always builds a tuple pattern, even arity 1")
	require.Len(t, tp.Elements, 1)
}

func TestParseWhereSuffix(t *testing.T) {
	e := parseExpr(t, "a where { a = 1 }")
	w, ok := e.(*ast.Where)
	require.True(t, ok)
	require.Len(t, w.Bindings, 1)
	require.Equal(t, "a", w.Bindings[0].Pattern.(*ast.IdentPattern).Name)
}

func TestParseImport(t *testing.T) {
	e := parseExpr(t, `import "./util.lm"`)
	imp, ok := e.(*ast.Import)
	require.True(t, ok)
	require.Equal(t, "./util.lm", imp.Path)
}
