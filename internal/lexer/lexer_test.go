package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenTypes(input string) []TokenType {
	l := New(input)
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	return types
}

func TestKeywordsTokenizeDistinctFromIdentifiers(t *testing.T) {
	l := New("let x = 1 in foo")
	require.Equal(t, LET, l.NextToken().Type)
	require.Equal(t, IDENT, l.NextToken().Type)
	require.Equal(t, ASSIGN, l.NextToken().Type)
	require.Equal(t, INT, l.NextToken().Type)
	require.Equal(t, IN, l.NextToken().Type)
	foo := l.NextToken()
	require.Equal(t, IDENT, foo.Type)
	require.Equal(t, "foo", foo.Lexeme)
}

func TestSymbolLexeme(t *testing.T) {
	l := New("#ok")
	tok := l.NextToken()
	require.Equal(t, SYMBOL, tok.Type)
	require.Equal(t, "#ok", tok.Lexeme)
}

func TestStringInterpolationMarkerPreserved(t *testing.T) {
	l := New(`"hello ${name}!"`)
	tok := l.NextToken()
	require.Equal(t, STRING, tok.Type)
	require.Equal(t, "hello ${name}!", tok.Lexeme)
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\""`)
	tok := l.NextToken()
	require.Equal(t, STRING, tok.Type)
	require.Equal(t, "a\nb\t\"c\"", tok.Lexeme)
}

func TestDocCommentAttachesToFollowingToken(t *testing.T) {
	l := New("/// doubles a number\nlet")
	tok := l.NextToken()
	require.Equal(t, LET, tok.Type)
	require.Equal(t, "doubles a number", l.TakeDoc())
}

func TestPlainCommentDoesNotAccumulateAsDoc(t *testing.T) {
	l := New("// just a note\nlet")
	tok := l.NextToken()
	require.Equal(t, LET, tok.Type)
	require.Equal(t, "", l.TakeDoc())
}

func TestRangeOperatorsDistinguished(t *testing.T) {
	l := New("1..3 4..=5")
	require.Equal(t, INT, l.NextToken().Type)
	require.Equal(t, DOTDOT, l.NextToken().Type)
	require.Equal(t, INT, l.NextToken().Type)
	require.Equal(t, INT, l.NextToken().Type)
	require.Equal(t, DOTDOTEQ, l.NextToken().Type)
	require.Equal(t, INT, l.NextToken().Type)
}

func TestNumberLiterals(t *testing.T) {
	l := New("42 3.14")
	intTok := l.NextToken()
	require.Equal(t, INT, intTok.Type)
	require.Equal(t, "42", intTok.Lexeme)
	floatTok := l.NextToken()
	require.Equal(t, FLOAT, floatTok.Type)
	require.Equal(t, "3.14", floatTok.Lexeme)
}

func TestEOFTerminatesStream(t *testing.T) {
	types := tokenTypes("1 + 2")
	require.Equal(t, EOF, types[len(types)-1])
}
