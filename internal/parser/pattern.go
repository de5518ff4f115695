package parser

import (
	"strings"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/lexer"
)

func (p *Parser) startsPatternAtom() bool {
	switch p.cur().Type {
	case lexer.IDENT, lexer.INT, lexer.FLOAT, lexer.TRUE, lexer.FALSE,
		lexer.NULL, lexer.SYMBOL, lexer.STRING, lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE:
		return true
	}
	return false
}

// parsePattern parses one pattern, including the tagged-tuple sugar
// used by when/matches branches: a symbol literal immediately followed
// by another pattern atom (e.g. "#ok x") desugars to a 2-element tuple
// pattern matching the spec's (#ok, value) result convention.
func (p *Parser) parsePattern() (ast.Pattern, *diag.Error) {
	first, err := p.parsePatternAtom()
	if err != nil {
		return nil, err
	}
	if lit, ok := first.(*ast.LiteralPattern); ok {
		if _, isSym := lit.Value.(*ast.SymbolLiteral); isSym && p.startsPatternAtom() {
			rest, err := p.parsePatternAtom()
			if err != nil {
				return nil, err
			}
			return &ast.TuplePattern{Position: lit.Position, Elements: []ast.Pattern{first, rest}}, nil
		}
	}
	return first, nil
}

func (p *Parser) parsePatternAtom() (ast.Pattern, *diag.Error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.IDENT:
		p.advance()
		return &ast.IdentPattern{Position: tokPos(tok), Name: tok.Lexeme}, nil

	case lexer.INT:
		p.advance()
		n, perr := lexer.ParseIntLiteral(tok.Lexeme)
		if perr != nil {
			return nil, p.errorf(diag.ExpectedExpr, "invalid integer literal %q", tok.Lexeme)
		}
		return &ast.LiteralPattern{Position: tokPos(tok), Value: &ast.IntLiteral{Position: tokPos(tok), Value: n}}, nil

	case lexer.FLOAT:
		p.advance()
		f, perr := lexer.ParseFloatLiteral(tok.Lexeme)
		if perr != nil {
			return nil, p.errorf(diag.ExpectedExpr, "invalid float literal %q", tok.Lexeme)
		}
		return &ast.LiteralPattern{Position: tokPos(tok), Value: &ast.FloatLiteral{Position: tokPos(tok), Value: f}}, nil

	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return &ast.LiteralPattern{Position: tokPos(tok), Value: &ast.BoolLiteral{Position: tokPos(tok), Value: tok.Type == lexer.TRUE}}, nil

	case lexer.NULL:
		p.advance()
		return &ast.LiteralPattern{Position: tokPos(tok), Value: &ast.NullLiteral{Position: tokPos(tok)}}, nil

	case lexer.SYMBOL:
		p.advance()
		return &ast.LiteralPattern{Position: tokPos(tok), Value: &ast.SymbolLiteral{Position: tokPos(tok), Name: tok.Lexeme[1:]}}, nil

	case lexer.STRING:
		p.advance()
		if strings.Contains(tok.Lexeme, "${") {
			return nil, p.errorf(diag.ExpectedExpr, "string patterns cannot interpolate")
		}
		return &ast.LiteralPattern{Position: tokPos(tok), Value: &ast.StringLiteral{Position: tokPos(tok), Value: tok.Lexeme}}, nil

	case lexer.LPAREN:
		return p.parseTuplePattern()

	case lexer.LBRACKET:
		return p.parseArrayPattern()

	case lexer.LBRACE:
		return p.parseObjectPattern()
	}
	return nil, p.errorf(diag.ExpectedExpr, "expected a pattern, found %q", tok.Lexeme)
}

// parseTuplePattern always produces a TuplePattern, even for a single
// element: "(x)" is a tuple pattern of arity 1, not grouping (the
// evaluator reports a type_mismatch if matched against a non-tuple).
func (p *Parser) parseTuplePattern() (ast.Pattern, *diag.Error) {
	open := p.cur()
	p.advance() // (
	var elems []ast.Pattern
	for !p.check(lexer.RPAREN) {
		el, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RPAREN, "tuple pattern"); err != nil {
		return nil, err
	}
	return &ast.TuplePattern{Position: tokPos(open), Elements: elems}, nil
}

func (p *Parser) parseArrayPattern() (ast.Pattern, *diag.Error) {
	open := p.cur()
	p.advance() // [
	pat := &ast.ArrayPattern{Position: tokPos(open)}
	for !p.check(lexer.RBRACKET) {
		if p.match(lexer.ELLIPSIS) {
			name, err := p.expect(lexer.IDENT, "array rest pattern")
			if err != nil {
				return nil, err
			}
			pat.HasRest = true
			pat.Rest = name.Lexeme
			break
		}
		el, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		pat.Elements = append(pat.Elements, el)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACKET, "array pattern"); err != nil {
		return nil, err
	}
	return pat, nil
}

func (p *Parser) parseObjectPattern() (ast.Pattern, *diag.Error) {
	open := p.cur()
	p.advance() // {
	pat := &ast.ObjectPattern{Position: tokPos(open)}
	for !p.check(lexer.RBRACE) {
		key, err := p.expect(lexer.IDENT, "object pattern field")
		if err != nil {
			return nil, err
		}
		field := ast.ObjectPatternField{Key: key.Lexeme, KeyPos: tokPos(key)}
		if p.match(lexer.COLON) {
			nested, perr := p.parsePattern()
			if perr != nil {
				return nil, perr
			}
			field.Nested = nested
		} else {
			field.Nested = &ast.IdentPattern{Position: tokPos(key), Name: key.Lexeme}
		}
		pat.Fields = append(pat.Fields, field)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE, "object pattern"); err != nil {
		return nil, err
	}
	return pat, nil
}

func tokPos(t tokenWithDoc) ast.Position {
	return ast.Position{Line: t.Line, Column: t.Column, Offset: t.Offset, Length: len(t.Lexeme)}
}
