package parser

import (
	"strings"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/lexer"
)

// parseExpression is the single entry point every nested construct
// recurses through: lambda-or-binary, followed by an optional trailing
// "where { ... }" block, which can wrap any expression shape.
func (p *Parser) parseExpression() (ast.Expr, *diag.Error) {
	base, err := p.parseLambdaOrBinary()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.WHERE) {
		return p.parseWhereSuffix(base)
	}
	return base, nil
}

func (p *Parser) parseLambdaOrBinary() (ast.Expr, *diag.Error) {
	if lam, err, matched := p.tryParseLambda(); matched {
		if err != nil {
			return nil, err
		}
		return lam, nil
	}
	return p.parseBinaryTop()
}

// tryParseLambda speculatively parses a pattern followed by "->". Any
// failure before the arrow just means "not a lambda here"; once the
// arrow is seen, a body parse failure is a real error.
func (p *Parser) tryParseLambda() (*ast.Lambda, *diag.Error, bool) {
	mark := p.snapshot()
	startTok := p.cur()
	pat, err := p.parsePattern()
	if err != nil || !p.check(lexer.ARROW) {
		p.restore(mark)
		return nil, nil, false
	}
	p.advance() // ->
	body, berr := p.parseExpression()
	if berr != nil {
		return nil, berr, true
	}
	return &ast.Lambda{Position: tokPos(startTok), Param: pat, Body: body}, nil, true
}

func (p *Parser) parseWhereSuffix(body ast.Expr) (ast.Expr, *diag.Error) {
	p.advance() // where
	if _, err := p.expect(lexer.LBRACE, "where block"); err != nil {
		return nil, err
	}
	w := &ast.Where{Position: body.Pos(), Body: body}
	for !p.check(lexer.RBRACE) {
		doc := p.cur().Doc
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ASSIGN, "where binding"); err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		w.Bindings = append(w.Bindings, ast.WhereBinding{Pattern: pat, Value: val, Doc: doc})
		if !p.match(lexer.COMMA) {
			p.match(lexer.SEMICOLON)
		}
	}
	if _, err := p.expect(lexer.RBRACE, "where block"); err != nil {
		return nil, err
	}
	return w, nil
}

// ---- binary operators + ranges ----

var binPrec = map[lexer.TokenType]int{
	lexer.BACKSLASH: 1,
	lexer.OR:        2,
	lexer.AND:       3,
	lexer.EQ:        4,
	lexer.NEQ:       4,
	lexer.LT:        5,
	lexer.GT:        5,
	lexer.LTE:       5,
	lexer.GTE:       5,
	lexer.AMP:       6,
	lexer.PLUS:      7,
	lexer.MINUS:     7,
	lexer.STAR:      8,
	lexer.SLASH:     8,
}

// parseBinaryTop wraps the binary-operator precedence climb with the
// range operators (".." / "..="), which bind looser than any named
// operator but are not themselves part of the left-associative chain.
func (p *Parser) parseBinaryTop() (ast.Expr, *diag.Error) {
	left, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if p.check(lexer.DOTDOT) || p.check(lexer.DOTDOTEQ) {
		inclusive := p.cur().Type == lexer.DOTDOTEQ
		p.advance()
		right, err := p.parseBinary(1)
		if err != nil {
			return nil, err
		}
		return &ast.Range{Position: left.Pos(), Start: left, End: right, Inclusive: inclusive}, nil
	}
	return left, nil
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, *diag.Error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := binPrec[p.cur().Type]
		if !ok || prec < minPrec {
			break
		}
		opTok := p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Position: left.Pos(), Operator: opTok.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, *diag.Error) {
	if p.check(lexer.BANG) {
		tok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Position: tokPos(tok), Operator: "!", Operand: operand}, nil
	}
	return p.parseApplication()
}

// ---- application (juxtaposition) ----

func (p *Parser) startsApplicationArg() bool {
	switch p.cur().Type {
	case lexer.IDENT, lexer.INT, lexer.FLOAT, lexer.TRUE, lexer.FALSE, lexer.NULL,
		lexer.SYMBOL, lexer.STRING, lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE, lexer.DOT:
		return true
	}
	return false
}

func (p *Parser) parseApplication() (ast.Expr, *diag.Error) {
	fn, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.startsApplicationArg() {
		arg, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		fn = &ast.Apply{Position: fn.Pos(), Func: fn, Arg: arg}
	}
	return fn, nil
}

// ---- postfix: field access, index, field projection, object-extend ----

func (p *Parser) parsePostfix() (ast.Expr, *diag.Error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Type {
		case lexer.DOT:
			p.advance()
			if p.check(lexer.LBRACE) {
				p.advance()
				names, perr := p.parseFieldProjectionNames()
				if perr != nil {
					return nil, perr
				}
				expr = &ast.FieldProjection{Position: expr.Pos(), Object: expr, Names: names}
				continue
			}
			nameTok, perr := p.expect(lexer.IDENT, "field access")
			if perr != nil {
				return nil, perr
			}
			expr = &ast.FieldAccess{Position: expr.Pos(), Object: expr, Field: nameTok.Lexeme, FieldPos: tokPos(nameTok)}

		case lexer.LBRACKET:
			p.advance()
			key, kerr := p.parseExpression()
			if kerr != nil {
				return nil, kerr
			}
			if _, rerr := p.expect(lexer.RBRACKET, "index expression"); rerr != nil {
				return nil, rerr
			}
			expr = &ast.Index{Position: expr.Pos(), Object: expr, Key: key}

		case lexer.LBRACE:
			// Juxtaposed "{...}" after any expression is object-extend
			// (spec §4.6): a deep merge when expr is an object, an
			// apply-as-builder call when expr is a function.
			fields, _, ferr := p.parseObjectFieldsBody()
			if ferr != nil {
				return nil, ferr
			}
			expr = &ast.ObjectExtend{Position: expr.Pos(), Base: expr, Fields: fields}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseFieldProjectionNames() ([]string, *diag.Error) {
	var names []string
	for !p.check(lexer.RBRACE) {
		nameTok, err := p.expect(lexer.IDENT, "field projection")
		if err != nil {
			return nil, err
		}
		names = append(names, nameTok.Lexeme)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE, "field projection"); err != nil {
		return nil, err
	}
	return names, nil
}

// ---- primary ----

func (p *Parser) parsePrimary() (ast.Expr, *diag.Error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT:
		p.advance()
		n, perr := lexer.ParseIntLiteral(tok.Lexeme)
		if perr != nil {
			return nil, p.errorf(diag.ExpectedExpr, "invalid integer literal %q", tok.Lexeme)
		}
		return &ast.IntLiteral{Position: tokPos(tok), Value: n}, nil

	case lexer.FLOAT:
		p.advance()
		f, perr := lexer.ParseFloatLiteral(tok.Lexeme)
		if perr != nil {
			return nil, p.errorf(diag.ExpectedExpr, "invalid float literal %q", tok.Lexeme)
		}
		return &ast.FloatLiteral{Position: tokPos(tok), Value: f}, nil

	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return &ast.BoolLiteral{Position: tokPos(tok), Value: tok.Type == lexer.TRUE}, nil

	case lexer.NULL:
		p.advance()
		return &ast.NullLiteral{Position: tokPos(tok)}, nil

	case lexer.SYMBOL:
		p.advance()
		return &ast.SymbolLiteral{Position: tokPos(tok), Name: tok.Lexeme[1:]}, nil

	case lexer.STRING:
		p.advance()
		return p.buildStringExpr(tok)

	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Position: tokPos(tok), Name: tok.Lexeme}, nil

	case lexer.DOT:
		return p.parseFieldAccessorShorthand()

	case lexer.LPAREN:
		return p.parseParenExpr()

	case lexer.LBRACKET:
		return p.parseArrayExprOrComprehension()

	case lexer.LBRACE:
		return p.parseObjectExprOrComprehension()

	case lexer.IMPORT:
		return p.parseImport()

	case lexer.LET:
		return p.parseLet()

	case lexer.IF:
		return p.parseIf()

	case lexer.WHEN:
		return p.parseWhen()
	}
	return nil, p.errorf(diag.ExpectedExpr, "expected an expression, found %q", tok.Lexeme)
}

func (p *Parser) parseFieldAccessorShorthand() (ast.Expr, *diag.Error) {
	start := p.cur()
	var names []string
	for p.match(lexer.DOT) {
		nameTok, err := p.expect(lexer.IDENT, "field accessor")
		if err != nil {
			return nil, err
		}
		names = append(names, nameTok.Lexeme)
	}
	if len(names) == 0 {
		return nil, p.errorf(diag.ExpectedExpr, "expected a field name after '.'")
	}
	return &ast.FieldAccessorShorthand{Position: tokPos(start), Names: names}, nil
}

func (p *Parser) operatorToken() (string, bool) {
	switch p.cur().Type {
	case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.AND, lexer.OR,
		lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE, lexer.AMP, lexer.BACKSLASH:
		return p.cur().Lexeme, true
	}
	return "", false
}

// parseParenExpr handles grouping, operator-as-function ("(+)"), and
// tuple literals. Unlike tuple patterns, a single parenthesized
// expression with no comma is plain grouping, not a 1-tuple.
func (p *Parser) parseParenExpr() (ast.Expr, *diag.Error) {
	open := p.advance() // (
	if opLex, ok := p.operatorToken(); ok && p.at(1).Type == lexer.RPAREN {
		p.advance() // operator
		p.advance() // )
		return &ast.OperatorAsFunction{Position: tokPos(open), Operator: opLex}, nil
	}
	if p.check(lexer.RPAREN) {
		return nil, p.errorf(diag.ExpectedExpr, "empty parentheses are not a valid expression")
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.COMMA) {
		elems := []ast.Expr{first}
		for !p.check(lexer.RPAREN) {
			el, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
			if !p.match(lexer.COMMA) {
				break
			}
		}
		if _, err := p.expect(lexer.RPAREN, "tuple literal"); err != nil {
			return nil, err
		}
		return &ast.TupleLiteral{Position: tokPos(open), Elements: elems}, nil
	}
	if _, err := p.expect(lexer.RPAREN, "parenthesized expression"); err != nil {
		return nil, err
	}
	return first, nil
}

// ---- let / if / when / import ----

func (p *Parser) parseLet() (ast.Expr, *diag.Error) {
	letTok := p.cur()
	doc := letTok.Doc
	p.advance() // let
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN, "let binding"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN, "let binding"); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Position: tokPos(letTok), Pattern: pat, Value: value, Body: body, Doc: doc}, nil
}

func (p *Parser) parseIf() (ast.Expr, *diag.Error) {
	ifTok := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.THEN, "if expression"); err != nil {
		return nil, err
	}
	thenExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var elseExpr ast.Expr
	if p.match(lexer.ELSE) {
		elseExpr, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Position: tokPos(ifTok), Cond: cond, Then: thenExpr, Else: elseExpr}, nil
}

func (p *Parser) parseWhen() (ast.Expr, *diag.Error) {
	whenTok := p.advance()
	scrutinee, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.MATCHES, "when expression"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "when expression"); err != nil {
		return nil, err
	}
	w := &ast.WhenMatches{Position: tokPos(whenTok), Scrutinee: scrutinee}
	for !p.check(lexer.RBRACE) {
		if p.match(lexer.OTHERWISE) {
			if _, err := p.expect(lexer.ARROW, "otherwise branch"); err != nil {
				return nil, err
			}
			body, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			w.Otherwise = body
			if !p.match(lexer.COMMA) {
				p.match(lexer.SEMICOLON)
			}
			continue
		}
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ARROW, "match branch"); err != nil {
			return nil, err
		}
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		w.Branches = append(w.Branches, ast.MatchBranch{Pattern: pat, Body: body})
		if !p.match(lexer.COMMA) {
			p.match(lexer.SEMICOLON)
		}
	}
	if _, err := p.expect(lexer.RBRACE, "when expression"); err != nil {
		return nil, err
	}
	return w, nil
}

func (p *Parser) parseImport() (ast.Expr, *diag.Error) {
	importTok := p.advance()
	pathTok, err := p.expect(lexer.STRING, "import path")
	if err != nil {
		return nil, err
	}
	return &ast.Import{Position: tokPos(importTok), Path: pathTok.Lexeme, PathPos: tokPos(pathTok)}, nil
}

// ---- arrays ----

func (p *Parser) parseArrayExprOrComprehension() (ast.Expr, *diag.Error) {
	open := p.advance() // [
	if p.check(lexer.RBRACKET) {
		p.advance()
		return &ast.ArrayLiteral{Position: tokPos(open)}, nil
	}
	if p.check(lexer.ELLIPSIS) {
		lit := &ast.ArrayLiteral{Position: tokPos(open)}
		for {
			el, err := p.parseArrayElement()
			if err != nil {
				return nil, err
			}
			lit.Elements = append(lit.Elements, el)
			if !p.match(lexer.COMMA) {
				break
			}
			if p.check(lexer.RBRACKET) {
				break
			}
		}
		if _, err := p.expect(lexer.RBRACKET, "array literal"); err != nil {
			return nil, err
		}
		return lit, nil
	}

	bodyExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.FOR) {
		clauses, filter, cerr := p.parseForClauses()
		if cerr != nil {
			return nil, cerr
		}
		if _, rerr := p.expect(lexer.RBRACKET, "array comprehension"); rerr != nil {
			return nil, rerr
		}
		return &ast.ArrayComprehension{Position: tokPos(open), Body: bodyExpr, Clauses: clauses, Filter: filter}, nil
	}

	lit := &ast.ArrayLiteral{Position: tokPos(open)}
	firstEl, eerr := p.finishArrayElement(bodyExpr)
	if eerr != nil {
		return nil, eerr
	}
	lit.Elements = append(lit.Elements, firstEl)
	for p.match(lexer.COMMA) {
		if p.check(lexer.RBRACKET) {
			break
		}
		el, err := p.parseArrayElement()
		if err != nil {
			return nil, err
		}
		lit.Elements = append(lit.Elements, el)
	}
	if _, err := p.expect(lexer.RBRACKET, "array literal"); err != nil {
		return nil, err
	}
	return lit, nil
}

func (p *Parser) parseArrayElement() (ast.ArrayElement, *diag.Error) {
	if p.match(lexer.ELLIPSIS) {
		v, err := p.parseExpression()
		if err != nil {
			return ast.ArrayElement{}, err
		}
		return ast.ArrayElement{ElementKind: ast.ArrayElemSpread, Value: v}, nil
	}
	v, err := p.parseExpression()
	if err != nil {
		return ast.ArrayElement{}, err
	}
	return p.finishArrayElement(v)
}

func (p *Parser) finishArrayElement(v ast.Expr) (ast.ArrayElement, *diag.Error) {
	if p.match(lexer.IF) {
		cond, err := p.parseExpression()
		if err != nil {
			return ast.ArrayElement{}, err
		}
		return ast.ArrayElement{ElementKind: ast.ArrayElemIf, Value: v, Condition: cond}, nil
	}
	if p.match(lexer.UNLESS) {
		cond, err := p.parseExpression()
		if err != nil {
			return ast.ArrayElement{}, err
		}
		return ast.ArrayElement{ElementKind: ast.ArrayElemUnless, Value: v, Condition: cond}, nil
	}
	return ast.ArrayElement{ElementKind: ast.ArrayElemNormal, Value: v}, nil
}

// parseForClauses parses one or more "for pattern in iterable" clauses
// (comma-separated) followed by an optional "if filter", shared by
// array and object comprehensions.
func (p *Parser) parseForClauses() ([]ast.ForClause, ast.Expr, *diag.Error) {
	var clauses []ast.ForClause
	for p.match(lexer.FOR) {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, nil, err
		}
		if _, err := p.expect(lexer.IN, "for clause"); err != nil {
			return nil, nil, err
		}
		iter, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}
		clauses = append(clauses, ast.ForClause{Pattern: pat, Iterable: iter})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	var filter ast.Expr
	if p.match(lexer.IF) {
		f, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}
		filter = f
	}
	return clauses, filter, nil
}

// ---- objects ----

func (p *Parser) parseObjectExprOrComprehension() (ast.Expr, *diag.Error) {
	open := p.advance() // {
	doc := open.Doc
	if p.check(lexer.RBRACE) {
		p.advance()
		return &ast.ObjectLiteral{Position: tokPos(open), Doc: doc}, nil
	}

	keyTok := p.cur()
	fieldDoc := keyTok.Doc
	var staticKey string
	var dynamicKey ast.Expr
	var keyPos ast.Position
	if p.match(lexer.LBRACKET) {
		dk, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET, "dynamic object key"); err != nil {
			return nil, err
		}
		dynamicKey = dk
		keyPos = tokPos(keyTok)
	} else {
		nameTok, err := p.expect(lexer.IDENT, "object field")
		if err != nil {
			return nil, err
		}
		staticKey = nameTok.Lexeme
		keyPos = tokPos(nameTok)
	}

	if p.check(lexer.LBRACE) {
		nestedFields, _, ferr := p.parseObjectFieldsBody()
		if ferr != nil {
			return nil, ferr
		}
		nestedObj := &ast.ObjectLiteral{Position: keyPos, Fields: nestedFields}
		lit := &ast.ObjectLiteral{Position: tokPos(open), Doc: doc}
		lit.Fields = append(lit.Fields, ast.ObjectField{
			StaticKey: staticKey, DynamicKey: dynamicKey, Value: nestedObj, IsPatch: true, Doc: fieldDoc, KeyPos: keyPos,
		})
		return p.finishObjectLiteral(lit)
	}

	if _, err := p.expect(lexer.COLON, "object field"); err != nil {
		return nil, err
	}
	valueExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.check(lexer.FOR) {
		var keyExpr ast.Expr
		if dynamicKey != nil {
			keyExpr = dynamicKey
		} else {
			keyExpr = &ast.Identifier{Position: keyPos, Name: staticKey}
		}
		clauses, filter, cerr := p.parseForClauses()
		if cerr != nil {
			return nil, cerr
		}
		if _, rerr := p.expect(lexer.RBRACE, "object comprehension"); rerr != nil {
			return nil, rerr
		}
		return &ast.ObjectComprehension{Position: tokPos(open), Key: keyExpr, Value: valueExpr, Clauses: clauses, Filter: filter}, nil
	}

	lit := &ast.ObjectLiteral{Position: tokPos(open), Doc: doc}
	lit.Fields = append(lit.Fields, ast.ObjectField{
		StaticKey: staticKey, DynamicKey: dynamicKey, Value: valueExpr, Doc: fieldDoc, KeyPos: keyPos,
	})
	return p.finishObjectLiteral(lit)
}

func (p *Parser) finishObjectLiteral(lit *ast.ObjectLiteral) (ast.Expr, *diag.Error) {
	for p.match(lexer.COMMA) {
		if p.check(lexer.RBRACE) {
			break
		}
		field, err := p.parseObjectField()
		if err != nil {
			return nil, err
		}
		lit.Fields = append(lit.Fields, field)
	}
	if _, err := p.expect(lexer.RBRACE, "object literal"); err != nil {
		return nil, err
	}
	return lit, nil
}

func (p *Parser) parseObjectField() (ast.ObjectField, *diag.Error) {
	keyTok := p.cur()
	doc := keyTok.Doc
	var staticKey string
	var dynamicKey ast.Expr
	var keyPos ast.Position
	if p.match(lexer.LBRACKET) {
		dk, err := p.parseExpression()
		if err != nil {
			return ast.ObjectField{}, err
		}
		if _, err := p.expect(lexer.RBRACKET, "dynamic object key"); err != nil {
			return ast.ObjectField{}, err
		}
		dynamicKey = dk
		keyPos = tokPos(keyTok)
	} else {
		nameTok, err := p.expect(lexer.IDENT, "object field")
		if err != nil {
			return ast.ObjectField{}, err
		}
		staticKey = nameTok.Lexeme
		keyPos = tokPos(nameTok)
	}
	if p.check(lexer.LBRACE) {
		nestedFields, _, err := p.parseObjectFieldsBody()
		if err != nil {
			return ast.ObjectField{}, err
		}
		nestedObj := &ast.ObjectLiteral{Position: keyPos, Fields: nestedFields}
		return ast.ObjectField{StaticKey: staticKey, DynamicKey: dynamicKey, Value: nestedObj, IsPatch: true, Doc: doc, KeyPos: keyPos}, nil
	}
	if _, err := p.expect(lexer.COLON, "object field"); err != nil {
		return ast.ObjectField{}, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return ast.ObjectField{}, err
	}
	return ast.ObjectField{StaticKey: staticKey, DynamicKey: dynamicKey, Value: value, Doc: doc, KeyPos: keyPos}, nil
}

// parseObjectFieldsBody parses a full "{ field, field, ... }" block,
// used both for patch-field nested bodies and for the ObjectExtend
// juxtaposition in parsePostfix.
func (p *Parser) parseObjectFieldsBody() ([]ast.ObjectField, string, *diag.Error) {
	open := p.advance() // {
	doc := open.Doc
	var fields []ast.ObjectField
	for !p.check(lexer.RBRACE) {
		f, err := p.parseObjectField()
		if err != nil {
			return nil, "", err
		}
		fields = append(fields, f)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE, "object literal"); err != nil {
		return nil, "", err
	}
	return fields, doc, nil
}

// ---- string interpolation ----

// buildStringExpr splits a STRING token's lexeme (which still carries
// verbatim "${...}" markers, per lexer.readString) into literal runs
// and nested expressions, each reparsed with its own Parser instance.
func (p *Parser) buildStringExpr(tok tokenWithDoc) (ast.Expr, *diag.Error) {
	raw := tok.Lexeme
	if !strings.Contains(raw, "${") {
		return &ast.StringLiteral{Position: tokPos(tok), Value: raw}, nil
	}
	var parts []ast.StringChunk
	i := 0
	for i < len(raw) {
		start := strings.Index(raw[i:], "${")
		if start < 0 {
			parts = append(parts, ast.StringChunk{Literal: raw[i:]})
			break
		}
		start += i
		if start > i {
			parts = append(parts, ast.StringChunk{Literal: raw[i:start]})
		}
		depth := 1
		j := start + 2
		for j < len(raw) && depth > 0 {
			switch raw[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}
		inner := raw[start+2 : j-1]
		innerExpr, err := p.parseEmbeddedExpr(inner)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ast.StringChunk{Expr: innerExpr})
		i = j
	}
	return &ast.InterpolatedString{Position: tokPos(tok), Parts: parts}, nil
}

func (p *Parser) parseEmbeddedExpr(src string) (ast.Expr, *diag.Error) {
	sub := New([]byte(src), p.filename)
	expr, err := sub.parseExpression()
	if err != nil {
		return nil, err
	}
	if sub.cur().Type != lexer.EOF {
		return nil, sub.errorf(diag.UnexpectedToken, "unexpected trailing token %q in string interpolation", sub.cur().Lexeme)
	}
	return expr, nil
}
