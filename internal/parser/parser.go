// Package parser turns mini-scheme source into the parse tree consumed by
// the evaluator. It is a recursive-descent parser over the lexer's token
// stream; special forms are recognized by their head symbol and checked for
// shape at parse time, so the evaluator only ever sees well-formed nodes.
package parser

import (
	"fmt"
	"strconv"

	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// Parser parses a token stream into an *ast.Program.
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []string
}

// New creates a Parser reading from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Fill curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the syntax errors collected while parsing, one line each,
// prefixed with the source position.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) addError(pos lexer.Position, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("line %d:%d: %s", pos.Line, pos.Column, msg))
}

// ParseProgram parses the whole input as a sequence of top-level
// expressions. Parsing continues past errors so all syntax errors in a
// program are reported in one pass.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for p.curToken.Type != lexer.EOF {
		expr := p.parseExpression()
		if expr != nil {
			program.Expressions = append(program.Expressions, expr)
		} else {
			// Skip the offending token so parsing can make progress.
			p.nextToken()
		}
	}
	return program
}

// parseExpression parses one expression starting at curToken and leaves
// curToken on the first token after it. Returns nil on a syntax error.
func (p *Parser) parseExpression() ast.Expression {
	switch p.curToken.Type {
	case lexer.LPAREN:
		return p.parseForm()
	case lexer.QUOTE:
		return p.parseQuotedList()
	case lexer.INT:
		return p.parseIntegerLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		lit := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
		return lit
	case lexer.BOOLEAN:
		lit := &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Literal == "#t"}
		p.nextToken()
		return lit
	case lexer.IDENT:
		ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
		return ident
	case lexer.RPAREN:
		p.addError(p.curToken.Pos, "unexpected ')'")
		return nil
	case lexer.ILLEGAL:
		p.addError(p.curToken.Pos, "unexpected character %q", p.curToken.Literal)
		return nil
	default:
		p.addError(p.curToken.Pos, "unexpected token %s", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError(tok.Pos, "invalid integer literal %q", tok.Literal)
		p.nextToken()
		return nil
	}
	p.nextToken()
	return &ast.IntegerLiteral{Token: tok, Value: val}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError(tok.Pos, "invalid float literal %q", tok.Literal)
		p.nextToken()
		return nil
	}
	p.nextToken()
	return &ast.FloatLiteral{Token: tok, Value: val}
}

// parseForm parses a parenthesized form, dispatching on the head symbol.
func (p *Parser) parseForm() ast.Expression {
	lparen := p.curToken
	p.nextToken() // consume '('

	if p.curToken.Type == lexer.RPAREN {
		p.addError(lparen.Pos, "empty form '()' (use '() for the empty list)")
		p.nextToken()
		return nil
	}
	if p.curToken.Type == lexer.LPAREN {
		p.addError(p.curToken.Pos, "form head must be an identifier")
		p.skipToCloser()
		return nil
	}
	if p.curToken.Type != lexer.IDENT {
		p.addError(p.curToken.Pos, "form head must be an identifier, got %q", p.curToken.Literal)
		p.skipToCloser()
		return nil
	}

	head := p.curToken
	switch head.Literal {
	case "define":
		return p.parseDefine(head)
	case "if":
		return p.parseIf(head)
	case "begin":
		return p.parseBegin(head)
	case "cond":
		return p.parseCond(head)
	case "and", "or":
		return p.parseAndOr(head)
	case "not":
		return p.parseNot(head)
	case "let":
		return p.parseLet(head)
	case "car", "cdr", "null?", "display":
		return p.parseUnary(head)
	case "cons":
		return p.parseCons(head)
	case "newline", "read":
		return p.parseNullary(head)
	case "+", "-", "*", "/", "mod":
		return p.parseOperator(head, true)
	case "<", ">", "<=", ">=", "=", "<>":
		return p.parseOperator(head, false)
	default:
		return p.parseCall(head)
	}
}

// expectRParen consumes the closing ')' of a form, reporting an error and
// resynchronizing when it is missing.
func (p *Parser) expectRParen(form string) bool {
	if p.curToken.Type == lexer.RPAREN {
		p.nextToken()
		return true
	}
	p.addError(p.curToken.Pos, "expected ')' to close %s", form)
	p.skipToCloser()
	return false
}

// skipToCloser advances past the current form's closing ')' (or EOF),
// tracking nesting, so one malformed form produces one error.
func (p *Parser) skipToCloser() {
	depth := 1
	for depth > 0 && p.curToken.Type != lexer.EOF {
		switch p.curToken.Type {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
		}
		p.nextToken()
	}
}

// parseDefine handles both definition shapes:
//
//	(define name expr)
//	(define (name p1 ... pn) body1 ... bodyk)
func (p *Parser) parseDefine(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'define'

	switch p.curToken.Type {
	case lexer.IDENT:
		name := p.curToken.Literal
		p.nextToken()
		value := p.parseExpression()
		if value == nil {
			p.skipToCloser()
			return nil
		}
		if !p.expectRParen("define") {
			return nil
		}
		return &ast.ConstantDefinition{Token: head, Name: name, Value: value}

	case lexer.LPAREN:
		p.nextToken() // consume '('
		if p.curToken.Type != lexer.IDENT {
			p.addError(p.curToken.Pos, "define: expected function name")
			p.skipToCloser()
			p.skipToCloser()
			return nil
		}
		name := p.curToken.Literal
		p.nextToken()
		var params []string
		for p.curToken.Type == lexer.IDENT {
			params = append(params, p.curToken.Literal)
			p.nextToken()
		}
		if p.curToken.Type != lexer.RPAREN {
			p.addError(p.curToken.Pos, "define: expected ')' after parameter list")
			p.skipToCloser()
			p.skipToCloser()
			return nil
		}
		p.nextToken() // consume ')'
		body := p.parseBody(head, "define")
		if body == nil {
			return nil
		}
		return &ast.FunctionDefinition{Token: head, Name: name, Parameters: params, Body: body}

	default:
		p.addError(p.curToken.Pos, "define: expected a name or a function signature")
		p.skipToCloser()
		return nil
	}
}

// parseBody parses one or more expressions up to the closing ')'.
func (p *Parser) parseBody(head lexer.Token, form string) []ast.Expression {
	var body []ast.Expression
	for p.curToken.Type != lexer.RPAREN && p.curToken.Type != lexer.EOF {
		e := p.parseExpression()
		if e == nil {
			p.skipToCloser()
			return nil
		}
		body = append(body, e)
	}
	if len(body) == 0 {
		p.addError(head.Pos, "%s: expected at least one body expression", form)
		p.skipToCloser()
		return nil
	}
	if !p.expectRParen(form) {
		return nil
	}
	return body
}

func (p *Parser) parseIf(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'if'
	operands := p.parseOperands(head, "if")
	if operands == nil {
		return nil
	}
	if len(operands) != 3 {
		p.addError(head.Pos, "if: expected condition, then and else expressions, got %d operand(s)", len(operands))
		return nil
	}
	return &ast.IfExpression{Token: head, Condition: operands[0], Then: operands[1], Else: operands[2]}
}

func (p *Parser) parseBegin(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'begin'
	body := p.parseBody(head, "begin")
	if body == nil {
		return nil
	}
	return &ast.BeginExpression{Token: head, Expressions: body}
}

func (p *Parser) parseCond(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'cond'
	ce := &ast.CondExpression{Token: head}

	for p.curToken.Type == lexer.LPAREN {
		p.nextToken() // consume '('

		if p.curToken.Type == lexer.IDENT && p.curToken.Literal == "else" {
			p.nextToken()
			body := p.parseBody(head, "else clause")
			if body == nil {
				p.skipToCloser()
				return nil
			}
			ce.Else = body
			break
		}

		condition := p.parseExpression()
		if condition == nil {
			p.skipToCloser()
			p.skipToCloser()
			return nil
		}
		body := p.parseBody(head, "cond clause")
		if body == nil {
			p.skipToCloser()
			return nil
		}
		ce.Clauses = append(ce.Clauses, &ast.CondClause{Condition: condition, Body: body})
	}

	if len(ce.Clauses) == 0 && ce.Else == nil {
		p.addError(head.Pos, "cond: expected at least one clause")
		p.skipToCloser()
		return nil
	}
	if !p.expectRParen("cond") {
		return nil
	}
	return ce
}

func (p *Parser) parseAndOr(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'and'/'or'
	operands := p.parseOperands(head, head.Literal)
	if operands == nil {
		return nil
	}
	if len(operands) == 0 {
		p.addError(head.Pos, "%s: expected at least one operand", head.Literal)
		return nil
	}
	if head.Literal == "and" {
		return &ast.AndExpression{Token: head, Operands: operands}
	}
	return &ast.OrExpression{Token: head, Operands: operands}
}

func (p *Parser) parseNot(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'not'
	operands := p.parseOperands(head, "not")
	if operands == nil {
		return nil
	}
	if len(operands) != 1 {
		p.addError(head.Pos, "not: expected exactly one operand, got %d", len(operands))
		return nil
	}
	return &ast.NotExpression{Token: head, Operand: operands[0]}
}

func (p *Parser) parseLet(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'let'

	if p.curToken.Type != lexer.LPAREN {
		p.addError(p.curToken.Pos, "let: expected '(' to open the binding list")
		p.skipToCloser()
		return nil
	}
	p.nextToken() // consume '('

	le := &ast.LetExpression{Token: head}
	for p.curToken.Type == lexer.LPAREN {
		p.nextToken() // consume '('
		if p.curToken.Type != lexer.IDENT {
			p.addError(p.curToken.Pos, "let: expected a binding name")
			p.skipToCloser()
			p.skipToCloser()
			p.skipToCloser()
			return nil
		}
		name := p.curToken.Literal
		p.nextToken()
		value := p.parseExpression()
		if value == nil {
			p.skipToCloser()
			p.skipToCloser()
			p.skipToCloser()
			return nil
		}
		if !p.expectRParen("let binding") {
			p.skipToCloser()
			p.skipToCloser()
			return nil
		}
		le.Bindings = append(le.Bindings, &ast.LetBinding{Name: name, Value: value})
	}
	if p.curToken.Type != lexer.RPAREN {
		p.addError(p.curToken.Pos, "let: expected ')' to close the binding list")
		p.skipToCloser()
		p.skipToCloser()
		return nil
	}
	p.nextToken() // consume ')'

	body := p.parseBody(head, "let")
	if body == nil {
		return nil
	}
	le.Body = body
	return le
}

func (p *Parser) parseUnary(head lexer.Token) ast.Expression {
	p.nextToken() // consume head
	operands := p.parseOperands(head, head.Literal)
	if operands == nil {
		return nil
	}
	if len(operands) != 1 {
		p.addError(head.Pos, "%s: expected exactly one operand, got %d", head.Literal, len(operands))
		return nil
	}
	switch head.Literal {
	case "car":
		return &ast.CarExpression{Token: head, Operand: operands[0]}
	case "cdr":
		return &ast.CdrExpression{Token: head, Operand: operands[0]}
	case "null?":
		return &ast.NullCheckExpression{Token: head, Operand: operands[0]}
	default: // display
		return &ast.DisplayExpression{Token: head, Operand: operands[0]}
	}
}

func (p *Parser) parseCons(head lexer.Token) ast.Expression {
	p.nextToken() // consume 'cons'
	operands := p.parseOperands(head, "cons")
	if operands == nil {
		return nil
	}
	if len(operands) != 2 {
		p.addError(head.Pos, "cons: expected exactly two operands, got %d", len(operands))
		return nil
	}
	return &ast.ConsExpression{Token: head, Head: operands[0], Tail: operands[1]}
}

func (p *Parser) parseNullary(head lexer.Token) ast.Expression {
	p.nextToken() // consume head
	if p.curToken.Type != lexer.RPAREN {
		p.addError(head.Pos, "%s: expected no operands", head.Literal)
		p.skipToCloser()
		return nil
	}
	p.nextToken() // consume ')'
	if head.Literal == "newline" {
		return &ast.NewlineExpression{Token: head}
	}
	return &ast.ReadExpression{Token: head}
}

func (p *Parser) parseOperator(head lexer.Token, arithmetic bool) ast.Expression {
	p.nextToken() // consume operator
	operands := p.parseOperands(head, head.Literal)
	if operands == nil {
		return nil
	}
	if len(operands) < 2 {
		p.addError(head.Pos, "%s: expected at least two operands, got %d", head.Literal, len(operands))
		return nil
	}
	if arithmetic {
		return &ast.ArithmeticExpression{Token: head, Operator: head.Literal, Operands: operands}
	}
	return &ast.RelationalExpression{Token: head, Operator: head.Literal, Operands: operands}
}

func (p *Parser) parseCall(head lexer.Token) ast.Expression {
	p.nextToken() // consume function name
	args := p.parseOperands(head, head.Literal)
	if args == nil {
		return nil
	}
	return &ast.CallExpression{Token: head, Function: head.Literal, Arguments: args}
}

// parseOperands parses zero or more expressions up to the closing ')' and
// consumes it. Returns nil on a syntax error.
func (p *Parser) parseOperands(head lexer.Token, form string) []ast.Expression {
	operands := []ast.Expression{}
	for p.curToken.Type != lexer.RPAREN && p.curToken.Type != lexer.EOF {
		e := p.parseExpression()
		if e == nil {
			p.skipToCloser()
			return nil
		}
		operands = append(operands, e)
	}
	if !p.expectRParen(form) {
		return nil
	}
	return operands
}

// parseQuotedList parses '(lit1 lit2 ...). Elements are restricted to
// literals: numbers, booleans, strings, bare identifiers (kept as symbols)
// and nested lists (quoted or bare).
func (p *Parser) parseQuotedList() ast.Expression {
	quote := p.curToken
	p.nextToken() // consume '

	if p.curToken.Type != lexer.LPAREN {
		p.addError(p.curToken.Pos, "expected '(' after quote")
		return nil
	}
	return p.parseQuotedElements(quote)
}

// parseQuotedElements parses the parenthesized element list of a quote,
// with curToken on the '('.
func (p *Parser) parseQuotedElements(quote lexer.Token) ast.Expression {
	p.nextToken() // consume '('
	ql := &ast.QuotedList{Token: quote}
	for p.curToken.Type != lexer.RPAREN && p.curToken.Type != lexer.EOF {
		var elem ast.Expression
		switch p.curToken.Type {
		case lexer.INT:
			elem = p.parseIntegerLiteral()
		case lexer.FLOAT:
			elem = p.parseFloatLiteral()
		case lexer.STRING:
			elem = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
			p.nextToken()
		case lexer.BOOLEAN:
			elem = &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Literal == "#t"}
			p.nextToken()
		case lexer.IDENT:
			elem = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
			p.nextToken()
		case lexer.QUOTE:
			elem = p.parseQuotedList()
		case lexer.LPAREN:
			elem = p.parseQuotedElements(p.curToken)
		default:
			p.addError(p.curToken.Pos, "unexpected token %s in quoted list", p.curToken.Type)
			p.skipToCloser()
			return nil
		}
		if elem == nil {
			p.skipToCloser()
			return nil
		}
		ql.Elements = append(ql.Elements, elem)
	}
	if !p.expectRParen("quoted list") {
		return nil
	}
	return ql
}
