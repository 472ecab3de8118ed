package internal

import (
	"strconv"
)

// parser stores parser data
type parser struct {
	tokens  []Token
	current int

	errors ParseErrors
}

const maxFunctionParams = 255

var declKinds = map[TokenType]DeclKind{
	LET:   DeclVar,
	CONST: DeclConst,
	FINAL: DeclFinal,
}

// Parse builds the syntax tree of a token sequence. Parsing continues
// after an error so that every malformed statement is reported.
func Parse(tokens []Token) (*Program, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: EOF, Lexeme: eofLexeme})
	}
	p := &parser{tokens: tokens}
	return p.parse()
}

// ParseSource tokenizes and parses source
func ParseSource(source string, opts ...LexerOption) (*Program, error) {
	tokens, err := Tokenize(source, opts...)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) parse() (*Program, error) {
	program := &Program{Body: make([]Stmt, 0)}
	for !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			program.Body = append(program.Body, st)
		}
	}
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return program, nil
}

func (p *parser) parseStmt() (st Stmt) {
	defer func() {
		if r := recover(); r != nil {
			parseErr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			p.errors = append(p.errors, parseErr)
			p.synchronize()
			st = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() Stmt {
	var s Stmt
	if p.match(LET, CONST, FINAL) {
		s = p.varDeclaration()
	} else if p.match(FN) {
		return p.fn()
	} else if p.match(IF) {
		return p.ifStmt()
	} else if p.match(WHILE) {
		return p.while()
	} else {
		s = p.expression()
	}
	p.match(SEMICOLON)
	return s
}

func (p *parser) varDeclaration() Stmt {
	decl := &VarDeclaration{Kind: declKinds[p.previous().Type]}
	decl.Identifier = p.consume(IDENTIFIER, errExpectedIdentifier).Lexeme
	p.typeAnnotation()

	if p.match(EQUALS) {
		decl.Value = p.expression()
	} else if decl.Constant() {
		p.fatal(errConstantWithoutValue, p.peek())
	}
	return decl
}

// typeAnnotation skips an optional ": type". Types are not checked.
func (p *parser) typeAnnotation() {
	if !p.match(COLON) {
		return
	}
	if !p.match(NUMBER_TYPE, STRING_TYPE, ARRAY_TYPE, BOOLEAN_TYPE, OBJECT_TYPE, DYNAMIC_TYPE) {
		p.fatal(errExpectedType, p.peek())
	}
}

func (p *parser) fn() Stmt {
	name := p.consume(IDENTIFIER, errExpectedFunctionName)

	p.consume(OPEN_PAREN, errExpectedParen)

	params := make([]string, 0)
	if !p.check(CLOSE_PAREN) {
		for {
			if len(params) >= maxFunctionParams {
				p.fatal(errMaxParameters, p.peek())
			}
			params = append(params, p.consume(IDENTIFIER, errExpectedFunctionParam).Lexeme)
			p.typeAnnotation()
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(CLOSE_PAREN, errUnclosedParen)
	p.typeAnnotation()

	return &FunctionDeclaration{
		Name:       name.Lexeme,
		Parameters: params,
		Body:       p.block(),
	}
}

func (p *parser) ifStmt() Stmt {
	st := &IfElseStatement{
		Check: p.expression(),
		Body:  p.block(),
	}

	for p.match(ELSE) {
		if p.match(IF) {
			st.ChildChecks = append(st.ChildChecks, ElseIf{
				Check: p.expression(),
				Body:  p.block(),
			})
			continue
		}
		st.Else = p.block()
		break
	}

	return st
}

func (p *parser) while() Stmt {
	return &WhileStatement{
		Check: p.expression(),
		Body:  p.block(),
	}
}

func (p *parser) block() []Stmt {
	p.consume(OPEN_BRACE, errExpectedOpeningBrace)
	stmts := make([]Stmt, 0)
	for !p.check(CLOSE_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(CLOSE_BRACE, errExpectedClosingBrace)
	return stmts
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	expr := p.or()
	if p.match(EQUALS) {
		equals := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*Identifier); isVar {
			return &AssignmentExpr{
				Assignee: variable.Symbol,
				Value:    value,
			}
		}

		p.fatal(errInvalidAssignTarget, equals)
	}
	return expr
}

func (p *parser) or() Expr {
	expr := p.and()
	for p.match(OR) {
		operator := p.previous()
		right := p.and()
		expr = &LogicalExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) and() Expr {
	expr := p.equality()
	for p.match(AND) {
		operator := p.previous()
		right := p.equality()
		expr = &LogicalExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(EQUALITY, NOT_EQUALITY) {
		operator := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() Expr {
	expr := p.addition()
	for p.match(GREATER_THAN, GREATER_OR_EQUAL, LESS_THAN, LESS_OR_EQUAL) {
		operator := p.previous()
		right := p.addition()
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) addition() Expr {
	expr := p.multiplication()
	for p.matchOperator("+", "-") {
		operator := p.previous()
		right := p.multiplication()
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() Expr {
	expr := p.unary()
	for p.matchOperator("*", "/", "%") {
		operator := p.previous()
		right := p.unary()
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	if p.match(EXCLAMATION) || p.matchOperator("-") {
		operator := p.previous()
		right := p.unary()
		return &UnaryExpr{
			Operator: operator,
			Operand:  right,
		}
	}
	return p.call()
}

func (p *parser) call() Expr {
	expr := p.primary()
	for p.match(OPEN_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *parser) finishCall(callee Expr) Expr {
	arguments := make([]Expr, 0)
	if !p.check(CLOSE_PAREN) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.fatal(errMaxArguments, p.peek())
			}
			arguments = append(arguments, p.expression())
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(CLOSE_PAREN, errUnclosedCall)
	return &CallExpr{
		Callee:    callee,
		Arguments: arguments,
	}
}

func (p *parser) primary() Expr {
	if p.match(NUMBER) {
		tk := p.previous()
		value, err := strconv.ParseFloat(tk.Lexeme, 64)
		if err != nil {
			p.fatal(errInvalidNumber, tk)
		}
		return &NumericLiteral{Value: value}
	}
	if p.match(STRING) {
		return &StringLiteral{Value: p.previous().Lexeme}
	}
	if p.match(IDENTIFIER) {
		return &Identifier{Symbol: p.previous().Lexeme}
	}
	if p.match(OPEN_PAREN) {
		expr := p.expression()
		p.consume(CLOSE_PAREN, errUnclosedParen)
		return expr
	}

	p.fatal(errUndefinedExpr, p.peek())
	return nil
}

func (p *parser) fatal(err error, tk Token) {
	panic(&ParseError{Err: err, Token: tk})
}

func (p *parser) consume(tk TokenType, err error) Token {
	if p.check(tk) {
		return p.advance()
	}
	p.fatal(err, p.peek())
	return Token{}
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

// matchOperator matches a BINARY_OPERATOR token with one of the lexemes
func (p *parser) matchOperator(lexemes ...string) bool {
	if !p.check(BINARY_OPERATOR) {
		return false
	}
	for _, lexeme := range lexemes {
		if p.peek().Lexeme == lexeme {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	return p.peek().Type == token
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *parser) synchronize() {
	for !p.isAtEnd() {
		if p.advance().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case LET, CONST, FINAL, FN, IF, WHILE, RETURN:
			return
		}
	}
}
