/*
File    : go-mix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream into an AST by recursive descent.
// Precedence climbs through a chain of mutually recursive methods, one
// per grammar level (lowest first): assignment, or, and, equality,
// comparison, term, factor, unary, call, primary. Parse errors are
// collected into an errs.Sink rather than panicking, and after each one
// the parser synchronizes to the next likely statement boundary so a
// single mistake doesn't cascade into a wall of spurious errors.
package parser

import (
	"github.com/akashmaji946/go-mix/errs"
	"github.com/akashmaji946/go-mix/lexer"
)

// Parser holds two tokens of lookahead (CurrToken, NextToken) over a
// Lexer, plus the single token most recently consumed by matchAny/expect — used
// by the binary-operator grammar levels to recover the operator after
// advancing past it.
type Parser struct {
	lex  *lexer.Lexer
	sink *errs.Sink

	CurrToken    lexer.Token
	NextToken    lexer.Token
	lastConsumed lexer.Token
}

// NewParser creates a Parser over lex's token stream, reporting errors to
// sink. It primes CurrToken/NextToken immediately so the first call to
// Parse sees a fully-loaded lookahead window.
func NewParser(lex *lexer.Lexer, sink *errs.Sink) *Parser {
	p := &Parser{lex: lex, sink: sink}
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.CurrToken = p.NextToken
	p.NextToken = p.lex.NextToken()
}

// check reports whether CurrToken has type t without consuming it.
func (p *Parser) check(t lexer.TokenType) bool {
	return p.CurrToken.Type == t
}

// matchAny consumes and returns true if CurrToken's type is any of types,
// recording it in lastConsumed; otherwise it leaves the cursor untouched.
func (p *Parser) matchAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.lastConsumed = p.CurrToken
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes CurrToken if it has type t, returning it; otherwise it
// reports message at the offending token and returns the token anyway so
// callers can keep building a partial node.
func (p *Parser) expect(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		tok := p.CurrToken
		p.lastConsumed = tok
		p.advance()
		return tok
	}
	p.sink.ReportAt(p.CurrToken, message)
	return p.CurrToken
}

// parseError reports message at CurrToken.
func (p *Parser) parseError(message string) {
	p.sink.ReportAt(p.CurrToken, message)
}

// synchronize discards tokens after a parse error until it reaches a
// plausible statement boundary: just past a ';', or just before a
// keyword that starts a new declaration/statement. This keeps one bad
// construct from burying every other error in the file.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF_TYPE) {
		if p.CurrToken.Type == lexer.SEMICOLON {
			p.advance()
			return
		}
		switch p.CurrToken.Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		p.advance()
	}
}

// Parse consumes the entire token stream and returns the program as a
// list of top-level statements. Errors encountered along the way are
// left in the Sink passed to NewParser; a caller should check
// sink.HadError() before trusting the returned statements.
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.check(lexer.EOF_TYPE) {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration -> funDecl | varDecl | statement
//
// Any parse error raised while building a declaration leaves the sink
// non-empty; the caller only needs to resynchronize, not branch on a
// separate error return, because every helper below reports directly to
// the sink and keeps returning best-effort nodes.
func (p *Parser) declaration() (stmt Stmt) {
	before := len(p.sink.Diagnostics())
	defer func() {
		if len(p.sink.Diagnostics()) > before {
			p.synchronize()
		}
	}()

	if p.matchAny(lexer.FUN_KEY) {
		return p.function("function")
	}
	if p.matchAny(lexer.VAR_KEY) {
		return p.varDeclaration()
	}
	return p.statement()
}

// function parses the shared "name(params) { body }" shape for `fun`
// declarations. kind is used only in diagnostic messages ("function").
func (p *Parser) function(kind string) *FunctionStmt {
	name := p.expect(lexer.IDENTIFIER, "Expect "+kind+" name.")
	p.expect(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.parseError("Can't have more than 255 parameters.")
			}
			params = append(params, p.expect(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.matchAny(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.expect(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl -> "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() Stmt {
	name := p.expect(lexer.IDENTIFIER, "Expect variable name.")
	var initializer Expr
	if p.matchAny(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.expect(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

// statement -> exprStmt | printStmt | forStmt | ifStmt | whileStmt
//
//	| returnStmt | block
func (p *Parser) statement() Stmt {
	switch {
	case p.matchAny(lexer.PRINT_KEY):
		return p.printStatement()
	case p.matchAny(lexer.RETURN_KEY):
		return p.returnStatement()
	case p.matchAny(lexer.FOR_KEY):
		return p.forStatement()
	case p.matchAny(lexer.IF_KEY):
		return p.ifStatement()
	case p.matchAny(lexer.WHILE_KEY):
		return p.whileStatement()
	case p.matchAny(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// printStmt -> "print" expression ";"
func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.expect(lexer.SEMICOLON, "Expect ';' after value.")
	return &PrintStmt{Expression: value}
}

// returnStmt -> "return" expression? ";"
// The 'return' keyword has already been consumed by statement().
func (p *Parser) returnStatement() Stmt {
	keyword := p.lastConsumed
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.expect(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

// forStmt desugars directly into a WhileStmt wrapped in blocks:
//
//	for (init; cond; incr) body
//	==>
//	{ init; while (cond) { body; incr; } }
//
// This is the only place "for" exists; the resolver and evaluator never
// see a for-loop node.
func (p *Parser) forStatement() Stmt {
	p.expect(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.matchAny(lexer.SEMICOLON):
		initializer = nil
	case p.matchAny(lexer.VAR_KEY):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.expect(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.expect(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() Stmt {
	p.expect(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.expect(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.matchAny(lexer.ELSE_KEY) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// whileStmt -> "while" "(" expression ")" statement
func (p *Parser) whileStatement() Stmt {
	p.expect(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.expect(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

// block -> "{" declaration* "}"
// The opening '{' has already been consumed by the caller.
func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.check(lexer.EOF_TYPE) {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.expect(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

// exprStmt -> expression ";"
func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expression: expr}
}

// expression -> assignment
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment -> IDENTIFIER "=" assignment | logic_or
//
// Parsed by first parsing the left side as an ordinary or-expression,
// then — only if an '=' follows — checking that what was parsed is a
// bare variable reference before turning it into an AssignExpr. This is
// how the grammar keeps "a = b = c" working right-associatively while
// still rejecting "a + b = c" as an invalid target.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.matchAny(lexer.EQUAL) {
		value := p.assignment()

		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}
		}
		p.parseError("Invalid assignment target.")
		return expr
	}
	return expr
}

// logic_or -> logic_and ( "or" logic_and )*
func (p *Parser) or() Expr {
	expr := p.and()
	for p.matchAny(lexer.OR_KEY) {
		operator := p.lastConsumed
		right := p.and()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// logic_and -> equality ( "and" equality )*
func (p *Parser) and() Expr {
	expr := p.equality()
	for p.matchAny(lexer.AND_KEY) {
		operator := p.lastConsumed
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// equality -> comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.matchAny(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.lastConsumed
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.matchAny(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.lastConsumed
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// term -> factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() Expr {
	expr := p.factor()
	for p.matchAny(lexer.MINUS, lexer.PLUS) {
		operator := p.lastConsumed
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// factor -> unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.matchAny(lexer.SLASH, lexer.STAR) {
		operator := p.lastConsumed
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary -> ( "!" | "-" ) unary | call
func (p *Parser) unary() Expr {
	if p.matchAny(lexer.BANG, lexer.MINUS) {
		operator := p.lastConsumed
		right := p.unary()
		return &UnaryExpr{Operator: operator, Right: right}
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" )*
func (p *Parser) call() Expr {
	expr := p.primary()
	for p.matchAny(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

// finishCall parses the argument list of a call expression; the opening
// '(' has already been consumed.
func (p *Parser) finishCall(callee Expr) Expr {
	var arguments []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				p.parseError("Can't have more than 255 arguments.")
			}
			arguments = append(arguments, p.expression())
			if !p.matchAny(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.expect(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: arguments}
}

// primary -> NUMBER | STRING | "true" | "false" | "nil"
//
//	| "(" expression ")" | IDENTIFIER
func (p *Parser) primary() Expr {
	switch {
	case p.matchAny(lexer.FALSE_KEY):
		return &LiteralExpr{Value: false}
	case p.matchAny(lexer.TRUE_KEY):
		return &LiteralExpr{Value: true}
	case p.matchAny(lexer.NIL_KEY):
		return &LiteralExpr{Value: nil}
	case p.matchAny(lexer.NUMBER):
		return &LiteralExpr{Value: p.lastConsumed.Literal.(float64)}
	case p.matchAny(lexer.STRING):
		return &LiteralExpr{Value: p.lastConsumed.Literal.(string)}
	case p.matchAny(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.lastConsumed}
	case p.matchAny(lexer.LEFT_PAREN):
		expr := p.expression()
		p.expect(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Expression: expr}
	default:
		p.parseError("Expect expression.")
		// Consume the offending token so the parser always makes
		// progress; otherwise a token that can start nothing would spin
		// Parse()'s top-level loop forever.
		if !p.check(lexer.EOF_TYPE) {
			p.advance()
		}
		return &LiteralExpr{Value: nil}
	}
}
