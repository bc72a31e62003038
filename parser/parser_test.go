/*
File    : go-mix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/go-mix/errs"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ([]Stmt, *errs.Sink) {
	t.Helper()
	sink := errs.NewSink()
	lex := lexer.NewLexer(src, sink)
	p := NewParser(lex, sink)
	stmts := p.Parse()
	return stmts, sink
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts, sink := parse(t, `var x = 1 + 2;`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)

	bin, ok := v.Initializer.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Operator.Type)
}

func TestParser_PrintStatement(t *testing.T) {
	stmts, sink := parse(t, `print "hello";`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*PrintStmt)
	assert.True(t, ok)
}

func TestParser_IfElse(t *testing.T) {
	stmts, sink := parse(t, `if (x > 0) { print "pos"; } else { print "nonpos"; }`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)
	ifStmt, ok := stmts[0].(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.ElseBranch)
}

func TestParser_WhileLoop(t *testing.T) {
	stmts, sink := parse(t, `while (x < 10) { x = x + 1; }`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*WhileStmt)
	assert.True(t, ok)
}

func TestParser_ForLoopDesugarsToWhile(t *testing.T) {
	stmts, sink := parse(t, `for (var i = 0; i < 3; i = i + 1) { print i; }`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*VarStmt)
	assert.True(t, isVar)

	whileStmt, isWhile := outer.Statements[1].(*WhileStmt)
	require.True(t, isWhile)

	bodyBlock, ok := whileStmt.Body.(*BlockStmt)
	require.True(t, ok)
	assert.Len(t, bodyBlock.Statements, 2) // original body + increment
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts, sink := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	fn, ok := stmts[0].(*FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
	_, isReturn := fn.Body[0].(*ReturnStmt)
	assert.True(t, isReturn)
}

func TestParser_CallExpression(t *testing.T) {
	stmts, sink := parse(t, `add(1, 2);`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ExpressionStmt)
	require.True(t, ok)
	call, ok := exprStmt.Expression.(*CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Arguments, 2)
}

func TestParser_AssignmentRightAssociative(t *testing.T) {
	stmts, sink := parse(t, `a = b = 3;`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ExpressionStmt)
	outer, ok := exprStmt.Expression.(*AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name.Lexeme)
	_, ok = outer.Value.(*AssignExpr)
	assert.True(t, ok)
}

func TestParser_InvalidAssignmentTargetReportsError(t *testing.T) {
	_, sink := parse(t, `1 + 2 = 3;`)
	assert.True(t, sink.HadError())
}

func TestParser_LogicalAndOrPrecedence(t *testing.T) {
	stmts, sink := parse(t, `print a or b and c;`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	printStmt := stmts[0].(*PrintStmt)
	orExpr, ok := printStmt.Expression.(*LogicalExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.OR_KEY, orExpr.Operator.Type)
	_, rightIsAnd := orExpr.Right.(*LogicalExpr)
	assert.True(t, rightIsAnd)
}

func TestParser_MissingSemicolonReportsErrorAndRecovers(t *testing.T) {
	stmts, sink := parse(t, "var x = 1\nvar y = 2;")
	assert.True(t, sink.HadError())
	// Parsing should recover and still see the second declaration.
	found := false
	for _, s := range stmts {
		if v, ok := s.(*VarStmt); ok && v.Name.Lexeme == "y" {
			found = true
		}
	}
	assert.True(t, found)
}
