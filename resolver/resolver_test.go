/*
File    : go-mix/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/go-mix/errs"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSrc(t *testing.T, src string) ([]parser.Stmt, *errs.Sink) {
	t.Helper()
	sink := errs.NewSink()
	lex := lexer.NewLexer(src, sink)
	p := parser.NewParser(lex, sink)
	return p.Parse(), sink
}

func TestResolver_ResolvesLocalVariableDepth(t *testing.T) {
	stmts, sink := parseSrc(t, `
		{
			var a = 1;
			{
				var b = 2;
				print a + b;
			}
		}
	`)
	require.False(t, sink.HadError())

	resSink := errs.NewSink()
	res := New(resSink)
	table := res.Resolve(stmts)
	assert.False(t, resSink.HadError())

	outer := stmts[0].(*parser.BlockStmt)
	inner := outer.Statements[1].(*parser.BlockStmt)
	printStmt := inner.Statements[1].(*parser.PrintStmt)
	bin := printStmt.Expression.(*parser.BinaryExpr)

	aRef := bin.Left.(*parser.VariableExpr)
	bRef := bin.Right.(*parser.VariableExpr)

	// `a` is declared one scope further out than the block it's read in.
	assert.Equal(t, 1, table[aRef])
	// `b` is declared in the same scope it's read in.
	assert.Equal(t, 0, table[bRef])
}

func TestResolver_SelfReferenceInInitializerIsError(t *testing.T) {
	stmts, sink := parseSrc(t, `{ var a = a; }`)
	require.False(t, sink.HadError())

	resSink := errs.NewSink()
	res := New(resSink)
	res.Resolve(stmts)
	assert.True(t, resSink.HadError())
	assert.Contains(t, resSink.Diagnostics()[0].Message, "own initializer")
}

func TestResolver_DuplicateDeclarationInSameScopeIsError(t *testing.T) {
	stmts, sink := parseSrc(t, `{ var a = 1; var a = 2; }`)
	require.False(t, sink.HadError())

	resSink := errs.NewSink()
	res := New(resSink)
	res.Resolve(stmts)
	assert.True(t, resSink.HadError())
}

func TestResolver_ShadowingOuterScopeIsAllowed(t *testing.T) {
	stmts, sink := parseSrc(t, `
		var a = 1;
		{ var a = 2; print a; }
	`)
	require.False(t, sink.HadError())

	resSink := errs.NewSink()
	res := New(resSink)
	res.Resolve(stmts)
	assert.False(t, resSink.HadError())
}

func TestResolver_ReturnOutsideFunctionIsError(t *testing.T) {
	stmts, sink := parseSrc(t, `return 1;`)
	require.False(t, sink.HadError())

	resSink := errs.NewSink()
	res := New(resSink)
	res.Resolve(stmts)
	assert.True(t, resSink.HadError())
	assert.Contains(t, resSink.Diagnostics()[0].Message, "top-level code")
}

func TestResolver_ReturnInsideFunctionIsAllowed(t *testing.T) {
	stmts, sink := parseSrc(t, `fun f() { return 1; }`)
	require.False(t, sink.HadError())

	resSink := errs.NewSink()
	res := New(resSink)
	res.Resolve(stmts)
	assert.False(t, resSink.HadError())
}

func TestResolver_RecursiveFunctionResolvesOwnName(t *testing.T) {
	stmts, sink := parseSrc(t, `
		fun fact(n) {
			if (n <= 1) return 1;
			return n * fact(n - 1);
		}
	`)
	require.False(t, sink.HadError())

	resSink := errs.NewSink()
	res := New(resSink)
	res.Resolve(stmts)
	assert.False(t, resSink.HadError())
}
