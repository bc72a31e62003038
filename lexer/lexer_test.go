/*
File    : go-mix/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/go-mix/errs"
	"github.com/stretchr/testify/assert"
)

// tokenTypes extracts just the TokenType sequence from a token slice, the
// part most tests actually care about.
func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestLexer_Punctuation(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("(){},.-+;*/", sink)
	toks := lex.ConsumeTokens()

	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, SLASH,
	}, tokenTypes(toks))
	assert.False(t, sink.HadError())
}

func TestLexer_TwoCharOperators(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("! != = == > >= < <=", sink)
	toks := lex.ConsumeTokens()

	assert.Equal(t, []TokenType{
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL,
		GREATER, GREATER_EQUAL, LESS, LESS_EQUAL,
	}, tokenTypes(toks))
	assert.False(t, sink.HadError())
}

func TestLexer_Numbers(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("123 45.67 0 0.5", sink)
	toks := lex.ConsumeTokens()

	assert.Len(t, toks, 4)
	for _, tok := range toks {
		assert.Equal(t, NUMBER, tok.Type)
	}
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
	assert.Equal(t, 0.0, toks[2].Literal)
	assert.Equal(t, 0.5, toks[3].Literal)
}

func TestLexer_NumberTrailingDotIsNotConsumed(t *testing.T) {
	// A "." not followed by a digit is not part of the number (it may be
	// a method/property dot in a later grammar extension).
	sink := errs.NewSink()
	lex := NewLexer("123.", sink)
	toks := lex.ConsumeTokens()

	assert.Equal(t, []TokenType{NUMBER, DOT}, tokenTypes(toks))
}

func TestLexer_Strings(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer(`"hello world"`, sink)
	toks := lex.ConsumeTokens()

	assert.Len(t, toks, 1)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
	assert.False(t, sink.HadError())
}

func TestLexer_MultilineString(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("\"line one\nline two\"\n1", sink)
	toks := lex.ConsumeTokens()

	assert.Len(t, toks, 2)
	assert.Equal(t, "line one\nline two", toks[0].Literal)
	// The token is stamped with the line the string opened on, even when
	// it spans further lines; the counter still advances for what follows.
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 3, toks[1].Line)
}

func TestLexer_UnterminatedString(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer(`"never closed`, sink)
	toks := lex.ConsumeTokens()

	assert.Equal(t, []TokenType{INVALID_TYPE}, tokenTypes(toks))
	assert.True(t, sink.HadError())
	assert.Equal(t, "Unterminated string.", sink.Diagnostics()[0].Message)
}

func TestLexer_IdentifiersAndKeywords(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("foo _bar baz123 and or if else for while fun class var nil true false print return", sink)
	toks := lex.ConsumeTokens()

	assert.Equal(t, []TokenType{
		IDENTIFIER, IDENTIFIER, IDENTIFIER,
		AND_KEY, OR_KEY, IF_KEY, ELSE_KEY, FOR_KEY, WHILE_KEY, FUN_KEY,
		CLASS_KEY, VAR_KEY, NIL_KEY, TRUE_KEY, FALSE_KEY, PRINT_KEY, RETURN_KEY,
	}, tokenTypes(toks))
}

func TestLexer_LineCommentsAreIgnored(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("1 // this is a comment\n2", sink)
	toks := lex.ConsumeTokens()

	assert.Equal(t, []TokenType{NUMBER, NUMBER}, tokenTypes(toks))
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}

func TestLexer_UnexpectedCharacterContinuesLexing(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("1 @ 2", sink)
	toks := lex.ConsumeTokens()

	assert.True(t, sink.HadError())
	assert.Equal(t, []TokenType{NUMBER, INVALID_TYPE, NUMBER}, tokenTypes(toks))
}

func TestLexer_EmitsEOF(t *testing.T) {
	sink := errs.NewSink()
	lex := NewLexer("1", sink)
	_ = lex.ConsumeTokens()
	final := lex.NextToken()
	assert.Equal(t, EOF_TYPE, final.Type)
}
