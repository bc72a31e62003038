/*
File    : go-mix/errs/sink.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package errs implements the diagnostic collector shared by the lex, parse
and resolve phases. Rather than a process-wide mutable error flag, the
collector is an explicit value passed through the phases; the run-once and
REPL drivers own its lifetime and reset semantics.
*/
package errs

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-mix/lexer"
)

// Diagnostic is one compile-phase error: a source line, an optional token
// it was found at (nil for lexer errors, which have no token), and a
// message.
type Diagnostic struct {
	Line    int
	Token   *lexer.Token // nil for lex-phase errors
	AtEOF   bool
	Message string
}

// Sink accumulates diagnostics across the lex/parse/resolve phases so that
// a single bad construct never suppresses every other error in the file.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink returns an empty collector.
func NewSink() *Sink {
	return &Sink{}
}

// Report records a lexer-phase error: no token, no "at" qualifier.
func (s *Sink) Report(line int, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Line: line, Message: message})
}

// ReportAt records a parse- or resolve-phase error anchored to a token.
func (s *Sink) ReportAt(tok lexer.Token, message string) {
	d := Diagnostic{Line: tok.Line, Message: message}
	if tok.Type == lexer.EOF_TYPE {
		d.AtEOF = true
	} else {
		t := tok
		d.Token = &t
	}
	s.diagnostics = append(s.diagnostics, d)
}

// HadError reports whether anything has been collected since the sink was
// created or last reset.
func (s *Sink) HadError() bool {
	return len(s.diagnostics) > 0
}

// Reset clears all collected diagnostics, after which HadError reports
// false again.
func (s *Sink) Reset() {
	s.diagnostics = nil
}

// Diagnostics returns the collected diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Print writes every diagnostic to w, one per line:
//
//	[line L] Error<where>: <message>
//
// where <where> is " at end" at EOF, " at '<lexeme>'" at an identified
// token, or empty for a plain lex error.
func (s *Sink) Print(w io.Writer) {
	for _, d := range s.diagnostics {
		where := ""
		if d.AtEOF {
			where = " at end"
		} else if d.Token != nil {
			where = fmt.Sprintf(" at '%s'", d.Token.Lexeme)
		}
		fmt.Fprintf(w, "[line %d] Error%s: %s\n", d.Line, where, d.Message)
	}
}
