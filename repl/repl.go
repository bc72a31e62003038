/*
File    : go-mix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
Each line is lexed, parsed, resolved and interpreted against one
long-lived Interpreter so variables and functions persist across lines;
a bad line reports its diagnostics and returns to the prompt instead of
exiting, and the error sink is reset between lines so one mistake never
poisons the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-mix/errs"
	"github.com/akashmaji946/go-mix/interp"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output. blueColor/greenColor/cyanColor
// decorate the startup banner; redColor marks diagnostics.
var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
	redColor   = color.New(color.FgRed)
)

// Prompt is the exact prompt string the REPL contract requires.
const Prompt = "> "

// Repl is a configured interactive session. Banner/Version/Author/Line
// are purely decorative and printed once at startup; none of them
// affect the prompt/EOF/error-reset contract below.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
}

// NewRepl creates a Repl that prints banner, version and author once at
// startup, separated by line.
func NewRepl(banner, version, author, line string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line}
}

func (r *Repl) printBanner(w io.Writer) {
	if r.Banner == "" {
		return
	}
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "Version: %s | Author: %s\n", r.Version, r.Author)
	cyanColor.Fprintln(w, "Type '.exit' or press Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Run starts the loop, reading lines via readline (history, line
// editing) until EOF or ".exit", evaluating each against a single
// Interpreter so state persists across lines. Program output goes to
// out, diagnostics to errOut. It returns the process exit status:
// always 0, since a bad line in the REPL never aborts the session.
func (r *Repl) Run(_ io.Reader, out, errOut io.Writer) int {
	r.printBanner(out)

	rl, err := readline.New(Prompt)
	if err != nil {
		redColor.Fprintf(errOut, "%v\n", err)
		return 0
	}
	defer rl.Close()

	it := interp.NewInterpreter(out)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt
			return 0
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return 0
		}
		rl.SaveHistory(line)

		r.runLine(errOut, it, line)
	}
}

// runLine lexes, parses, resolves, and interprets one line against a
// fresh Sink, so a mistake on this line never suppresses diagnostics on
// the next one. Diagnostics are written to errOut; the program's own
// print output goes wherever it was constructed over.
func (r *Repl) runLine(errOut io.Writer, it *interp.Interpreter, line string) {
	sink := errs.NewSink()
	lex := lexer.NewLexer(line, sink)
	p := parser.NewParser(lex, sink)
	statements := p.Parse()
	if sink.HadError() {
		sink.Print(redColorWriter{errOut})
		return
	}

	res := resolver.New(sink)
	table := res.Resolve(statements)
	if sink.HadError() {
		sink.Print(redColorWriter{errOut})
		return
	}

	if err := it.Interpret(statements, table); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			redColor.Fprintf(errOut, "%s\n[line %d]\n", rerr.Message, rerr.Token.Line)
		} else {
			redColor.Fprintf(errOut, "%v\n", err)
		}
	}
}

// redColorWriter adapts errs.Sink.Print (which writes plain lines) to
// colorized stderr-style output without duplicating Sink's formatting.
type redColorWriter struct {
	w io.Writer
}

func (c redColorWriter) Write(p []byte) (int, error) {
	redColor.Fprint(c.w, string(p))
	return len(p), nil
}
