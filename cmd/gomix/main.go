/*
File    : go-mix/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the GoMix interpreter. It provides
two modes of operation:
 1. REPL Mode (default): interactive Read-Eval-Print Loop for live coding
 2. File Mode: execute a GoMix source file given as a single argument

The interpreter runs the lexer -> parser -> resolver -> evaluator
pipeline described by the rest of this module.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/go-mix/errs"
	"github.com/akashmaji946/go-mix/interp"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/repl"
	"github.com/akashmaji946/go-mix/resolver"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Exit codes: 0 on success, 64 on CLI usage error, 65 on a compile-phase
// error (lex/parse/resolve), 70 on a runtime error.
const (
	exitOK       = 0
	exitUsage    = 64
	exitCompile  = 65
	exitRuntime  = 70
	progName     = "gomix"
	versionLabel = "v1.0.0"
	authorLabel  = "akashmaji(@iisc.ac.in)"
)

var banner = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██            ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
`

var redColor = color.New(color.FgRed)

// errTooManyArgs marks the "two or more args" usage violation so main can
// print its own usage message instead of cobra's.
var errTooManyArgs = errors.New("too many arguments")

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runMain builds and executes the root command, translating its outcome
// into an exit code. It never calls os.Exit itself so it stays testable.
func runMain(args []string, in io.Reader, out, errOut io.Writer) int {
	code := exitOK
	cmd := newRootCmd(&code, in, out, errOut)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errTooManyArgs) {
			fmt.Fprintf(out, "Usage: %s [script]\n", progName)
			return exitUsage
		}
		return exitUsage
	}
	return code
}

// newRootCmd builds the cobra command tree. code is written by RunE so
// runMain can report the real pipeline exit status even though cobra's
// own Execute() only returns an error/nil.
func newRootCmd(code *int, in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           progName + " [script]",
		Short:         "GoMix - a small dynamically-typed scripting language",
		Version:       versionLabel,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				*code = runFile(args[0], out, errOut)
				return nil
			}
			*code = runRepl(in, out, errOut)
			return nil
		},
	}
	cmd.SetVersionTemplate("GoMix {{.Version}}\n")
	return cmd
}

// runRepl starts the interactive prompt, writing program output to out
// and diagnostics to errOut. Lines are read by readline from the
// terminal; in is not read. The REPL never aborts on a bad line, so this
// always returns 0.
func runRepl(in io.Reader, out, errOut io.Writer) int {
	line := strings.Repeat("-", 66)
	r := repl.NewRepl(banner, versionLabel, authorLabel, line)
	return r.Run(in, out, errOut)
}

// runFile reads path, runs it through lex -> parse -> resolve -> eval, and
// returns the exit status: 0 on success, 65 on a compile-phase error, 70
// on a runtime error.
func runFile(path string, out, errOut io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(errOut, "Could not read file %q: %v\n", path, err)
		return exitCompile
	}

	sink := errs.NewSink()
	lex := lexer.NewLexer(string(source), sink)
	p := parser.NewParser(lex, sink)
	statements := p.Parse()
	if sink.HadError() {
		sink.Print(errOut)
		return exitCompile
	}

	res := resolver.New(sink)
	table := res.Resolve(statements)
	if sink.HadError() {
		sink.Print(errOut)
		return exitCompile
	}

	it := interp.NewInterpreter(out)
	if runErr := it.Interpret(statements, table); runErr != nil {
		if rerr, ok := runErr.(*interp.RuntimeError); ok {
			fmt.Fprintf(errOut, "%s\n[line %d]\n", rerr.Message, rerr.Token.Line)
		} else {
			fmt.Fprintf(errOut, "%v\n", runErr)
		}
		return exitRuntime
	}
	return exitOK
}
