/*
File    : go-mix/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/go-mix/interp"
	"github.com/stretchr/testify/assert"
)

// runLine is tested directly rather than through Run, since Run owns a
// readline terminal that has no place in a unit test. Each test drives
// one Interpreter across several lines the way the loop does, with
// program output and diagnostics split into separate buffers.

func TestRunLine_StatePersistsAcrossLines(t *testing.T) {
	var out, errOut bytes.Buffer
	it := interp.NewInterpreter(&out)
	r := NewRepl("", "", "", "")

	r.runLine(&errOut, it, `var x = 40;`)
	r.runLine(&errOut, it, `x = x + 2;`)
	r.runLine(&errOut, it, `print x;`)

	assert.Equal(t, "42\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunLine_FunctionsPersistAcrossLines(t *testing.T) {
	var out, errOut bytes.Buffer
	it := interp.NewInterpreter(&out)
	r := NewRepl("", "", "", "")

	r.runLine(&errOut, it, `fun double(n) { return n * 2; }`)
	r.runLine(&errOut, it, `print double(21);`)

	assert.Equal(t, "42\n", out.String())
}

func TestRunLine_ParseErrorDoesNotPoisonNextLine(t *testing.T) {
	var out, errOut bytes.Buffer
	it := interp.NewInterpreter(&out)
	r := NewRepl("", "", "", "")

	r.runLine(&errOut, it, `var x = ;`)
	assert.Contains(t, errOut.String(), "Error")
	assert.Empty(t, out.String())

	errOut.Reset()
	r.runLine(&errOut, it, `print "still alive";`)
	assert.Equal(t, "still alive\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunLine_RuntimeErrorReportsMessageAndLine(t *testing.T) {
	var out, errOut bytes.Buffer
	it := interp.NewInterpreter(&out)
	r := NewRepl("", "", "", "")

	r.runLine(&errOut, it, `"a" + 1;`)

	assert.Contains(t, errOut.String(), "Operands must be two numbers or two strings.")
	assert.Contains(t, errOut.String(), "[line 1]")
	assert.Empty(t, out.String())
}

func TestRunLine_RuntimeErrorDoesNotDiscardEarlierState(t *testing.T) {
	var out, errOut bytes.Buffer
	it := interp.NewInterpreter(&out)
	r := NewRepl("", "", "", "")

	r.runLine(&errOut, it, `var x = 7;`)
	r.runLine(&errOut, it, `nosuchfn();`)

	r.runLine(&errOut, it, `print x;`)
	assert.Equal(t, "7\n", out.String())
}

func TestRunLine_GlobalRedefinitionIsAllowed(t *testing.T) {
	var out, errOut bytes.Buffer
	it := interp.NewInterpreter(&out)
	r := NewRepl("", "", "", "")

	r.runLine(&errOut, it, `var x = 1;`)
	r.runLine(&errOut, it, `var x = 2;`)
	r.runLine(&errOut, it, `print x;`)

	assert.Equal(t, "2\n", out.String())
}
