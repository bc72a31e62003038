/*
File    : go-mix/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements the two concrete objects.Callable kinds
// GoMix has: UserFunction (a `fun` declaration bundled with the
// environment frame it closed over) and NativeFunction (a Go-backed
// builtin, currently just clock()). Both are thin — UserFunction.Call
// pushes a fresh environment and binds the parameters, while running the
// body and unwrapping a non-local return live in interp, since that is
// the one package that already knows how to execute a statement list.
package function

import (
	"fmt"

	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/objects"
	"github.com/akashmaji946/go-mix/parser"
)

// Executor is the minimal slice of *interp.Interpreter that function.Call
// implementations need: the ability to run a function body in a fresh
// environment. Declaring it here instead of importing interp directly
// avoids a function <-> interp import cycle, since interp must in turn
// construct UserFunction values from FunctionStmt nodes.
type Executor interface {
	ExecuteFunctionBody(body []parser.Stmt, env *environment.Environment) (objects.GoMixObject, error)
}

// UserFunction is a `fun` declaration together with the environment it
// closed over. Capturing Closure by pointer (never copying it) is what
// lets two functions declared in the same block see each other's later
// assignments to shared locals.
type UserFunction struct {
	Declaration *parser.FunctionStmt
	Closure     *environment.Environment
}

// NewUserFunction builds a UserFunction over decl, closing over closure.
func NewUserFunction(decl *parser.FunctionStmt, closure *environment.Environment) *UserFunction {
	return &UserFunction{Declaration: decl, Closure: closure}
}

// GetType implements objects.GoMixObject.
func (f *UserFunction) GetType() objects.GoMixType { return objects.FunctionType }

// ToString implements objects.GoMixObject.
func (f *UserFunction) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// ToObject implements objects.GoMixObject.
func (f *UserFunction) ToObject() string {
	args := ""
	for i, p := range f.Declaration.Params {
		if i > 0 {
			args += ", "
		}
		args += p.Lexeme
	}
	return fmt.Sprintf("<func[%s(%s)]>", f.Declaration.Name.Lexeme, args)
}

// Arity implements objects.Callable.
func (f *UserFunction) Arity() int {
	return len(f.Declaration.Params)
}

// Call implements objects.Callable. interpreter must be an Executor (the
// concrete *interp.Interpreter satisfies this); the call pushes a new
// environment parented on the function's closure — not on the caller's
// environment, which is what gives GoMix lexical rather than dynamic
// scoping — binds each parameter, and runs the body.
func (f *UserFunction) Call(interpreter interface{}, arguments []objects.GoMixObject) (objects.GoMixObject, error) {
	exec, ok := interpreter.(Executor)
	if !ok {
		return nil, fmt.Errorf("internal error: interpreter does not implement function.Executor")
	}

	callEnv := environment.NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, arguments[i])
	}
	return exec.ExecuteFunctionBody(f.Declaration.Body, callEnv)
}

// NativeFunction wraps a Go function as a GoMix callable, the mechanism
// behind clock() and any other builtin registered into the global
// environment at startup.
type NativeFunction struct {
	NameStr string
	Ar      int
	Fn      func(arguments []objects.GoMixObject) (objects.GoMixObject, error)
}

// GetType implements objects.GoMixObject.
func (n *NativeFunction) GetType() objects.GoMixType { return objects.FunctionType }

// ToString implements objects.GoMixObject.
func (n *NativeFunction) ToString() string {
	return fmt.Sprintf("<native fn %s>", n.NameStr)
}

// ToObject implements objects.GoMixObject.
func (n *NativeFunction) ToObject() string {
	return fmt.Sprintf("<native[%s]>", n.NameStr)
}

// Arity implements objects.Callable.
func (n *NativeFunction) Arity() int { return n.Ar }

// Call implements objects.Callable. Native functions never need the
// interpreter handle, unlike UserFunction.
func (n *NativeFunction) Call(_ interface{}, arguments []objects.GoMixObject) (objects.GoMixObject, error) {
	return n.Fn(arguments)
}
