/*
File    : go-mix/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/objects"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor satisfies Executor without depending on interp, so this
// package can test UserFunction.Call in isolation.
type fakeExecutor struct {
	gotBody []parser.Stmt
	gotEnv  *environment.Environment
	result  objects.GoMixObject
	err     error
}

func (f *fakeExecutor) ExecuteFunctionBody(body []parser.Stmt, env *environment.Environment) (objects.GoMixObject, error) {
	f.gotBody = body
	f.gotEnv = env
	return f.result, f.err
}

func TestUserFunction_ArityMatchesParamCount(t *testing.T) {
	decl := &parser.FunctionStmt{
		Name:   lexer.Token{Lexeme: "add"},
		Params: []lexer.Token{{Lexeme: "a"}, {Lexeme: "b"}},
	}
	fn := NewUserFunction(decl, environment.NewEnvironment())
	assert.Equal(t, 2, fn.Arity())
}

func TestUserFunction_ToStringIsFnName(t *testing.T) {
	decl := &parser.FunctionStmt{Name: lexer.Token{Lexeme: "greet"}}
	fn := NewUserFunction(decl, environment.NewEnvironment())
	assert.Equal(t, "<fn greet>", fn.ToString())
}

func TestUserFunction_CallBindsParamsInEnclosedClosureFrame(t *testing.T) {
	closure := environment.NewEnvironment()
	decl := &parser.FunctionStmt{
		Name:   lexer.Token{Lexeme: "add"},
		Params: []lexer.Token{{Lexeme: "a"}, {Lexeme: "b"}},
	}
	fn := NewUserFunction(decl, closure)

	exec := &fakeExecutor{result: &objects.Number{Value: 3}}
	args := []objects.GoMixObject{&objects.Number{Value: 1}, &objects.Number{Value: 2}}

	result, err := fn.Call(exec, args)
	require.NoError(t, err)
	assert.Equal(t, float64(3), result.(*objects.Number).Value)

	a, err := exec.gotEnv.Get("a")
	require.NoError(t, err)
	assert.Equal(t, float64(1), a.(*objects.Number).Value)

	b, err := exec.gotEnv.Get("b")
	require.NoError(t, err)
	assert.Equal(t, float64(2), b.(*objects.Number).Value)
}

func TestUserFunction_CallRejectsNonExecutorInterpreter(t *testing.T) {
	decl := &parser.FunctionStmt{Name: lexer.Token{Lexeme: "f"}}
	fn := NewUserFunction(decl, environment.NewEnvironment())

	_, err := fn.Call("not an executor", nil)
	assert.Error(t, err)
}

func TestNativeFunction_CallInvokesWrappedGoFunc(t *testing.T) {
	called := false
	native := &NativeFunction{
		NameStr: "clock",
		Ar:      0,
		Fn: func(arguments []objects.GoMixObject) (objects.GoMixObject, error) {
			called = true
			return &objects.Number{Value: 1.5}, nil
		},
	}

	assert.Equal(t, 0, native.Arity())
	assert.Equal(t, "<native fn clock>", native.ToString())

	result, err := native.Call(nil, nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 1.5, result.(*objects.Number).Value)
}
