/*
File    : go-mix/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the tree-walking evaluator: it runs a resolved AST
// against a chain of environment.Environment frames and produces the
// program's observable effects (print output, runtime errors). It
// implements both parser.ExprVisitor and parser.StmtVisitor, and it
// implements function.Executor so that function.UserFunction.Call can
// run a closure's body without function importing interp.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/function"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/objects"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/resolver"
)

// RuntimeError is a runtime-phase failure anchored to the token that
// triggered it, so the CLI driver can print the "<message>\n[line L]"
// form without every call site threading a line number through by hand.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok lexer.Token, format string, a ...interface{}) error {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, a...)}
}

// signal is the sum type VisitBlockStmt/VisitIfStmt/VisitWhileStmt check
// after running each nested statement: nil means "kept going normally",
// non-nil means a Return is unwinding and every enclosing statement must
// stop and hand it further up instead of continuing to the next
// statement in its own list. This replaces the panic/recover unwind the
// source uses to exit a call.
type signal struct {
	value objects.GoMixObject
}

// Interpreter walks a resolved AST and evaluates it against a live chain
// of environment frames. globals never changes once constructed; env
// tracks whichever frame is "current" and is swapped out (and always
// restored) around blocks and calls.
type Interpreter struct {
	globals     *environment.Environment
	env         *environment.Environment
	resolutions resolver.Resolutions
	out         io.Writer
}

// NewInterpreter creates an Interpreter that writes `print` output to
// out and has the single native function clock() registered at global
// scope.
func NewInterpreter(out io.Writer) *Interpreter {
	globals := environment.NewEnvironment()
	i := &Interpreter{globals: globals, env: globals, out: out}
	globals.Define("clock", &function.NativeFunction{
		NameStr: "clock",
		Ar:      0,
		Fn: func(arguments []objects.GoMixObject) (objects.GoMixObject, error) {
			return &objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	})
	return i
}

// Interpret runs every top-level statement in order against resolutions,
// the side table the resolver produced for this same AST. Runtime errors
// are fail-fast: the first one stops execution and is returned.
func (i *Interpreter) Interpret(statements []parser.Stmt, resolutions resolver.Resolutions) error {
	i.resolutions = resolutions
	for _, stmt := range statements {
		if _, err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt parser.Stmt) (*signal, error) {
	v, err := stmt.Accept(i)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v.(*signal), nil
}

func (i *Interpreter) evaluate(expr parser.Expr) (objects.GoMixObject, error) {
	v, err := expr.Accept(i)
	if err != nil {
		return nil, err
	}
	return v.(objects.GoMixObject), nil
}

// executeBlock runs statements against env, restoring the interpreter's
// previous environment on every exit path — normal completion, a
// propagating Return signal, or a runtime error.
func (i *Interpreter) executeBlock(statements []parser.Stmt, env *environment.Environment) (*signal, error) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		sig, err := i.execute(stmt)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

// ExecuteFunctionBody implements function.Executor. It runs body in env
// (a fresh frame parented on the callee's closure, already populated
// with its bound parameters) and unwraps any propagating Return into
// the call's result value, defaulting to Nil when the body falls off
// the end without one.
func (i *Interpreter) ExecuteFunctionBody(body []parser.Stmt, env *environment.Environment) (objects.GoMixObject, error) {
	sig, err := i.executeBlock(body, env)
	if err != nil {
		return nil, err
	}
	if sig != nil {
		return sig.value, nil
	}
	return objects.NIL, nil
}

func (i *Interpreter) lookupVariable(name lexer.Token, expr parser.Expr) (objects.GoMixObject, error) {
	if distance, ok := i.resolutions[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	v, err := i.globals.Get(name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	return v, nil
}

// --- StmtVisitor ---

func (i *Interpreter) VisitExpressionStmt(stmt *parser.ExpressionStmt) (interface{}, error) {
	_, err := i.evaluate(stmt.Expression)
	return nil, err
}

func (i *Interpreter) VisitPrintStmt(stmt *parser.PrintStmt) (interface{}, error) {
	v, err := i.evaluate(stmt.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(i.out, v.ToString())
	return nil, nil
}

func (i *Interpreter) VisitVarStmt(stmt *parser.VarStmt) (interface{}, error) {
	value := objects.GoMixObject(objects.NIL)
	if stmt.Initializer != nil {
		v, err := i.evaluate(stmt.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	i.env.Define(stmt.Name.Lexeme, value)
	return nil, nil
}

func (i *Interpreter) VisitBlockStmt(stmt *parser.BlockStmt) (interface{}, error) {
	sig, err := i.executeBlock(stmt.Statements, environment.NewEnclosed(i.env))
	if err != nil {
		return nil, err
	}
	return boxSignal(sig), nil
}

func (i *Interpreter) VisitIfStmt(stmt *parser.IfStmt) (interface{}, error) {
	cond, err := i.evaluate(stmt.Condition)
	if err != nil {
		return nil, err
	}
	if objects.IsTruthy(cond) {
		sig, err := i.execute(stmt.ThenBranch)
		return boxSignal(sig), err
	}
	if stmt.ElseBranch != nil {
		sig, err := i.execute(stmt.ElseBranch)
		return boxSignal(sig), err
	}
	return nil, nil
}

func (i *Interpreter) VisitWhileStmt(stmt *parser.WhileStmt) (interface{}, error) {
	for {
		cond, err := i.evaluate(stmt.Condition)
		if err != nil {
			return nil, err
		}
		if !objects.IsTruthy(cond) {
			return nil, nil
		}
		sig, err := i.execute(stmt.Body)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
}

func (i *Interpreter) VisitFunctionStmt(stmt *parser.FunctionStmt) (interface{}, error) {
	fn := function.NewUserFunction(stmt, i.env)
	i.env.Define(stmt.Name.Lexeme, fn)
	return nil, nil
}

func (i *Interpreter) VisitReturnStmt(stmt *parser.ReturnStmt) (interface{}, error) {
	value := objects.GoMixObject(objects.NIL)
	if stmt.Value != nil {
		v, err := i.evaluate(stmt.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return &signal{value: value}, nil
}

// boxSignal lets execute()'s blanket `v.(*signal)` assertion work whether
// a Visit method returns a live *signal or the untyped nil interface
// Go would otherwise hand back for "(*signal)(nil)".
func boxSignal(sig *signal) interface{} {
	if sig == nil {
		return nil
	}
	return sig
}

// --- ExprVisitor ---

func (i *Interpreter) VisitLiteralExpr(expr *parser.LiteralExpr) (interface{}, error) {
	switch v := expr.Value.(type) {
	case nil:
		return objects.GoMixObject(objects.NIL), nil
	case bool:
		if v {
			return objects.GoMixObject(objects.TRUE), nil
		}
		return objects.GoMixObject(objects.FALSE), nil
	case float64:
		return objects.GoMixObject(&objects.Number{Value: v}), nil
	case string:
		return objects.GoMixObject(&objects.String{Value: v}), nil
	default:
		return nil, fmt.Errorf("internal error: unrecognized literal value %v (%T)", v, v)
	}
}

func (i *Interpreter) VisitGroupingExpr(expr *parser.GroupingExpr) (interface{}, error) {
	v, err := i.evaluate(expr.Expression)
	return objects.GoMixObject(v), err
}

func (i *Interpreter) VisitUnaryExpr(expr *parser.UnaryExpr) (interface{}, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(*objects.Number)
		if !ok {
			return nil, newRuntimeError(expr.Operator, "Operand must be a number.")
		}
		return objects.GoMixObject(&objects.Number{Value: -n.Value}), nil
	case lexer.BANG:
		return objects.GoMixObject(boolObj(!objects.IsTruthy(right))), nil
	}
	return nil, fmt.Errorf("internal error: unrecognized unary operator %s", expr.Operator.Lexeme)
}

func (i *Interpreter) VisitBinaryExpr(expr *parser.BinaryExpr) (interface{}, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.PLUS:
		ln, lok := left.(*objects.Number)
		rn, rok := right.(*objects.Number)
		if lok && rok {
			return objects.GoMixObject(&objects.Number{Value: ln.Value + rn.Value}), nil
		}
		ls, lsok := left.(*objects.String)
		rs, rsok := right.(*objects.String)
		if lsok && rsok {
			return objects.GoMixObject(&objects.String{Value: ls.Value + rs.Value}), nil
		}
		return nil, newRuntimeError(expr.Operator, "Operands must be two numbers or two strings.")
	case lexer.MINUS:
		ln, rn, err := bothNumbers(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.GoMixObject(&objects.Number{Value: ln - rn}), nil
	case lexer.STAR:
		ln, rn, err := bothNumbers(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.GoMixObject(&objects.Number{Value: ln * rn}), nil
	case lexer.SLASH:
		ln, rn, err := bothNumbers(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.GoMixObject(&objects.Number{Value: ln / rn}), nil
	case lexer.GREATER:
		ln, rn, err := bothNumbers(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.GoMixObject(boolObj(ln > rn)), nil
	case lexer.GREATER_EQUAL:
		ln, rn, err := bothNumbers(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.GoMixObject(boolObj(ln >= rn)), nil
	case lexer.LESS:
		ln, rn, err := bothNumbers(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.GoMixObject(boolObj(ln < rn)), nil
	case lexer.LESS_EQUAL:
		ln, rn, err := bothNumbers(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.GoMixObject(boolObj(ln <= rn)), nil
	case lexer.EQUAL_EQUAL:
		return objects.GoMixObject(boolObj(objects.IsEqual(left, right))), nil
	case lexer.BANG_EQUAL:
		return objects.GoMixObject(boolObj(!objects.IsEqual(left, right))), nil
	}
	return nil, fmt.Errorf("internal error: unrecognized binary operator %s", expr.Operator.Lexeme)
}

func bothNumbers(op lexer.Token, left, right objects.GoMixObject) (float64, float64, error) {
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

func boolObj(b bool) *objects.Boolean {
	if b {
		return objects.TRUE
	}
	return objects.FALSE
}

func (i *Interpreter) VisitLogicalExpr(expr *parser.LogicalExpr) (interface{}, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	if expr.Operator.Type == lexer.OR_KEY {
		if objects.IsTruthy(left) {
			return objects.GoMixObject(left), nil
		}
	} else {
		if !objects.IsTruthy(left) {
			return objects.GoMixObject(left), nil
		}
	}
	right, err := i.evaluate(expr.Right)
	return objects.GoMixObject(right), err
}

func (i *Interpreter) VisitVariableExpr(expr *parser.VariableExpr) (interface{}, error) {
	v, err := i.lookupVariable(expr.Name, expr)
	return objects.GoMixObject(v), err
}

func (i *Interpreter) VisitAssignExpr(expr *parser.AssignExpr) (interface{}, error) {
	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := i.resolutions[expr]; ok {
		i.env.AssignAt(distance, expr.Name.Lexeme, value)
		return objects.GoMixObject(value), nil
	}
	if err := i.globals.Assign(expr.Name.Lexeme, value); err != nil {
		return nil, newRuntimeError(expr.Name, "Undefined variable '%s'.", expr.Name.Lexeme)
	}
	return objects.GoMixObject(value), nil
}

func (i *Interpreter) VisitCallExpr(expr *parser.CallExpr) (interface{}, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]objects.GoMixObject, 0, len(expr.Arguments))
	for _, arg := range expr.Arguments {
		v, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, v)
	}

	callable, ok := callee.(objects.Callable)
	if !ok {
		return nil, newRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, newRuntimeError(expr.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	result, err := callable.Call(i, arguments)
	return objects.GoMixObject(result), err
}
