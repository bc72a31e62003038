/*
File    : go-mix/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs the single static pass between parsing and
// evaluation: it walks the AST once, tracking which lexical scope each
// variable reference resolves to, and records the exact number of
// enclosing-environment hops (the "depth") each Variable/Assign node
// needs at runtime. The evaluator then uses environment.GetAt/AssignAt
// instead of walking and testing frames live, and — just as importantly —
// the resolver catches a handful of static errors parsing alone cannot:
// reading a local variable in its own initializer, redeclaring a name
// twice in one block, and `return` outside any function.
package resolver

import (
	"github.com/akashmaji946/go-mix/errs"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
)

// functionType tracks what kind of function (if any) the resolver is
// currently inside of, so a bare `return` at the top level can be
// rejected.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
)

// Resolutions maps each Variable/Assign expression node to the number of
// environment frames to walk outward to find its binding. Keyed on
// pointer identity (the concrete *parser.VariableExpr / *parser.AssignExpr
// value), since the AST is never copied after parsing.
type Resolutions map[parser.Expr]int

// Resolver walks a parsed program once, emitting a Resolutions table and
// reporting static errors to a Sink.
type Resolver struct {
	sink        *errs.Sink
	scopes      []map[string]bool
	resolutions Resolutions
	currentFn   functionType
}

// New creates a Resolver that reports to sink.
func New(sink *errs.Sink) *Resolver {
	return &Resolver{
		sink:        sink,
		resolutions: make(Resolutions),
		currentFn:   functionNone,
	}
}

// Resolve walks every top-level statement and returns the completed
// Resolutions table. Callers should check sink.HadError() afterward
// before handing the table to the evaluator.
func (r *Resolver) Resolve(statements []parser.Stmt) Resolutions {
	r.resolveStmts(statements)
	return r.resolutions
}

func (r *Resolver) resolveStmts(statements []parser.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	_, _ = stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr parser.Expr) {
	_, _ = expr.Accept(r)
}

// beginScope pushes a fresh, empty declared-names map.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

// endScope pops the innermost scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare records that a name exists in the current scope but is not yet
// ready to be referenced (its initializer, if any, hasn't resolved yet).
// Declaring the same name twice in one block is a static error — GoMix
// has no use case for shadowing within a single scope, unlike shadowing
// an outer scope, which is fine.
func (r *Resolver) declare(tok lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[tok.Lexeme]; ok {
		r.sink.ReportAt(tok, "Already a variable with this name in this scope.")
	}
	scope[tok.Lexeme] = false
}

// declareName records name in the current scope as declared but not yet
// defined, without the duplicate-name check that declare performs.
func (r *Resolver) declareName(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

// defineName marks name as fully initialized and ready to be referenced.
func (r *Resolver) defineName(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal finds the innermost scope that declares name and records
// its distance from the current scope into the resolutions table. If no
// scope declares it, the reference is left unresolved here and falls
// through to the environment's global lookup at runtime.
func (r *Resolver) resolveLocal(expr parser.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.resolutions[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// resolveFunction resolves a function's parameters and body in their own
// scope, tracking currentFn so a return inside it is legal and restoring
// the previous value on the way out (functions can nest).
func (r *Resolver) resolveFunction(decl *parser.FunctionStmt, kind functionType) {
	enclosingFn := r.currentFn
	r.currentFn = kind

	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param)
		r.defineName(param.Lexeme)
	}
	r.resolveStmts(decl.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

// --- StmtVisitor ---

func (r *Resolver) VisitExpressionStmt(stmt *parser.ExpressionStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(stmt *parser.PrintStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitVarStmt(stmt *parser.VarStmt) (interface{}, error) {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.defineName(stmt.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitBlockStmt(stmt *parser.BlockStmt) (interface{}, error) {
	r.beginScope()
	r.resolveStmts(stmt.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitIfStmt(stmt *parser.IfStmt) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(stmt *parser.WhileStmt) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(stmt *parser.FunctionStmt) (interface{}, error) {
	// A function's own name is declared and defined before its body is
	// resolved, so the function can refer to itself for recursion.
	r.declare(stmt.Name)
	r.defineName(stmt.Name.Lexeme)
	r.resolveFunction(stmt, functionFunction)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(stmt *parser.ReturnStmt) (interface{}, error) {
	if r.currentFn == functionNone {
		r.sink.ReportAt(stmt.Keyword, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		r.resolveExpr(stmt.Value)
	}
	return nil, nil
}

// --- ExprVisitor ---

func (r *Resolver) VisitLiteralExpr(expr *parser.LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(expr *parser.GroupingExpr) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *parser.UnaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *parser.BinaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *parser.LogicalExpr) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(expr *parser.VariableExpr) (interface{}, error) {
	if len(r.scopes) > 0 {
		if ready, ok := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; ok && !ready {
			r.sink.ReportAt(expr.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(expr *parser.AssignExpr) (interface{}, error) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *parser.CallExpr) (interface{}, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}
