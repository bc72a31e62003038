/*
File    : go-mix/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/lexer"
)

// ExprVisitor implements the Visitor design pattern for traversing
// expression nodes of the Abstract Syntax Tree (AST). Each Visit method
// processes one expression kind, enabling operations like evaluation,
// resolution, or printing without type-switching on the node itself.
type ExprVisitor interface {
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitGroupingExpr(expr *GroupingExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitLogicalExpr(expr *LogicalExpr) (interface{}, error)
	VisitVariableExpr(expr *VariableExpr) (interface{}, error)
	VisitAssignExpr(expr *AssignExpr) (interface{}, error)
	VisitCallExpr(expr *CallExpr) (interface{}, error)
}

// StmtVisitor implements the Visitor design pattern for traversing
// statement nodes of the AST. Each Visit method returns an (interface{},
// error) pair rather than a bare error so that the evaluator can thread a
// control-flow signal (normal completion vs. a non-local return in
// progress) back up through nested statements without resorting to
// panic/recover. The resolver, which has no use for that signal, simply
// returns (nil, nil) throughout.
type StmtVisitor interface {
	VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitVarStmt(stmt *VarStmt) (interface{}, error)
	VisitBlockStmt(stmt *BlockStmt) (interface{}, error)
	VisitIfStmt(stmt *IfStmt) (interface{}, error)
	VisitWhileStmt(stmt *WhileStmt) (interface{}, error)
	VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error)
	VisitReturnStmt(stmt *ReturnStmt) (interface{}, error)
}

// Expr is the base interface for every expression node. Accept dispatches
// to the matching ExprVisitor method; the node's own pointer identity
// doubles as its resolver key, so no separate NodeID field is needed —
// the resolver's side table is keyed on the *Expr pointer itself.
type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}

// Stmt is the base interface for every statement node.
type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}

// LiteralExpr holds a constant value parsed directly from a token: a
// number, string, boolean, or nil.
type LiteralExpr struct {
	Value interface{} // float64, string, bool, or nil
}

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr represents a parenthesized expression: (expr). It exists
// purely to make the AST shape mirror the source; it carries no extra
// semantics once parsed.
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr represents a prefix operator applied to one operand: -x, !x.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr represents an infix arithmetic or comparison operator
// applied to two operands: a + b, a < b, a == b.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr represents `and`/`or`. Unlike BinaryExpr, evaluation must
// short-circuit: the evaluator's visit method decides whether to evaluate
// Right at all, and the result is whichever operand's value decided the
// outcome, not a coerced boolean.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// VariableExpr reads the value bound to an identifier.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr assigns Value to the variable already bound to Name. Name is
// not itself an Expr — only identifiers are valid assignment targets in
// this grammar, so the parser enforces that shape before constructing the
// node rather than the evaluator discovering it at runtime.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// CallExpr represents a function call: callee(arg1, arg2, ...). Paren is
// the closing ")" token, kept so runtime arity/type errors can report a
// line number even when Callee spans multiple lines.
type CallExpr struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// ExpressionStmt evaluates an expression and discards the result — the
// `expr;` statement form.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its stringified value,
// followed by a newline, to the interpreter's output stream.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// VarStmt declares a new variable in the current scope, optionally
// initializing it. A nil Initializer means the variable starts bound to
// nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// BlockStmt groups statements that share one lexical scope: { ... }.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// IfStmt is a conditional with an optional else branch. ElseBranch is nil
// when the source had no `else`.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// WhileStmt is a condition-guarded loop. The parser also desugars `for`
// loops into a WhileStmt wrapped in a BlockStmt, so this is the only loop
// construct the resolver and evaluator need to know about.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function. Params holds each parameter's
// identifier token (for resolver declarations and runtime binding); Body
// is the function's statement list, evaluated in a fresh environment
// parented on the function's closure.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// ReturnStmt exits the enclosing function with Value (nil Value returns
// nil). The resolver rejects a ReturnStmt that is not lexically inside a
// function body.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }
