/*
File    : go-mix/parser/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4 // Number of spaces per indentation level

// PrintingVisitor renders an AST as an indented tree, one node per line,
// into an internal buffer. It is a debugging aid: feed it statements via
// PrintStmts (or individual nodes via Accept) and read the result back
// with String.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation level to the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *PrintingVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// nested runs fn one indentation level deeper.
func (p *PrintingVisitor) nested(fn func()) {
	p.Indent += INDENT_SIZE
	fn()
	p.Indent -= INDENT_SIZE
}

// PrintStmts visits every statement in order.
func (p *PrintingVisitor) PrintStmts(statements []Stmt) {
	for _, stmt := range statements {
		_, _ = stmt.Accept(p)
	}
}

// String returns everything printed so far.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// --- ExprVisitor ---

func (p *PrintingVisitor) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if s, ok := expr.Value.(string); ok {
		p.line("Literal %q", s)
	} else {
		p.line("Literal (%v)", expr.Value)
	}
	return nil, nil
}

func (p *PrintingVisitor) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	p.line("Grouping")
	p.nested(func() { _, _ = expr.Expression.Accept(p) })
	return nil, nil
}

func (p *PrintingVisitor) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	p.line("Unary [%s]", expr.Operator.Lexeme)
	p.nested(func() { _, _ = expr.Right.Accept(p) })
	return nil, nil
}

func (p *PrintingVisitor) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	p.line("Binary [%s]", expr.Operator.Lexeme)
	p.nested(func() {
		_, _ = expr.Left.Accept(p)
		_, _ = expr.Right.Accept(p)
	})
	return nil, nil
}

func (p *PrintingVisitor) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	p.line("Logical [%s]", expr.Operator.Lexeme)
	p.nested(func() {
		_, _ = expr.Left.Accept(p)
		_, _ = expr.Right.Accept(p)
	})
	return nil, nil
}

func (p *PrintingVisitor) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	p.line("Variable [%s]", expr.Name.Lexeme)
	return nil, nil
}

func (p *PrintingVisitor) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	p.line("Assign [%s]", expr.Name.Lexeme)
	p.nested(func() { _, _ = expr.Value.Accept(p) })
	return nil, nil
}

func (p *PrintingVisitor) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	p.line("Call (%d args)", len(expr.Arguments))
	p.nested(func() {
		_, _ = expr.Callee.Accept(p)
		for _, arg := range expr.Arguments {
			_, _ = arg.Accept(p)
		}
	})
	return nil, nil
}

// --- StmtVisitor ---

func (p *PrintingVisitor) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	p.line("ExpressionStmt")
	p.nested(func() { _, _ = stmt.Expression.Accept(p) })
	return nil, nil
}

func (p *PrintingVisitor) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	p.line("PrintStmt")
	p.nested(func() { _, _ = stmt.Expression.Accept(p) })
	return nil, nil
}

func (p *PrintingVisitor) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	p.line("VarStmt [%s]", stmt.Name.Lexeme)
	if stmt.Initializer != nil {
		p.nested(func() { _, _ = stmt.Initializer.Accept(p) })
	}
	return nil, nil
}

func (p *PrintingVisitor) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	p.line("BlockStmt")
	p.nested(func() { p.PrintStmts(stmt.Statements) })
	return nil, nil
}

func (p *PrintingVisitor) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	p.line("IfStmt")
	p.nested(func() {
		_, _ = stmt.Condition.Accept(p)
		_, _ = stmt.ThenBranch.Accept(p)
		if stmt.ElseBranch != nil {
			_, _ = stmt.ElseBranch.Accept(p)
		}
	})
	return nil, nil
}

func (p *PrintingVisitor) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	p.line("WhileStmt")
	p.nested(func() {
		_, _ = stmt.Condition.Accept(p)
		_, _ = stmt.Body.Accept(p)
	})
	return nil, nil
}

func (p *PrintingVisitor) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	params := ""
	for i, param := range stmt.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Lexeme
	}
	p.line("FunctionStmt [%s(%s)]", stmt.Name.Lexeme, params)
	p.nested(func() { p.PrintStmts(stmt.Body) })
	return nil, nil
}

func (p *PrintingVisitor) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	p.line("ReturnStmt")
	if stmt.Value != nil {
		p.nested(func() { _, _ = stmt.Value.Accept(p) })
	}
	return nil, nil
}
