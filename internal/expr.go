package internal

// Expr is a node producing a value. Every expression may also stand
// alone as a statement.
type Expr interface {
	Stmt
	exprNode()
}

type NumericLiteral struct {
	Value float64
}

type StringLiteral struct {
	Value string
}

type Identifier struct {
	Symbol string
}

type AssignmentExpr struct {
	Assignee string
	Value    Expr
}

// BinaryExpr covers arithmetic and comparison operators
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// LogicalExpr covers and, or, && and ||
type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type UnaryExpr struct {
	Operator Token
	Operand  Expr
}

type CallExpr struct {
	Callee    Expr
	Arguments []Expr
}

func (*NumericLiteral) stmtNode() {}
func (*StringLiteral) stmtNode()  {}
func (*Identifier) stmtNode()     {}
func (*AssignmentExpr) stmtNode() {}
func (*BinaryExpr) stmtNode()     {}
func (*LogicalExpr) stmtNode()    {}
func (*UnaryExpr) stmtNode()      {}
func (*CallExpr) stmtNode()       {}

func (*NumericLiteral) exprNode() {}
func (*StringLiteral) exprNode()  {}
func (*Identifier) exprNode()     {}
func (*AssignmentExpr) exprNode() {}
func (*BinaryExpr) exprNode()     {}
func (*LogicalExpr) exprNode()    {}
func (*UnaryExpr) exprNode()      {}
func (*CallExpr) exprNode()       {}
