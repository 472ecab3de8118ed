package internal

// Stmt is a node of the syntax tree the evaluator can run. The set of
// statements is closed: only types in this package implement it.
type Stmt interface {
	stmtNode()
}

// Program is the root of a parsed source file
type Program struct {
	Body []Stmt
}

// DeclKind is the keyword a variable was declared with
type DeclKind int

const (
	DeclVar DeclKind = iota
	DeclConst
	DeclFinal
)

func (k DeclKind) String() string {
	switch k {
	case DeclConst:
		return "const"
	case DeclFinal:
		return "final"
	}
	return "var"
}

// VarDeclaration declares Identifier. Value is nil when no initializer
// was written.
type VarDeclaration struct {
	Kind       DeclKind
	Identifier string
	Value      Expr
}

// Constant reports whether the binding rejects assignment. const and
// final behave the same.
func (d *VarDeclaration) Constant() bool {
	return d.Kind != DeclVar
}

type FunctionDeclaration struct {
	Name       string
	Parameters []string
	Body       []Stmt
}

// ElseIf is one "else if" arm of an IfElseStatement
type ElseIf struct {
	Check Expr
	Body  []Stmt
}

// IfElseStatement has no else branch when Else is nil
type IfElseStatement struct {
	Check       Expr
	Body        []Stmt
	ChildChecks []ElseIf
	Else        []Stmt
}

type WhileStatement struct {
	Check Expr
	Body  []Stmt
}

func (*Program) stmtNode()             {}
func (*VarDeclaration) stmtNode()      {}
func (*FunctionDeclaration) stmtNode() {}
func (*IfElseStatement) stmtNode()     {}
func (*WhileStatement) stmtNode()      {}
