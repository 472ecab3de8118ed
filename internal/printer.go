package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders a syntax tree node as an s-expression
func Sprint(node Stmt) string {
	switch n := node.(type) {
	case *Program:
		return "(program" + sprintBody(n.Body) + ")"
	case *VarDeclaration:
		if n.Value == nil {
			return fmt.Sprintf("(%s %s)", n.Kind, n.Identifier)
		}
		return fmt.Sprintf("(%s %s %s)", n.Kind, n.Identifier, Sprint(n.Value))
	case *FunctionDeclaration:
		return fmt.Sprintf("(fn %s (%s)%s)", n.Name, strings.Join(n.Parameters, ", "), sprintBody(n.Body))
	case *IfElseStatement:
		out := fmt.Sprintf("(if (then %s %s)", Sprint(n.Check), sprintScope(n.Body))
		for _, elif := range n.ChildChecks {
			out += fmt.Sprintf(" (elif %s %s)", Sprint(elif.Check), sprintScope(elif.Body))
		}
		if n.Else != nil {
			out += fmt.Sprintf(" (else %s)", sprintScope(n.Else))
		}
		return out + ")"
	case *WhileStatement:
		return fmt.Sprintf("(while %s %s)", Sprint(n.Check), sprintScope(n.Body))
	case *NumericLiteral:
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	case *StringLiteral:
		return "\"" + n.Value + "\""
	case *Identifier:
		return n.Symbol
	case *AssignmentExpr:
		return fmt.Sprintf("(set %s %s)", n.Assignee, Sprint(n.Value))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, Sprint(n.Left), Sprint(n.Right))
	case *LogicalExpr:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, Sprint(n.Left), Sprint(n.Right))
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", n.Operator.Lexeme, Sprint(n.Operand))
	case *CallExpr:
		out := "(call " + Sprint(n.Callee)
		for _, arg := range n.Arguments {
			out += " " + Sprint(arg)
		}
		return out + ")"
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("<%T>", node)
}

func sprintBody(stmts []Stmt) string {
	out := ""
	for _, s := range stmts {
		out += " " + Sprint(s)
	}
	return out
}

func sprintScope(stmts []Stmt) string {
	return "(scope" + sprintBody(stmts) + ")"
}
