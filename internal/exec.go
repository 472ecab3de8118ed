package internal

import (
	"github.com/sirupsen/logrus"
)

// ExprEvaluator evaluates expression nodes for the statement evaluator
type ExprEvaluator interface {
	Evaluate(expr Expr, scope *Scope) (Value, error)
}

// Interpreter walks statement trees
type Interpreter struct {
	exprs ExprEvaluator
	log   *logrus.Entry
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithExprEvaluator replaces the built-in expression evaluator
func WithExprEvaluator(e ExprEvaluator) Option {
	return func(in *Interpreter) {
		in.exprs = e
	}
}

// WithLogger sends evaluation traces to logger
func WithLogger(logger *logrus.Logger) Option {
	return func(in *Interpreter) {
		in.log = logrus.NewEntry(logger)
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		log: logrus.NewEntry(logrus.StandardLogger()),
	}
	in.exprs = &exprEvaluator{exec: in}
	for _, opt := range opts {
		opt(in)
	}
	in.log = in.log.WithField("component", "exec")
	return in
}

// Evaluate runs node against scope and returns the value it produces
func (in *Interpreter) Evaluate(node Stmt, scope *Scope) (Value, error) {
	switch n := node.(type) {
	case *Program:
		return in.evalProgram(n, scope)
	case *VarDeclaration:
		return in.evalVarDeclaration(n, scope)
	case *FunctionDeclaration:
		return in.evalFnDeclaration(n, scope)
	case *IfElseStatement:
		return in.evalIfElse(n, scope)
	case *WhileStatement:
		return in.evalWhile(n, scope)
	case Expr:
		return in.exprs.Evaluate(n, scope)
	}
	return nil, &RuntimeError{Err: ErrUnsupportedStatement, Detail: Sprint(node)}
}

func (in *Interpreter) evalProgram(program *Program, scope *Scope) (Value, error) {
	return in.executeBlock(program.Body, scope)
}

func (in *Interpreter) evalVarDeclaration(decl *VarDeclaration, scope *Scope) (Value, error) {
	value := Null
	if decl.Value != nil {
		var err error
		if value, err = in.exprs.Evaluate(decl.Value, scope); err != nil {
			return nil, err
		}
	}
	in.log.WithFields(logrus.Fields{
		"name":  decl.Identifier,
		"kind":  decl.Kind,
		"depth": scope.Depth(),
	}).Trace("declare")
	return scope.Declare(decl.Identifier, value, decl.Constant())
}

func (in *Interpreter) evalFnDeclaration(decl *FunctionDeclaration, scope *Scope) (Value, error) {
	fn := &FunctionValue{
		Name:       decl.Name,
		Parameters: decl.Parameters,
		Scope:      scope,
		Body:       decl.Body,
	}
	in.log.WithFields(logrus.Fields{
		"name":  decl.Name,
		"depth": scope.Depth(),
	}).Trace("declare function")
	return scope.Declare(decl.Name, fn, true)
}

// CodeBlock runs block in a new scope nested in parent
func (in *Interpreter) CodeBlock(block []Stmt, parent *Scope) (Value, error) {
	return in.executeBlock(block, NewScope(parent))
}

func (in *Interpreter) executeBlock(stmts []Stmt, scope *Scope) (Value, error) {
	in.log.WithField("depth", scope.Depth()).Trace("enter block")
	result := Null
	for _, s := range stmts {
		value, err := in.Evaluate(s, scope)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}

func (in *Interpreter) evalIfElse(stmt *IfElseStatement, scope *Scope) (Value, error) {
	ok, err := in.check(stmt.Check, scope, "if")
	if err != nil {
		return nil, err
	}
	if ok {
		_, err := in.CodeBlock(stmt.Body, scope)
		return Null, err
	}
	for _, elif := range stmt.ChildChecks {
		ok, err := in.check(elif.Check, scope, "if")
		if err != nil {
			return nil, err
		}
		if ok {
			_, err := in.CodeBlock(elif.Body, scope)
			return Null, err
		}
	}
	if stmt.Else != nil {
		_, err := in.CodeBlock(stmt.Else, scope)
		return Null, err
	}
	return Null, nil
}

func (in *Interpreter) evalWhile(stmt *WhileStatement, scope *Scope) (Value, error) {
	for {
		ok, err := in.check(stmt.Check, scope, "while")
		if err != nil {
			return nil, err
		}
		if !ok {
			return Null, nil
		}
		if _, err := in.CodeBlock(stmt.Body, scope); err != nil {
			return nil, err
		}
	}
}

// check evaluates a condition, which has to be a boolean
func (in *Interpreter) check(cond Expr, scope *Scope, keyword string) (bool, error) {
	value, err := in.exprs.Evaluate(cond, scope)
	if err != nil {
		return false, err
	}
	b, ok := value.(BooleanValue)
	if !ok {
		return false, typeMismatch("%s condition must be boolean, got %s", keyword, typeName(value))
	}
	return bool(b), nil
}
