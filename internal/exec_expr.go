package internal

// exprEvaluator is the expression evaluator an Interpreter uses unless
// another one is configured
type exprEvaluator struct {
	exec *Interpreter
}

func (e *exprEvaluator) Evaluate(expr Expr, scope *Scope) (Value, error) {
	switch n := expr.(type) {
	case *NumericLiteral:
		return NumberValue(n.Value), nil
	case *StringLiteral:
		return StringValue(n.Value), nil
	case *Identifier:
		return scope.Lookup(n.Symbol)
	case *AssignmentExpr:
		value, err := e.Evaluate(n.Value, scope)
		if err != nil {
			return nil, err
		}
		return scope.Assign(n.Assignee, value)
	case *BinaryExpr:
		return e.evalBinary(n, scope)
	case *LogicalExpr:
		return e.evalLogical(n, scope)
	case *UnaryExpr:
		operand, err := e.Evaluate(n.Operand, scope)
		if err != nil {
			return nil, err
		}
		return applyUnary(operator(n.Operator.Lexeme), operand)
	case *CallExpr:
		return e.evalCall(n, scope)
	}
	return nil, &RuntimeError{Err: ErrUnsupportedStatement, Detail: Sprint(expr)}
}

func (e *exprEvaluator) evalBinary(expr *BinaryExpr, scope *Scope) (Value, error) {
	left, err := e.Evaluate(expr.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(expr.Right, scope)
	if err != nil {
		return nil, err
	}
	return applyBinary(operator(expr.Operator.Lexeme), left, right)
}

func (e *exprEvaluator) evalLogical(expr *LogicalExpr, scope *Scope) (Value, error) {
	op, ok := logicalOperators[expr.Operator.Lexeme]
	if !ok {
		return nil, typeMismatch("unknown logical operator %s", expr.Operator.Lexeme)
	}

	left, err := e.boolean(expr.Left, scope, op)
	if err != nil {
		return nil, err
	}
	if op == opOr && left {
		return BooleanValue(true), nil
	}
	if op == opAnd && !left {
		return BooleanValue(false), nil
	}
	right, err := e.boolean(expr.Right, scope, op)
	if err != nil {
		return nil, err
	}
	return BooleanValue(right), nil
}

func (e *exprEvaluator) boolean(expr Expr, scope *Scope, op operator) (bool, error) {
	value, err := e.Evaluate(expr, scope)
	if err != nil {
		return false, err
	}
	b, ok := value.(BooleanValue)
	if !ok {
		return false, typeMismatch("operator %s expects booleans, got %s", op, value.TypeName())
	}
	return bool(b), nil
}

func (e *exprEvaluator) evalCall(expr *CallExpr, scope *Scope) (Value, error) {
	callee, err := e.Evaluate(expr.Callee, scope)
	if err != nil {
		return nil, err
	}
	arguments := make([]Value, len(expr.Arguments))
	for i := range expr.Arguments {
		if arguments[i], err = e.Evaluate(expr.Arguments[i], scope); err != nil {
			return nil, err
		}
	}

	fn, isFn := callee.(*FunctionValue)
	if !isFn {
		return nil, typeMismatch("%s is not callable", callee.TypeName())
	}
	return e.exec.Call(fn, arguments)
}
