package internal

import "math"

type operator string

const (
	opAdd operator = "+"
	opSub operator = "-"
	opMul operator = "*"
	opDiv operator = "/"
	opMod operator = "%"
	opEq  operator = "=="
	opNeq operator = "!="
	opGt  operator = ">"
	opGte operator = ">="
	opLt  operator = "<"
	opLte operator = "<="
	opNot operator = "!"
	opAnd operator = "and"
	opOr  operator = "or"
)

// logicalOperators maps both spellings of the logical operators
var logicalOperators = map[string]operator{
	"and": opAnd,
	"&&":  opAnd,
	"or":  opOr,
	"||":  opOr,
}

var numberOperations = map[operator]func(x, y float64) Value{
	opAdd: func(x, y float64) Value { return NumberValue(x + y) },
	opSub: func(x, y float64) Value { return NumberValue(x - y) },
	opMul: func(x, y float64) Value { return NumberValue(x * y) },
	opDiv: func(x, y float64) Value { return NumberValue(x / y) },
	opMod: func(x, y float64) Value { return NumberValue(math.Mod(x, y)) },
	opGt:  func(x, y float64) Value { return BooleanValue(x > y) },
	opGte: func(x, y float64) Value { return BooleanValue(x >= y) },
	opLt:  func(x, y float64) Value { return BooleanValue(x < y) },
	opLte: func(x, y float64) Value { return BooleanValue(x <= y) },
}

var stringOperations = map[operator]func(x, y string) Value{
	opAdd: func(x, y string) Value { return StringValue(x + y) },
	opGt:  func(x, y string) Value { return BooleanValue(x > y) },
	opGte: func(x, y string) Value { return BooleanValue(x >= y) },
	opLt:  func(x, y string) Value { return BooleanValue(x < y) },
	opLte: func(x, y string) Value { return BooleanValue(x <= y) },
}

// applyBinary evaluates left op right. Equality is defined for every
// pair of values, the rest only for two numbers or two strings.
func applyBinary(op operator, left, right Value) (Value, error) {
	switch op {
	case opEq:
		return BooleanValue(left == right), nil
	case opNeq:
		return BooleanValue(left != right), nil
	}

	switch x := left.(type) {
	case NumberValue:
		if y, ok := right.(NumberValue); ok {
			if apply, ok := numberOperations[op]; ok {
				return apply(float64(x), float64(y)), nil
			}
		}
	case StringValue:
		if y, ok := right.(StringValue); ok {
			if apply, ok := stringOperations[op]; ok {
				return apply(string(x), string(y)), nil
			}
		}
	}
	return nil, typeMismatch("operator %s not defined for %s and %s", op, left.TypeName(), right.TypeName())
}

func applyUnary(op operator, operand Value) (Value, error) {
	switch op {
	case opNot:
		if b, ok := operand.(BooleanValue); ok {
			return !b, nil
		}
	case opSub:
		if n, ok := operand.(NumberValue); ok {
			return -n, nil
		}
	}
	return nil, typeMismatch("operator %s not defined for %s", op, operand.TypeName())
}
