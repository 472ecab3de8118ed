package internal

import (
	"fmt"
	"strconv"
)

// Value is anything an expression or statement can produce
type Value interface {
	TypeName() string
	String() string
}

func typeName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.TypeName()
}

type NullValue struct{}

// Null is the only NullValue
var Null Value = NullValue{}

func (NullValue) TypeName() string { return "null" }
func (NullValue) String() string   { return "null" }

type NumberValue float64

func (NumberValue) TypeName() string { return "number" }
func (n NumberValue) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

type BooleanValue bool

func (BooleanValue) TypeName() string { return "boolean" }
func (b BooleanValue) String() string {
	return fmt.Sprintf("%v", bool(b))
}

type StringValue string

func (StringValue) TypeName() string { return "string" }
func (s StringValue) String() string { return string(s) }

// Repr quotes the string
func (s StringValue) Repr() string {
	return "\"" + string(s) + "\""
}

// FunctionValue is a declared function together with the scope it closes over
type FunctionValue struct {
	Name       string
	Parameters []string
	Scope      *Scope
	Body       []Stmt
}

func (*FunctionValue) TypeName() string { return "function" }

func (f *FunctionValue) String() string {
	name := "anonymous"
	if f.Name != "" {
		name = f.Name
	}
	return fmt.Sprintf("<fn %s>", name)
}
