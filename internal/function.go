package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func (f *FunctionValue) arity() int {
	return len(f.Parameters)
}

// Call runs fn's body in a new scope nested in the scope fn was declared
// in, with the parameters bound as variables. The value of the last
// statement of the body is the result.
func (in *Interpreter) Call(fn *FunctionValue, arguments []Value) (Value, error) {
	if len(arguments) != fn.arity() {
		return nil, &RuntimeError{
			Err:    ErrInvalidNumberArguments,
			Name:   fn.Name,
			Detail: fmt.Sprintf("expected %d, got %d", fn.arity(), len(arguments)),
		}
	}

	env := NewScope(fn.Scope)
	for i, param := range fn.Parameters {
		if _, err := env.Declare(param, arguments[i], false); err != nil {
			return nil, err
		}
	}

	in.log.WithFields(logrus.Fields{
		"name":  fn.Name,
		"depth": env.Depth(),
	}).Debug("call")

	return in.executeBlock(fn.Body, env)
}
