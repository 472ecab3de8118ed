package internal

// RunProgram evaluates program in a fresh global scope and returns the
// value of its last statement together with the scope it left behind
func RunProgram(program *Program, opts ...Option) (Value, *Scope, error) {
	globals := NewGlobalScope()
	value, err := NewInterpreter(opts...).Evaluate(program, globals)
	if err != nil {
		return nil, globals, err
	}
	return value, globals, nil
}

// RunSource tokenizes, parses and evaluates source on a fresh interpreter
func RunSource(source string, cfg Config, opts ...Option) (Value, *Scope, error) {
	program, err := ParseSource(source, cfg.LexerOptions()...)
	if err != nil {
		return nil, nil, err
	}
	return RunProgram(program, opts...)
}

// Session evaluates successive pieces of source against one global scope
type Session struct {
	cfg     Config
	exec    *Interpreter
	globals *Scope
}

func NewSession(cfg Config, opts ...Option) *Session {
	return &Session{
		cfg:     cfg,
		exec:    NewInterpreter(opts...),
		globals: NewGlobalScope(),
	}
}

// Eval runs source in the session. Declarations stay visible to later calls.
func (s *Session) Eval(source string) (Value, error) {
	program, err := ParseSource(source, s.cfg.LexerOptions()...)
	if err != nil {
		return nil, err
	}
	return s.exec.Evaluate(program, s.globals)
}

// Globals returns the session's top scope
func (s *Session) Globals() *Scope {
	return s.globals
}
