package internal

// Scope maps identifiers to values. Lookups and assignments that miss
// here continue in the enclosing scope.
//
// A scope is shared by pointer. Function values keep a pointer to the
// scope they were declared in, so a block's scope stays alive for as long
// as any closure created in it does.
type Scope struct {
	enclosing *Scope
	values    map[string]Value
	constants map[string]struct{}
}

// NewScope creates a scope nested inside enclosing, which may be nil
func NewScope(enclosing *Scope) *Scope {
	return &Scope{
		enclosing: enclosing,
		values:    make(map[string]Value),
		constants: make(map[string]struct{}),
	}
}

// NewGlobalScope creates a root scope holding the constants true, false and null
func NewGlobalScope() *Scope {
	s := NewScope(nil)
	s.values["true"] = BooleanValue(true)
	s.values["false"] = BooleanValue(false)
	s.values["null"] = Null
	for name := range s.values {
		s.constants[name] = struct{}{}
	}
	return s
}

// Parent returns the enclosing scope or nil
func (s *Scope) Parent() *Scope {
	return s.enclosing
}

// Depth counts the scopes above this one
func (s *Scope) Depth() int {
	depth := 0
	for e := s.enclosing; e != nil; e = e.enclosing {
		depth++
	}
	return depth
}

// Declare binds name in this scope. Names from enclosing scopes may be
// shadowed, names already bound here may not.
func (s *Scope) Declare(name string, value Value, constant bool) (Value, error) {
	if _, ok := s.values[name]; ok {
		return nil, runtimeErr(ErrDuplicateDeclaration, name)
	}
	s.values[name] = value
	if constant {
		s.constants[name] = struct{}{}
	}
	return value, nil
}

// Assign overwrites name in the innermost scope that declares it
func (s *Scope) Assign(name string, value Value) (Value, error) {
	owner := s.resolve(name)
	if owner == nil {
		return nil, runtimeErr(ErrUndeclaredVariable, name)
	}
	if _, ok := owner.constants[name]; ok {
		return nil, runtimeErr(ErrImmutableAssignment, name)
	}
	owner.values[name] = value
	return value, nil
}

// Lookup returns the value bound to name in the innermost scope declaring it
func (s *Scope) Lookup(name string) (Value, error) {
	owner := s.resolve(name)
	if owner == nil {
		return nil, runtimeErr(ErrUndeclaredVariable, name)
	}
	return owner.values[name], nil
}

func (s *Scope) resolve(name string) *Scope {
	if _, ok := s.values[name]; ok {
		return s
	}
	if s.enclosing != nil {
		return s.enclosing.resolve(name)
	}
	return nil
}
