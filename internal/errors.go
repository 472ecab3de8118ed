package internal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errUnclosedString = errors.New("Closing \" was expected")
var errLoneOperator = errors.New("Operator must be doubled")

// ErrLex is matched by every *LexError
var ErrLex = errors.New("lexical error")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression")
var errUnclosedCall = errors.New("Expect ')' after arguments")
var errExpectedParen = errors.New("Expected '(' after function name")
var errExpectedOpeningBrace = errors.New("Expected '{' before block")
var errExpectedClosingBrace = errors.New("Expected '}' after block")
var errUndefinedExpr = errors.New("Undefined expression")
var errMaxParameters = errors.New("Max number of parameters is 255")
var errMaxArguments = errors.New("Max number of arguments is 255")
var errExpectedIdentifier = errors.New("Expected variable name")
var errExpectedFunctionName = errors.New("Expected function name")
var errExpectedFunctionParam = errors.New("Expected parameter name")
var errExpectedType = errors.New("Expected type name after ':'")
var errConstantWithoutValue = errors.New("Constant must be initialized")
var errInvalidAssignTarget = errors.New("Invalid assignment target")
var errInvalidNumber = errors.New("Invalid number")

// ErrParse is matched by ParseErrors and every *ParseError
var ErrParse = errors.New("parse error")

// Runtime errors
var (
	ErrDuplicateDeclaration   = errors.New("Variable already declared in this scope")
	ErrUndeclaredVariable     = errors.New("Undeclared variable")
	ErrImmutableAssignment    = errors.New("Cannot assign to a constant")
	ErrTypeMismatch           = errors.New("Type mismatch")
	ErrUnsupportedStatement   = errors.New("Unsupported statement")
	ErrInvalidNumberArguments = errors.New("Invalid number of arguments")
)

// LexError reports the character that stopped tokenization
type LexError struct {
	Err  error
	Char rune
	Pos  Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Error on line %d, column %d\n\t%s: %q", e.Pos.Line, e.Pos.Col, e.Err, e.Char)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrLex) match any lexical error
func (e *LexError) Is(target error) bool {
	return target == ErrLex
}

// ParseError reports the token where a statement stopped making sense
type ParseError struct {
	Err   error
	Token Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error on line %d, column %d\n\t%s: %s", e.Token.Pos.Line, e.Token.Pos.Col, e.Err, e.Token.Lexeme)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ParseErrors collects the errors of every malformed statement
type ParseErrors []*ParseError

func (e ParseErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (e ParseErrors) Is(target error) bool {
	return target == ErrParse
}

func (e ParseErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// RuntimeError is returned by scopes and the evaluator. Err is one of the
// exported sentinels, Name the identifier or node involved.
type RuntimeError struct {
	Err    error
	Name   string
	Detail string
}

func (e *RuntimeError) Error() string {
	msg := e.Err.Error()
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

func runtimeErr(err error, name string) error {
	return &RuntimeError{Err: err, Name: name}
}

func typeMismatch(format string, args ...interface{}) error {
	return &RuntimeError{Err: ErrTypeMismatch, Detail: fmt.Sprintf(format, args...)}
}
