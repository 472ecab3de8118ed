package internal

import "fmt"

// TokenType Holds the kind of a token
type TokenType int

const (
	EOF TokenType = iota - 1

	// Literals.
	// number, "string", *variable*
	NUMBER
	STRING
	IDENTIFIER

	// Keywords.
	// var, const, final, fn, return, if, else, while, and, or
	LET
	CONST
	FINAL
	FN
	RETURN
	IF
	ELSE
	WHILE
	AND
	OR

	// Built-in type names.
	// number, string, array, boolean, object, dynamic
	NUMBER_TYPE
	STRING_TYPE
	ARRAY_TYPE
	BOOLEAN_TYPE
	OBJECT_TYPE
	DYNAMIC_TYPE

	// Single-character tokens.
	// =, ;, ',', ., :, (, ), {, }, [, ]
	EQUALS
	SEMICOLON
	COMMA
	DOT
	COLON
	OPEN_PAREN
	CLOSE_PAREN
	OPEN_BRACE
	CLOSE_BRACE
	OPEN_BRACKET
	CLOSE_BRACKET

	// Operators.
	// + - * / %, ==, !=, >, <, >=, <=, !
	BINARY_OPERATOR
	EQUALITY
	NOT_EQUALITY
	GREATER_THAN
	LESS_THAN
	GREATER_OR_EQUAL
	LESS_OR_EQUAL
	EXCLAMATION
)

// eofLexeme is the text carried by the EOF token
const eofLexeme = "EndOfFile"

var tokenNames = map[TokenType]string{
	EOF:              "EndOfInput",
	NUMBER:           "Number",
	STRING:           "String",
	IDENTIFIER:       "Identifier",
	LET:              "Let",
	CONST:            "Const",
	FINAL:            "Final",
	FN:               "Fn",
	RETURN:           "Return",
	IF:               "If",
	ELSE:             "Else",
	WHILE:            "While",
	AND:              "And",
	OR:               "Or",
	NUMBER_TYPE:      "NumberType",
	STRING_TYPE:      "StringType",
	ARRAY_TYPE:       "ArrayType",
	BOOLEAN_TYPE:     "BooleanType",
	OBJECT_TYPE:      "ObjectType",
	DYNAMIC_TYPE:     "DynamicType",
	EQUALS:           "Equals",
	SEMICOLON:        "Semicolon",
	COMMA:            "Comma",
	DOT:              "Dot",
	COLON:            "Colon",
	OPEN_PAREN:       "OpenParen",
	CLOSE_PAREN:      "CloseParen",
	OPEN_BRACE:       "OpenBrace",
	CLOSE_BRACE:      "CloseBrace",
	OPEN_BRACKET:     "OpenBracket",
	CLOSE_BRACKET:    "CloseBracket",
	BINARY_OPERATOR:  "BinaryOperator",
	EQUALITY:         "Equality",
	NOT_EQUALITY:     "NotEquality",
	GREATER_THAN:     "GreaterThan",
	LESS_THAN:        "LessThan",
	GREATER_OR_EQUAL: "GreaterOrEqual",
	LESS_OR_EQUAL:    "LessOrEqual",
	EXCLAMATION:      "Exclamation",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Position locates a character in the source. Line and Col start at 1,
// Col counts runes.
type Position struct {
	Offset int
	Line   int
	Col    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a classified piece of source text
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}
