package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLineTerminator ends a '#' comment unless configured otherwise
const DefaultLineTerminator = "\n"

// Lexer turns source code into tokens
type Lexer struct {
	source         string
	lineTerminator string

	start    int
	current  int
	startPos Position
	line     int
	col      int

	tokens []Token
}

// LexerOption configures a Lexer
type LexerOption func(*Lexer)

// WithLineTerminator sets the sequence that closes a comment
func WithLineTerminator(terminator string) LexerOption {
	return func(l *Lexer) {
		if terminator != "" {
			l.lineTerminator = terminator
		}
	}
}

var keywords = map[string]TokenType{
	"var":    LET,
	"const":  CONST,
	"final":  FINAL,
	"fn":     FN,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"and":    AND,
	"or":     OR,
}

var typeNames = map[string]TokenType{
	"boolean": BOOLEAN_TYPE,
	"number":  NUMBER_TYPE,
	"string":  STRING_TYPE,
	"array":   ARRAY_TYPE,
	"object":  OBJECT_TYPE,
	"dynamic": DYNAMIC_TYPE,
}

func NewLexer(source string, opts ...LexerOption) *Lexer {
	l := &Lexer{
		source:         source,
		lineTerminator: DefaultLineTerminator,
		line:           1,
		col:            1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans source and returns its tokens, ending with EOF
func Tokenize(source string, opts ...LexerOption) ([]Token, error) {
	return NewLexer(source, opts...).Scan()
}

// Scan consumes the whole source. The first lexical error stops scanning.
func (l *Lexer) Scan() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.startPos = l.pos()
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, Token{
		Type:   EOF,
		Lexeme: eofLexeme,
		Pos:    l.pos(),
	})
	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	c := l.advance()
	switch c {
	case '(':
		l.emit(OPEN_PAREN)
	case ')':
		l.emit(CLOSE_PAREN)
	case '{':
		l.emit(OPEN_BRACE)
	case '}':
		l.emit(CLOSE_BRACE)
	case '[':
		l.emit(OPEN_BRACKET)
	case ']':
		l.emit(CLOSE_BRACKET)
	case ':':
		l.emit(COLON)
	case ';':
		l.emit(SEMICOLON)
	case ',':
		l.emit(COMMA)
	case '.':
		l.emit(DOT)
	case '+', '-', '*', '/', '%':
		l.emit(BINARY_OPERATOR)
	case '=':
		if l.match('=') {
			l.emit(EQUALITY)
		} else {
			l.emit(EQUALS)
		}
	case '!':
		if l.match('=') {
			l.emit(NOT_EQUALITY)
		} else {
			l.emit(EXCLAMATION)
		}
	case '>':
		if l.match('=') {
			l.emit(GREATER_OR_EQUAL)
		} else {
			l.emit(GREATER_THAN)
		}
	case '<':
		if l.match('=') {
			l.emit(LESS_OR_EQUAL)
		} else {
			l.emit(LESS_THAN)
		}
	case '|':
		if !l.match('|') {
			return l.errorAt(errLoneOperator, c)
		}
		l.emit(OR)
	case '&':
		if !l.match('&') {
			return l.errorAt(errLoneOperator, c)
		}
		l.emit(AND)
	case '#':
		l.comment()

	// Ignore whitespace
	case ' ', '\t', '\r', '\n':

	case '"':
		return l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			return l.errorAt(errIllegalChar, c)
		}
	}
	return nil
}

func (l *Lexer) comment() {
	for !l.isAtEnd() && !strings.HasPrefix(l.source[l.current:], l.lineTerminator) {
		l.advance()
	}
	for i := 0; i < utf8.RuneCountInString(l.lineTerminator) && !l.isAtEnd(); i++ {
		l.advance()
	}
}

func (l *Lexer) string() error {
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}

	if l.isAtEnd() {
		return l.errorAt(errUnclosedString, '"')
	}

	literal := l.source[l.start+1 : l.current]

	// Consume ending "
	l.advance()

	l.tokens = append(l.tokens, Token{
		Type:   STRING,
		Lexeme: literal,
		Pos:    l.startPos,
	})
	return nil
}

func (l *Lexer) number() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	l.emit(NUMBER)
}

func (l *Lexer) identifier() {
	for !l.isAtEnd() {
		c := l.peek()
		if !isAlpha(c) && !isDigit(c) && c != '_' {
			break
		}
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	if tokenType, ok := keywords[identifier]; ok {
		l.emit(tokenType)
		return
	}
	if tokenType, ok := typeNames[identifier]; ok {
		l.emit(tokenType)
		return
	}
	l.emit(IDENTIFIER)
}

func (l *Lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) peek() rune {
	c, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return c
}

func (l *Lexer) match(c rune) bool {
	if l.isAtEnd() || l.peek() != c {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) emit(token TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:   token,
		Lexeme: l.source[l.start:l.current],
		Pos:    l.startPos,
	})
}

func (l *Lexer) errorAt(err error, c rune) error {
	return &LexError{Err: err, Char: c, Pos: l.startPos}
}

func (l *Lexer) pos() Position {
	return Position{Offset: l.current, Line: l.line, Col: l.col}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isAlpha accepts ASCII letters and any rune with distinct upper and lower case
func isAlpha(c rune) bool {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return unicode.ToUpper(c) != unicode.ToLower(c)
}
