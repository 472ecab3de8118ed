package internal

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type tk struct {
	typ    TokenType
	lexeme string
}

func scanAll(t *testing.T, source string, opts ...LexerOption) []Token {
	t.Helper()
	tokens, err := Tokenize(source, opts...)
	require.NoError(t, err, "source: %q", source)
	require.NotEmpty(t, tokens)
	require.Equal(t, EOF, tokens[len(tokens)-1].Type)
	return tokens
}

func checkTokens(t *testing.T, source string, expected ...tk) {
	t.Helper()
	tokens := scanAll(t, source)
	got := make([]tk, 0, len(tokens))
	for _, token := range tokens[:len(tokens)-1] {
		got = append(got, tk{token.Type, token.Lexeme})
	}
	if len(expected) == 0 {
		expected = []tk{}
	}
	require.Equal(t, expected, got, "source: %q", source)
}

func checkLexError(t *testing.T, source string, sentinel error, char rune, pos Position) {
	t.Helper()
	tokens, err := Tokenize(source)
	require.Error(t, err, "source: %q", source)
	require.Nil(t, tokens)
	require.True(t, errors.Is(err, ErrLex))
	require.True(t, errors.Is(err, sentinel), "got %v", err)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	require.Equal(t, char, lexErr.Char)
	require.Equal(t, pos, lexErr.Pos)
}

func TestEmptySource(t *testing.T) {
	tokens := scanAll(t, "")
	require.Len(t, tokens, 1)
	require.Equal(t, Token{Type: EOF, Lexeme: "EndOfFile", Pos: Position{0, 1, 1}}, tokens[0])

	tokens = scanAll(t, " \t\r\n ")
	require.Len(t, tokens, 1)
}

func TestSingleCharacterTokens(t *testing.T) {
	checkTokens(t, "(){}[]:;,.",
		tk{OPEN_PAREN, "("}, tk{CLOSE_PAREN, ")"},
		tk{OPEN_BRACE, "{"}, tk{CLOSE_BRACE, "}"},
		tk{OPEN_BRACKET, "["}, tk{CLOSE_BRACKET, "]"},
		tk{COLON, ":"}, tk{SEMICOLON, ";"}, tk{COMMA, ","}, tk{DOT, "."},
	)
	checkTokens(t, "+-*/%",
		tk{BINARY_OPERATOR, "+"}, tk{BINARY_OPERATOR, "-"}, tk{BINARY_OPERATOR, "*"},
		tk{BINARY_OPERATOR, "/"}, tk{BINARY_OPERATOR, "%"},
	)
}

func TestTwoCharacterOperators(t *testing.T) {
	tests := []struct {
		source   string
		expected []tk
	}{
		{"==", []tk{{EQUALITY, "=="}}},
		{"=", []tk{{EQUALS, "="}}},
		{"= =", []tk{{EQUALS, "="}, {EQUALS, "="}}},
		{"===", []tk{{EQUALITY, "=="}, {EQUALS, "="}}},
		{"!=", []tk{{NOT_EQUALITY, "!="}}},
		{"!", []tk{{EXCLAMATION, "!"}}},
		{"!x", []tk{{EXCLAMATION, "!"}, {IDENTIFIER, "x"}}},
		{">=", []tk{{GREATER_OR_EQUAL, ">="}}},
		{">", []tk{{GREATER_THAN, ">"}}},
		{"<=", []tk{{LESS_OR_EQUAL, "<="}}},
		{"<1", []tk{{LESS_THAN, "<"}, {NUMBER, "1"}}},
		{"||", []tk{{OR, "||"}}},
		{"&&", []tk{{AND, "&&"}}},
		{"a&&b||c", []tk{{IDENTIFIER, "a"}, {AND, "&&"}, {IDENTIFIER, "b"}, {OR, "||"}, {IDENTIFIER, "c"}}},
	}
	for _, test := range tests {
		checkTokens(t, test.source, test.expected...)
	}
}

func TestLoneLogicalOperator(t *testing.T) {
	checkLexError(t, "a | b", errLoneOperator, '|', Position{Offset: 2, Line: 1, Col: 3})
	checkLexError(t, "a & b", errLoneOperator, '&', Position{Offset: 2, Line: 1, Col: 3})
	checkLexError(t, "&", errLoneOperator, '&', Position{Offset: 0, Line: 1, Col: 1})
}

func TestNumbers(t *testing.T) {
	checkTokens(t, "0 42 007", tk{NUMBER, "0"}, tk{NUMBER, "42"}, tk{NUMBER, "007"})
	checkTokens(t, "-5", tk{BINARY_OPERATOR, "-"}, tk{NUMBER, "5"})
	checkTokens(t, "1.5", tk{NUMBER, "1"}, tk{DOT, "."}, tk{NUMBER, "5"})
	checkTokens(t, "12abc", tk{NUMBER, "12"}, tk{IDENTIFIER, "abc"})
}

func TestKeywordsTypesAndIdentifiers(t *testing.T) {
	tests := []struct {
		source   string
		expected TokenType
	}{
		{"var", LET},
		{"const", CONST},
		{"final", FINAL},
		{"fn", FN},
		{"return", RETURN},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"and", AND},
		{"or", OR},
		{"boolean", BOOLEAN_TYPE},
		{"number", NUMBER_TYPE},
		{"string", STRING_TYPE},
		{"array", ARRAY_TYPE},
		{"object", OBJECT_TYPE},
		{"dynamic", DYNAMIC_TYPE},
		{"fooBar1", IDENTIFIER},
		{"var2", IDENTIFIER},
		{"var_", IDENTIFIER},
		{"let", IDENTIFIER},
		{"Var", IDENTIFIER},
		{"numbers", IDENTIFIER},
		{"snake_case_9", IDENTIFIER},
		{"grün", IDENTIFIER},
		{"Ωmega", IDENTIFIER},
	}
	for _, test := range tests {
		checkTokens(t, test.source, tk{test.expected, test.source})
	}
}

func TestIdentifierCannotStartWithUnderscore(t *testing.T) {
	checkLexError(t, "_x", errIllegalChar, '_', Position{0, 1, 1})
}

func TestStrings(t *testing.T) {
	checkTokens(t, `"hello"`, tk{STRING, "hello"})
	checkTokens(t, `""`, tk{STRING, ""})
	checkTokens(t, `"a # not a comment"`, tk{STRING, "a # not a comment"})
	checkTokens(t, "\"two\nlines\"", tk{STRING, "two\nlines"})
	checkTokens(t, `"a\n"`, tk{STRING, `a\n`})
	checkTokens(t, `x = "héllo";`, tk{IDENTIFIER, "x"}, tk{EQUALS, "="}, tk{STRING, "héllo"}, tk{SEMICOLON, ";"})
}

func TestUnterminatedString(t *testing.T) {
	checkLexError(t, `"unterminated`, errUnclosedString, '"', Position{0, 1, 1})
	checkLexError(t, "var s = \"abc\n", errUnclosedString, '"', Position{8, 1, 9})
}

func TestComments(t *testing.T) {
	withComment := scanAll(t, "# note\nlet x")
	without := scanAll(t, "\nlet x")
	require.Len(t, withComment, len(without))
	for i := range without {
		require.Equal(t, without[i].Type, withComment[i].Type)
		require.Equal(t, without[i].Lexeme, withComment[i].Lexeme)
	}

	checkTokens(t, "1 # trailing comment", tk{NUMBER, "1"})
	checkTokens(t, "# only a comment", []tk{}...)
	checkTokens(t, "a # x == y\nb", tk{IDENTIFIER, "a"}, tk{IDENTIFIER, "b"})
	checkTokens(t, "#\n#\n1", tk{NUMBER, "1"})
}

func TestCommentLineTerminator(t *testing.T) {
	tokens := scanAll(t, "# note\r\nx", WithLineTerminator("\r\n"))
	require.Len(t, tokens, 2)
	require.Equal(t, IDENTIFIER, tokens[0].Type)
	require.Equal(t, Position{Offset: 8, Line: 2, Col: 1}, tokens[0].Pos)

	// A lone \n does not end the comment when the terminator is \r\n
	tokens = scanAll(t, "# note\nx\r\ny", WithLineTerminator("\r\n"))
	require.Len(t, tokens, 2)
	require.Equal(t, "y", tokens[0].Lexeme)

	// An empty terminator keeps the default
	tokens = scanAll(t, "# note\nx", WithLineTerminator(""))
	require.Equal(t, "x", tokens[0].Lexeme)
}

func TestIllegalCharacters(t *testing.T) {
	checkLexError(t, "var x = 1 @", errIllegalChar, '@', Position{10, 1, 11})
	checkLexError(t, "a\n  $", errIllegalChar, '$', Position{4, 2, 3})
	checkLexError(t, "'a'", errIllegalChar, '\'', Position{0, 1, 1})
	checkLexError(t, "x ^ 2", errIllegalChar, '^', Position{2, 1, 3})
}

func TestPositions(t *testing.T) {
	tokens := scanAll(t, "var x = 1\n  if x")
	expected := []Position{
		{0, 1, 1}, {4, 1, 5}, {6, 1, 7}, {8, 1, 9},
		{12, 2, 3}, {15, 2, 6}, {16, 2, 7},
	}
	require.Len(t, tokens, len(expected))
	for i, pos := range expected {
		require.Equal(t, pos, tokens[i].Pos, "token %d %s", i, tokens[i])
	}
}

func TestLexemesRebuildSource(t *testing.T) {
	source := `
		# counts to ten
		var i: number = 0;
		while (i < 10 && !done) { i = i + 1 }
		fn add(a, b) { a + b }
		if (x >= 2 || y != 3) { "text" } else { [1, 2].length % 3 }
	`
	tokens := scanAll(t, source)

	var rebuilt, stripped strings.Builder
	for _, token := range tokens[:len(tokens)-1] {
		if token.Type == STRING {
			rebuilt.WriteString(`"` + token.Lexeme + `"`)
			continue
		}
		rebuilt.WriteString(token.Lexeme)
	}
	for _, line := range strings.Split(source, "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		stripped.WriteString(strings.Join(strings.Fields(line), ""))
	}
	require.Equal(t, stripped.String(), rebuilt.String())
}

func TestFullStatement(t *testing.T) {
	checkTokens(t, "const name: string = \"kestrel\";",
		tk{CONST, "const"}, tk{IDENTIFIER, "name"}, tk{COLON, ":"}, tk{STRING_TYPE, "string"},
		tk{EQUALS, "="}, tk{STRING, "kestrel"}, tk{SEMICOLON, ";"},
	)
	checkTokens(t, "fn f(a) { return a.b[0] }",
		tk{FN, "fn"}, tk{IDENTIFIER, "f"}, tk{OPEN_PAREN, "("}, tk{IDENTIFIER, "a"}, tk{CLOSE_PAREN, ")"},
		tk{OPEN_BRACE, "{"}, tk{RETURN, "return"}, tk{IDENTIFIER, "a"}, tk{DOT, "."}, tk{IDENTIFIER, "b"},
		tk{OPEN_BRACKET, "["}, tk{NUMBER, "0"}, tk{CLOSE_BRACKET, "]"}, tk{CLOSE_BRACE, "}"},
	)
}

func TestTokenTypeString(t *testing.T) {
	require.Equal(t, "Let", LET.String())
	require.Equal(t, "EndOfInput", EOF.String())
	require.Equal(t, "TokenType(999)", TokenType(999).String())
	require.Equal(t, `Identifier "x"`, Token{Type: IDENTIFIER, Lexeme: "x"}.String())
}
