package lexer_test

import (
	"testing"

	"github.com/redline-lang/redline-core/lexer"
	"github.com/redline-lang/redline-core/token"
	"github.com/stretchr/testify/require"
)

func typesOf(t *testing.T, tokens []token.Token) []token.Type {
	t.Helper()
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenize_EmptyFile(t *testing.T) {
	tokens, err := lexer.Tokenize("")
	require.Nil(t, err)
	require.Equal(t, []token.Type{token.EOF}, typesOf(t, tokens))
}

func TestTokenize_WhitespaceCommentsOnly(t *testing.T) {
	tokens, err := lexer.Tokenize("\n\n  \n# a comment\n   \n")
	require.Nil(t, err)
	require.Equal(t, []token.Type{token.EOF}, typesOf(t, tokens))
}

func TestTokenize_IndentDedentBalance(t *testing.T) {
	src := "if a:\n    print(a)\nprint(1)\n"
	tokens, err := lexer.Tokenize(src)
	require.Nil(t, err)

	running := 0
	for _, tok := range tokens {
		switch tok.Type {
		case token.INDENT:
			running++
		case token.DEDENT:
			running--
		}
		require.GreaterOrEqual(t, running, 0)
	}
	require.Equal(t, 0, running)
}

func TestTokenize_MixedTabsAndSpaces(t *testing.T) {
	// tab = 4, space = 1, so "\t " is width 5, strictly greater than a bare
	// 4-space indent.
	src := "if a:\n    print(1)\nif b:\n\t print(2)\n"
	tokens, err := lexer.Tokenize(src)
	require.Nil(t, err)
	require.Contains(t, typesOf(t, tokens), token.INDENT)
}

func TestTokenize_UnindentMismatch(t *testing.T) {
	src := "if a:\n  print(a)\n else:\n  print(0)\n"
	_, err := lexer.Tokenize(src)
	require.NotNil(t, err)
	require.Contains(t, err.Message, "Unindent does not match any outer indentation level")
}

func TestTokenize_Number(t *testing.T) {
	tokens, err := lexer.Tokenize("1 2.5 1..10")
	require.Nil(t, err)
	require.Equal(t, token.INT, tokens[0].Type)
	require.Equal(t, "1", tokens[0].Literal)
	require.Equal(t, token.FLOAT, tokens[1].Type)
	require.Equal(t, "2.5", tokens[1].Literal)
	require.Equal(t, token.INT, tokens[2].Type)
	require.Equal(t, "1", tokens[2].Literal)
	require.Equal(t, token.RANGE, tokens[3].Type)
	require.Equal(t, token.INT, tokens[4].Type)
	require.Equal(t, "10", tokens[4].Literal)
}

func TestTokenize_MultipleDecimalPointsIsError(t *testing.T) {
	_, err := lexer.Tokenize("1.2.3")
	require.NotNil(t, err)
	require.Contains(t, err.Message, "multiple decimal points")
}

func TestTokenize_StringEscapes(t *testing.T) {
	tokens, err := lexer.Tokenize(`"a\nb\t\"c\""`)
	require.Nil(t, err)
	require.Equal(t, token.STRING, tokens[0].Type)
	require.Equal(t, "a\nb\t\"c\"", tokens[0].Literal)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := lexer.Tokenize(`"abc`)
	require.NotNil(t, err)
	require.Contains(t, err.Message, "Unterminated string literal")
}

func TestTokenize_FString(t *testing.T) {
	tokens, err := lexer.Tokenize(`f"x={n}"`)
	require.Nil(t, err)
	require.Equal(t, token.FSTRING, tokens[0].Type)
	require.Equal(t, "x={n}", tokens[0].Literal)
}

func TestTokenize_LeadingFIsIdentifierUnlessQuoted(t *testing.T) {
	tokens, err := lexer.Tokenize("foo")
	require.Nil(t, err)
	require.Equal(t, token.IDENT, tokens[0].Type)
	require.Equal(t, "foo", tokens[0].Literal)
}

func TestTokenize_Keywords(t *testing.T) {
	tokens, err := lexer.Tokenize("var val def pub print return if else true false while for in import class this try catch new break continue")
	require.Nil(t, err)
	want := []token.Type{
		token.VAR, token.VAL, token.DEF, token.PUB, token.PRINT, token.RETURN,
		token.IF, token.ELSE, token.TRUE, token.FALSE, token.WHILE, token.FOR,
		token.IN, token.IMPORT, token.CLASS, token.THIS, token.TRY, token.CATCH,
		token.NEW, token.BREAK, token.CONTINUE, token.EOF,
	}
	require.Equal(t, want, typesOf(t, tokens))
}

func TestTokenize_TypeKeywords(t *testing.T) {
	tokens, err := lexer.Tokenize("int float string bool list void dict")
	require.Nil(t, err)
	for _, tok := range tokens[:len(tokens)-1] {
		require.Equal(t, token.TYPE, tok.Type)
	}
}

func TestTokenize_Operators(t *testing.T) {
	tokens, err := lexer.Tokenize("+ - * / == != < > <= >= = -> . ..")
	require.Nil(t, err)
	want := []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.EQ, token.NEQ,
		token.LT, token.GT, token.LTE, token.GTE, token.ASSIGN, token.ARROW,
		token.DOT, token.RANGE, token.EOF,
	}
	require.Equal(t, want, typesOf(t, tokens))
}

func TestTokenize_UnknownCharacter(t *testing.T) {
	_, err := lexer.Tokenize("$")
	require.NotNil(t, err)
	require.Contains(t, err.Message, "Unknown character: $")
}

func TestTokenize_TrailingWhitespaceNoNewline(t *testing.T) {
	tokens, err := lexer.Tokenize("val x: int = 1   ")
	require.Nil(t, err)
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
}
