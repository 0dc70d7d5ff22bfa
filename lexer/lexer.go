// Package lexer implements REDLINE's indentation-sensitive scanner (§4.1): it
// turns UTF-8 source text into the token sequence defined in package token,
// synthesizing Indent/Dedent from physical whitespace as it goes.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	rlerrors "github.com/redline-lang/redline-core/errors"
	"github.com/redline-lang/redline-core/token"
)

// Lexer scans REDLINE source text. Like the teacher's lexer, column
// positions are rune counts, not byte offsets — multi-byte UTF-8 sequences
// count as a single column.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int

	// indentStack holds the column widths of currently open blocks, strictly
	// increasing, initialized to [0] (§4.1 "State").
	indentStack []int

	// pending holds synthesized Indent/Dedent tokens queued ahead of the next
	// real token — a line can close several blocks at once.
	pending []token.Token

	atLineStart bool
}

// New creates a Lexer over input. Input is assumed to be valid UTF-8; BOM
// stripping and other byte-level housekeeping are the file-reading caller's
// responsibility, outside this package's scope.
func New(input string) *Lexer {
	l := &Lexer{
		input:       input,
		line:        1,
		column:      0,
		indentStack: []int{0},
		atLineStart: true,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += width
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken returns the next token in the stream, ending with a terminal
// EOF. On a lexical error it returns the ILLEGAL zero Token alongside a
// non-nil *errors.LexicalError; callers must stop on the first error (§5,
// §7 — fail-fast, no recovery).
func (l *Lexer) NextToken() (token.Token, *rlerrors.LexicalError) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}

	if l.atLineStart {
		l.atLineStart = false
		tok, emitted, err := l.handleLineStart()
		if err != nil {
			return token.Token{}, err
		}
		if emitted {
			return tok, nil
		}
	}

	l.skipHorizontalSpace()

	line, col := l.line, l.column

	if l.ch == 0 {
		if len(l.indentStack) > 1 {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			return token.New(token.DEDENT, "", line, col), nil
		}
		return token.New(token.EOF, "", line, col), nil
	}

	if l.ch == '#' {
		l.skipComment()
		return l.NextToken()
	}

	if l.ch == '\n' {
		l.readChar()
		// l.ch is now the first character of the next line, at column 1.
		l.line++
		l.column = 1
		l.atLineStart = true
		return token.New(token.NEWLINE, "\n", line, col), nil
	}

	if l.ch == '\r' {
		l.readChar()
		if l.ch == '\n' {
			l.readChar()
		}
		l.line++
		l.column = 1
		l.atLineStart = true
		return token.New(token.NEWLINE, "\n", line, col), nil
	}

	switch {
	case l.ch == '"':
		return l.readStringLiteral(line, col)
	case l.ch == 'f' && l.peekChar() == '"':
		l.readChar() // consume 'f'
		return l.readFStringLiteral(line, col)
	case isIdentStart(l.ch):
		return l.readIdentifier(line, col), nil
	case unicode.IsDigit(l.ch):
		return l.readNumber(line, col)
	}

	return l.readPunctOrOperator(line, col)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// skipHorizontalSpace skips spaces and tabs outside of line-start indent
// accounting — used mid-line, after the indent decision has already been
// made for this line.
func (l *Lexer) skipHorizontalSpace() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
}

// handleLineStart implements §4.1's "Line-start algorithm": it measures
// leading whitespace width (space=1, tab=4), skips blank/comment-only lines
// without touching the indent stack, and emits at most one Indent token (or
// queues Dedents) for the line actually reached. It loops internally past
// any number of blank/comment lines.
func (l *Lexer) handleLineStart() (token.Token, bool, *rlerrors.LexicalError) {
	for {
		width := 0
		startLine, startCol := l.line, l.column
		for l.ch == ' ' || l.ch == '\t' {
			if l.ch == ' ' {
				width++
			} else {
				width += 4
			}
			l.readChar()
		}

		if l.ch == '\n' {
			l.readChar()
			l.line++
			l.column = 1
			continue
		}
		if l.ch == '\r' {
			l.readChar()
			if l.ch == '\n' {
				l.readChar()
			}
			l.line++
			l.column = 1
			continue
		}
		if l.ch == '#' {
			l.skipComment()
			continue
		}
		if l.ch == 0 {
			if len(l.indentStack) > 1 {
				l.indentStack = l.indentStack[:len(l.indentStack)-1]
				return token.New(token.DEDENT, "", startLine, startCol), true, nil
			}
			return token.Token{}, false, nil
		}

		top := l.indentStack[len(l.indentStack)-1]
		switch {
		case width > top:
			l.indentStack = append(l.indentStack, width)
			return token.New(token.INDENT, "", startLine, startCol), true, nil
		case width < top:
			for len(l.indentStack) > 1 && width < l.indentStack[len(l.indentStack)-1] {
				l.indentStack = l.indentStack[:len(l.indentStack)-1]
				l.pending = append(l.pending, token.New(token.DEDENT, "", startLine, startCol))
			}
			if l.indentStack[len(l.indentStack)-1] != width {
				return token.Token{}, false, rlerrors.NewLexicalError(startLine, startCol,
					"Unindent does not match any outer indentation level")
			}
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok, true, nil
		default:
			return token.Token{}, false, nil
		}
	}
}

func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.New(token.LookupIdent(lexeme), lexeme, line, col)
}

// readNumber implements §4.1's number rule: a single '.' flips to float
// mode; a second, consecutive '.' is a Range lookahead, not a decimal point,
// and terminates the number; any other second '.' is an error.
func (l *Lexer) readNumber(line, col int) (token.Token, *rlerrors.LexicalError) {
	start := l.position
	isFloat := false
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		if l.peekChar() == '.' {
			// Range token ahead; the number ends here.
		} else {
			isFloat = true
			l.readChar()
			for unicode.IsDigit(l.ch) {
				l.readChar()
			}
			if l.ch == '.' && l.peekChar() != '.' {
				return token.Token{}, rlerrors.NewLexicalError(line, col, "Invalid number: multiple decimal points")
			}
		}
	}
	lexeme := l.input[start:l.position]
	if isFloat {
		if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
			return token.Token{}, rlerrors.NewLexicalError(line, col, "Invalid number: %s", lexeme)
		}
		return token.New(token.FLOAT, lexeme, line, col), nil
	}
	if _, err := strconv.ParseInt(lexeme, 10, 64); err != nil {
		return token.Token{}, rlerrors.NewLexicalError(line, col, "Invalid number: %s", lexeme)
	}
	return token.New(token.INT, lexeme, line, col), nil
}

// readStringLiteral scans a "..." literal, translating \n \t \r \\ \" and
// passing any other escaped character through verbatim (§4.1).
func (l *Lexer) readStringLiteral(line, col int) (token.Token, *rlerrors.LexicalError) {
	body, err := l.scanQuotedBody(line, col)
	if err != nil {
		return token.Token{}, err
	}
	return token.New(token.STRING, body, line, col), nil
}

// readFStringLiteral scans an f"..." literal. The raw body is returned
// unexpanded — placeholder parsing happens structurally in package parser
// (§4.2 "F-string body parsing").
func (l *Lexer) readFStringLiteral(line, col int) (token.Token, *rlerrors.LexicalError) {
	body, err := l.scanQuotedBody(line, col)
	if err != nil {
		return token.Token{}, err
	}
	return token.New(token.FSTRING, body, line, col), nil
}

func (l *Lexer) scanQuotedBody(line, col int) (string, *rlerrors.LexicalError) {
	l.readChar() // consume opening quote
	var b strings.Builder
	for {
		if l.ch == 0 {
			return "", rlerrors.NewLexicalError(line, col, "Unterminated string literal")
		}
		if l.ch == '"' {
			l.readChar()
			return b.String(), nil
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return "", rlerrors.NewLexicalError(line, col, "Unterminated string literal")
			}
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readPunctOrOperator(line, col int) (token.Token, *rlerrors.LexicalError) {
	ch := l.ch

	two := func(second rune, typ token.Type, lexeme string) (token.Token, bool) {
		if l.peekChar() == second {
			l.readChar()
			l.readChar()
			return token.New(typ, lexeme, line, col), true
		}
		return token.Token{}, false
	}

	switch ch {
	case '(':
		l.readChar()
		return token.New(token.LPAREN, "(", line, col), nil
	case ')':
		l.readChar()
		return token.New(token.RPAREN, ")", line, col), nil
	case '[':
		l.readChar()
		return token.New(token.LBRACKET, "[", line, col), nil
	case ']':
		l.readChar()
		return token.New(token.RBRACKET, "]", line, col), nil
	case '{':
		l.readChar()
		return token.New(token.LBRACE, "{", line, col), nil
	case '}':
		l.readChar()
		return token.New(token.RBRACE, "}", line, col), nil
	case ',':
		l.readChar()
		return token.New(token.COMMA, ",", line, col), nil
	case ':':
		l.readChar()
		return token.New(token.COLON, ":", line, col), nil
	case '=':
		if tok, ok := two('=', token.EQ, "=="); ok {
			return tok, nil
		}
		l.readChar()
		return token.New(token.ASSIGN, "=", line, col), nil
	case '-':
		if tok, ok := two('>', token.ARROW, "->"); ok {
			return tok, nil
		}
		l.readChar()
		return token.New(token.MINUS, "-", line, col), nil
	case '.':
		if tok, ok := two('.', token.RANGE, ".."); ok {
			return tok, nil
		}
		l.readChar()
		return token.New(token.DOT, ".", line, col), nil
	case '!':
		if tok, ok := two('=', token.NEQ, "!="); ok {
			return tok, nil
		}
		return token.Token{}, rlerrors.NewLexicalError(line, col, "Unknown character: %c", ch)
	case '<':
		if tok, ok := two('=', token.LTE, "<="); ok {
			return tok, nil
		}
		l.readChar()
		return token.New(token.LT, "<", line, col), nil
	case '>':
		if tok, ok := two('=', token.GTE, ">="); ok {
			return tok, nil
		}
		l.readChar()
		return token.New(token.GT, ">", line, col), nil
	case '+':
		l.readChar()
		return token.New(token.PLUS, "+", line, col), nil
	case '*':
		l.readChar()
		return token.New(token.STAR, "*", line, col), nil
	case '/':
		l.readChar()
		return token.New(token.SLASH, "/", line, col), nil
	}

	l.readChar()
	return token.Token{}, rlerrors.NewLexicalError(line, col, "Unknown character: %c", ch)
}

// Tokenize scans all of source and returns the full token stream terminated
// by EOF, or the first lexical error encountered (§4.1 "Outputs").
func Tokenize(source string) ([]token.Token, *rlerrors.LexicalError) {
	l := New(source)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
