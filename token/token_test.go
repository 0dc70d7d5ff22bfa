package token

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		expected string
		typ      Type
	}{
		{"ILLEGAL", ILLEGAL},
		{"EOF", EOF},
		{"INT", INT},
		{"IDENT", IDENT},
		{"var", VAR},
		{"def", DEF},
		{"(", LPAREN},
		{"->", ARROW},
		{"..", RANGE},
		{"==", EQ},
		{"INDENT", INDENT},
		{"DEDENT", DEDENT},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("Type.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTypePredicates(t *testing.T) {
	literals := []Type{INT, FLOAT, STRING, FSTRING}
	for _, typ := range literals {
		if !typ.IsLiteral() {
			t.Errorf("%s.IsLiteral() = false, want true", typ)
		}
	}

	nonLiterals := []Type{ILLEGAL, EOF, IDENT, TYPE, VAR, LPAREN, PLUS}
	for _, typ := range nonLiterals {
		if typ.IsLiteral() {
			t.Errorf("%s.IsLiteral() = true, want false", typ)
		}
	}

	keywords := []Type{VAR, VAL, DEF, PUB, PRINT, RETURN, IF, ELSE, TRUE, FALSE,
		WHILE, FOR, IN, IMPORT, CLASS, THIS, TRY, CATCH, NEW, BREAK, CONTINUE}
	for _, typ := range keywords {
		if !typ.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false, want true", typ)
		}
	}

	nonKeywords := []Type{ILLEGAL, EOF, IDENT, TYPE, INT, LPAREN, PLUS}
	for _, typ := range nonKeywords {
		if typ.IsKeyword() {
			t.Errorf("%s.IsKeyword() = true, want false", typ)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Type
	}{
		{"var", VAR},
		{"class", CLASS},
		{"continue", CONTINUE},
		{"int", TYPE},
		{"dict", TYPE},
		{"foo", IDENT},
		{"Counter", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			if got := LookupIdent(tt.lexeme); got != tt.want {
				t.Errorf("LookupIdent(%q) = %s, want %s", tt.lexeme, got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tok := New(IDENT, "x", 1, 1)
	if got, want := tok.String(), "IDENT(x)"; got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
