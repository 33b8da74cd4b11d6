package lexer

import "testing"

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want string
	}{
		{IDENT, "IDENT"},
		{KW_INT, "KW_INT"},
		{ASSIGN, "ASSIGN"},
		{TokenType(9999), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.tt.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.tt, got, tt.want)
		}
	}
}

func TestIsLiteralIsKeyword(t *testing.T) {
	if !INT.IsLiteral() || KW_INT.IsLiteral() {
		t.Error("IsLiteral classification wrong")
	}
	if !VAR.IsKeyword() || IDENT.IsKeyword() {
		t.Error("IsKeyword classification wrong")
	}
}

func TestLookupIdentReservesTypeNames(t *testing.T) {
	tests := map[string]TokenType{
		"int": KW_INT, "float": KW_FLOAT, "char": KW_CHAR, "bool": KW_BOOL,
		"true": TRUE, "false": FALSE, "myVar": IDENT,
	}
	for lit, want := range tests {
		if got := LookupIdent(lit); got != want {
			t.Errorf("LookupIdent(%q) = %s, want %s", lit, got, want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := NewToken(IDENT, "x", 3)
	if tok.String() != `IDENT("x") @3` {
		t.Errorf("Token.String() = %q", tok.String())
	}
}
