package parser

import "testing"

func TestParseMissingSemicolonAfterReturnIsError(t *testing.T) {
	_, p := parseProgram(t, "func f() int {\n  return x\n}")
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least 1 error for missing semicolon, got none")
	}
}

func TestParseUnexpectedTokenAtStatementStart(t *testing.T) {
	_, p := parseProgram(t, ") var x = 1;")
	if len(p.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(p.Errors()), p.Errors())
	}
	if p.Errors()[0].Line != 1 {
		t.Errorf("expected error on line 1, got %d", p.Errors()[0].Line)
	}
}

func TestParseUnexpectedTokenInExpression(t *testing.T) {
	_, p := parseProgram(t, "var x = ;")
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least 1 error for empty expression, got none")
	}
}

func TestParseMalformedParameterListRecovers(t *testing.T) {
	_, p := parseProgram(t, "func f(a int b int) int {\n  return a;\n}")
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least 1 error for malformed parameter list, got none")
	}
}

func TestParseErrorRecoveryContinuesToNextStatement(t *testing.T) {
	prog, p := parseProgram(t, "var x = ;\nvar y = 2;")
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least 1 error")
	}
	found := false
	for _, stmt := range prog.Statements {
		if decl, ok := stmt.(interface{ String() string }); ok && decl.String() == "var y = 2;" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected recovery to reach 'var y = 2;' statement, statements: %+v", prog.Statements)
	}
}

func TestParseMissingClosingParenInCall(t *testing.T) {
	_, p := parseProgram(t, "foo(a, b;")
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least 1 error for missing ')', got none")
	}
}

func TestParseIfMissingBraceIsError(t *testing.T) {
	_, p := parseProgram(t, "if ok\n  print 1;\n")
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least 1 error for missing '{' after if-condition, got none")
	}
}
