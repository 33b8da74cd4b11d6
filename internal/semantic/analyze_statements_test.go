package semantic

import "testing"

func TestVarDeclPromotesIntInitializerToFloat(t *testing.T) {
	requireNoDiagnostics(t, analyze(t, "var x float = 5;"))
}

func TestVarDeclNarrowingIsError(t *testing.T) {
	sink := analyze(t, "var x int = 3.14;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestVarDeclMissingTypeAndInitializerIsError(t *testing.T) {
	sink := analyze(t, "var x;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestVarDeclDuplicateIsError(t *testing.T) {
	sink := analyze(t, "var x = 1;\nvar x = 2;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	sink := analyze(t, "if 1 {\n  print 1;\n}")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestIfConditionBoolIsFine(t *testing.T) {
	requireNoDiagnostics(t, analyze(t, "if true {\n  print 1;\n}"))
}

func TestWhileConditionMustBeBool(t *testing.T) {
	sink := analyze(t, "while 1 {\n  break;\n}")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	sink := analyze(t, "break;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestContinueOutsideLoopIsError(t *testing.T) {
	sink := analyze(t, "continue;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestBreakInsideWhileIsFine(t *testing.T) {
	requireNoDiagnostics(t, analyze(t, "while true {\n  break;\n}"))
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	sink := analyze(t, "return;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestReturnTypeMismatchIsError(t *testing.T) {
	// The float return is reported, and since it does not match, FuncDef's
	// "at least one matching Return" check reports a second diagnostic.
	sink := analyze(t, "func f() int {\n  return 3.14;\n}")
	if sink.Count() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", sink.Count(), sink.All())
	}
}

func TestBareReturnInValueFunctionIsNotItselfAnError(t *testing.T) {
	// The bare return means no matching Return exists anywhere in the body,
	// so FuncDef's own check reports exactly one diagnostic — not two.
	sink := analyze(t, "func f() int {\n  return;\n}")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestNamedWriteUndefinedIsError(t *testing.T) {
	sink := analyze(t, "x = 5;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestNamedWriteToConstantIsError(t *testing.T) {
	sink := analyze(t, "const X int = 5;\nX = 6;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestNamedWriteTypeMismatchIsError(t *testing.T) {
	sink := analyze(t, "var x int = 5;\nx = 3.14;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestNamedWriteMatchingTypeIsFine(t *testing.T) {
	requireNoDiagnostics(t, analyze(t, "var x int = 5;\nx = 6;"))
}

func TestMemWriteAddressMustBeInt(t *testing.T) {
	sink := analyze(t, "var addr = true;\n`addr = 5;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", sink.Count(), sink.All())
	}
}

func TestMemWriteIntAddressIsFine(t *testing.T) {
	requireNoDiagnostics(t, analyze(t, "var addr = 0;\n`addr = 5;"))
}
