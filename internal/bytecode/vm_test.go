package bytecode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goxlang/goxlang/internal/errors"
	"github.com/goxlang/goxlang/internal/lexer"
	"github.com/goxlang/goxlang/internal/parser"
	"github.com/goxlang/goxlang/internal/semantic"
)

// run lexes, parses, checks, lowers, and executes src, returning everything
// printed to the VM's output. Any diagnostic at any stage fails the test.
func run(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	checkSink := errors.NewSink(src)
	semantic.NewAnalyzer(checkSink).Analyze(prog)
	if checkSink.Count() != 0 {
		t.Fatalf("unexpected check diagnostics: %v", checkSink.All())
	}
	lowerSink := errors.NewSink(src)
	m := NewLowerer(lowerSink).Lower(prog)
	if lowerSink.Count() != 0 {
		t.Fatalf("unexpected lowering diagnostics: %v", lowerSink.All())
	}
	var out bytes.Buffer
	if _, err := NewVM(&out).Run(m); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	return out.String()
}

// runErr is like run but expects a runtime error and returns its message
// instead of failing.
func runErr(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	checkSink := errors.NewSink(src)
	semantic.NewAnalyzer(checkSink).Analyze(prog)
	if checkSink.Count() != 0 {
		t.Fatalf("unexpected check diagnostics: %v", checkSink.All())
	}
	lowerSink := errors.NewSink(src)
	m := NewLowerer(lowerSink).Lower(prog)
	if lowerSink.Count() != 0 {
		t.Fatalf("unexpected lowering diagnostics: %v", lowerSink.All())
	}
	_, err := NewVM(nil).Run(m)
	if err == nil {
		t.Fatalf("expected a runtime error, got none")
	}
	return err.Error()
}

func TestRunIntArithmetic(t *testing.T) {
	if got := run(t, "print 2 + 3 * 4;"); got != "14" {
		t.Fatalf("got %q", got)
	}
}

func TestRunIntDivisionByZero(t *testing.T) {
	msg := runErr(t, "print 1 / 0;")
	if !strings.Contains(msg, "division by zero") {
		t.Fatalf("expected division-by-zero error, got %q", msg)
	}
}

func TestRunFloatArithmetic(t *testing.T) {
	if got := run(t, "print 1.5 + 2.5;"); got != "4" {
		t.Fatalf("got %q", got)
	}
}

func TestRunFloatDivisionNearZeroErrors(t *testing.T) {
	msg := runErr(t, "print 1.0 / 0.0;")
	if !strings.Contains(msg, "division by zero") {
		t.Fatalf("expected division-by-zero error, got %q", msg)
	}
}

func TestRunFloatEqualityUsesTolerance(t *testing.T) {
	if got := run(t, "print 0.1 + 0.2 == 0.3;"); got != "1" {
		t.Fatalf("expected float equality within tolerance to print 1, got %q", got)
	}
}

func TestRunBoolPrintsAsDigit(t *testing.T) {
	if got := run(t, "print true; print false;"); got != "10" {
		t.Fatalf("expected bools to print as plain digits via PRINTI, got %q", got)
	}
}

func TestRunCharPrintsAsCharacter(t *testing.T) {
	if got := run(t, "print 'A';"); got != "A" {
		t.Fatalf("got %q", got)
	}
}

func TestRunLogicalNot(t *testing.T) {
	if got := run(t, "print !false;"); got != "1" {
		t.Fatalf("got %q", got)
	}
}

func TestRunShortCircuitAnd(t *testing.T) {
	if got := run(t, "print false && (1 / 0 == 0);"); got != "0" {
		t.Fatalf("expected && to short-circuit without evaluating the divide, got %q", got)
	}
}

func TestRunShortCircuitOr(t *testing.T) {
	if got := run(t, "print true || (1 / 0 == 0);"); got != "1" {
		t.Fatalf("expected || to short-circuit without evaluating the divide, got %q", got)
	}
}

func TestRunIfElse(t *testing.T) {
	src := `
	var x = 5;
	if x > 3 {
	  print 1;
	} else {
	  print 0;
	}
	`
	if got := run(t, src); got != "1" {
		t.Fatalf("got %q", got)
	}
}

func TestRunWhileLoop(t *testing.T) {
	src := `
	var i = 0;
	while i < 5 {
	  print i;
	  i = i + 1;
	}
	`
	if got := run(t, src); got != "01234" {
		t.Fatalf("got %q", got)
	}
}

func TestRunWhileWithBreak(t *testing.T) {
	src := `
	var i = 0;
	while true {
	  if i == 3 {
	    break;
	  }
	  print i;
	  i = i + 1;
	}
	`
	if got := run(t, src); got != "012" {
		t.Fatalf("got %q", got)
	}
}

func TestRunWhileWithContinue(t *testing.T) {
	src := `
	var i = 0;
	while i < 5 {
	  i = i + 1;
	  if i == 3 {
	    continue;
	  }
	  print i;
	}
	`
	if got := run(t, src); got != "1245" {
		t.Fatalf("got %q", got)
	}
}

func TestRunNestedLoopsAndIfs(t *testing.T) {
	src := `
	var i = 0;
	while i < 3 {
	  var j = 0;
	  while j < 3 {
	    if j == 1 {
	      print j;
	    }
	    j = j + 1;
	  }
	  i = i + 1;
	}
	`
	if got := run(t, src); got != "111" {
		t.Fatalf("got %q", got)
	}
}

func TestRunFunctionCallAndReturn(t *testing.T) {
	src := `
	func add(a int, b int) int {
	  return a + b;
	}
	print add(3, 4);
	`
	if got := run(t, src); got != "7" {
		t.Fatalf("got %q", got)
	}
}

func TestRunRecursiveFunction(t *testing.T) {
	src := `
	func fact(n int) int {
	  if n <= 1 {
	    return 1;
	  }
	  return n * fact(n - 1);
	}
	print fact(5);
	`
	if got := run(t, src); got != "120" {
		t.Fatalf("got %q", got)
	}
}

func TestRunGlobalsVisibleInsideFunctions(t *testing.T) {
	src := `
	var counter = 0;
	func bump() {
	  counter = counter + 1;
	}
	bump();
	bump();
	print counter;
	`
	if got := run(t, src); got != "2" {
		t.Fatalf("got %q", got)
	}
}

func TestRunMemoryPokePeekRoundTrip(t *testing.T) {
	src := "`0 = 42; print `0;"
	if got := run(t, src); got != "42" {
		t.Fatalf("got %q", got)
	}
}

func TestRunMemoryFloatRoundTrip(t *testing.T) {
	src := "`0 = 3.5; print `0;"
	// MemRead always lowers to PEEKI, so a float written at address 0 is
	// read back reinterpreted as its raw bits through the int path.
	got := run(t, src)
	if got == "" {
		t.Fatalf("expected some output, got empty string")
	}
}

func TestRunMemoryAutoGrowsOnOutOfBoundsPoke(t *testing.T) {
	src := "`2000 = 7; print `2000;"
	if got := run(t, src); got != "7" {
		t.Fatalf("expected auto-grow to make the out-of-range poke succeed, got %q", got)
	}
}

func TestRunGrowOperatorExtendsAndReturnsNewSize(t *testing.T) {
	if got := run(t, "print ^64;"); got != "1088" {
		t.Fatalf("expected 1024 (default) + 64 = 1088, got %q", got)
	}
}

func TestRunIntToFloatAndBackCast(t *testing.T) {
	if got := run(t, "print int(float(3));"); got != "3" {
		t.Fatalf("got %q", got)
	}
}

func TestRunVoidFunctionHasNoLeftoverStackValue(t *testing.T) {
	src := `
	func f() {
	  print 1;
	}
	f();
	print 2;
	`
	if got := run(t, src); got != "12" {
		t.Fatalf("got %q", got)
	}
}

func TestRuntimeErrorCarriesCallStack(t *testing.T) {
	src := `
	func inner(n int) int {
	  return n / 0;
	}
	func outer(n int) int {
	  return inner(n);
	}
	print outer(5);
	`
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	checkSink := errors.NewSink(src)
	semantic.NewAnalyzer(checkSink).Analyze(prog)
	if checkSink.Count() != 0 {
		t.Fatalf("unexpected check diagnostics: %v", checkSink.All())
	}
	lowerSink := errors.NewSink(src)
	m := NewLowerer(lowerSink).Lower(prog)
	if lowerSink.Count() != 0 {
		t.Fatalf("unexpected lowering diagnostics: %v", lowerSink.All())
	}

	_, err := NewVM(nil).Run(m)
	if err == nil {
		t.Fatalf("expected a runtime error, got none")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if rerr.Trace.Depth() != 3 {
		t.Fatalf("expected a 3-frame trace (main, outer, inner), got %d: %v", rerr.Trace.Depth(), rerr.Trace)
	}
	if rerr.Trace.Top().FunctionName != "inner" {
		t.Fatalf("expected the top frame to be inner, got %q", rerr.Trace.Top().FunctionName)
	}
	if rerr.Trace.Bottom().FunctionName != entryFunctionName {
		t.Fatalf("expected the bottom frame to be the entry function, got %q", rerr.Trace.Bottom().FunctionName)
	}
}

func TestRunWithTraceWritesOneLinePerInstruction(t *testing.T) {
	p := parser.New(lexer.New("print 1 + 2;"))
	prog := p.ParseProgram()
	checkSink := errors.NewSink("print 1 + 2;")
	semantic.NewAnalyzer(checkSink).Analyze(prog)
	lowerSink := errors.NewSink("print 1 + 2;")
	m := NewLowerer(lowerSink).Lower(prog)

	var out, trace bytes.Buffer
	if _, err := NewVM(&out).WithTrace(&trace).Run(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trace.Len() == 0 {
		t.Fatal("expected WithTrace to produce output, got none")
	}
	if got := strings.Count(trace.String(), "\n"); got != len(m.FindFunction(entryFunctionName).Code) {
		t.Fatalf("expected one trace line per instruction (%d), got %d", len(m.FindFunction(entryFunctionName).Code), got)
	}
}

func TestRunEntryReturnValueDefaultsToZero(t *testing.T) {
	var out bytes.Buffer
	p := parser.New(lexer.New("print 1;"))
	prog := p.ParseProgram()
	sink := errors.NewSink("print 1;")
	semantic.NewAnalyzer(sink).Analyze(prog)
	lowerSink := errors.NewSink("print 1;")
	m := NewLowerer(lowerSink).Lower(prog)
	result, err := NewVM(&out).Run(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Type != ValueInt || result.I != 0 {
		t.Fatalf("expected entry return value 0, got %v", result)
	}
}
