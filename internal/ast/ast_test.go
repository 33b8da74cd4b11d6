package ast

import (
	"testing"

	"github.com/goxlang/goxlang/internal/types"
)

func TestProgramString(t *testing.T) {
	empty := &Program{}
	if empty.TokenLiteral() != "" || empty.String() != "" || empty.Line() != 0 {
		t.Errorf("empty program should render empty, got TokenLiteral=%q String=%q Line=%d",
			empty.TokenLiteral(), empty.String(), empty.Line())
	}

	prog := &Program{Statements: []Statement{
		&Print{Expr: &Literal{Kind: types.Int, Value: int64(1), Ln: 1}, Ln: 1},
	}}
	if prog.TokenLiteral() != "print" {
		t.Errorf("TokenLiteral() = %q, want print", prog.TokenLiteral())
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		lit  *Literal
		want string
	}{
		{&Literal{Kind: types.Int, Value: int64(42)}, "42"},
		{&Literal{Kind: types.Float, Value: 3.5}, "3.5"},
		{&Literal{Kind: types.Bool, Value: true}, "true"},
		{&Literal{Kind: types.Char, Value: 'a'}, "97"},
	}
	for _, tt := range tests {
		if got := tt.lit.String(); got != tt.want {
			t.Errorf("Literal{%v}.String() = %q, want %q", tt.lit.Value, got, tt.want)
		}
	}
}

func TestBinaryOpString(t *testing.T) {
	b := &BinaryOp{
		Left:     &NamedRead{Name: "x"},
		Right:    &Literal{Kind: types.Int, Value: int64(1)},
		Operator: "+",
	}
	if b.String() != "(x + 1)" {
		t.Errorf("String() = %q", b.String())
	}
}

func TestUnaryOpString(t *testing.T) {
	u := &UnaryOp{Operand: &NamedRead{Name: "x"}, Operator: "-"}
	if u.String() != "(-x)" {
		t.Errorf("String() = %q", u.String())
	}
}

func TestTypeCastString(t *testing.T) {
	c := &TypeCast{Expr: &NamedRead{Name: "x"}, TargetType: types.Float}
	if c.String() != "float(x)" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestFuncCallString(t *testing.T) {
	f := &FuncCall{Name: "add", Args: []Expression{
		&NamedRead{Name: "a"},
		&NamedRead{Name: "b"},
	}}
	if f.String() != "add(a, b)" {
		t.Errorf("String() = %q", f.String())
	}
}

func TestMemReadString(t *testing.T) {
	m := &MemRead{AddrExpr: &NamedRead{Name: "p"}}
	if m.String() != "`p" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestExpressionTypeRoundTrip(t *testing.T) {
	n := &NamedRead{Name: "x"}
	if n.GetType() != types.Invalid {
		t.Errorf("new node should start with Invalid type, got %s", n.GetType())
	}
	n.SetType(types.Int)
	if n.GetType() != types.Int {
		t.Errorf("SetType did not stick, got %s", n.GetType())
	}
}
