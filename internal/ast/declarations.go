package ast

import (
	"bytes"

	"github.com/goxlang/goxlang/internal/types"
)

// VarDecl is a var or const declaration. DeclaredType is types.Invalid when
// the source omitted an explicit type (var only; const always requires
// one) — the checker infers it from Initializer's type.
type VarDecl struct {
	Name         string
	DeclaredType types.Primitive
	Initializer  Expression
	IsConstant   bool
	Ln           int
}

func (v *VarDecl) statementNode()       {}
func (v *VarDecl) TokenLiteral() string { return v.Name }
func (v *VarDecl) Line() int            { return v.Ln }
func (v *VarDecl) String() string {
	var out bytes.Buffer
	if v.IsConstant {
		out.WriteString("const ")
	} else {
		out.WriteString("var ")
	}
	out.WriteString(v.Name)
	if v.DeclaredType != types.Invalid {
		out.WriteString(" " + v.DeclaredType.String())
	}
	if v.Initializer != nil {
		out.WriteString(" = " + v.Initializer.String())
	}
	out.WriteString(";")
	return out.String()
}

// Parameter is one formal parameter of a FuncDef or FuncImport.
type Parameter struct {
	Name string
	Type types.Primitive
}

func (p *Parameter) String() string { return p.Name + " " + p.Type.String() }

// FuncDef is a function definition with a body.
type FuncDef struct {
	Name       string
	Parameters []*Parameter
	ReturnType types.Primitive // types.Invalid means no return value (void)
	Body       []Statement
	Ln         int
}

func (f *FuncDef) statementNode()       {}
func (f *FuncDef) TokenLiteral() string { return f.Name }
func (f *FuncDef) Line() int            { return f.Ln }
func (f *FuncDef) String() string {
	var out bytes.Buffer
	out.WriteString("func " + f.Name + "(")
	for i, p := range f.Parameters {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(")")
	if f.ReturnType != types.Invalid {
		out.WriteString(" " + f.ReturnType.String())
	}
	out.WriteString(" {\n")
	for _, s := range f.Body {
		out.WriteString("  " + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// FuncImport declares an externally provided function: signature only, no
// body. The VM has no host-function table, so calling it fails at run time.
type FuncImport struct {
	Name       string
	Parameters []*Parameter
	ReturnType types.Primitive
	Ln         int
}

func (f *FuncImport) statementNode()       {}
func (f *FuncImport) TokenLiteral() string { return f.Name }
func (f *FuncImport) Line() int            { return f.Ln }
func (f *FuncImport) String() string {
	var out bytes.Buffer
	out.WriteString("import func " + f.Name + "(")
	for i, p := range f.Parameters {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(")")
	if f.ReturnType != types.Invalid {
		out.WriteString(" " + f.ReturnType.String())
	}
	out.WriteString(";")
	return out.String()
}
