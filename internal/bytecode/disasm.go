package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble renders m as the textual IR dump: one GLOBAL::: line per
// global, then one FUNCTION::: block per function listing its signature,
// its locals, and one instruction per line.
func Disassemble(m *Module) string {
	var sb strings.Builder
	for _, g := range m.Globals {
		fmt.Fprintf(&sb, "GLOBAL::: %s: %s\n", g.Name, g.Type)
	}
	for _, fn := range m.Functions {
		disassembleFunction(&sb, fn)
	}
	return sb.String()
}

func disassembleFunction(sb *strings.Builder, fn *Function) {
	fmt.Fprintf(sb, "FUNCTION::: %s, %v, %v %s\n", fn.Name, fn.Params, fn.ParamTypes, returnTypeLabel(fn))
	if fn.Imported {
		fmt.Fprintf(sb, "  (imported)\n")
		return
	}
	fmt.Fprintf(sb, "locals: %v\n", fn.Locals)
	for _, in := range fn.Code {
		fmt.Fprintf(sb, "  %s\n", in.String())
	}
}

func returnTypeLabel(fn *Function) string {
	if !fn.HasReturn {
		return "void"
	}
	return fn.ReturnType.String()
}
