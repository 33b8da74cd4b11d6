package bytecode

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ModuleJSON renders m as a JSON document, built with repeated path-based
// sjson.Set calls rather than encoding/json struct tags — this is a
// debugging side-channel behind the CLI's --dump-ir-json flag, not the
// lowerer's primary output format, so there's no struct to keep in lockstep
// with Module's shape.
func ModuleJSON(m *Module) (string, error) {
	doc := "{}"
	var err error
	for i, g := range m.Globals {
		doc, err = sjson.Set(doc, fmt.Sprintf("globals.%d.name", i), g.Name)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, fmt.Sprintf("globals.%d.type", i), g.Type.String())
		if err != nil {
			return "", err
		}
	}
	for fi, fn := range m.Functions {
		base := fmt.Sprintf("functions.%d", fi)
		doc, err = sjson.Set(doc, base+".name", fn.Name)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, base+".params", fn.Params)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, base+".imported", fn.Imported)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, base+".returnType", returnTypeLabel(fn))
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, base+".locals", fn.Locals)
		if err != nil {
			return "", err
		}
		for ii, in := range fn.Code {
			doc, err = sjson.Set(doc, fmt.Sprintf("%s.code.%d", base, ii), in.String())
			if err != nil {
				return "", err
			}
		}
	}
	return doc, nil
}

// QueryModuleJSON evaluates a gjson path against a document previously
// produced by ModuleJSON (or any compatible JSON), returning the raw
// matched text.
func QueryModuleJSON(doc, path string) string {
	return gjson.Get(doc, path).String()
}
