package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/viant/tagly/format/text"
)

const header = "// Code generated by visitorgen. DO NOT EDIT.\n\npackage %v\n\nimport \"github.com/fast/visitor\"\n"

// FileName returns the generated file name for a type,
// e.g. OrderItem becomes order_item_visitor.go.
func FileName(typeName string) string {
	return text.CaseFormatUpperCamel.Format(typeName, text.CaseFormatLowerUnderscore) + "_visitor.go"
}

// Emit renders the plan into gofmt formatted Go source.
func Emit(plan *Plan) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, header, plan.PkgName)
	for _, typePlan := range plan.Types {
		emitTraverse(buf, typePlan)
		if typePlan.Mutable {
			emitTraverseMut(buf, typePlan)
		}
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return code, nil
}

func emitTraverse(buf *bytes.Buffer, t *TypePlan) {
	recv := t.Receiver
	fmt.Fprintf(buf, "\n// Traverse implements visitor.Traversable.\n")
	fmt.Fprintf(buf, "func (%v %v) Traverse(v visitor.Visitor) (bool, error) {\n", recv, t.Name)
	if !t.SkipSelf {
		emitStep(buf, 1, fmt.Sprintf("v.Enter(%v)", recv))
	}
	for _, field := range t.Fields {
		value := fmt.Sprintf("%v.%v", recv, field.Name)
		var call string
		switch field.Kind {
		case KindTarget:
			call = fmt.Sprintf("%v.Traverse(v)", value)
		case KindWith:
			call = fmt.Sprintf("%v(%v, v)", field.With, value)
		case KindFallback:
			call = fmt.Sprintf("visitor.TraverseAny(%v, v)", value)
		}
		if field.NilGuard {
			fmt.Fprintf(buf, "\tif %v != nil {\n", value)
			emitStep(buf, 2, call)
			fmt.Fprintf(buf, "\t}\n")
		} else {
			emitStep(buf, 1, call)
		}
	}
	if t.SkipSelf {
		fmt.Fprintf(buf, "\treturn true, nil\n}\n")
	} else {
		fmt.Fprintf(buf, "\treturn v.Leave(%v)\n}\n", recv)
	}
}

func emitTraverseMut(buf *bytes.Buffer, t *TypePlan) {
	recv := t.Receiver
	fmt.Fprintf(buf, "\n// TraverseMut implements visitor.TraversableMut.\n")
	fmt.Fprintf(buf, "func (%v *%v) TraverseMut(v visitor.VisitorMut) (bool, error) {\n", recv, t.Name)
	if !t.SkipSelf {
		emitStep(buf, 1, fmt.Sprintf("v.EnterMut(%v)", recv))
	}
	for _, field := range t.Fields {
		value := fmt.Sprintf("%v.%v", recv, field.Name)
		var call string
		switch field.Kind {
		case KindTarget:
			call = fmt.Sprintf("%v.TraverseMut(v)", value)
		case KindWith:
			call = fmt.Sprintf("%vMut(&%v, v)", field.With, value)
		case KindFallback:
			call = fmt.Sprintf("visitor.TraverseAnyMut(&%v, v)", value)
		}
		if field.NilGuard {
			fmt.Fprintf(buf, "\tif %v != nil {\n", value)
			emitStep(buf, 2, call)
			fmt.Fprintf(buf, "\t}\n")
		} else {
			emitStep(buf, 1, call)
		}
	}
	if t.SkipSelf {
		fmt.Fprintf(buf, "\treturn true, nil\n}\n")
	} else {
		fmt.Fprintf(buf, "\treturn v.LeaveMut(%v)\n}\n", recv)
	}
}

func emitStep(buf *bytes.Buffer, depth int, call string) {
	indent := strings.Repeat("\t", depth)
	fmt.Fprintf(buf, "%vif cont, err := %v; !cont || err != nil {\n%v\treturn cont, err\n%v}\n", indent, call, indent, indent)
}
