package gen

import "strings"

// FieldKind selects how a generated method traverses a field.
type FieldKind int

const (
	// KindTarget dispatches to the Traverse method of a fellow generated type.
	KindTarget FieldKind = iota
	// KindWith dispatches to a user supplied helper named by the visit tag.
	// The helper takes the field by value for read only traversal and by
	// pointer for the Mut variant:
	//
	//	func Name(field T, v visitor.Visitor) (bool, error)
	//	func NameMut(field *T, v visitor.VisitorMut) (bool, error)
	KindWith
	// KindFallback hands the field to the reflection engine.
	KindFallback
)

type (
	// Plan describes the traversal implementations to generate for one
	// package. It is the final, output focused shape of the pipeline:
	// loaded type information is distilled into per field decisions and
	// the emitter only renders them.
	Plan struct {
		// PkgName is the package clause of emitted files.
		PkgName string
		// Dir is the package source directory output files land in.
		Dir   string
		Types []*TypePlan
	}

	// TypePlan describes one generated type.
	TypePlan struct {
		Name     string
		Receiver string
		SkipSelf bool
		Mutable  bool
		Fields   []*FieldPlan
	}

	// FieldPlan describes one traversed field. Fields that are skipped or
	// scalar never make it into the plan.
	FieldPlan struct {
		Name string
		Kind FieldKind
		// With is the helper base name for KindWith; the mutable variant
		// appends a Mut suffix.
		With string
		// NilGuard wraps the dispatch in a nil check (pointer fields).
		NilGuard bool
	}
)

// receiverOf derives the receiver identifier for a type, avoiding the
// visitor parameter name.
func receiverOf(typeName string) string {
	ret := strings.ToLower(typeName[:1])
	if ret == "v" {
		return "x"
	}
	return ret
}
