package visitor

import (
	"reflect"
	"strings"
)

const (
	// TagName defines the struct tag controlling per field traversal.
	TagName = "visit"
)

// Tag holds field level traversal settings parsed from the `visit` tag.
type Tag struct {
	// Skip excludes the field from traversal.
	Skip bool
	// With names a helper function that traverses the field instead of
	// the default walk. Only honored by generated code; the reflection
	// engine cannot resolve a name to a function.
	With string
}

// ParseTag parses the `visit` tag of a struct field.
func ParseTag(tag reflect.StructTag) *Tag {
	ret := &Tag{}
	encoded, ok := tag.Lookup(TagName)
	if !ok {
		return ret
	}
	for _, fragment := range strings.Split(encoded, ",") {
		fragment = strings.TrimSpace(fragment)
		switch {
		case fragment == "skip" || fragment == "-":
			ret.Skip = true
		case strings.HasPrefix(fragment, "with="):
			ret.With = fragment[len("with="):]
		}
	}
	return ret
}
