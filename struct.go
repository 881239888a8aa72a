package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, *structType]()

type (
	//structType holds cached per type traversal metadata
	structType struct {
		rType  reflect.Type
		fields []*fieldType
	}

	//fieldType pairs fast field access with parsed traversal settings
	fieldType struct {
		xField *xunsafe.Field
		tag    *Tag
	}
)

// structTypeOf returns cached traversal metadata for a struct type.
// Only exported fields participate.
func structTypeOf(t reflect.Type) *structType {
	if ret, ok := structCache.Get(t); ok {
		return ret
	}
	xStruct := xunsafe.NewStruct(t)
	byName := make(map[string]*xunsafe.Field, len(xStruct.Fields))
	for i := range xStruct.Fields {
		byName[xStruct.Fields[i].Name] = &xStruct.Fields[i]
	}
	ret := &structType{rType: t}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		xField, ok := byName[field.Name]
		if !ok {
			continue
		}
		ret.fields = append(ret.fields, &fieldType{xField: xField, tag: ParseTag(field.Tag)})
	}
	structCache.Put(t, ret)
	return ret
}

// ensurePointer returns value's struct type and an addressable pointer to
// its data, boxing non pointer values into a fresh allocation.
func ensurePointer(value interface{}) (reflect.Type, unsafe.Pointer, error) {
	valueType := reflect.TypeOf(value)
	var structRType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if reflect.ValueOf(value).IsNil() {
			return nil, nil, fmt.Errorf("expected non nil pointer, got %T", value)
		}
		structRType = valueType.Elem()
	case reflect.Struct:
		structRType = valueType
		rPointer := reflect.New(structRType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	return structRType, xunsafe.AsPointer(value), nil
}
