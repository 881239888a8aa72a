package visitor

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/xunsafe"
)

var timeType = reflect.TypeOf(time.Time{})

// Traverse walks every reachable node of value, firing visitor events in
// depth first order: a node is entered, its children are traversed, the
// node is left. Cycles through pointers, maps and slices are detected and
// broken. Types implementing Traversable drive their own traversal.
func Traverse(value interface{}, v Visitor, opts ...Option) error {
	_, err := TraverseAny(value, v, opts...)
	return err
}

// TraverseAny is the continue flag form of Traverse, for use by Traversable
// implementations that need to thread early termination through nested
// values.
func TraverseAny(value interface{}, v Visitor, opts ...Option) (bool, error) {
	return newWalker(opts).walk(value, v)
}

// TraverseMut walks every reachable node of the value target points to,
// handing each node to the visitor as a pointer so it can be updated in
// place. Map keys are never handed out mutably.
func TraverseMut(target interface{}, v VisitorMut, opts ...Option) error {
	_, err := TraverseAnyMut(target, v, opts...)
	return err
}

// TraverseAnyMut is the continue flag form of TraverseMut.
func TraverseAnyMut(target interface{}, v VisitorMut, opts ...Option) (bool, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return false, fmt.Errorf("expected non nil pointer, got %T", target)
	}
	return newWalker(opts).walkMut(target, v)
}

type walker struct {
	scalars bool
	visited map[uintptr]bool
}

func newWalker(opts Options) *walker {
	ret := &walker{visited: make(map[uintptr]bool)}
	opts.Apply(ret)
	return ret
}

func (w *walker) walk(value interface{}, v Visitor) (bool, error) {
	if value == nil {
		return true, nil
	}
	if traversable, ok := value.(Traversable); ok {
		return traversable.Traverse(v)
	}
	rv := reflect.ValueOf(value)
	// pointers, maps and slice backing arrays carry identity, so an
	// address already on the walk path marks a cycle
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if ptr := rv.Pointer(); ptr != 0 {
			if w.visited[ptr] {
				return true, nil
			}
			w.visited[ptr] = true
			defer delete(w.visited, ptr)
		}
	}
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return true, nil
		}
		return w.walk(rv.Elem().Interface(), v)
	case reflect.Struct:
		if rv.Type() == timeType {
			return w.scalar(value, v)
		}
		return w.walkStruct(value, rv.Type(), v)
	case reflect.Slice, reflect.Array:
		return w.walkSlice(value, v)
	case reflect.Map:
		return w.walkMap(value, v)
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return w.scalar(value, v)
	}
	return true, nil
}

func (w *walker) scalar(value interface{}, v Visitor) (bool, error) {
	if !w.scalars {
		return true, nil
	}
	if cont, err := v.Enter(value); !cont || err != nil {
		return cont, err
	}
	return v.Leave(value)
}

func (w *walker) walkStruct(value interface{}, rType reflect.Type, v Visitor) (bool, error) {
	_, ptr, err := ensurePointer(value)
	if err != nil {
		return false, err
	}
	sType := structTypeOf(rType)
	if cont, err := v.Enter(value); !cont || err != nil {
		return cont, err
	}
	for _, field := range sType.fields {
		if field.tag.Skip {
			continue
		}
		if field.tag.With != "" {
			return false, fmt.Errorf("field %v.%v: with=%v requires generated traversal", rType, field.xField.Name, field.tag.With)
		}
		cont, err := w.walk(field.xField.Value(ptr), v)
		if err != nil {
			return false, err
		}
		if !cont {
			return false, nil
		}
	}
	return v.Leave(value)
}

func (w *walker) walkSlice(value interface{}, v Visitor) (bool, error) {
	pairs, err := SlicePairs(value)
	if err != nil {
		return false, err
	}
	cont := true
	err = pairs(func(_ int, element interface{}) (bool, error) {
		cont, err = w.walk(element, v)
		return cont, err
	})
	if err != nil {
		return false, err
	}
	return cont, nil
}

func (w *walker) walkMap(value interface{}, v Visitor) (bool, error) {
	pairs, err := MapPairs(value)
	if err != nil {
		return false, err
	}
	cont := true
	err = pairs(func(key, element interface{}) (bool, error) {
		if cont, err = w.walk(key, v); !cont || err != nil {
			return cont, err
		}
		cont, err = w.walk(element, v)
		return cont, err
	})
	if err != nil {
		return false, err
	}
	return cont, nil
}

func (w *walker) walkMut(target interface{}, v VisitorMut) (bool, error) {
	if target == nil {
		return true, nil
	}
	if traversable, ok := target.(TraversableMut); ok {
		return traversable.TraverseMut(v)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return true, nil
	}
	ptr := rv.Pointer()
	if w.visited[ptr] {
		return true, nil
	}
	w.visited[ptr] = true
	defer delete(w.visited, ptr)
	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Map, reflect.Slice:
		// the map or backing array itself may already be on the walk
		// path even when the pointer to it is fresh
		if elemPtr := elem.Pointer(); elemPtr != 0 {
			if w.visited[elemPtr] {
				return true, nil
			}
			w.visited[elemPtr] = true
			defer delete(w.visited, elemPtr)
		}
	}
	switch elem.Kind() {
	case reflect.Ptr:
		if elem.IsNil() {
			return true, nil
		}
		return w.walkMut(elem.Interface(), v)
	case reflect.Interface:
		if elem.IsNil() {
			return true, nil
		}
		concrete := elem.Elem()
		boxed := reflect.New(concrete.Type())
		boxed.Elem().Set(concrete)
		cont, err := w.walkMut(boxed.Interface(), v)
		if err != nil {
			return false, err
		}
		elem.Set(boxed.Elem())
		return cont, nil
	case reflect.Struct:
		if elem.Type() == timeType {
			return w.scalarMut(target, v)
		}
		return w.walkStructMut(target, elem.Type(), v)
	case reflect.Slice, reflect.Array:
		for i := 0; i < elem.Len(); i++ {
			cont, err := w.walkMut(elem.Index(i).Addr().Interface(), v)
			if err != nil {
				return false, err
			}
			if !cont {
				return false, nil
			}
		}
		return true, nil
	case reflect.Map:
		// keys are not addressable, values are traversed through an
		// addressable copy written back after the subtree walk
		for _, key := range elem.MapKeys() {
			val := elem.MapIndex(key)
			boxed := reflect.New(val.Type())
			boxed.Elem().Set(val)
			cont, err := w.walkMut(boxed.Interface(), v)
			if err != nil {
				return false, err
			}
			elem.SetMapIndex(key, boxed.Elem())
			if !cont {
				return false, nil
			}
		}
		return true, nil
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return w.scalarMut(target, v)
	}
	return true, nil
}

func (w *walker) scalarMut(target interface{}, v VisitorMut) (bool, error) {
	if !w.scalars {
		return true, nil
	}
	if cont, err := v.EnterMut(target); !cont || err != nil {
		return cont, err
	}
	return v.LeaveMut(target)
}

func (w *walker) walkStructMut(target interface{}, rType reflect.Type, v VisitorMut) (bool, error) {
	ptr := xunsafe.AsPointer(target)
	sType := structTypeOf(rType)
	if cont, err := v.EnterMut(target); !cont || err != nil {
		return cont, err
	}
	for _, field := range sType.fields {
		if field.tag.Skip {
			continue
		}
		if field.tag.With != "" {
			return false, fmt.Errorf("field %v.%v: with=%v requires generated traversal", rType, field.xField.Name, field.tag.With)
		}
		fieldPtr := reflect.NewAt(field.xField.Type, field.xField.Pointer(ptr)).Interface()
		cont, err := w.walkMut(fieldPtr, v)
		if err != nil {
			return false, err
		}
		if !cont {
			return false, nil
		}
	}
	return v.LeaveMut(target)
}
