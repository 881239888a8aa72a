package visitor

import (
	"fmt"
	"reflect"
)

// Pairs iterates over (key, element) pairs of a container.
// The iteration calls the provided callback for each pair.
// If the callback returns (false, nil), the iteration stops.
// If the callback returns an error, the iteration stops and returns that error.
type Pairs[K comparable, E any] func(func(key K, element E) (bool, error)) error

// StructPairs creates a shallow (field name, field value) iteration over a
// struct or pointer to struct. Unexported fields and fields tagged
// `visit:"skip"` are omitted.
func StructPairs(value interface{}) (Pairs[string, interface{}], error) {
	rType, ptr, err := ensurePointer(value)
	if err != nil {
		return nil, err
	}
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	sType := structTypeOf(rType)
	return func(f func(key string, element interface{}) (bool, error)) error {
		for _, field := range sType.fields {
			if field.tag.Skip {
				continue
			}
			continueVisit, err := f(field.xField.Name, field.xField.Value(ptr))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// SlicePairs creates an (index, element) iteration over any slice or array
// value, with typed fast paths for common element types.
func SlicePairs(value interface{}) (Pairs[int, interface{}], error) {
	switch actual := value.(type) {
	case []string:
		return typedSlicePairs[string](actual), nil
	case []bool:
		return typedSlicePairs[bool](actual), nil
	case []int:
		return typedSlicePairs[int](actual), nil
	case []int64:
		return typedSlicePairs[int64](actual), nil
	case []uint64:
		return typedSlicePairs[uint64](actual), nil
	case []byte:
		return typedSlicePairs[byte](actual), nil
	case []float64:
		return typedSlicePairs[float64](actual), nil
	case []float32:
		return typedSlicePairs[float32](actual), nil
	case []interface{}:
		return typedSlicePairs[interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i := 0; i < val.Len(); i++ {
			continueVisit, err := f(i, val.Index(i).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

func typedSlicePairs[E any](slice []E) Pairs[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// MapPairs creates a (key, element) iteration over any map value, with
// typed fast paths for common map types. Entry order is unspecified.
func MapPairs(value interface{}) (Pairs[interface{}, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return typedMapPairs[string, interface{}](actual), nil
	case map[string]string:
		return typedMapPairs[string, string](actual), nil
	case map[string]int:
		return typedMapPairs[string, int](actual), nil
	case map[string]bool:
		return typedMapPairs[string, bool](actual), nil
	case map[int]string:
		return typedMapPairs[int, string](actual), nil
	case map[int]interface{}:
		return typedMapPairs[int, interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		iter := val.MapRange()
		for iter.Next() {
			continueVisit, err := f(iter.Key().Interface(), iter.Value().Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

func typedMapPairs[K comparable, E any](aMap map[K]E) Pairs[interface{}, interface{}] {
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
