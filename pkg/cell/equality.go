package cell

import "reflect"

// Equal reports whether two values are the same for change-detection
// purposes. A Set whose new value is Equal to the current one commits
// nothing and notifies nobody.
//
// An Equal function must be pure. If it panics, the panic propagates to
// the Set caller and the cell keeps its previous value.
type Equal[T any] func(a, b T) bool

// Identity returns an equality policy using ==. This is the cheapest
// policy and the right one for scalar types and pointer-identity
// semantics on containers.
func Identity[T comparable]() Equal[T] {
	return func(a, b T) bool { return a == b }
}

// DeepEqual returns a structural equality policy backed by
// reflect.DeepEqual. It recursively compares exported and unexported
// fields and terminates on cyclic structures, treating matching cycle
// shapes as equal.
func DeepEqual[T any]() Equal[T] {
	return func(a, b T) bool { return reflect.DeepEqual(a, b) }
}

// defaultEqual is the policy used when no WithEquals option is given:
// == for common scalar types, reflect.DeepEqual otherwise.
func defaultEqual[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		// Slices, maps, structs, pointers.
		return reflect.DeepEqual(a, b)
	}
}
