package pulse

import "reflect"

// EqualsFunc decides whether a Set actually changed the value. Holders only
// notify when it returns false.
type EqualsFunc[T any] func(a, b T) bool

// defaultEquals compares common scalar types with == and falls back to
// reflect.DeepEqual for everything else. Override per holder with
// WithEquals, WithRefEquals or WithDeepEquals.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
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
		return reflect.DeepEqual(a, b)
	}
}

// refEquals is strict identity: == on the boxed values. Panics for
// uncomparable dynamic types, which is the caller opting into that contract.
func refEquals[T any](a, b T) bool {
	return any(a) == any(b)
}

func deepEquals[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
