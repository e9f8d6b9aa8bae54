package optional

import "golang.org/x/exp/constraints"

// Contains reports whether o holds a value equal to v.
// An unset Optional contains nothing.
func Contains[T comparable](o Optional[T], v T) bool {
	return o.isSet && o.value == v
}

// Equal reports whether a and b have the same presence state and, when both
// are set, equal values. Two unset Optionals are equal.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.isSet != b.isSet {
		return false
	}
	return !a.isSet || a.value == b.value
}

// EqualFunc is Equal for value types that are not comparable, using eq to
// compare the stored values.
func EqualFunc[T any](a, b Optional[T], eq func(T, T) bool) bool {
	if a.isSet != b.isSet {
		return false
	}
	return !a.isSet || eq(a.value, b.value)
}

// Compare orders a and b, with unset ordered before any set value.
// It returns -1, 0, or 1 like cmp.Compare.
func Compare[T constraints.Ordered](a, b Optional[T]) int {
	switch {
	case !a.isSet && !b.isSet:
		return 0
	case !a.isSet:
		return -1
	case !b.isSet:
		return 1
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}
