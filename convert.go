package optional

import "golang.org/x/exp/constraints"

// CastInt converts an integer optional value to another type
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if a.isSet {
		out.Set(B(a.value))
	}
	return out
}

// FromPtr wraps the pointed-to value, or returns an unset Optional for nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// ToPtr returns a pointer to a copy of the value, or nil if the value is
// not set. The pointer never aliases the container's own storage.
func (o Optional[T]) ToPtr() *T {
	if !o.isSet {
		return nil
	}
	v := o.value
	return &v
}
