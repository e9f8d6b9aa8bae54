// Package optional provides a generic container that holds either exactly
// one value of its type parameter or nothing at all.
package optional

import (
	"errors"
	"fmt"
)

// ErrNoValue is returned by checked accessors called on an unset Optional.
var ErrNoValue = errors.New("optional has no value")

// Optional is a type that represents an optional value.
// The zero value is the unset container.
//
// Optional has value semantics: assigning or passing it copies the contained
// value, and the copies are independent. T should itself be a value type;
// wrapping a pointer, slice, or map stores the reference value as-is.
type Optional[T any] struct {
	value T
	isSet bool
}

// AbsentTag is the zero-size tag type requesting explicit construction of
// an unset Optional.
type AbsentTag struct{}

// Absent is the singleton tag value for the unset state.
var Absent = AbsentTag{}

// Some creates an optional value with the given value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, isSet: true}
}

// None creates an optional value with no value set
func None[T any]() Optional[T] {
	return Optional[T]{isSet: false}
}

// Make returns an unset Optional. The tag argument lets call sites spell
// absence as a value, e.g. optional.Make[int](optional.Absent).
func Make[T any](AbsentTag) Optional[T] {
	return None[T]()
}

// Move creates an optional holding src's value and leaves src unset.
// Moving from an unset src yields an unset result.
func Move[T any](src *Optional[T]) Optional[T] {
	if !src.isSet {
		return None[T]()
	}
	v := src.value
	src.Unset()
	return Some(v)
}

// IsSet returns true if the optional value is set
func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// Set sets the optional value
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// Unset unsets the optional value. The stored value is zeroed so the
// container drops its reference to it. Calling Unset on an unset Optional
// is a no-op.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.isSet = false
}

// Get returns the optional value and a boolean indicating if the value is set
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOr returns the optional value or a default value if the value is not set
func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Value returns the optional value, or ErrNoValue if the value is not set.
// A failed access leaves the container unchanged.
func (o Optional[T]) Value() (T, error) {
	if !o.isSet {
		var zero T
		return zero, ErrNoValue
	}
	return o.value, nil
}

// Ptr returns a pointer to the stored value for in-place mutation, or nil
// if the value is not set. The pointer is invalidated by Set, Unset, or
// Release.
func (o *Optional[T]) Ptr() *T {
	if !o.isSet {
		return nil
	}
	return &o.value
}

// Release returns the optional value and leaves the container unset,
// or returns ErrNoValue if the value is not set. A second Release without
// an intervening Set fails the same way.
func (o *Optional[T]) Release() (T, error) {
	if !o.isSet {
		var zero T
		return zero, ErrNoValue
	}
	v := o.value
	o.Unset()
	return v, nil
}

// Unwrap returns the optional value or panics if the value is not set
func (o Optional[T]) Unwrap() T {
	if o.isSet {
		return o.value
	}
	panic("Optional value is not set")
}

// Then calls fn with the value for its side effect if the value is set,
// then returns the container unchanged. fn is not called on an unset
// Optional.
func (o Optional[T]) Then(fn func(T)) Optional[T] {
	if o.isSet {
		fn(o.value)
	}
	return o
}

// Map applies fn to the value if it is set and wraps the result in a new
// Optional of fn's return type. An unset input yields an unset output and
// fn is not called.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.isSet {
		return None[U]()
	}
	return Some(fn(o.value))
}

// String formats the container as Some(value) or None.
func (o Optional[T]) String() string {
	if !o.isSet {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
