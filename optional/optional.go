// Package optional models a result that may hold a value or nothing. The sorted
// map cursor returns keys wrapped in a Value so that "no key" is never confused
// with a zero-valued key.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either one value of type T or nothing.
// The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, panicking when there is none.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value, or defaultValue when there is none.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// All yields the value once if present.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// String renders "Some(v)" or "None".
func (o Value[T]) String() string {
	if !o.isSet {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
