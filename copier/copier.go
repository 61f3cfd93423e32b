// Package copier provides the copy and release capabilities a sorted map uses to
// take ownership of keys and values.
//
// A CopyFunc returns an independent duplicate of its input or an error when no
// duplicate can be made. A ReleaseFunc disposes of a duplicate the map no longer
// needs. Memory is reclaimed by the garbage collector either way, so most
// ReleaseFuncs are [Noop]; a release hook matters for values that hold other
// resources (see [Close] and [Wipe]).
package copier

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/fxamacker/cbor/v2"
)

// ErrNilValue is returned by copiers that cannot duplicate a nil input.
var ErrNilValue = errors.New("nil value")

// CopyFunc returns an independent copy of value.
type CopyFunc[T any] func(value T) (T, error)

// ReleaseFunc disposes of a copy previously produced by a CopyFunc.
type ReleaseFunc[T any] func(value T)

// Identity copies by assignment. It is the right choice for value types that do
// not share memory (numbers, strings, structs of those).
func Identity[T any]() CopyFunc[T] {
	return func(value T) (T, error) {
		return value, nil
	}
}

// Noop releases nothing.
func Noop[T any]() ReleaseFunc[T] {
	return func(T) {}
}

// Slice copies the backing array of a slice. Elements are copied by assignment.
// A nil slice copies to nil.
func Slice[S ~[]E, E any]() CopyFunc[S] {
	return func(value S) (S, error) {
		return slices.Clone(value), nil
	}
}

// Map copies a built-in map. Entries are copied by assignment.
func Map[M ~map[K]V, K comparable, V any]() CopyFunc[M] {
	return func(value M) (M, error) {
		return maps.Clone(value), nil
	}
}

// Pointer allocates a new T holding a shallow copy of *value.
// Nil pointers fail with ErrNilValue.
func Pointer[T any]() CopyFunc[*T] {
	return func(value *T) (*T, error) {
		if value == nil {
			return nil, ErrNilValue
		}

		out := new(T)
		*out = *value

		return out, nil
	}
}

// CBOR deep copies a value by encoding it to CBOR and decoding it into a fresh
// T. Only exported fields survive the round trip, and T must be encodable
// (no channels or functions).
func CBOR[T any]() CopyFunc[T] {
	return func(value T) (T, error) {
		var out T

		data, err := cbor.Marshal(value)
		if err != nil {
			return out, fmt.Errorf("encoding %T: %w", value, err)
		}

		if err := cbor.Unmarshal(data, &out); err != nil {
			return out, fmt.Errorf("decoding %T: %w", value, err)
		}

		return out, nil
	}
}

// Close releases values by closing them. A failed close is logged, not returned,
// since releasing must not fail.
func Close[T io.Closer]() ReleaseFunc[T] {
	return func(value T) {
		if err := value.Close(); err != nil {
			slog.Error("failed to close released value", "error", err)
		}
	}
}

// Wipe zeroes a byte slice before it is dropped, for keys or values holding
// secrets. A map logs keys and attaches them to errors unless it is built with
// maps.WithoutKeyLogging.
func Wipe[S ~[]byte]() ReleaseFunc[S] {
	return func(value S) {
		clear(value)
	}
}
