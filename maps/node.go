package maps

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-linkedmap/copier"
	"github.com/amp-labs/amp-linkedmap/sortable"
)

// none is the link value meaning "no node".
const none int32 = -1

// capabilities are the caller-supplied functions a map is built with.
// They are fixed at construction and shared by copies of the map.
type capabilities[K any, V any] struct {
	copyData copier.CopyFunc[V]
	copyKey  copier.CopyFunc[K]
	freeData copier.ReleaseFunc[V]
	freeKey  copier.ReleaseFunc[K]
	compare  sortable.Comparator[K]
}

// node is one cell of the chain. It owns its key and data copies; next is a
// non-owning link (an arena slot index) to the following cell.
type node[K any, V any] struct {
	key  K
	data V
	next int32
	live bool
}

// newNode builds a node holding independent copies of key and data.
// If the data copy fails, the key copy that already succeeded is released.
func newNode[K any, V any](key K, data V, caps *capabilities[K, V]) (node[K, V], error) {
	keyCopy, err := caps.copyKey(key)
	if err != nil {
		return node[K, V]{}, fmt.Errorf("%w: copying key: %w", ErrOutOfMemory, err)
	}

	dataCopy, err := caps.copyData(data)
	if err != nil {
		caps.freeKey(keyCopy)

		return node[K, V]{}, fmt.Errorf("%w: copying data: %w", ErrOutOfMemory, err)
	}

	return node[K, V]{key: keyCopy, data: dataCopy, next: none, live: true}, nil
}

// destroy releases the node's payloads. The caller must not use the node again.
func (n *node[K, V]) destroy(caps *capabilities[K, V]) {
	caps.freeData(n.data)
	caps.freeKey(n.key)
}

// getKey returns the stored key itself. The map keeps owning it.
func (n *node[K, V]) getKey() K {
	return n.key
}

// getData returns a fresh copy of the stored data, owned by the caller.
func (n *node[K, V]) getData(copyData copier.CopyFunc[V]) (V, error) {
	out, err := copyData(n.data)
	if err != nil {
		var zero V

		return zero, fmt.Errorf("%w: copying data: %w", ErrOutOfMemory, err)
	}

	return out, nil
}

func (n *node[K, V]) getNext() int32 {
	return n.next
}

// setData replaces the stored data with a copy of data. The old data is only
// released once the copy exists, so a failed copy leaves the node untouched.
func (n *node[K, V]) setData(data V, copyData copier.CopyFunc[V], freeData copier.ReleaseFunc[V]) error {
	if isNil(data) {
		return fmt.Errorf("%w: data", ErrNullArgument)
	}

	dataCopy, err := copyData(data)
	if err != nil {
		return fmt.Errorf("%w: copying data: %w", ErrOutOfMemory, err)
	}

	freeData(n.data)
	n.data = dataCopy

	return nil
}

// isNil reports whether value is nil or a nil pointer, map, slice, channel,
// function or interface.
func isNil[T any](value T) bool {
	val := any(value)
	if val == nil {
		return true
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}

	return false
}
