// Package maps provides SortedMap, an ordered key-value container kept as a
// singly linked chain sorted ascending by key.
//
// A SortedMap owns copies of everything stored in it. Keys and values are copied
// in with the caller's copy functions and disposed of with the caller's release
// functions, and Get hands back a fresh copy, so no memory is ever shared
// between the map and its callers.
//
// Lookups, insertions and removals scan the chain from the head and are O(n).
// The map is meant for small collections where ordered iteration matters more
// than asymptotic cost.
//
// Thread-safety: a SortedMap is not safe for concurrent use. Even Get and First
// are unsafe to call concurrently with anything else because they use the
// caller's copy functions and the built-in cursor.
package maps

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-linkedmap/copier"
	"github.com/amp-labs/amp-linkedmap/logger"
	"github.com/amp-labs/amp-linkedmap/optional"
	"github.com/amp-labs/amp-linkedmap/sortable"
)

// SortedMap is an ordered map from K to V backed by a sorted singly linked list.
//
// Besides the stateless Keys iterator, the map has one built-in cursor driven by
// First and Next. The cursor is reset by Put, Remove, Clear and Destroy; reads
// (Get, GetOrElse, Contains, Size, Keys, Validate) and Copy leave it alone.
//
// A nil *SortedMap, or one that has been destroyed, is treated as an absent map:
// mutations fail with ErrNullArgument, Size returns -1 and reads find nothing.
type SortedMap[K any, V any] struct {
	nodes  arena[K, V]
	head   int32
	cursor cursor
	size   int
	caps   *capabilities[K, V]
	logger *slog.Logger

	hideKeys bool
}

// New creates an empty map that copies data with copyData and keys with copyKey,
// releases them with freeData and freeKey, and orders keys with compare.
// compare must be a strict total order consistent with key equality.
// It fails with ErrNullArgument if any function is nil.
func New[K any, V any](
	copyData copier.CopyFunc[V],
	copyKey copier.CopyFunc[K],
	freeData copier.ReleaseFunc[V],
	freeKey copier.ReleaseFunc[K],
	compare sortable.Comparator[K],
	opts ...Option,
) (*SortedMap[K, V], error) {
	if copyData == nil || copyKey == nil || freeData == nil || freeKey == nil || compare == nil {
		return nil, fmt.Errorf("%w: every copy, release and compare function is required", ErrNullArgument)
	}

	return newSortedMap(&capabilities[K, V]{
		copyData: copyData,
		copyKey:  copyKey,
		freeData: freeData,
		freeKey:  freeKey,
		compare:  compare,
	}, buildOptions(opts)), nil
}

// NewOrdered creates an empty map for keys with a built-in order. Keys and
// values are copied by assignment and need no release.
func NewOrdered[K cmp.Ordered, V any](opts ...Option) *SortedMap[K, V] {
	return newSortedMap(&capabilities[K, V]{
		copyData: copier.Identity[V](),
		copyKey:  copier.Identity[K](),
		freeData: copier.Noop[V](),
		freeKey:  copier.Noop[K](),
		compare:  sortable.Natural[K](),
	}, buildOptions(opts))
}

// NewSortable creates an empty map for keys implementing sortable.Sortable.
// Keys and values are copied by assignment and need no release.
func NewSortable[K sortable.Sortable[K], V any](opts ...Option) *SortedMap[K, V] {
	return newSortedMap(&capabilities[K, V]{
		copyData: copier.Identity[V](),
		copyKey:  copier.Identity[K](),
		freeData: copier.Noop[V](),
		freeKey:  copier.Noop[K](),
		compare:  sortable.Of[K](),
	}, buildOptions(opts))
}

func newSortedMap[K any, V any](caps *capabilities[K, V], opts options) *SortedMap[K, V] {
	return &SortedMap[K, V]{
		nodes:  newArena[K, V](),
		head:   none,
		cursor: cursor{state: cursorReset, at: none},
		caps:   caps,
		logger: opts.logger,

		hideKeys: opts.hideKeys,
	}
}

// keyAttrs returns args followed by the log attributes describing key, or args
// alone when the map was built WithoutKeyLogging.
func (m *SortedMap[K, V]) keyAttrs(key K, args ...any) []any {
	if m.hideKeys {
		return args
	}

	return append(args, "key", key)
}

// absent reports whether the receiver should be treated as a missing map.
func (m *SortedMap[K, V]) absent() bool {
	return m == nil || m.caps == nil
}

// locate scans for key. It returns the slot holding key (found=true) or, when
// key is missing, the first slot whose key is strictly greater (or none). prev
// is the slot before cur, or none when cur is the head.
func (m *SortedMap[K, V]) locate(key K) (prev int32, cur int32, found bool) {
	prev = none

	for cur = m.head; cur != none; cur = m.nodes.next(cur) {
		c := m.caps.compare(m.nodes.at(cur).getKey(), key)
		if c == 0 {
			return prev, cur, true
		}

		if c > 0 {
			break
		}

		prev = cur
	}

	return prev, cur, false
}

// Put stores a copy of data under a copy of key.
//
// If an equal key is already present its data is replaced in place and the size
// is unchanged; the old data is released only after the new copy succeeded.
// Otherwise a new entry is linked in front of the first strictly greater key,
// or at the tail, and the size grows by one.
//
// Returns ErrNullArgument for an absent map, key or data and ErrOutOfMemory if
// a copy fails; in both cases the entries are unchanged. The cursor is reset.
func (m *SortedMap[K, V]) Put(key K, data V) error {
	if m.absent() {
		return logger.AnnotateError(fmt.Errorf("%w: map", ErrNullArgument), "op", "put")
	}

	m.cursor.reset()

	if isNil(key) {
		return logger.AnnotateError(fmt.Errorf("%w: key", ErrNullArgument), "op", "put")
	}

	if isNil(data) {
		return logger.AnnotateError(fmt.Errorf("%w: data", ErrNullArgument), m.keyAttrs(key, "op", "put")...)
	}

	prev, cur, found := m.locate(key)
	if found {
		if err := m.nodes.at(cur).setData(data, m.caps.copyData, m.caps.freeData); err != nil {
			m.logger.Debug("sorted map: update failed, keeping old data", m.keyAttrs(key, "error", err)...)

			return logger.AnnotateError(err, m.keyAttrs(key, "op", "put")...)
		}

		return nil
	}

	n, err := newNode(key, data, m.caps)
	if err != nil {
		m.logger.Debug("sorted map: insert failed", m.keyAttrs(key, "error", err)...)

		return logger.AnnotateError(err, m.keyAttrs(key, "op", "put")...)
	}

	// cur is the first strictly greater node, so the new node goes between prev and cur.
	n.next = cur
	idx := m.nodes.alloc(n)

	if prev == none {
		m.head = idx
	} else if err := m.nodes.setNext(prev, idx); err != nil {
		return err
	}

	m.size++

	return nil
}

// Get returns an independent copy of the data stored under key. The caller owns
// the copy.
//
// A missing key yields found=false and no error. An absent map or key yields
// ErrNullArgument, and a failed copy ErrOutOfMemory. The cursor is not touched.
func (m *SortedMap[K, V]) Get(key K) (value V, found bool, err error) {
	var zero V

	if m.absent() {
		return zero, false, logger.AnnotateError(fmt.Errorf("%w: map", ErrNullArgument), "op", "get")
	}

	if isNil(key) {
		return zero, false, logger.AnnotateError(fmt.Errorf("%w: key", ErrNullArgument), "op", "get")
	}

	_, cur, ok := m.locate(key)
	if !ok {
		return zero, false, nil
	}

	value, err = m.nodes.at(cur).getData(m.caps.copyData)
	if err != nil {
		m.logger.Debug("sorted map: copy on get failed", m.keyAttrs(key, "error", err)...)

		return zero, false, logger.AnnotateError(err, m.keyAttrs(key, "op", "get")...)
	}

	return value, true, nil
}

// GetOrElse returns a copy of the data stored under key, or defaultValue when
// the key is missing.
func (m *SortedMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	value, found, err := m.Get(key)
	if err != nil {
		var zero V

		return zero, err
	}

	if !found {
		return defaultValue, nil
	}

	return value, nil
}

// Contains reports whether an entry with a key equal to key exists. It is false
// for an absent map or key. The cursor is not touched.
func (m *SortedMap[K, V]) Contains(key K) bool {
	if m.absent() || isNil(key) {
		return false
	}

	_, _, found := m.locate(key)

	return found
}

// Remove unlinks the entry for key and releases its key and data.
//
// Returns ErrItemDoesNotExist if there is no such entry and ErrNullArgument for
// an absent map or key. The cursor is reset.
func (m *SortedMap[K, V]) Remove(key K) error {
	if m.absent() {
		return logger.AnnotateError(fmt.Errorf("%w: map", ErrNullArgument), "op", "remove")
	}

	m.cursor.reset()

	if isNil(key) {
		return logger.AnnotateError(fmt.Errorf("%w: key", ErrNullArgument), "op", "remove")
	}

	prev, cur, found := m.locate(key)
	if !found {
		return logger.AnnotateError(ErrItemDoesNotExist, m.keyAttrs(key, "op", "remove")...)
	}

	next := m.nodes.next(cur)

	if prev == none {
		m.head = next
	} else if err := m.nodes.setNext(prev, next); err != nil {
		return err
	}

	m.nodes.release(cur, m.caps)
	m.size--

	return nil
}

// Clear releases every entry and leaves the map empty. Clearing an empty map is
// a no-op. Returns ErrNullArgument only for an absent map. The cursor is reset.
func (m *SortedMap[K, V]) Clear() error {
	if m.absent() {
		return logger.AnnotateError(fmt.Errorf("%w: map", ErrNullArgument), "op", "clear")
	}

	for cur := m.head; cur != none; {
		next := m.nodes.next(cur)
		m.nodes.at(cur).destroy(m.caps)
		cur = next
	}

	m.nodes.reset()
	m.head = none
	m.size = 0
	m.cursor.reset()

	return nil
}

// Copy returns a new map with the same functions and options holding its own
// copies of every entry, in the same order. If any copy fails, everything
// copied so far is released and ErrOutOfMemory is returned; the source is never
// modified. The source cursor is left alone and the copy's cursor starts reset.
func (m *SortedMap[K, V]) Copy() (*SortedMap[K, V], error) {
	if m.absent() {
		return nil, logger.AnnotateError(fmt.Errorf("%w: map", ErrNullArgument), "op", "copy")
	}

	out := newSortedMap(m.caps, options{logger: m.logger, hideKeys: m.hideKeys})
	tail := none

	for cur := m.head; cur != none; cur = m.nodes.next(cur) {
		src := m.nodes.at(cur)

		n, err := newNode(src.getKey(), src.data, m.caps)
		if err != nil {
			m.logger.Debug("sorted map: copy failed, discarding partial copy",
				m.keyAttrs(src.getKey(), "copied", out.size, "error", err)...)

			out.Destroy()

			return nil, logger.AnnotateError(err, m.keyAttrs(src.getKey(), "op", "copy")...)
		}

		// The source is already sorted, so appending keeps the copy sorted.
		idx := out.nodes.alloc(n)
		if tail == none {
			out.head = idx
		} else if err := out.nodes.setNext(tail, idx); err != nil {
			return nil, err
		}

		tail = idx
		out.size++
	}

	return out, nil
}

// Destroy releases every entry and detaches the map from its functions. The map
// then behaves as an absent map. Destroying a nil or already destroyed map is a
// no-op.
func (m *SortedMap[K, V]) Destroy() {
	if m.absent() {
		return
	}

	_ = m.Clear()

	m.caps = nil
	m.nodes = newArena[K, V]()
}

// Size returns the number of entries, or -1 for an absent map.
func (m *SortedMap[K, V]) Size() int {
	if m.absent() {
		return -1
	}

	return m.size
}

// First moves the cursor to the smallest key and returns it. It returns None for
// an empty or absent map. The key is the map's own copy and must not be
// modified.
func (m *SortedMap[K, V]) First() optional.Value[K] {
	if m.absent() {
		return optional.None[K]()
	}

	if m.head == none {
		m.cursor.reset()

		return optional.None[K]()
	}

	m.cursor.moveTo(m.head)

	return optional.Some(m.nodes.at(m.head).getKey())
}

// Next advances the cursor to the following key and returns it. It returns None,
// leaving the cursor reset, once the last key has been passed, and also when no
// iteration is in progress (First was not called, or the map changed since).
func (m *SortedMap[K, V]) Next() optional.Value[K] {
	if m.absent() {
		return optional.None[K]()
	}

	at, ok := m.cursor.position()
	if !ok {
		return optional.None[K]()
	}

	next := m.nodes.next(at)
	if next == none {
		m.cursor.reset()

		return optional.None[K]()
	}

	m.cursor.moveTo(next)

	return optional.Some(m.nodes.at(next).getKey())
}

// Keys returns an iterator over the keys in ascending order. It is independent of
// the built-in cursor and may be ranged over any number of times. The map must
// not be modified while ranging. Yielded keys are the map's own copies and must
// not be modified.
func (m *SortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m.absent() {
			return
		}

		for cur := m.head; cur != none; cur = m.nodes.next(cur) {
			if !yield(m.nodes.at(cur).getKey()) {
				return
			}
		}
	}
}
