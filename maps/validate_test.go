package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatedMap(t *testing.T, keys ...int) *SortedMap[int, string] {
	t.Helper()

	m := NewOrdered[int, string]()
	for _, k := range keys {
		require.NoError(t, m.Put(k, "v"))
	}

	require.NoError(t, m.Validate())

	return m
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("healthy maps pass", func(t *testing.T) {
		t.Parallel()

		m := validatedMap(t, 5, 1, 3)
		require.NoError(t, m.Remove(3))
		require.NoError(t, m.Put(2, "v"))

		require.NoError(t, m.Validate())
	})

	t.Run("absent map", func(t *testing.T) {
		t.Parallel()

		var m *SortedMap[int, string]

		require.ErrorIs(t, m.Validate(), ErrNullArgument)
	})

	t.Run("out of order keys", func(t *testing.T) {
		t.Parallel()

		m := validatedMap(t, 1, 2, 3)
		m.nodes.at(m.head).key = 10

		err := m.Validate()
		require.ErrorIs(t, err, ErrCorrupted)
		assert.Contains(t, err.Error(), "does not follow 10")
	})

	t.Run("wrong size", func(t *testing.T) {
		t.Parallel()

		m := validatedMap(t, 1, 2)
		m.size = 5

		err := m.Validate()
		require.ErrorIs(t, err, ErrCorrupted)
		assert.Contains(t, err.Error(), "size is 5 but the chain holds 2 entries")
		assert.Contains(t, err.Error(), "size is 5 but 2 slots are occupied")
	})

	t.Run("cycle", func(t *testing.T) {
		t.Parallel()

		m := validatedMap(t, 1, 2, 3)

		last := m.head
		for m.nodes.next(last) != none {
			last = m.nodes.next(last)
		}

		require.NoError(t, m.nodes.setNext(last, m.head))

		err := m.Validate()
		require.ErrorIs(t, err, ErrCorrupted)
		assert.Contains(t, err.Error(), "cycle detected")
	})

	t.Run("link out of range", func(t *testing.T) {
		t.Parallel()

		m := validatedMap(t, 1)
		require.NoError(t, m.nodes.setNext(m.head, 42))

		err := m.Validate()
		require.ErrorIs(t, err, ErrCorrupted)
		assert.Contains(t, err.Error(), "slot 42 is out of range")
	})

	t.Run("link to a free slot", func(t *testing.T) {
		t.Parallel()

		m := validatedMap(t, 1, 2, 3)
		second := m.nodes.next(m.head)
		third := m.nodes.next(second)

		// Drop the second node from the size bookkeeping but keep it linked.
		m.nodes.release(second, m.caps)
		require.NoError(t, m.nodes.setNext(second, third))
		m.size--

		err := m.Validate()
		require.ErrorIs(t, err, ErrCorrupted)
		assert.Contains(t, err.Error(), "links to free slot")
	})
}
