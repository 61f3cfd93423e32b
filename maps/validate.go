package maps

import (
	"fmt"

	errors2 "github.com/amp-labs/amp-linkedmap/errors"
)

// Validate walks the chain and reports every broken invariant: keys that are not
// strictly ascending, links to free or out-of-range slots, cycles, and a size
// that disagrees with the chain or with the number of occupied slots. Each
// problem wraps ErrCorrupted. A healthy map returns nil.
func (m *SortedMap[K, V]) Validate() error {
	if m.absent() {
		return fmt.Errorf("%w: map", ErrNullArgument)
	}

	var errs errors2.Collection

	count := 0
	prev := none

	for cur := m.head; cur != none; cur = m.nodes.next(cur) {
		if !m.nodes.inRange(cur) {
			errs.Addf(ErrCorrupted, "link to slot %d is out of range", cur)

			break
		}

		if count >= len(m.nodes.slots) {
			errs.Addf(ErrCorrupted, "cycle detected at slot %d", cur)

			break
		}

		n := m.nodes.at(cur)
		if !n.live {
			errs.Addf(ErrCorrupted, "chain position %d links to free slot %d", count, cur)
		}

		if prev != none {
			prevKey := m.nodes.at(prev).getKey()
			if m.caps.compare(prevKey, n.getKey()) >= 0 {
				errs.Addf(ErrCorrupted, "key %v at position %d does not follow %v", n.getKey(), count, prevKey)
			}
		}

		count++
		prev = cur
	}

	if count != m.size {
		errs.Addf(ErrCorrupted, "size is %d but the chain holds %d entries", m.size, count)
	}

	if live := m.nodes.live(); live != m.size {
		errs.Addf(ErrCorrupted, "size is %d but %d slots are occupied", m.size, live)
	}

	return errs.GetError()
}
