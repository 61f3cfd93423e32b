package maps

import "fmt"

// arena stores nodes in a slice and links them by index. Released slots are
// threaded onto a free list through their next field and reused before the
// slice grows.
//
// Pointers returned by at are only valid until the next alloc.
type arena[K any, V any] struct {
	slots    []node[K, V]
	freeHead int32
	freeLen  int
}

func newArena[K any, V any]() arena[K, V] {
	return arena[K, V]{freeHead: none}
}

// alloc stores n and returns its slot.
func (a *arena[K, V]) alloc(n node[K, V]) int32 {
	if a.freeHead != none {
		idx := a.freeHead
		a.freeHead = a.slots[idx].next
		a.freeLen--
		a.slots[idx] = n

		return idx
	}

	a.slots = append(a.slots, n)

	return int32(len(a.slots) - 1) //nolint:gosec // map sizes stay far below MaxInt32
}

func (a *arena[K, V]) at(idx int32) *node[K, V] {
	return &a.slots[idx]
}

// next returns the successor link of the node in slot idx.
func (a *arena[K, V]) next(idx int32) int32 {
	return a.slots[idx].getNext()
}

// setNext links the node in slot idx to next.
func (a *arena[K, V]) setNext(idx int32, next int32) error {
	if idx == none {
		return fmt.Errorf("%w: node", ErrNullArgument)
	}

	a.slots[idx].next = next

	return nil
}

// release destroys the node in slot idx and puts the slot on the free list.
// The slot is zeroed so the payloads can be collected.
func (a *arena[K, V]) release(idx int32, caps *capabilities[K, V]) {
	a.slots[idx].destroy(caps)
	a.slots[idx] = node[K, V]{next: a.freeHead}
	a.freeHead = idx
	a.freeLen++
}

// reset forgets every slot. Nodes must already have been destroyed.
func (a *arena[K, V]) reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.freeHead = none
	a.freeLen = 0
}

// live returns the number of occupied slots.
func (a *arena[K, V]) live() int {
	return len(a.slots) - a.freeLen
}

func (a *arena[K, V]) inRange(idx int32) bool {
	return idx >= 0 && int(idx) < len(a.slots)
}
