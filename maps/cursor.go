package maps

// cursorState is the state of a map's built-in iterator.
type cursorState uint8

const (
	// cursorReset means no iteration is in progress; Next returns nothing.
	cursorReset cursorState = iota
	// cursorAt means the cursor sits on a node and Next may advance it.
	cursorAt
)

// String returns a human-readable representation of the state.
func (s cursorState) String() string {
	switch s {
	case cursorReset:
		return "Reset"
	case cursorAt:
		return "At"
	default:
		return "not recognized"
	}
}

// cursor tracks a position in the chain, not a key. Operations that change the
// map reset it because the position may no longer mean anything.
type cursor struct {
	state cursorState
	at    int32
}

func (c *cursor) reset() {
	c.state = cursorReset
	c.at = none
}

func (c *cursor) moveTo(idx int32) {
	c.state = cursorAt
	c.at = idx
}

// position returns the slot the cursor sits on, if any.
func (c *cursor) position() (int32, bool) {
	if c.state != cursorAt {
		return none, false
	}

	return c.at, true
}
