package sortable

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if both values hold the same byte.
func (b Byte) Equals(other Byte) bool {
	return b == other
}

// LessThan returns true if this Byte is numerically less than the other.
func (b Byte) LessThan(other Byte) bool {
	return b < other
}
