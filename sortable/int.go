package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// Example:
//
//	m := maps.NewSortable[sortable.Int, string]()
//	_ = m.Put(sortable.Int(5), "five")
//	_ = m.Put(sortable.Int(3), "three")
//	// m.Keys() yields 3, 5
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if both values hold the same integer.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if this Int is numerically less than the other.
func (i Int) LessThan(other Int) bool {
	return i < other
}
