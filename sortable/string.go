package sortable

// String is a sortable wrapper type for the built-in string type. It orders
// bytewise, like the < operator on strings.
//
// Example:
//
//	m := maps.NewSortable[sortable.String, int]()
//	_ = m.Put(sortable.String("pear"), 1)
//	_ = m.Put(sortable.String("apple"), 2)
//	// m.Keys() yields "apple", "pear"
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if both values hold the same string.
func (s String) Equals(other String) bool {
	return s == other
}

// LessThan returns true if this String sorts bytewise before the other.
func (s String) LessThan(other String) bool {
	return s < other
}
