package sortable

// Sortable is implemented by key types that know how to order themselves.
// Equals and LessThan must agree: for any a and b exactly one of a.LessThan(b),
// b.LessThan(a) and a.Equals(b) holds.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Comparator is a three-way comparison over keys. It returns a negative number
// when a < b, zero when a == b and a positive number when a > b.
type Comparator[K any] func(a, b K) int
