// Package sortable defines how keys of a sorted map are ordered.
//
// # Overview
//
// There are two ways to give a key type an order:
//
//   - Implement [Sortable] on the key type itself (Equals plus LessThan). The
//     wrapper types [Int], [Byte] and [String] do this for common primitives.
//   - Supply a [Comparator], a three-way function returning a negative number,
//     zero or a positive number when the first key is less than, equal to or
//     greater than the second.
//
// Both forms are accepted by [github.com/amp-labs/amp-linkedmap/maps]. A Sortable
// type is turned into a Comparator with [Of].
//
// # Stock comparators
//
//	keys := sortable.Natural[int]()              // cmp.Compare
//	files := sortable.NaturalStrings()           // "file2" < "file10"
//	names := sortable.Collated(language.German)  // locale-aware collation
//	desc := sortable.Reverse(sortable.Natural[int]())
//
// # Contract
//
// A Comparator must be a strict total order consistent with equality:
// compare(a, b) == 0 if and only if a and b are the same key. Maps rely on this to
// decide between updating an entry and inserting a new one.
//
// # Thread Safety
//
// The wrapper types are plain values and are safe to share. Comparators built by
// [Collated] hold a collator with internal buffers and must not be shared
// between goroutines without synchronization.
package sortable
