package sortable

import (
	"cmp"
	"strings"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Natural orders keys by Go's built-in ordering for the type.
func Natural[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Of adapts a Sortable key type to a Comparator.
func Of[K Sortable[K]]() Comparator[K] {
	return func(a, b K) int {
		switch {
		case a.Equals(b):
			return 0
		case a.LessThan(b):
			return -1
		default:
			return 1
		}
	}
}

// Reverse flips the order produced by c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}

// NaturalStrings orders strings so that embedded numbers compare numerically,
// e.g. "file2" sorts before "file10". Strings that natsort considers equivalent
// ("a01" and "a1") are tie-broken bytewise so that only identical strings compare
// equal.
func NaturalStrings() Comparator[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		// natsort reports "less" both ways for equivalent strings.
		lt, gt := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case lt && !gt:
			return -1
		case gt && !lt:
			return 1
		default:
			return strings.Compare(a, b)
		}
	}
}

// Collated orders strings using the collation rules of the given language.
// Strings the collator considers equivalent are tie-broken bytewise.
//
// The returned comparator owns a collator and is not safe for concurrent use.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	collator := collate.New(tag, opts...)

	return func(a, b string) int {
		if a == b {
			return 0
		}

		if c := collator.CompareString(a, b); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	}
}
