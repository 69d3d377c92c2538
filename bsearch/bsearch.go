// Package bsearch provides binary search functionality for sorted collections.
//
// Every search returns a slot and a found flag. When the key is present the
// slot holds a matching element; when it is absent the slot is the index at
// which the key would have to be inserted to keep the collection sorted.
//
// The comparator must be consistent with the order of the collection. This is
// not checked: an inconsistent comparator yields an unspecified slot but never
// panics.
package bsearch

import (
	"cmp"
	"slices"
)

// Search looks up key in the sorted table.
// cmp(key, e) should return:
//   - negative value if key orders before e
//   - zero if key equals e
//   - positive value if key orders after e
//
// The first match met while narrowing the range is returned, which is not
// necessarily the lowest or highest of several equal elements. An empty table
// always yields (0, false).
func Search[S ~[]E, E, K any](table S, key K, cmp func(K, E) int) (int, bool) {
	return search(len(table), func(i int) int {
		return cmp(key, table[i])
	})
}

// SearchOrdered is Search for tables of ordered values.
func SearchOrdered[S ~[]E, E cmp.Ordered](table S, key E) (int, bool) {
	return search(len(table), func(i int) int {
		return cmp.Compare(key, table[i])
	})
}

// BinarySearchBy performs a binary search on a sorted collection of size elements.
// The comparison function f should return:
//   - negative value if the element at index is less than the target
//   - zero if the element at index equals the target
//   - positive value if the element at index is greater than the target
//
// Returns the index and true if found, or the insertion point and false if not.
func BinarySearchBy(size int, f func(int) int) (int, bool) {
	return search(size, func(i int) int {
		// f orders the element against the target; flip it to order the
		// target against the element.
		c := f(i)
		switch {
		case c < 0:
			return 1
		case c > 0:
			return -1
		}
		return 0
	})
}

// Insert places v into the sorted table at its insertion point and returns
// the grown table together with the slot v now occupies. If an equal element
// is found, v goes in front of it.
func Insert[S ~[]E, E any](table S, v E, cmp func(E, E) int) (S, int) {
	slot, _ := Search(table, v, cmp)
	return slices.Insert(table, slot, v), slot
}

// search runs over [0, n). keyCmp(i) orders the key against element i.
func search(n int, keyCmp func(int) int) (int, bool) {
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := keyCmp(mid)
		if c < 0 {
			hi = mid
		} else if c > 0 {
			lo = mid + 1
		} else {
			return mid, true
		}
	}
	return lo, false
}
