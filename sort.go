package ksuid

import (
	"bytes"
	"slices"
)

// Compare orders a and b by their raw bytes. It fits slices.SortFunc and
// slices.BinarySearchFunc.
func Compare[P Precision](a, b ID[P]) int {
	return bytes.Compare(a[:], b[:])
}

// Sort sorts ids in ascending order, which is creation order for ids from
// different ticks.
func Sort[P Precision](ids []ID[P]) {
	slices.SortFunc(ids, Compare[P])
}

// IsSorted reports whether ids are in ascending order.
func IsSorted[P Precision](ids []ID[P]) bool {
	return slices.IsSortedFunc(ids, Compare[P])
}
