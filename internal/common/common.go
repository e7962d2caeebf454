package common

import "unsafe"

// Overlaps reports whether the backing arrays of a and b share any byte.
// Bounds are compared as addresses; the pointers never leave this function.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aLo := uintptr(unsafe.Pointer(&a[0]))
	aHi := aLo + uintptr(len(a))
	bLo := uintptr(unsafe.Pointer(&b[0]))
	bHi := bLo + uintptr(len(b))
	return aLo < bHi && bLo < aHi
}

// MakeSet builds a byte-membership table from items.
func MakeSet(items []byte) *[256]bool {
	var set [256]bool
	for _, c := range items {
		set[c] = true
	}
	return &set
}
