// Package search implements byte and substring scanning over a window
// of a byte slice. All functions operate on the inclusive index range
// [left, right], never mutate data, and report not-found as -1.
// Callers are responsible for range validation; out-of-bounds windows
// are undefined here.
package search

// IndexByte returns the first index in [left, right] holding c, or -1.
func IndexByte(data []byte, left, right int, c byte) int {
	for i := left; i <= right; i++ {
		if data[i] == c {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the last index in [left, right] holding c, or -1.
func LastIndexByte(data []byte, left, right int, c byte) int {
	for i := right; i >= left; i-- {
		if data[i] == c {
			return i
		}
	}
	return -1
}

// Index returns the lowest start position in [left, right] where pat
// occurs entirely inside the window, or -1. Uses Boyer-Moore-Horspool:
// the skip table keeps, per byte value, the shift distance derived from
// that byte's rightmost occurrence in pat[0:len(pat)-1].
func Index(data []byte, left, right int, pat []byte) int {
	m := len(pat)
	if m == 0 || right-left+1 < m {
		return -1
	}
	if m == 1 {
		return IndexByte(data, left, right, pat[0])
	}
	var skip [256]int
	for i := range skip {
		skip[i] = m
	}
	for i := 0; i < m-1; i++ {
		skip[pat[i]] = m - 1 - i
	}
	pos := left
	for pos+m-1 <= right {
		j := m - 1
		for j >= 0 && data[pos+j] == pat[j] {
			j--
		}
		if j < 0 {
			return pos
		}
		pos += skip[data[pos+m-1]]
	}
	return -1
}

// LastIndex returns the highest start position in [left, right] where
// pat occurs entirely inside the window, or -1. Mirror of Index:
// alignments are scanned right-to-left and the skip table is built from
// each byte's leftmost occurrence in pat[1:].
func LastIndex(data []byte, left, right int, pat []byte) int {
	m := len(pat)
	if m == 0 || right-left+1 < m {
		return -1
	}
	if m == 1 {
		return LastIndexByte(data, left, right, pat[0])
	}
	var skip [256]int
	for i := range skip {
		skip[i] = m
	}
	for i := m - 1; i >= 1; i-- {
		skip[pat[i]] = i
	}
	pos := right - m + 1
	for pos >= left {
		j := 0
		for j < m && data[pos+j] == pat[j] {
			j++
		}
		if j == m {
			return pos
		}
		pos -= skip[data[pos]]
	}
	return -1
}

// IndexAny returns the first index in [left, right] whose byte is a
// member of set, or -1.
func IndexAny(data []byte, left, right int, set *[256]bool) int {
	for i := left; i <= right; i++ {
		if set[data[i]] {
			return i
		}
	}
	return -1
}

// LastIndexAny returns the last index in [left, right] whose byte is a
// member of set, or -1.
func LastIndexAny(data []byte, left, right int, set *[256]bool) int {
	for i := right; i >= left; i-- {
		if set[data[i]] {
			return i
		}
	}
	return -1
}

// IndexNotAny returns the first index in [left, right] whose byte is
// not a member of set, or -1.
func IndexNotAny(data []byte, left, right int, set *[256]bool) int {
	for i := left; i <= right; i++ {
		if !set[data[i]] {
			return i
		}
	}
	return -1
}

// LastIndexNotAny returns the last index in [left, right] whose byte is
// not a member of set, or -1.
func LastIndexNotAny(data []byte, left, right int, set *[256]bool) int {
	for i := right; i >= left; i-- {
		if !set[data[i]] {
			return i
		}
	}
	return -1
}

// Count counts occurrences of pat inside [left, right]. Overlapping
// mode advances one byte past each match start; non-overlapping mode
// advances by the pattern length. fromLeft selects the scan direction,
// which matters for which occurrences are taken in non-overlapping mode.
func Count(data []byte, left, right int, pat []byte, overlap, fromLeft bool) int {
	m := len(pat)
	n := 0
	if fromLeft {
		pos := left
		for pos+m-1 <= right {
			i := Index(data, pos, right, pat)
			if i < 0 {
				break
			}
			n++
			if overlap {
				pos = i + 1
			} else {
				pos = i + m
			}
		}
		return n
	}
	pos := right
	for pos-m+1 >= left {
		i := LastIndex(data, left, pos, pat)
		if i < 0 {
			break
		}
		n++
		if overlap {
			pos = i + m - 2
		} else {
			pos = i - 1
		}
	}
	return n
}
