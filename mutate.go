package dynstr

import (
	"github.com/rawbytedev/dynstr/internal/common"
	"github.com/rawbytedev/dynstr/pkg/search"
)

// ReplaceMode selects the replacement strategy used when content grows.
type ReplaceMode uint8

const (
	// ReplaceDual counts occurrences first to compute the final size and
	// pre-grows capacity, guaranteeing atomic failure when growth is
	// impossible.
	ReplaceDual ReplaceMode = iota

	// ReplaceStraight substitutes in a single pass, growing on demand.
	// Best-effort: a growth failure mid-operation leaves the already
	// performed substitutions in place.
	ReplaceStraight
)

// Insert inserts items at position pos (0 <= pos <= size). Grows the
// backing buffer when capacity does not fit the result; growth fails on
// attached strings and without the Realloc capability. items must not
// overlap the post-insert occupied region.
func (s *Str) Insert(pos int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	if len(s.data)-1 == 0 {
		return ErrCapacity
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if pos < 0 || pos > s.size {
		return ErrBigLeft
	}
	count := len(items)
	newSize := s.size + count
	if newSize > MaxCapacity() {
		return ErrBigCount
	}
	occupied := newSize + 1
	if occupied > len(s.data) {
		occupied = len(s.data)
	}
	if common.Overlaps(s.data[:occupied], items) {
		return ErrOverlap
	}
	if newSize > len(s.data)-1 {
		if err := s.grow(newSize); err != nil {
			return err
		}
	}
	copy(s.data[pos+count:newSize], s.data[pos:s.size])
	copy(s.data[pos:], items)
	s.size = newSize
	s.data[s.size] = 0
	return nil
}

// RemoveFrom deletes count bytes starting at pos. pos+count must not
// exceed size.
func (s *Str) RemoveFrom(pos, count int) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.size == 0 {
		return ErrZeroSize
	}
	if count <= 0 {
		return ErrZeroCount
	}
	if pos < 0 || pos >= s.size {
		return ErrBigLeft
	}
	if count > s.size-pos {
		return ErrBigCount
	}
	copy(s.data[pos:], s.data[pos+count:s.size])
	s.size -= count
	s.data[s.size] = 0
	return nil
}

// Remove deletes every occurrence of items inside [left, right],
// scanning from the requested direction. Consumed bytes are never
// re-scanned as new occurrences.
func (s *Str) Remove(left, right int, items []byte, fromLeft bool) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.size == 0 {
		return ErrZeroSize
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if err := s.checkRange(left, right); err != nil {
		return err
	}
	if len(items) > right-left+1 {
		return ErrBigCount
	}
	positions := collectMatches(s.data, left, right, items, fromLeft)
	if len(positions) == 0 {
		return nil
	}
	m := len(items)
	w := positions[0]
	for i, p := range positions {
		segEnd := s.size
		if i+1 < len(positions) {
			segEnd = positions[i+1]
		}
		copy(s.data[w:], s.data[p+m:segEnd])
		w += segEnd - p - m
	}
	s.size = w
	s.data[w] = 0
	return nil
}

// TrimLeft removes the maximal prefix of [left, right] composed
// entirely of bytes found in items.
func (s *Str) TrimLeft(left, right int, items []byte) error {
	if err := s.trimChecks(left, right, items); err != nil {
		return err
	}
	set := common.MakeSet(items)
	i := search.IndexNotAny(s.data, left, right, set)
	if i == left {
		return nil
	}
	end := right
	if i >= 0 {
		end = i - 1
	}
	s.removeSpan(left, end)
	return nil
}

// TrimRight removes the maximal suffix of [left, right] composed
// entirely of bytes found in items.
func (s *Str) TrimRight(left, right int, items []byte) error {
	if err := s.trimChecks(left, right, items); err != nil {
		return err
	}
	set := common.MakeSet(items)
	j := search.LastIndexNotAny(s.data, left, right, set)
	if j == right {
		return nil
	}
	start := left
	if j >= 0 {
		start = j + 1
	}
	s.removeSpan(start, right)
	return nil
}

// Trim removes maximal prefix and suffix of [left, right] composed
// entirely of bytes found in items.
func (s *Str) Trim(left, right int, items []byte) error {
	if err := s.trimChecks(left, right, items); err != nil {
		return err
	}
	set := common.MakeSet(items)
	i := search.IndexNotAny(s.data, left, right, set)
	if i < 0 {
		s.removeSpan(left, right)
		return nil
	}
	j := search.LastIndexNotAny(s.data, left, right, set)
	// right span first so left indices stay valid
	if j < right {
		s.removeSpan(j+1, right)
	}
	if i > left {
		s.removeSpan(left, i-1)
	}
	return nil
}

// Replace substitutes every occurrence of before with after inside
// [left, right], scanning from the requested direction. after may be
// empty, which deletes occurrences. before and after must not overlap
// the string's storage, neither before nor after the final layout.
func (s *Str) Replace(left, right int, before, after []byte, fromLeft bool, mode ReplaceMode) error {
	if err := s.validate(); err != nil {
		return err
	}
	if len(s.data)-1 == 0 {
		return ErrCapacity
	}
	if s.size == 0 {
		return ErrZeroSize
	}
	if err := checkItems(before); err != nil {
		return err
	}
	if err := s.checkRange(left, right); err != nil {
		return err
	}
	if len(before) > right-left+1 {
		return ErrBigCount
	}
	if mode != ReplaceDual && mode != ReplaceStraight {
		return ErrReplaceMode
	}
	if common.Overlaps(s.data[:s.size+1], before) || common.Overlaps(s.data[:s.size+1], after) {
		return ErrOverlap
	}
	if mode == ReplaceStraight {
		return s.replaceStraight(left, right, before, after, fromLeft)
	}

	m, a := len(before), len(after)
	delta := a - m
	positions := collectMatches(s.data, left, right, before, fromLeft)
	n := len(positions)
	if n == 0 {
		return nil
	}
	newSize := s.size + n*delta

	if delta > 0 {
		if newSize > MaxCapacity() {
			return ErrBigReplace
		}
		if newSize > len(s.data)-1 {
			if err := s.grow(newSize); err != nil {
				return err
			}
		}
		if common.Overlaps(s.data[:newSize+1], before) || common.Overlaps(s.data[:newSize+1], after) {
			return ErrOverlapReplace
		}
		// splice right-to-left: every tail segment shifts right exactly once
		r := s.size
		for i := n - 1; i >= 0; i-- {
			p := positions[i]
			segStart := p + m
			dst := segStart + (i+1)*delta
			copy(s.data[dst:dst+(r-segStart)], s.data[segStart:r])
			copy(s.data[p+i*delta:], after)
			r = p
		}
	} else {
		// shrink or same-size: splice left-to-right
		w := positions[0]
		r := positions[0]
		for _, p := range positions {
			if p > r {
				copy(s.data[w:], s.data[r:p])
				w += p - r
			}
			copy(s.data[w:w+a], after)
			w += a
			r = p + m
		}
		copy(s.data[w:], s.data[r:s.size])
	}
	s.size = newSize
	s.data[newSize] = 0
	return nil
}

// replaceStraight performs single-pass substitution, growing on demand
// per match. Not atomic: a growth failure leaves prior substitutions
// applied.
func (s *Str) replaceStraight(left, right int, before, after []byte, fromLeft bool) error {
	m, a := len(before), len(after)
	delta := a - m
	if fromLeft {
		pos, win := left, right
		for pos+m-1 <= win {
			i := search.Index(s.data, pos, win, before)
			if i < 0 {
				break
			}
			if err := s.spliceOne(i, m, after); err != nil {
				return err
			}
			pos = i + a
			win += delta
		}
		return nil
	}
	win := right
	for win-m+1 >= left {
		i := search.LastIndex(s.data, left, win, before)
		if i < 0 {
			break
		}
		if err := s.spliceOne(i, m, after); err != nil {
			return err
		}
		win = i - 1
	}
	return nil
}

// spliceOne replaces the m bytes at p with after, shifting the tail.
func (s *Str) spliceOne(p, m int, after []byte) error {
	a := len(after)
	newSize := s.size - m + a
	if newSize > MaxCapacity() {
		return ErrBigReplace
	}
	if newSize > len(s.data)-1 {
		if err := s.grow(newSize); err != nil {
			return err
		}
	}
	copy(s.data[p+a:newSize], s.data[p+m:s.size])
	copy(s.data[p:], after)
	s.size = newSize
	s.data[newSize] = 0
	return nil
}

// Reverse reverses the bytes of the inclusive range [left, right] in
// place. left must be strictly smaller than right.
func (s *Str) Reverse(left, right int) error {
	if err := s.validate(); err != nil {
		return err
	}
	if right < 0 || right >= s.size {
		return ErrBigRight
	}
	if left < 0 || left >= right {
		return ErrBigLeft
	}
	for i, j := left, right; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
	return nil
}

// trimChecks is the shared precondition chain for the trim family.
func (s *Str) trimChecks(left, right int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.size == 0 {
		return ErrZeroSize
	}
	if err := checkItems(items); err != nil {
		return err
	}
	return s.checkRange(left, right)
}

// removeSpan deletes the inclusive range [start, end] without
// revalidating; callers have already checked the window.
func (s *Str) removeSpan(start, end int) {
	count := end - start + 1
	copy(s.data[start:], s.data[end+1:s.size])
	s.size -= count
	s.data[s.size] = 0
}

// collectMatches gathers non-overlapping occurrences of pat inside
// [left, right] in the given scan direction and returns their start
// positions in ascending order.
func collectMatches(data []byte, left, right int, pat []byte, fromLeft bool) []int {
	m := len(pat)
	var out []int
	if fromLeft {
		pos := left
		for pos+m-1 <= right {
			i := search.Index(data, pos, right, pat)
			if i < 0 {
				break
			}
			out = append(out, i)
			pos = i + m
		}
		return out
	}
	pos := right
	for pos-m+1 >= left {
		i := search.LastIndex(data, left, pos, pat)
		if i < 0 {
			break
		}
		out = append(out, i)
		pos = i - 1
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
