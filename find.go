package dynstr

import (
	"bytes"

	"github.com/rawbytedev/dynstr/internal/common"
	"github.com/rawbytedev/dynstr/pkg/search"
)

// CompareResult is the outcome of Compare. Greater and Smaller are
// reserved for ordered comparison and are never produced by Compare.
type CompareResult uint8

const (
	CompareEqual CompareResult = iota
	CompareNonEqual
	CompareGreater
	CompareSmaller
	CompareError
)

// FindSingle returns the first position in [left, right] holding c, or
// -1 if c does not occur there.
func (s *Str) FindSingle(left, right int, c byte) (int, error) {
	if err := s.validate(); err != nil {
		return -1, err
	}
	if err := s.checkRange(left, right); err != nil {
		return -1, err
	}
	return search.IndexByte(s.data, left, right, c), nil
}

// RFindSingle returns the last position in [left, right] holding c, or
// -1 if c does not occur there.
func (s *Str) RFindSingle(left, right int, c byte) (int, error) {
	if err := s.validate(); err != nil {
		return -1, err
	}
	if err := s.checkRange(left, right); err != nil {
		return -1, err
	}
	return search.LastIndexByte(s.data, left, right, c), nil
}

// Find returns the first occurrence of items inside [left, right] using
// Boyer-Moore-Horspool search, or -1 if there is none. The pattern must
// fit the window.
func (s *Str) Find(left, right int, items []byte) (int, error) {
	if err := s.findChecks(left, right, items); err != nil {
		return -1, err
	}
	return search.Index(s.data, left, right, items), nil
}

// RFind returns the last occurrence of items inside [left, right],
// scanning alignments right-to-left, or -1 if there is none.
func (s *Str) RFind(left, right int, items []byte) (int, error) {
	if err := s.findChecks(left, right, items); err != nil {
		return -1, err
	}
	return search.LastIndex(s.data, left, right, items), nil
}

// FirstOf returns the first position in [left, right] whose byte is a
// member of items, or -1.
func (s *Str) FirstOf(left, right int, items []byte) (int, error) {
	if err := s.setChecks(left, right, items); err != nil {
		return -1, err
	}
	return search.IndexAny(s.data, left, right, common.MakeSet(items)), nil
}

// FirstNotOf returns the first position in [left, right] whose byte is
// not a member of items, or -1.
func (s *Str) FirstNotOf(left, right int, items []byte) (int, error) {
	if err := s.setChecks(left, right, items); err != nil {
		return -1, err
	}
	return search.IndexNotAny(s.data, left, right, common.MakeSet(items)), nil
}

// LastOf returns the last position in [left, right] whose byte is a
// member of items, or -1.
func (s *Str) LastOf(left, right int, items []byte) (int, error) {
	if err := s.setChecks(left, right, items); err != nil {
		return -1, err
	}
	return search.LastIndexAny(s.data, left, right, common.MakeSet(items)), nil
}

// LastNotOf returns the last position in [left, right] whose byte is
// not a member of items, or -1.
func (s *Str) LastNotOf(left, right int, items []byte) (int, error) {
	if err := s.setChecks(left, right, items); err != nil {
		return -1, err
	}
	return search.LastIndexNotAny(s.data, left, right, common.MakeSet(items)), nil
}

// Count counts occurrences of items inside [left, right]. overlap
// permits overlapping matches; fromLeft selects the scan direction.
func (s *Str) Count(left, right int, items []byte, overlap, fromLeft bool) (int, error) {
	if err := s.findChecks(left, right, items); err != nil {
		return 0, err
	}
	return search.Count(s.data, left, right, items, overlap, fromLeft), nil
}

// Compare compares content starting at left against items byte-wise.
// Partial mode compares exactly len(items) bytes; full mode is equal
// only when items also covers the rest of the string.
func (s *Str) Compare(left int, items []byte, partial bool) (CompareResult, error) {
	if err := s.validate(); err != nil {
		return CompareError, err
	}
	if err := checkItems(items); err != nil {
		return CompareError, err
	}
	if left < 0 || left >= s.size {
		return CompareError, ErrBigLeft
	}
	if len(items) > s.size-left {
		return CompareError, ErrBigCount
	}
	if !partial && left+len(items) != s.size {
		return CompareNonEqual, nil
	}
	if bytes.Equal(s.data[left:left+len(items)], items) {
		return CompareEqual, nil
	}
	return CompareNonEqual, nil
}

// findChecks is the shared precondition chain for substring search.
func (s *Str) findChecks(left, right int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
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
	return nil
}

// setChecks is the shared precondition chain for byte-set scans, where
// the item count is unrelated to the window width.
func (s *Str) setChecks(left, right int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	return s.checkRange(left, right)
}
