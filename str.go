package dynstr

// Str is a dynamically-sized byte string. The backing buffer holds
// capacity+1 bytes; data[size] is always the 0-terminator. A Str is not
// safe for concurrent mutation without external synchronization.
type Str struct {
	eng      *Engine
	backing  []byte
	data     []byte // content area, len = capacity+1
	size     int
	attached bool
}

// Size returns the number of live content bytes.
func (s *Str) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Capacity returns the reserved content byte count, excluding the
// terminator slot.
func (s *Str) Capacity() int {
	if s == nil || s.data == nil {
		return 0
	}
	return len(s.data) - 1
}

// Data returns the live content view. The view is invalidated by any
// successful growing operation and must be re-acquired afterwards.
func (s *Str) Data() []byte {
	if s == nil || s.data == nil {
		return nil
	}
	return s.data[:s.size]
}

// Attached reports whether the string wraps caller-supplied memory.
func (s *Str) Attached() bool {
	return s != nil && s.attached
}

// validate runs the shared precondition chain: live handle, engine
// readiness, capacity bound, size within capacity, terminator present.
// Failing calls mutate nothing.
func (s *Str) validate() error {
	if s == nil || s.data == nil {
		return ErrData
	}
	if !s.eng.isReady() {
		return ErrNotReady
	}
	if len(s.data)-1 > MaxCapacity() {
		return ErrCapacity
	}
	if s.size > len(s.data)-1 {
		return ErrBigSize
	}
	if s.data[s.size] != 0 {
		return ErrTerminator
	}
	return nil
}

// checkItems distinguishes a nil items argument from an empty one.
func checkItems(items []byte) error {
	if items == nil {
		return ErrItems
	}
	if len(items) == 0 {
		return ErrZeroCount
	}
	return nil
}

// checkRange validates an inclusive [left, right] window against size.
func (s *Str) checkRange(left, right int) error {
	if right < 0 || right >= s.size {
		return ErrBigRight
	}
	if left < 0 || left > right {
		return ErrBigLeft
	}
	return nil
}

// grow reallocates the backing buffer to hold newCap content bytes.
// Attached strings cannot grow. Existing content is preserved by the
// Realloc capability; the old content view becomes invalid.
func (s *Str) grow(newCap int) error {
	if s.attached {
		return ErrAttached
	}
	if s.eng.alloc.Realloc == nil {
		return ErrReallocFunc
	}
	backing := s.eng.alloc.Realloc(s.backing, sizeMetadata+newCap+1)
	if backing == nil {
		return ErrAllocation
	}
	s.backing = backing
	s.data = backing[sizeMetadata : sizeMetadata+newCap+1]
	return nil
}
