// Package dynstr implements a dynamically-sized single-byte string with
// an explicit capacity/size split. Content is arbitrary bytes 0..255,
// may contain embedded 0-terminators, and always ends with a
// 0-terminator at the size position. Memory management goes through an
// injected allocator capability; strings either own their backing
// buffer or are attached to caller-supplied memory that the engine
// never reallocates or frees.
package dynstr

import (
	"math"
	"unsafe"
)

// Allocator is the memory capability the engine calls through. Every
// member is independently optional; a nil member blocks the operations
// that need it. Alloc and Realloc report failure by returning nil.
type Allocator struct {
	Alloc   func(size int) []byte
	Realloc func(buf []byte, size int) []byte
	Free    func(buf []byte)
}

// HeapAllocator returns an Allocator backed by the Go runtime.
// Realloc copies into a fresh buffer; Free is a no-op.
func HeapAllocator() Allocator {
	return Allocator{
		Alloc: func(size int) []byte {
			return make([]byte, size)
		},
		Realloc: func(buf []byte, size int) []byte {
			next := make([]byte, size)
			copy(next, buf)
			return next
		},
		Free: func([]byte) {},
	}
}

// Engine holds the allocator capability and the readiness gate. It is
// explicit per-instance configuration; there is no ambient global state
// and no internal locking.
type Engine struct {
	alloc Allocator
	gate  func() bool
	ready bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithAllocator sets the allocation capability. Default is absent:
// creation, growth and destruction of owned strings all fail.
func WithAllocator(a Allocator) Option {
	return func(e *Engine) { e.alloc = a }
}

// WithReadyGate sets a predicate that must report true before any
// engine entry point proceeds. The first true result is latched.
func WithReadyGate(gate func() bool) Option {
	return func(e *Engine) { e.gate = gate }
}

// New creates an Engine. Without WithReadyGate the engine is ready
// immediately.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.gate == nil {
		e.ready = true
	}
	return e
}

func (e *Engine) isReady() bool {
	if e.ready {
		return true
	}
	if e.gate != nil && e.gate() {
		e.ready = true
	}
	return e.ready
}

// sizeMetadata is the fixed per-string overhead. Attach buffers must
// reserve it in front of the content area, mirroring owned allocations.
var sizeMetadata = int(unsafe.Sizeof(Str{}))

// SizeMetadata returns the fixed overhead a caller must reserve when
// supplying a buffer to Attach: the buffer holds metadata overhead,
// then capacity content bytes, then the terminator byte.
func SizeMetadata() int {
	return sizeMetadata
}

// MaxCapacity returns the maximal representable capacity: the largest
// allocation size minus metadata overhead and the terminator byte.
func MaxCapacity() int {
	return math.MaxInt - sizeMetadata - 1
}

// AttachMode controls how Attach initializes the size of the string.
type AttachMode uint8

const (
	// AttachZeroSize starts the string empty.
	AttachZeroSize AttachMode = iota

	// AttachSizeTerminator uses the given size; a 0-terminator must
	// already be present at the size position.
	AttachSizeTerminator

	// AttachSizeNoTerminator uses the given size and writes the
	// 0-terminator at the size position.
	AttachSizeNoTerminator
)

// Create allocates an owned string with the given capacity and size 0.
// Requires the Alloc capability.
func (e *Engine) Create(capacity int) (*Str, error) {
	if e == nil {
		return nil, ErrData
	}
	if !e.isReady() {
		return nil, ErrNotReady
	}
	if capacity < 0 || capacity > MaxCapacity() {
		return nil, ErrCapacity
	}
	if e.alloc.Alloc == nil {
		return nil, ErrAllocFunc
	}
	backing := e.alloc.Alloc(sizeMetadata + capacity + 1)
	if backing == nil {
		return nil, ErrAllocation
	}
	s := &Str{
		eng:     e,
		backing: backing,
		data:    backing[sizeMetadata : sizeMetadata+capacity+1],
	}
	s.data[0] = 0
	return s, nil
}

// Attach wraps caller-supplied memory. The buffer must hold at least
// SizeMetadata()+1 bytes; its capacity is len(buf)-SizeMetadata()-1.
// Attached strings are never reallocated or freed by the engine:
// operations requiring growth fail with ErrAttached.
func (e *Engine) Attach(buf []byte, mode AttachMode, size int) (*Str, error) {
	if e == nil || buf == nil {
		return nil, ErrData
	}
	if !e.isReady() {
		return nil, ErrNotReady
	}
	if len(buf) < sizeMetadata+1 {
		return nil, ErrCapacity
	}
	capacity := len(buf) - sizeMetadata - 1
	s := &Str{
		eng:      e,
		backing:  buf,
		data:     buf[sizeMetadata:],
		attached: true,
	}
	switch mode {
	case AttachZeroSize:
		s.data[0] = 0
	case AttachSizeTerminator:
		if size < 0 {
			return nil, ErrSize
		}
		if size > capacity {
			return nil, ErrBigSize
		}
		if s.data[size] != 0 {
			return nil, ErrTerminator
		}
		s.size = size
	case AttachSizeNoTerminator:
		if size < 0 {
			return nil, ErrSize
		}
		if size > capacity {
			return nil, ErrBigSize
		}
		s.size = size
		s.data[size] = 0
	default:
		return nil, ErrAttachMode
	}
	return s, nil
}

// Destroy releases the string. Owned backing memory is returned through
// the Free capability; destroying an owned string without one fails and
// leaves the string untouched. Attached strings are detached only.
func (s *Str) Destroy() error {
	if s == nil || s.data == nil {
		return ErrData
	}
	if !s.eng.isReady() {
		return ErrNotReady
	}
	if !s.attached {
		if s.eng.alloc.Free == nil {
			return ErrFreeFunc
		}
		s.eng.alloc.Free(s.backing)
	}
	s.backing = nil
	s.data = nil
	s.size = 0
	return nil
}
