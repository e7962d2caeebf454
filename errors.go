package dynstr

import "errors"

// Errors returned by engine operations. Every fallible call returns one
// of these sentinels directly, so callers can compare with errors.Is.
var (
	// ErrNotReady indicates the engine's readiness gate has not been satisfied.
	ErrNotReady = errors.New("engine not ready")

	// ErrData indicates a nil or destroyed handle, or a nil attach buffer.
	ErrData = errors.New("invalid data")

	// ErrSize indicates an invalid size argument.
	ErrSize = errors.New("invalid size")

	// ErrCapacity indicates a capacity of zero where content must fit, or
	// a capacity outside representable limits.
	ErrCapacity = errors.New("invalid capacity")

	// ErrZeroSize indicates the string is empty where content is required.
	ErrZeroSize = errors.New("size is zero")

	// ErrBigSize indicates size exceeds capacity.
	ErrBigSize = errors.New("size exceeds capacity")

	// ErrZeroCount indicates an empty items argument.
	ErrZeroCount = errors.New("count is zero")

	// ErrBigCount indicates a count larger than the area it applies to.
	ErrBigCount = errors.New("count too big")

	// ErrBigLeft indicates a left position beyond its allowed bound.
	ErrBigLeft = errors.New("left position too big")

	// ErrBigRight indicates a right position beyond its allowed bound.
	ErrBigRight = errors.New("right position too big")

	// ErrItems indicates a nil items argument.
	ErrItems = errors.New("invalid items")

	// ErrTerminator indicates the terminator byte is missing at the size position.
	ErrTerminator = errors.New("missing terminator")

	// ErrOverlap indicates an items argument aliases the handle's storage.
	ErrOverlap = errors.New("data and items overlap")

	// ErrAllocFunc indicates no allocation capability is registered.
	ErrAllocFunc = errors.New("alloc function not set")

	// ErrReallocFunc indicates no reallocation capability is registered.
	ErrReallocFunc = errors.New("realloc function not set")

	// ErrFreeFunc indicates no free capability is registered.
	ErrFreeFunc = errors.New("free function not set")

	// ErrAllocation indicates the allocator failed to provide memory.
	ErrAllocation = errors.New("allocation failed")

	// ErrAttached indicates growth was required on an attached handle.
	ErrAttached = errors.New("string is attached")

	// ErrAttachMode indicates an unknown attach mode.
	ErrAttachMode = errors.New("invalid attach mode")

	// ErrReplaceMode indicates an unknown replace mode.
	ErrReplaceMode = errors.New("invalid replace mode")

	// ErrBigReplace indicates the size after replacement exceeds the
	// maximal representable capacity.
	ErrBigReplace = errors.New("replacement result too big")

	// ErrOverlapReplace indicates storage after replacement would overlap
	// an items argument.
	ErrOverlapReplace = errors.New("data and items overlap after replacement")
)
