package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a field.
	ErrTruncated = errors.New("format: truncated buffer")

	// ErrSanityLimit indicates a length field exceeded sanity limits.
	// This prevents excessive allocations from corrupted files.
	ErrSanityLimit = errors.New("format: length exceeds sanity limit")
)
