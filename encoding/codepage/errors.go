package codepage

import "errors"

var (
	// ErrTooLargeLength indicates the input length exceeds the backend's
	// integer capacity.
	ErrTooLargeLength = errors.New("codepage: input length too large")

	// ErrNoDesiredSize indicates the backend refused the conversion:
	// malformed input for the code page, or an unknown code page.
	ErrNoDesiredSize = errors.New("codepage: backend refused conversion")

	// ErrBadWrittenSize indicates the backend produced a different amount
	// of output than it reported. This classifies a backend bug.
	ErrBadWrittenSize = errors.New("codepage: backend wrote unexpected size")

	// ErrEncodeUtf8 indicates an invalid UTF-8 byte.
	ErrEncodeUtf8 = errors.New("codepage: invalid utf-8 byte")

	// ErrIncompleteUtf8 indicates the input ended in the middle of a
	// UTF-8 sequence.
	ErrIncompleteUtf8 = errors.New("codepage: incomplete utf-8 sequence")

	// ErrInvalidUtf16 indicates a lone surrogate, or a high surrogate not
	// followed by a low surrogate.
	ErrInvalidUtf16 = errors.New("codepage: invalid utf-16 sequence")

	// ErrInvalidUtf32 indicates an out-of-range scalar value.
	ErrInvalidUtf32 = errors.New("codepage: invalid utf-32 scalar")
)
