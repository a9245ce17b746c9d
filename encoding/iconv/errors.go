package iconv

import "errors"

var (
	// ErrInvalidCd indicates the token's encoding pair was refused at
	// construction, or the token was closed or moved from.
	ErrInvalidCd = errors.New("iconv: invalid conversion descriptor")

	// ErrNullPointer indicates an essential argument was nil.
	ErrNullPointer = errors.New("iconv: nil argument")

	// ErrInvalidMbSeq indicates an invalid byte sequence in the input.
	ErrInvalidMbSeq = errors.New("iconv: invalid multibyte sequence")

	// ErrIncompleteMbSeq indicates the input ended inside a sequence.
	ErrIncompleteMbSeq = errors.New("iconv: incomplete multibyte sequence")

	// ErrBadRv indicates the output length is not a multiple of the
	// target encoding's unit size.
	ErrBadRv = errors.New("iconv: output not a unit multiple")
)
