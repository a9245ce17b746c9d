package binstore

import "errors"

var (
	// ErrNoSuchSetting names a setting that is not registered. Load does
	// not return it: records whose names are unknown are ignored.
	ErrNoSuchSetting = errors.New("binstore: no such setting")

	// ErrDuplicatedAssign indicates two records for the same name in one file.
	ErrDuplicatedAssign = errors.New("binstore: duplicated setting entry")

	// ErrBadVersion indicates the file version was rejected by the load
	// strategy.
	ErrBadVersion = errors.New("binstore: version rejected by strategy")

	// ErrIo indicates a malformed or truncated file. Underlying stream
	// failures are wrapped with it.
	ErrIo = errors.New("binstore: io error")
)
