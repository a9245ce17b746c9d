package pycodec

import "errors"

// ErrNoSuchName indicates the encoding name does not resolve to any
// known encoding. Backend failures pass through unchanged.
var ErrNoSuchName = errors.New("pycodec: no such encoding name")
