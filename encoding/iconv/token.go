package iconv

import "golang.org/x/text/encoding"

// Token encapsulates an open conversion pair (from, to).
//
// A Token is a single-owner resource: give it away with Move, release it
// with Close. A moved-from or closed Token is inert and every conversion
// through it fails with ErrInvalidCd. If either code name is refused at
// construction the Token is created in the invalid state; construction
// itself never fails.
type Token struct {
	from  encoding.Encoding // nil means UTF-8
	to    encoding.Encoding // nil means UTF-8
	valid bool
}

// NewToken opens a conversion descriptor from one code name to another.
func NewToken(fromCode, toCode CodeName) *Token {
	from, okFrom := resolveCodeName(fromCode)
	to, okTo := resolveCodeName(toCode)
	return &Token{
		from:  from,
		to:    to,
		valid: okFrom && okTo,
	}
}

// IsValid reports whether the descriptor is open and usable.
func (t *Token) IsValid() bool {
	return t != nil && t.valid
}

// Move transfers ownership of the descriptor, leaving t inert.
func (t *Token) Move() *Token {
	if t == nil {
		return nil
	}
	moved := &Token{from: t.from, to: t.to, valid: t.valid}
	t.from, t.to, t.valid = nil, nil, false
	return moved
}

// Close releases the descriptor. Further conversions fail with ErrInvalidCd.
// Closing an already-closed Token is a no-op.
func (t *Token) Close() {
	if t != nil {
		t.from, t.to, t.valid = nil, nil, false
	}
}
