package iconv

import "encoding/binary"

// The user-facing converter types. Each owns a Token opened for one
// conversion direction; Close releases it.

func bytesOfU16(src []uint16) []byte {
	dst := make([]byte, 0, len(src)*2)
	for _, u := range src {
		dst = binary.NativeEndian.AppendUint16(dst, u)
	}
	return dst
}

func u16OfBytes(src []byte) []uint16 {
	dst := make([]uint16, len(src)/2)
	for i := range dst {
		dst[i] = binary.NativeEndian.Uint16(src[i*2:])
	}
	return dst
}

func bytesOfU32(src []rune) []byte {
	dst := make([]byte, 0, len(src)*4)
	for _, r := range src {
		dst = binary.NativeEndian.AppendUint32(dst, uint32(r))
	}
	return dst
}

func u32OfBytes(src []byte) []rune {
	dst := make([]rune, len(src)/4)
	for i := range dst {
		dst[i] = rune(binary.NativeEndian.Uint32(src[i*4:]))
	}
	return dst
}

// CharToUtf8 converts byte strings in a named encoding to UTF-8.
type CharToUtf8 struct{ token *Token }

// NewCharToUtf8 opens a converter from the named encoding to UTF-8.
func NewCharToUtf8(code CodeName) *CharToUtf8 {
	return &CharToUtf8{token: NewToken(code, utf8CodeName)}
}

func (c *CharToUtf8) ToUtf8(src []byte) (string, error) {
	dst, err := convertUnits(c.token, src, 1)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

func (c *CharToUtf8) Close() { c.token.Close() }

// Utf8ToChar converts UTF-8 strings to byte strings in a named encoding.
type Utf8ToChar struct{ token *Token }

// NewUtf8ToChar opens a converter from UTF-8 to the named encoding.
func NewUtf8ToChar(code CodeName) *Utf8ToChar {
	return &Utf8ToChar{token: NewToken(utf8CodeName, code)}
}

func (c *Utf8ToChar) ToChar(src string) ([]byte, error) {
	return convertUnits(c.token, []byte(src), 1)
}

func (c *Utf8ToChar) Close() { c.token.Close() }

// WcharToUtf8 converts wide strings to UTF-8.
type WcharToUtf8 struct{ token *Token }

func NewWcharToUtf8() *WcharToUtf8 {
	return &WcharToUtf8{token: NewToken(wcharCodeName, utf8CodeName)}
}

func (c *WcharToUtf8) ToUtf8(src []rune) (string, error) {
	dst, err := convertUnits(c.token, bytesOfU32(src), 1)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

func (c *WcharToUtf8) Close() { c.token.Close() }

// Utf8ToWchar converts UTF-8 strings to wide strings.
type Utf8ToWchar struct{ token *Token }

func NewUtf8ToWchar() *Utf8ToWchar {
	return &Utf8ToWchar{token: NewToken(utf8CodeName, wcharCodeName)}
}

func (c *Utf8ToWchar) ToWchar(src string) ([]rune, error) {
	dst, err := convertUnits(c.token, []byte(src), 4)
	if err != nil {
		return nil, err
	}
	return u32OfBytes(dst), nil
}

func (c *Utf8ToWchar) Close() { c.token.Close() }

// Utf8ToUtf16 converts UTF-8 strings to UTF-16 code units.
type Utf8ToUtf16 struct{ token *Token }

func NewUtf8ToUtf16() *Utf8ToUtf16 {
	return &Utf8ToUtf16{token: NewToken(utf8CodeName, utf16CodeName)}
}

func (c *Utf8ToUtf16) ToUtf16(src string) ([]uint16, error) {
	dst, err := convertUnits(c.token, []byte(src), 2)
	if err != nil {
		return nil, err
	}
	return u16OfBytes(dst), nil
}

func (c *Utf8ToUtf16) Close() { c.token.Close() }

// Utf16ToUtf8 converts UTF-16 code units to UTF-8 strings.
type Utf16ToUtf8 struct{ token *Token }

func NewUtf16ToUtf8() *Utf16ToUtf8 {
	return &Utf16ToUtf8{token: NewToken(utf16CodeName, utf8CodeName)}
}

func (c *Utf16ToUtf8) ToUtf8(src []uint16) (string, error) {
	dst, err := convertUnits(c.token, bytesOfU16(src), 1)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

func (c *Utf16ToUtf8) Close() { c.token.Close() }

// Utf8ToUtf32 converts UTF-8 strings to Unicode scalar values.
type Utf8ToUtf32 struct{ token *Token }

func NewUtf8ToUtf32() *Utf8ToUtf32 {
	return &Utf8ToUtf32{token: NewToken(utf8CodeName, utf32CodeName)}
}

func (c *Utf8ToUtf32) ToUtf32(src string) ([]rune, error) {
	dst, err := convertUnits(c.token, []byte(src), 4)
	if err != nil {
		return nil, err
	}
	return u32OfBytes(dst), nil
}

func (c *Utf8ToUtf32) Close() { c.token.Close() }

// Utf32ToUtf8 converts Unicode scalar values to UTF-8 strings.
type Utf32ToUtf8 struct{ token *Token }

func NewUtf32ToUtf8() *Utf32ToUtf8 {
	return &Utf32ToUtf8{token: NewToken(utf32CodeName, utf8CodeName)}
}

func (c *Utf32ToUtf8) ToUtf8(src []rune) (string, error) {
	dst, err := convertUnits(c.token, bytesOfU32(src), 1)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

func (c *Utf32ToUtf8) Close() { c.token.Close() }
