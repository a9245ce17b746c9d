// Package pycodec resolves Python-codec-style encoding names and
// dispatches conversions to the charset-name backend.
//
// A user-facing name is lowercased and resolved through the alias table;
// a miss means the name is used verbatim as a canonical name. The
// canonical name then maps to a backend identifier. Converter
// construction never fails: an unknown name surfaces as ErrNoSuchName on
// the first conversion call.
package pycodec

import (
	"strings"

	"github.com/yyc12345/YYCCommonplace-sub000/encoding/codepage"
	"github.com/yyc12345/YYCCommonplace-sub000/encoding/iconv"
)

// EncodingName is a Python-codec-style encoding label.
type EncodingName = string

// ResolveAlias lowercases name and resolves it against the alias table.
// Unknown names are returned verbatim (lowercased).
func ResolveAlias(name EncodingName) string {
	lower := strings.ToLower(name)
	if canonical, ok := aliasTable[lower]; ok {
		return canonical
	}
	return lower
}

// CharsetName resolves name to the charset-name backend's identifier.
func CharsetName(name EncodingName) (iconv.CodeName, error) {
	cs, ok := charsetTable[ResolveAlias(name)]
	if !ok {
		return "", ErrNoSuchName
	}
	return cs, nil
}

// CodePage resolves name to its platform code-page number.
func CodePage(name EncodingName) (codepage.CodePage, error) {
	cp, ok := codePageTable[ResolveAlias(name)]
	if !ok {
		return 0, ErrNoSuchName
	}
	return cp, nil
}

// IsValidEncodingName reports whether name resolves to a known encoding.
func IsValidEncodingName(name EncodingName) bool {
	_, ok := charsetTable[ResolveAlias(name)]
	return ok
}

// CharToUtf8 converts byte strings in a named encoding to UTF-8.
type CharToUtf8 struct {
	name  EncodingName
	inner *iconv.CharToUtf8
}

// NewCharToUtf8 builds a converter for name. Construction always
// succeeds; an unknown name fails on the first conversion.
func NewCharToUtf8(name EncodingName) *CharToUtf8 {
	return &CharToUtf8{name: name}
}

func (c *CharToUtf8) ToUtf8(src []byte) (string, error) {
	if c.inner == nil {
		cs, err := CharsetName(c.name)
		if err != nil {
			return "", err
		}
		c.inner = iconv.NewCharToUtf8(cs)
	}
	return c.inner.ToUtf8(src)
}

// Utf8ToChar converts UTF-8 strings to byte strings in a named encoding.
type Utf8ToChar struct {
	name  EncodingName
	inner *iconv.Utf8ToChar
}

// NewUtf8ToChar builds a converter for name. Construction always
// succeeds; an unknown name fails on the first conversion.
func NewUtf8ToChar(name EncodingName) *Utf8ToChar {
	return &Utf8ToChar{name: name}
}

func (c *Utf8ToChar) ToChar(src string) ([]byte, error) {
	if c.inner == nil {
		cs, err := CharsetName(c.name)
		if err != nil {
			return nil, err
		}
		c.inner = iconv.NewUtf8ToChar(cs)
	}
	return c.inner.ToChar(src)
}

// The UTF pair converters have no name parameter; they are re-exported
// so pycodec is the single conversion façade.

// WcharToUtf8 converts wide strings to UTF-8.
type WcharToUtf8 struct{ inner *iconv.WcharToUtf8 }

func NewWcharToUtf8() *WcharToUtf8 {
	return &WcharToUtf8{inner: iconv.NewWcharToUtf8()}
}

func (c *WcharToUtf8) ToUtf8(src []rune) (string, error) { return c.inner.ToUtf8(src) }

// Utf8ToWchar converts UTF-8 strings to wide strings.
type Utf8ToWchar struct{ inner *iconv.Utf8ToWchar }

func NewUtf8ToWchar() *Utf8ToWchar {
	return &Utf8ToWchar{inner: iconv.NewUtf8ToWchar()}
}

func (c *Utf8ToWchar) ToWchar(src string) ([]rune, error) { return c.inner.ToWchar(src) }

// Utf8ToUtf16 converts UTF-8 strings to UTF-16 code units.
type Utf8ToUtf16 struct{ inner *iconv.Utf8ToUtf16 }

func NewUtf8ToUtf16() *Utf8ToUtf16 {
	return &Utf8ToUtf16{inner: iconv.NewUtf8ToUtf16()}
}

func (c *Utf8ToUtf16) ToUtf16(src string) ([]uint16, error) { return c.inner.ToUtf16(src) }

// Utf16ToUtf8 converts UTF-16 code units to UTF-8 strings.
type Utf16ToUtf8 struct{ inner *iconv.Utf16ToUtf8 }

func NewUtf16ToUtf8() *Utf16ToUtf8 {
	return &Utf16ToUtf8{inner: iconv.NewUtf16ToUtf8()}
}

func (c *Utf16ToUtf8) ToUtf8(src []uint16) (string, error) { return c.inner.ToUtf8(src) }

// Utf8ToUtf32 converts UTF-8 strings to Unicode scalar values.
type Utf8ToUtf32 struct{ inner *iconv.Utf8ToUtf32 }

func NewUtf8ToUtf32() *Utf8ToUtf32 {
	return &Utf8ToUtf32{inner: iconv.NewUtf8ToUtf32()}
}

func (c *Utf8ToUtf32) ToUtf32(src string) ([]rune, error) { return c.inner.ToUtf32(src) }

// Utf32ToUtf8 converts Unicode scalar values to UTF-8 strings.
type Utf32ToUtf8 struct{ inner *iconv.Utf32ToUtf8 }

func NewUtf32ToUtf8() *Utf32ToUtf8 {
	return &Utf32ToUtf8{inner: iconv.NewUtf32ToUtf8()}
}

func (c *Utf32ToUtf8) ToUtf8(src []rune) (string, error) { return c.inner.ToUtf8(src) }
