// Package codepage converts between legacy byte encodings, identified by
// a platform code-page number, and the Unicode string forms.
//
// Wide strings are UTF-16 code units, matching the platform convention
// the code-page numbers come from. The byte-oriented conversions run on
// the golang.org/x/text encoding tables.
package codepage

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// checkLength rejects inputs beyond the backend's integer capacity.
func checkLength(n int) error {
	if n > math.MaxInt32 {
		return ErrTooLargeLength
	}
	return nil
}

// decodeBytes converts code-page bytes into a UTF-8 string.
func decodeBytes(cp CodePage, src []byte) (string, error) {
	enc, ok := lookup(cp)
	if !ok {
		return "", ErrNoDesiredSize
	}
	dst, _, err := transform.Bytes(enc.NewDecoder(), src)
	if err != nil {
		return "", ErrNoDesiredSize
	}
	out := string(dst)
	// The decoder substitutes U+FFFD for bytes it cannot map; treat that
	// as a refused conversion.
	if strings.ContainsRune(out, utf8.RuneError) {
		return "", ErrNoDesiredSize
	}
	return out, nil
}

// encodeBytes converts a UTF-8 string into code-page bytes.
func encodeBytes(cp CodePage, src string) ([]byte, error) {
	enc, ok := lookup(cp)
	if !ok {
		return nil, ErrNoDesiredSize
	}
	if !utf8.ValidString(src) {
		return nil, ErrNoDesiredSize
	}
	dst, _, err := transform.Bytes(enc.NewEncoder(), []byte(src))
	if err != nil {
		return nil, ErrNoDesiredSize
	}
	return dst, nil
}

// CharToWchar converts code-page bytes into a wide (UTF-16) string.
func CharToWchar(cp CodePage, src []byte) ([]uint16, error) {
	if err := checkLength(len(src)); err != nil {
		return nil, err
	}
	if cp == CodePageUtf8 {
		return ToUtf16(string(src))
	}
	s, err := decodeBytes(cp, src)
	if err != nil {
		return nil, err
	}
	wide, err := ToUtf16(s)
	if err != nil {
		// The decoder emitted something our own UTF-8 walker rejects.
		return nil, ErrBadWrittenSize
	}
	return wide, nil
}

// WcharToChar converts a wide (UTF-16) string into code-page bytes.
func WcharToChar(cp CodePage, src []uint16) ([]byte, error) {
	if err := checkLength(len(src)); err != nil {
		return nil, err
	}
	s, err := Utf16ToUtf8(src)
	if err != nil {
		return nil, ErrNoDesiredSize
	}
	if cp == CodePageUtf8 {
		return []byte(s), nil
	}
	return encodeBytes(cp, s)
}

// CharToChar converts bytes between two code pages through the wide form.
func CharToChar(from, to CodePage, src []byte) ([]byte, error) {
	wide, err := CharToWchar(from, src)
	if err != nil {
		return nil, err
	}
	return WcharToChar(to, wide)
}

// CharToUtf8 converts code-page bytes into a UTF-8 string. The destination
// side is fixed to the system UTF-8 code page.
func CharToUtf8(cp CodePage, src []byte) (string, error) {
	if err := checkLength(len(src)); err != nil {
		return "", err
	}
	if cp == CodePageUtf8 {
		if !utf8.Valid(src) {
			return "", ErrNoDesiredSize
		}
		return string(src), nil
	}
	return decodeBytes(cp, src)
}

// Utf8ToChar converts a UTF-8 string into code-page bytes. The source side
// is fixed to the system UTF-8 code page.
func Utf8ToChar(cp CodePage, src string) ([]byte, error) {
	if err := checkLength(len(src)); err != nil {
		return nil, err
	}
	if cp == CodePageUtf8 {
		if !utf8.ValidString(src) {
			return nil, ErrNoDesiredSize
		}
		return []byte(src), nil
	}
	return encodeBytes(cp, src)
}
