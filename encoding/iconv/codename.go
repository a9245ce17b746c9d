package iconv

import (
	"encoding/binary"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// CodeName labels a character encoding by its charset name, the way
// iconv identifies encodings.
type CodeName = string

// hostLittle reports the byte order conversions to "host endian" use.
var hostLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// The UTF-16/32 code names used internally always carry an explicit
// endianness so no BOM is emitted.
var (
	utf8CodeName  = "UTF-8"
	utf16CodeName = pickEndian("UTF-16LE", "UTF-16BE")
	utf32CodeName = pickEndian("UTF-32LE", "UTF-32BE")
	// Go has no wchar_t; wide-character conversions are UTF-32 of host
	// endianness.
	wcharCodeName = utf32CodeName
)

func pickEndian(little, big string) string {
	if hostLittle {
		return little
	}
	return big
}

// resolveCodeName maps a charset name onto its encoding.
// A nil encoding with ok == true means UTF-8 (the pivot, no transform
// needed). ok == false means the name was refused.
func resolveCodeName(name CodeName) (encoding.Encoding, bool) {
	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return nil, true
	case "UTF-16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), true
	case "UTF-16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case "UTF-16", "UTF16":
		if hostLittle {
			return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), true
		}
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case "UTF-32LE":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), true
	case "UTF-32BE":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), true
	case "UTF-32", "UTF32", "WCHAR_T":
		if hostLittle {
			return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), true
		}
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), true
	}
	// WHATWG labels first, then the wider IANA registry.
	if enc, _ := charset.Lookup(name); enc != nil {
		return enc, true
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, true
	}
	return nil, false
}
