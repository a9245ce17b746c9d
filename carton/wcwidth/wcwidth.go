// Package wcwidth computes display cell widths of Unicode strings,
// including zero-width joiners, VS16 narrow-to-wide promotion and ANSI
// CSI escape sequences.
package wcwidth

import (
	"errors"

	"github.com/yyc12345/YYCCommonplace-sub000/encoding/stl"
)

var (
	// ErrBadAnsiEscSeq indicates a malformed ANSI escape sequence.
	ErrBadAnsiEscSeq = errors.New("wcwidth: bad ansi escape sequence")

	// ErrBadCsiSeq indicates a malformed CSI control sequence.
	ErrBadCsiSeq = errors.New("wcwidth: bad csi sequence")

	// ErrBadEncoding indicates the input was not valid UTF-8.
	ErrBadEncoding = errors.New("wcwidth: bad encoding")
)

// Width returns the display cell width of a single code point.
//
// C0/C1 control characters report 0 rather than the POSIX original's -1.
func Width(wc rune) int {
	// Small optimize for ASCII.
	if wc >= 0x20 && wc < 0x7F {
		return 1
	}

	// C0/C1 control char.
	if (wc != 0 && wc < 0x20) || (wc >= 0x7F && wc < 0xA0) {
		return 0
	}

	if bisearch(wc, zeroWidth) {
		return 0
	}

	if bisearch(wc, wideEastAsian) {
		return 2
	}
	return 1
}

type state int

const (
	// Normal character.
	stateNormal state = iota
	// Under ZWJ control char. Ignore the width of the next char.
	stateZeroWidthJoiner
	// Under ANSI escape sequence.
	stateAnsiEscape
	// Under CSI control sequence. No width accumulates before the final char.
	stateAnsiCsiEscape
)

// WcswidthRunes computes the display width of a scalar-value string.
func WcswidthRunes(src []rune) (int, error) {
	current := stateNormal
	// The last char that was measured with a non-zero width. VS16
	// promotion applies to it, not to whatever char came last.
	var lastMeasured rune
	var hasLastMeasured bool
	width := 0

	for _, chr := range src {
		switch current {
		case stateNormal:
			switch chr {
			case 0x200D:
				// ZWJ control char.
				current = stateZeroWidthJoiner
			case 0xFE0F:
				// VS16 control char. If a measured char is pending,
				// analyse it instead of this control char.
				if hasLastMeasured {
					if bisearch(lastMeasured, vs16NarrowToWide) {
						width++
					}
					hasLastMeasured = false
				}
			case 0x1B:
				current = stateAnsiEscape
			default:
				w := Width(chr)
				if w > 0 {
					lastMeasured = chr
					hasLastMeasured = true
				}
				width += w
			}
		case stateZeroWidthJoiner:
			// Eat this char and go back to normal. That is what ZWJ does.
			current = stateNormal
		case stateAnsiEscape:
			// '[' opens a CSI sequence; any other char in 0x40-0x5F is a
			// two-char escape and is absorbed.
			switch {
			case chr == '[':
				current = stateAnsiCsiEscape
			case chr >= 0x40 && chr <= 0x5F:
				current = stateNormal
			default:
				return 0, ErrBadAnsiEscSeq
			}
		case stateAnsiCsiEscape:
			// A CSI sequence is parameter chars, intermediate chars and
			// exactly one final char; absorb until the final char.
			switch {
			case chr >= 0x40 && chr <= 0x7E:
				current = stateNormal
			case chr >= 0x30 && chr <= 0x3F:
				// Parameter char.
			case chr >= 0x20 && chr <= 0x2F:
				// Intermediate char.
			default:
				return 0, ErrBadCsiSeq
			}
		}
	}

	return width, nil
}

// Wcswidth computes the display width of a UTF-8 string.
func Wcswidth(src string) (int, error) {
	runes, err := stl.ToUtf32(src)
	if err != nil {
		return 0, ErrBadEncoding
	}
	return WcswidthRunes(runes)
}
