// Package iconv converts byte strings between character encodings
// identified by charset name, in the manner of the iconv library: a
// conversion descriptor is opened for a (from, to) pair and driven over
// input with an incrementally grown output buffer.
//
// Charset names resolve through golang.org/x/net/html/charset on top of
// the golang.org/x/text encoding tables. UTF-16 and UTF-32 names carry
// explicit endianness internally so no BOM is produced.
package iconv

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// incLen is the growth step for the output buffer.
const incLen = 16

// runTransform drives tr over src, extending the output by incLen
// whenever the transformer reports a short destination and resuming at
// the position already written.
func runTransform(tr transform.Transformer, src []byte) ([]byte, error) {
	tr.Reset()
	dst := make([]byte, len(src)+incLen)
	var nDst, nSrc int
	for {
		d, s, err := tr.Transform(dst[nDst:], src[nSrc:], true)
		nDst += d
		nSrc += s
		switch {
		case err == nil:
			return dst[:nDst], nil
		case errors.Is(err, transform.ErrShortDst):
			dst = append(dst, make([]byte, incLen)...)
		case errors.Is(err, transform.ErrShortSrc):
			return nil, ErrIncompleteMbSeq
		default:
			return nil, ErrInvalidMbSeq
		}
	}
}

// replacementUtf8 is the encoded form of U+FFFD, which the decoders
// substitute for bytes they cannot map.
var replacementUtf8 = []byte(string(utf8.RuneError))

// convert runs the descriptor over src: decode from-encoding to UTF-8,
// then encode UTF-8 to the to-encoding. The transformers are fresh per
// call, so the descriptor is back in its initial shift state afterwards.
func convert(t *Token, src []byte) ([]byte, error) {
	if t == nil {
		return nil, ErrNullPointer
	}
	if !t.IsValid() {
		return nil, ErrInvalidCd
	}
	if len(src) == 0 {
		return []byte{}, nil
	}

	pivot := src
	if t.from != nil {
		decoded, err := runTransform(t.from.NewDecoder(), src)
		if err != nil {
			return nil, err
		}
		// The decoders report unmappable input by substitution, not by
		// error; surface it as an invalid sequence.
		if bytes.Contains(decoded, replacementUtf8) && !bytes.Contains(src, replacementUtf8) {
			return nil, ErrInvalidMbSeq
		}
		pivot = decoded
	} else if !utf8.Valid(src) {
		return nil, ErrInvalidMbSeq
	}

	if t.to == nil {
		return pivot, nil
	}
	return runTransform(t.to.NewEncoder(), pivot)
}

// Convert runs the descriptor over src and returns the converted bytes.
func Convert(t *Token, src []byte) ([]byte, error) {
	return convert(t, src)
}

// convertUnits converts and enforces that the output is a whole number
// of unitSize-byte code units.
func convertUnits(t *Token, src []byte, unitSize int) ([]byte, error) {
	dst, err := convert(t, src)
	if err != nil {
		return nil, err
	}
	if unitSize > 1 && len(dst)%unitSize != 0 {
		return nil, ErrBadRv
	}
	return dst, nil
}
