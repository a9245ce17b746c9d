package wcwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, Width('A'))
	assert.Equal(t, 0, Width('\t'))
	assert.Equal(t, 0, Width(0x7F))
	assert.Equal(t, 2, Width(0x4E2D)) // 中
	assert.Equal(t, 0, Width(0x200D)) // ZWJ
	assert.Equal(t, 0, Width(0x0301)) // combining acute
	assert.Equal(t, 1, Width('~'))
	assert.Equal(t, 1, Width(0x00E9)) // é
}

func TestWcswidthPlain(t *testing.T) {
	w, err := Wcswidth("hello")
	assert.NoError(t, err)
	assert.Equal(t, 5, w)

	w, err = Wcswidth("你好")
	assert.NoError(t, err)
	assert.Equal(t, 4, w)
}

func TestWcswidthAnsiEscapes(t *testing.T) {
	// SGR sequences take no cells.
	w, err := Wcswidth("\x1b[31mred\x1b[0m")
	assert.NoError(t, err)
	assert.Equal(t, 3, w)

	// Multi-parameter CSI.
	w, err = Wcswidth("\x1b[1;31mx\x1b[0m")
	assert.NoError(t, err)
	assert.Equal(t, 1, w)

	// Two-char escape absorbed.
	w, err = Wcswidth("\x1bMx")
	assert.NoError(t, err)
	assert.Equal(t, 1, w)
}

func TestWcswidthVs16(t *testing.T) {
	// VS16 promotes the narrow heavy black heart to wide.
	w, err := Wcswidth("❤\uFE0F")
	assert.NoError(t, err)
	assert.Equal(t, 2, w)

	// A second VS16 in a row has nothing left to promote.
	w, err = Wcswidth("❤\uFE0F\uFE0F")
	assert.NoError(t, err)
	assert.Equal(t, 2, w)
}

func TestWcswidthZwj(t *testing.T) {
	// The char after a ZWJ is absorbed.
	w, err := Wcswidth("a\u200Db")
	assert.NoError(t, err)
	assert.Equal(t, 1, w)
}

func TestWcswidthEmoji(t *testing.T) {
	// sushi=2, space=1, x=1, space=1, beer=2
	w, err := Wcswidth("\U0001F363 ✖ \U0001F37A")
	assert.NoError(t, err)
	assert.Equal(t, 7, w)
}

func TestWcswidthErrors(t *testing.T) {
	_, err := Wcswidth("\x1b\x01")
	assert.ErrorIs(t, err, ErrBadAnsiEscSeq)

	_, err = Wcswidth("\x1b[31\x01m")
	assert.ErrorIs(t, err, ErrBadCsiSeq)

	_, err = Wcswidth("bad\xff")
	assert.ErrorIs(t, err, ErrBadEncoding)
}
