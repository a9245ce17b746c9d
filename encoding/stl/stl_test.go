package stl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corpus spans the scripts the conversions must handle, including
// astral-plane emoji.
var corpus = []string{
	"ユーザー別サイト",
	"简体中文",
	"크로스 플랫폼으로",
	"מדורים מבוקשים",
	"أفضل البحوث",
	"Σὲ γνωρίζω ἀπὸ",
	"Десятую Международную",
	"แผ่นดินฮั่น",
	"français langue étrangère",
	"mañana olé",
	"∮ E⋅da = Q,  n → ∞, ∑ f(i) = ∏ g(i)",
	"\U0001F363 ✖ \U0001F37A",
}

func TestUtf16RoundTrip(t *testing.T) {
	for _, s := range corpus {
		u16, err := ToUtf16(s)
		require.NoError(t, err, "encode %q", s)
		back, err := Utf16ToUtf8(u16)
		require.NoError(t, err, "decode %q", s)
		assert.Equal(t, s, back)
	}
}

func TestUtf32RoundTrip(t *testing.T) {
	for _, s := range corpus {
		u32, err := ToUtf32(s)
		require.NoError(t, err, "encode %q", s)
		back, err := Utf32ToUtf8(u32)
		require.NoError(t, err, "decode %q", s)
		assert.Equal(t, s, back)
	}
}

func TestBadUtf8(t *testing.T) {
	_, err := ToUtf16("\xff\xfe")
	assert.ErrorIs(t, err, ErrConv)
	_, err = ToUtf32("abc\xc3")
	assert.ErrorIs(t, err, ErrConv)
}

func TestLoneSurrogate(t *testing.T) {
	// High surrogate with no low half.
	_, err := Utf16ToUtf8([]uint16{0xD83C})
	assert.ErrorIs(t, err, ErrConv)
	// Low surrogate alone.
	_, err = Utf16ToUtf8([]uint16{0xDF63})
	assert.ErrorIs(t, err, ErrConv)
	// Surrogate code point on the UTF-32 side.
	_, err = Utf32ToUtf8([]rune{0xD800})
	assert.ErrorIs(t, err, ErrConv)
	// Out-of-range scalar.
	_, err = Utf32ToUtf8([]rune{0x110000})
	assert.ErrorIs(t, err, ErrConv)
}

func TestEmptyInput(t *testing.T) {
	u16, err := ToUtf16("")
	require.NoError(t, err)
	assert.Empty(t, u16)

	s, err := Utf16ToUtf8(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestSurrogatePairSurvives(t *testing.T) {
	// A string ending in an astral-plane char keeps its trailing pair.
	u16, err := ToUtf16("x\U0001F37A")
	require.NoError(t, err)
	require.Len(t, u16, 3)
	assert.Equal(t, uint16('x'), u16[0])

	back, err := Utf16ToUtf8(u16)
	require.NoError(t, err)
	assert.Equal(t, "x\U0001F37A", back)
}
