package pycodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gbkNihaoZhongguo = []byte{0xC4, 0xE3, 0xBA, 0xC3, 0xD6, 0xD0, 0xB9, 0xFA}

func TestIsValidEncodingName(t *testing.T) {
	assert.True(t, IsValidEncodingName("utf-8"))
	assert.True(t, IsValidEncodingName("gb2312"))
	assert.True(t, IsValidEncodingName("cp1252"))
	assert.True(t, IsValidEncodingName("UTF-8"))
	assert.False(t, IsValidEncodingName("definitely not an encoding"))
}

func TestResolveAlias(t *testing.T) {
	assert.Equal(t, "utf_8", ResolveAlias("UTF-8"))
	assert.Equal(t, "utf_8", ResolveAlias("cp65001"))
	assert.Equal(t, "gbk", ResolveAlias("ms936"))
	assert.Equal(t, "latin_1", ResolveAlias("ISO-8859-1"))
	// A miss keeps the (lowercased) name verbatim.
	assert.Equal(t, "nonsense", ResolveAlias("NonSense"))
}

func TestCharsetName(t *testing.T) {
	cs, err := CharsetName("latin1")
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", cs)

	_, err = CharsetName("definitely not an encoding")
	assert.ErrorIs(t, err, ErrNoSuchName)
}

func TestCodePage(t *testing.T) {
	cp, err := CodePage("gbk")
	require.NoError(t, err)
	assert.EqualValues(t, 936, cp)

	cp, err = CodePage("utf-8")
	require.NoError(t, err)
	assert.EqualValues(t, 65001, cp)

	_, err = CodePage("definitely not an encoding")
	assert.ErrorIs(t, err, ErrNoSuchName)
}

func TestNamedConverterRoundTrip(t *testing.T) {
	dec := NewCharToUtf8("gb2312")
	s, err := dec.ToUtf8(gbkNihaoZhongguo)
	require.NoError(t, err)
	assert.Equal(t, "你好中国", s)

	enc := NewUtf8ToChar("gb2312")
	back, err := enc.ToChar(s)
	require.NoError(t, err)
	assert.Equal(t, gbkNihaoZhongguo, back)
}

func TestDeferredNameFailure(t *testing.T) {
	// Construction always succeeds; the bad name surfaces on first use.
	conv := NewCharToUtf8("definitely not an encoding")
	_, err := conv.ToUtf8([]byte("abc"))
	assert.ErrorIs(t, err, ErrNoSuchName)
}

func TestUtfPairs(t *testing.T) {
	u16, err := NewUtf8ToUtf16().ToUtf16("héllo")
	require.NoError(t, err)
	back, err := NewUtf16ToUtf8().ToUtf8(u16)
	require.NoError(t, err)
	assert.Equal(t, "héllo", back)

	u32, err := NewUtf8ToUtf32().ToUtf32("héllo")
	require.NoError(t, err)
	back, err = NewUtf32ToUtf8().ToUtf8(u32)
	require.NoError(t, err)
	assert.Equal(t, "héllo", back)

	wide, err := NewUtf8ToWchar().ToWchar("héllo")
	require.NoError(t, err)
	back, err = NewWcharToUtf8().ToUtf8(wide)
	require.NoError(t, err)
	assert.Equal(t, "héllo", back)
}
