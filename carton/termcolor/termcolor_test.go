package termcolor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForegroundBackground(t *testing.T) {
	assert.Equal(t, "\x1b[31m", Foreground(Red))
	assert.Equal(t, "\x1b[97m", Foreground(LightWhite))
	assert.Equal(t, "\x1b[41m", Background(Red))
	assert.Equal(t, "\x1b[107m", Background(LightWhite))
	// Default emits nothing.
	assert.Equal(t, "", Foreground(Default))
	assert.Equal(t, "", Background(Default))
}

func TestStyle(t *testing.T) {
	assert.Equal(t, "\x1b[1m", Style(Bold))
	assert.Equal(t, "\x1b[4m", Style(Underline))
	assert.Equal(t, "\x1b[7m", Style(Concealed))

	assert.Panics(t, func() { Style(AttrDefault) })
	assert.Panics(t, func() { Style(Bold | Italic) })
}

func TestStyles(t *testing.T) {
	// Bits are scanned low to high, so Bold comes before Italic.
	assert.Equal(t, Style(Bold)+Style(Italic), Styles(Bold|Italic))
	assert.Equal(t, "", Styles(AttrDefault))
	assert.Equal(t,
		Style(Bold)+Style(Dim)+Style(Italic)+Style(Underline)+Style(Blink)+Style(Reverse)+Style(Concealed),
		Styles(Bold|Dim|Italic|Underline|Blink|Reverse|Concealed))
}

func TestColored(t *testing.T) {
	assert.Equal(t, "\x1b[31mx\x1b[0m", Colored("x", Red, Default, AttrDefault))
	assert.Equal(t, "\x1b[31m\x1b[44m\x1b[1mx\x1b[0m", Colored("x", Red, Blue, Bold))
	assert.Equal(t, "x\x1b[0m", Colored("x", Default, Default, AttrDefault))
}

func TestCprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Cprint(&buf, "x", Red, Default, AttrDefault))
	assert.Equal(t, "\x1b[31mx\x1b[0m", buf.String())

	buf.Reset()
	require.NoError(t, Cprintln(&buf, "x", Red, Default, AttrDefault))
	assert.Equal(t, "\x1b[31mx\x1b[0m\n", buf.String())
}
