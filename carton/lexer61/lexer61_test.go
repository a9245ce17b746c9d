package lexer61

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"foo bar", []string{"foo", "bar"}},
		{"'a b'", []string{"a b"}},
		{`"a b"`, []string{"a b"}},
		{`a\ b`, []string{"a b"}},
		{"'a'b", []string{"ab"}},
		{"", nil},
		{"   ", nil},
		{"  foo   bar  ", []string{"foo", "bar"}},
		{`a"b"c`, []string{`a"b"c`}},
		{`"it's"`, []string{"it's"}},
		{`'say "hi"'`, []string{`say "hi"`}},
		{`\\`, []string{`\`}},
		{`a\'b`, []string{"a'b"}},
		{"中文 参数", []string{"中文", "参数"}},
	}
	for _, c := range cases {
		got, err := Lex(c.input)
		require.NoError(t, err, "input %q", c.input)
		if c.want == nil {
			assert.Empty(t, got, "input %q", c.input)
		} else {
			assert.Equal(t, c.want, got, "input %q", c.input)
		}
	}
}

func TestLexUnexpectedEnd(t *testing.T) {
	for _, input := range []string{`foo "`, "'open", `trailing\`} {
		_, err := Lex(input)
		assert.ErrorIs(t, err, ErrUnexpectedEnd, "input %q", input)
	}
}
