package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yyc12345/YYCCommonplace-sub000/internal/format"
)

func TestDumpField(t *testing.T) {
	data := format.AppendU64(nil, 3)
	data = append(data, "abc"...)

	field, next, err := dumpField(data, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), field)
	assert.Equal(t, len(data), next)

	_, _, err = dumpField(data[:5], 0)
	assert.Error(t, err)

	truncated := format.AppendU64(nil, 100)
	_, _, err = dumpField(truncated, 0)
	assert.Error(t, err)
}

func TestPreviewPayload(t *testing.T) {
	assert.Equal(t, "hello", previewPayload([]byte("hello")))
	assert.Equal(t, "00 01 02", previewPayload([]byte{0, 1, 2}))

	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, previewPayload(long), 24)
}
