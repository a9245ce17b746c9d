package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(1, 2)
	require.True(t, ok)
	assert.Equal(t, 3, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	assert.False(t, ok)
	_, ok = AddOverflowSafe(math.MinInt, -1)
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4}

	s, ok := Slice(b, 1, 2)
	require.True(t, ok)
	assert.Equal(t, []byte{2, 3}, s)

	_, ok = Slice(b, 3, 2)
	assert.False(t, ok)
	_, ok = Slice(b, -1, 1)
	assert.False(t, ok)
	_, ok = Slice(b, 0, -1)
	assert.False(t, ok)
	_, ok = Slice(b, 2, math.MaxInt)
	assert.False(t, ok)

	s, ok = Slice(b, 4, 0)
	require.True(t, ok)
	assert.Empty(t, s)
}

func TestHas(t *testing.T) {
	b := []byte{1, 2, 3}
	assert.True(t, Has(b, 0, 3))
	assert.False(t, Has(b, 0, 4))
}
