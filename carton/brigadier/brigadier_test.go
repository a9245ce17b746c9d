package brigadier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentStack(t *testing.T) {
	stack := NewArgumentStack([]string{"a", "b"})

	require.False(t, stack.Empty())
	assert.Equal(t, "a", stack.Peek())
	stack.Pop()
	assert.Equal(t, "b", stack.Peek())
	stack.Push()
	assert.Equal(t, "a", stack.Peek())

	stack.Pop()
	stack.Pop()
	assert.True(t, stack.Empty())

	stack.Reset()
	assert.Equal(t, "a", stack.Peek())
}

func TestConflictSet(t *testing.T) {
	a := NewConflictSet()
	a.AddLiteral("run")
	a.AddArgument("file")

	b := NewConflictSet()
	b.AddLiteral("stop")
	assert.False(t, a.ConflictsWith(b))

	c := NewConflictSet()
	c.AddLiteral("run")
	assert.True(t, a.ConflictsWith(c))

	// Tag spaces are disjoint: a literal never conflicts with an
	// argument of the same name.
	d := NewConflictSet()
	d.AddArgument("run")
	assert.False(t, a.ConflictsWith(d))
}
