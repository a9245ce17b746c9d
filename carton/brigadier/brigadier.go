// Package brigadier holds the building blocks for command grammars: a
// cursored argument stack and a conflict set for detecting ambiguous
// grammar nodes at construction time.
package brigadier

import "github.com/yyc12345/YYCCommonplace-sub000/carton/panics"

// ArgumentStack is a fixed argument sequence with a cursor.
// The cursor stays within [0, len].
type ArgumentStack struct {
	stack  []string
	cursor int
}

// NewArgumentStack wraps an argument sequence.
func NewArgumentStack(args []string) *ArgumentStack {
	return &ArgumentStack{stack: args}
}

// Reset moves the cursor back to the start.
func (s *ArgumentStack) Reset() { s.cursor = 0 }

// Empty reports whether every argument has been consumed.
func (s *ArgumentStack) Empty() bool { return s.cursor >= len(s.stack) }

// Peek returns the argument under the cursor. Peeking an exhausted stack
// is a caller bug.
func (s *ArgumentStack) Peek() string {
	if s.Empty() {
		panics.Panicf("brigadier: peek on exhausted argument stack")
	}
	return s.stack[s.cursor]
}

// Pop consumes the argument under the cursor. Popping an exhausted stack
// is a caller bug.
func (s *ArgumentStack) Pop() {
	if s.cursor >= len(s.stack) {
		panics.Panicf("brigadier: no arguments can be popped")
	}
	s.cursor++
}

// Push returns the last consumed argument to the stack. Pushing at the
// start is a caller bug.
func (s *ArgumentStack) Push() {
	if s.cursor == 0 {
		panics.Panicf("brigadier: no arguments can be pushed")
	}
	s.cursor--
}

// ConflictSet is a set of tagged names, disjoint between the literal and
// argument tag spaces. Two grammar nodes conflict when their sets
// intersect.
type ConflictSet struct {
	inner map[string]struct{}
}

// NewConflictSet creates an empty set.
func NewConflictSet() *ConflictSet {
	return &ConflictSet{inner: make(map[string]struct{})}
}

func (c *ConflictSet) add(entry string) {
	if _, ok := c.inner[entry]; ok {
		panics.Panicf("brigadier: duplicated conflict set item %q", entry)
	}
	c.inner[entry] = struct{}{}
}

// AddLiteral registers a literal name. Empty or duplicated names are
// caller bugs.
func (c *ConflictSet) AddLiteral(value string) {
	if value == "" {
		panics.Panicf("brigadier: empty item inserted to conflict set")
	}
	c.add("literal:" + value)
}

// AddArgument registers an argument name. Empty or duplicated names are
// caller bugs.
func (c *ConflictSet) AddArgument(value string) {
	if value == "" {
		panics.Panicf("brigadier: empty item inserted to conflict set")
	}
	c.add("argument:" + value)
}

// ConflictsWith reports whether the two sets share any tagged name.
func (c *ConflictSet) ConflictsWith(rhs *ConflictSet) bool {
	small, large := c.inner, rhs.inner
	if len(large) < len(small) {
		small, large = large, small
	}
	for entry := range small {
		if _, ok := large[entry]; ok {
			return true
		}
	}
	return false
}
