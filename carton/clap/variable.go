package clap

import "github.com/yyc12345/YYCCommonplace-sub000/carton/panics"

// Variable describes one environment variable the application reads.
type Variable struct {
	name        string
	description string
}

// NewVariable builds a variable. An empty name is a caller bug.
func NewVariable(name, description string) Variable {
	if name == "" {
		panics.Panicf("clap: variable name must not be empty")
	}
	return Variable{name: name, description: description}
}

// Name returns the variable's name.
func (v Variable) Name() string { return v.name }

// Description returns the variable's description.
func (v Variable) Description() string { return v.description }

// VariableCollection is an insertion-ordered registry of variables with
// name-based lookup.
type VariableCollection struct {
	names     map[string]Token
	variables []Variable
}

// NewVariableCollection creates an empty collection.
func NewVariableCollection() *VariableCollection {
	return &VariableCollection{names: make(map[string]Token)}
}

// Add registers a variable and returns its token. A duplicate name is a
// caller bug.
func (c *VariableCollection) Add(v Variable) Token {
	if _, ok := c.names[v.name]; ok {
		panics.Panicf("clap: duplicated variable name %q", v.name)
	}
	token := len(c.variables)
	c.variables = append(c.variables, v)
	c.names[v.name] = token
	return token
}

// FindName returns the token registered under name.
func (c *VariableCollection) FindName(name string) (Token, bool) {
	token, ok := c.names[name]
	return token, ok
}

// Has reports whether token refers to a registered variable.
func (c *VariableCollection) Has(token Token) bool {
	return token >= 0 && token < len(c.variables)
}

// Get returns the variable for token. An invalid token is a caller bug.
func (c *VariableCollection) Get(token Token) Variable {
	if !c.Has(token) {
		panics.Panicf("clap: invalid variable token %d", token)
	}
	return c.variables[token]
}

// All returns the variables in registration order.
func (c *VariableCollection) All() []Variable { return c.variables }

// Len returns the number of registered variables.
func (c *VariableCollection) Len() int { return len(c.variables) }

// Empty reports whether the collection has no variables.
func (c *VariableCollection) Empty() bool { return len(c.variables) == 0 }
