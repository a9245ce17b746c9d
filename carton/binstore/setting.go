package binstore

import "github.com/yyc12345/YYCCommonplace-sub000/carton/panics"

// Token identifies a registered setting within its collection. Its value
// is the index into the collection's insertion-ordered sequence, so a
// token is valid iff 0 <= t < collection.Len().
type Token = int

// Setting is a named configuration entry. The name must be non-empty
// UTF-8 and unique within a collection.
type Setting struct {
	name string
}

// NewSetting creates a setting. An empty name is a caller bug.
func NewSetting(name string) Setting {
	if name == "" {
		panics.Panicf("binstore: setting name must not be empty")
	}
	return Setting{name: name}
}

// Name returns the setting's name.
func (s Setting) Name() string { return s.name }

// SettingCollection is an insertion-ordered registry of settings with
// name-based lookup and token-based access.
type SettingCollection struct {
	names    map[string]Token
	settings []Setting
}

// NewSettingCollection creates an empty collection.
func NewSettingCollection() *SettingCollection {
	return &SettingCollection{names: make(map[string]Token)}
}

// Add registers a setting and returns its token. A duplicate name is a
// caller bug.
func (c *SettingCollection) Add(s Setting) Token {
	if _, exists := c.names[s.name]; exists {
		panics.Panicf("binstore: duplicated setting name %q", s.name)
	}
	token := len(c.settings)
	c.settings = append(c.settings, s)
	c.names[s.name] = token
	return token
}

// FindName returns the token of the named setting.
func (c *SettingCollection) FindName(name string) (Token, bool) {
	token, ok := c.names[name]
	return token, ok
}

// Has reports whether token refers to a registered setting.
func (c *SettingCollection) Has(token Token) bool {
	return token >= 0 && token < len(c.settings)
}

// Get returns the setting for token. An invalid token is a caller bug;
// it is the caller's job to hold a valid token.
func (c *SettingCollection) Get(token Token) Setting {
	if !c.Has(token) {
		panics.Panicf("binstore: invalid setting token %d", token)
	}
	return c.settings[token]
}

// All returns the settings in registration order.
func (c *SettingCollection) All() []Setting { return c.settings }

// Len returns the number of registered settings.
func (c *SettingCollection) Len() int { return len(c.settings) }

// Empty reports whether the collection has no settings.
func (c *SettingCollection) Empty() bool { return len(c.settings) == 0 }
