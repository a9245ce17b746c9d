package clap

import (
	"strings"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/panics"
)

// Token identifies a registered option or variable within its
// collection. Its value is the index into the collection's
// insertion-ordered sequence.
type Token = int

const (
	dash       = "-"
	doubleDash = "--"
)

// Option describes one command-line option. At least one of the short
// and long names must be present; an option with a value hint expects an
// associated value, otherwise it is a flag.
type Option struct {
	shortName   string
	longName    string
	valueHint   string
	description string
	hasShort    bool
	hasLong     bool
	hasHint     bool
}

// OptionName wraps an optional option name component.
type OptionName struct {
	text    string
	present bool
}

// Name supplies a present name component.
func Name(text string) OptionName { return OptionName{text: text, present: true} }

// NoName supplies an absent name component.
func NoName() OptionName { return OptionName{} }

// NewOption builds an option. Missing both names, an empty name, or a
// short name starting with a dash are caller bugs.
func NewOption(short, long, valueHint OptionName, description string) Option {
	if !short.present && !long.present {
		panics.Panicf("clap: option must have a short or long name")
	}
	if short.present && !legalShortName(short.text) {
		panics.Panicf("clap: invalid short name %q", short.text)
	}
	if long.present && !legalLongName(long.text) {
		panics.Panicf("clap: invalid long name %q", long.text)
	}
	return Option{
		shortName:   short.text,
		longName:    long.text,
		valueHint:   valueHint.text,
		description: description,
		hasShort:    short.present,
		hasLong:     long.present,
		hasHint:     valueHint.present,
	}
}

func legalShortName(name string) bool {
	return name != "" && !strings.HasPrefix(name, dash)
}

func legalLongName(name string) bool {
	return name != ""
}

// HasValue reports whether the option expects an associated value.
func (o Option) HasValue() bool { return o.hasHint }

// ShortName returns the short name and whether it is present.
func (o Option) ShortName() (string, bool) { return o.shortName, o.hasShort }

// LongName returns the long name and whether it is present.
func (o Option) LongName() (string, bool) { return o.longName, o.hasLong }

// ValueHint returns the value hint and whether it is present.
func (o Option) ValueHint() (string, bool) { return o.valueHint, o.hasHint }

// Description returns the option's description.
func (o Option) Description() string { return o.description }

// ShowcaseName renders the option's names the way a manual displays them.
func (o Option) ShowcaseName() string {
	switch {
	case o.hasShort && o.hasLong:
		return dash + o.shortName + " " + doubleDash + o.longName
	case o.hasShort:
		return dash + o.shortName
	default:
		return doubleDash + o.longName
	}
}

// ShowcaseValue renders the value hint the way a manual displays it.
func (o Option) ShowcaseValue() string {
	if !o.hasHint {
		return ""
	}
	return "<" + o.valueHint + ">"
}

// OptionCollection is an insertion-ordered registry of options. Short
// and long names live in separate tables but share one no-duplicates
// invariant: no short name may equal any registered long name and vice
// versa.
type OptionCollection struct {
	shortNames map[string]Token
	longNames  map[string]Token
	options    []Option
}

// NewOptionCollection creates an empty collection.
func NewOptionCollection() *OptionCollection {
	return &OptionCollection{
		shortNames: make(map[string]Token),
		longNames:  make(map[string]Token),
	}
}

// Add registers an option and returns its token. Any name collision is a
// caller bug.
func (c *OptionCollection) Add(opt Option) Token {
	token := len(c.options)

	if opt.hasShort {
		if _, ok := c.longNames[opt.shortName]; ok {
			panics.Panicf("clap: short name %q duplicates a long name", opt.shortName)
		}
		if _, ok := c.shortNames[opt.shortName]; ok {
			panics.Panicf("clap: duplicated short name %q", opt.shortName)
		}
		c.shortNames[opt.shortName] = token
	}
	if opt.hasLong {
		if _, ok := c.shortNames[opt.longName]; ok {
			panics.Panicf("clap: long name %q duplicates a short name", opt.longName)
		}
		if _, ok := c.longNames[opt.longName]; ok {
			panics.Panicf("clap: duplicated long name %q", opt.longName)
		}
		c.longNames[opt.longName] = token
	}

	c.options = append(c.options, opt)
	return token
}

// FindShortName returns the token registered under a short name.
func (c *OptionCollection) FindShortName(name string) (Token, bool) {
	token, ok := c.shortNames[name]
	return token, ok
}

// FindLongName returns the token registered under a long name.
func (c *OptionCollection) FindLongName(name string) (Token, bool) {
	token, ok := c.longNames[name]
	return token, ok
}

// Has reports whether token refers to a registered option.
func (c *OptionCollection) Has(token Token) bool {
	return token >= 0 && token < len(c.options)
}

// Get returns the option for token. An invalid token is a caller bug.
func (c *OptionCollection) Get(token Token) Option {
	if !c.Has(token) {
		panics.Panicf("clap: invalid option token %d", token)
	}
	return c.options[token]
}

// All returns the options in registration order.
func (c *OptionCollection) All() []Option { return c.options }

// Len returns the number of registered options.
func (c *OptionCollection) Len() int { return len(c.options) }

// Empty reports whether the collection has no options.
func (c *OptionCollection) Empty() bool { return len(c.options) == 0 }
