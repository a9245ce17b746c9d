// Package clap is a command-line argument parser built as an explicit
// state machine over a classified token stream, with typed validators
// and a sibling resolver for environment variables.
//
// The grammar is deliberately small: `--name`, `--name VALUE`, `-x`,
// `-x VALUE`. There are no clustered short flags, no `=`-joined values
// and no `--` end-of-options marker; `--name=value` classifies as a long
// name with body `name=value` and normally fails lookup.
package clap

import (
	"os"
	"strings"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/panics"
)

// argumentKind classifies one raw argument.
type argumentKind int

const (
	kindLongName argumentKind = iota
	kindShortName
	kindValue
)

// classifiedArgument is a raw argument with its leading dashes stripped.
type classifiedArgument struct {
	kind argumentKind
	// For names, the body after the dashes; for values, the text itself.
	content string
}

func classify(arg string) classifiedArgument {
	switch {
	case strings.HasPrefix(arg, doubleDash):
		return classifiedArgument{kind: kindLongName, content: arg[len(doubleDash):]}
	case strings.HasPrefix(arg, dash):
		return classifiedArgument{kind: kindShortName, content: arg[len(dash):]}
	default:
		return classifiedArgument{kind: kindValue, content: arg}
	}
}

// parserState is the capture state machine's state.
type parserState int

const (
	// Normal expects an option name.
	stateNormal parserState = iota
	// WaitingValue expects the value of the previous option.
	stateWaitingValue
)

// capturedValue is one captured option: flag options carry no text.
type capturedValue struct {
	text    string
	hasText bool
}

// parserContext is the state machine context.
type parserContext struct {
	state   parserState
	waiting Token
	app     *Application
	values  map[Token]capturedValue
}

// capture runs the state machine over args. The first element is the
// program path and is skipped.
func capture(app *Application, args []string) (map[Token]capturedValue, error) {
	ctx := parserContext{
		state:  stateNormal,
		app:    app,
		values: make(map[Token]capturedValue),
	}

	rest := args
	if len(rest) > 0 {
		rest = rest[1:]
	}
	for _, arg := range rest {
		classified := classify(arg)

		var err error
		switch ctx.state {
		case stateNormal:
			err = ctx.normalState(classified)
		case stateWaitingValue:
			err = ctx.waitingValueState(classified)
		}
		if err != nil {
			return nil, err
		}
	}

	// Ending while waiting means the last option lost its value.
	if ctx.state == stateWaitingValue {
		return nil, ErrLostValue
	}
	return ctx.values, nil
}

func (ctx *parserContext) normalState(arg classifiedArgument) error {
	options := ctx.app.Options()

	var token Token
	var found bool
	switch arg.kind {
	case kindValue:
		// A bare value cannot appear while expecting a name.
		return ErrUnexpectedValue
	case kindLongName:
		token, found = options.FindLongName(arg.content)
	case kindShortName:
		token, found = options.FindShortName(arg.content)
	}
	if !found {
		return ErrInvalidName
	}

	if _, captured := ctx.values[token]; captured {
		return ErrDuplicatedAssign
	}

	if options.Get(token).HasValue() {
		ctx.waiting = token
		ctx.state = stateWaitingValue
	} else {
		ctx.values[token] = capturedValue{}
	}
	return nil
}

func (ctx *parserContext) waitingValueState(arg classifiedArgument) error {
	switch arg.kind {
	case kindLongName, kindShortName:
		// A name while waiting means the previous option lost its value.
		return ErrLostValue
	case kindValue:
		ctx.values[ctx.waiting] = capturedValue{text: arg.content, hasText: true}
		ctx.state = stateNormal
	}
	return nil
}

// Parser holds the capture result of one successful parse.
type Parser struct {
	values map[Token]capturedValue
}

// ParseUser captures a user-supplied argument list. The first element is
// the program path and is skipped.
func ParseUser(app *Application, args []string) (*Parser, error) {
	values, err := capture(app, args)
	if err != nil {
		return nil, err
	}
	return &Parser{values: values}, nil
}

// ParseSystem captures the process's own command line.
func ParseSystem(app *Application) (*Parser, error) {
	return ParseUser(app, os.Args)
}

// Has reports raw membership of token in the captures. It makes no
// distinction between flag and value options; prefer GetFlag or
// GetValue for anything but cross-option constraint checks.
func (p *Parser) Has(token Token) bool {
	_, ok := p.values[token]
	return ok
}

// GetFlag reports whether the flag option was given. Calling it on a
// value option is a caller bug.
func (p *Parser) GetFlag(token Token) (bool, error) {
	captured, ok := p.values[token]
	if !ok {
		return false, nil
	}
	if captured.hasText {
		panics.Panicf("clap: flag access on a value option")
	}
	return true, nil
}

// getRawValue fetches the captured text of a value option. Calling it on
// a flag option is a caller bug.
func (p *Parser) getRawValue(token Token) (string, error) {
	captured, ok := p.values[token]
	if !ok {
		return "", ErrNotCaptured
	}
	if !captured.hasText {
		panics.Panicf("clap: value access on a flag option")
	}
	return captured.text, nil
}

// GetValue fetches and validates the value of a captured option.
func GetValue[V any](p *Parser, token Token, validator Validator[V]) (V, error) {
	var zero V
	raw, err := p.getRawValue(token)
	if err != nil {
		return zero, err
	}
	value, ok := validator.Validate(raw)
	if !ok {
		return zero, ErrBadCast
	}
	return value, nil
}
