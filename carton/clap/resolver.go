package clap

import (
	"os"
	"strings"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/panics"
)

// Resolver captures the application's registered variables from an
// environment. A registered variable present with an empty value is a
// flag capture; present with text it is a value capture; absent it is
// not captured. Name-based lookup only.
type Resolver struct {
	values map[Token]capturedValue
}

// ResolveUser captures variables from a user-supplied (name, value) list.
func ResolveUser(app *Application, vars [][2]string) (*Resolver, error) {
	lookup := make(map[string]string, len(vars))
	for _, pair := range vars {
		lookup[pair[0]] = pair[1]
	}
	return resolve(app, lookup), nil
}

// ResolveSystem captures variables from the process environment.
func ResolveSystem(app *Application) (*Resolver, error) {
	lookup := make(map[string]string)
	for _, entry := range os.Environ() {
		if name, value, ok := strings.Cut(entry, "="); ok {
			lookup[name] = value
		}
	}
	return resolve(app, lookup), nil
}

func resolve(app *Application, env map[string]string) *Resolver {
	values := make(map[Token]capturedValue)
	for token, variable := range app.Variables().All() {
		value, present := env[variable.Name()]
		if !present {
			continue
		}
		if value == "" {
			values[token] = capturedValue{}
		} else {
			values[token] = capturedValue{text: value, hasText: true}
		}
	}
	return &Resolver{values: values}
}

// Has reports raw membership of token in the captures. It cannot
// distinguish flag variables from value variables; prefer GetFlagVariable
// or GetValueVariable except for cross-variable constraint checks.
func (r *Resolver) Has(token Token) bool {
	_, ok := r.values[token]
	return ok
}

// GetFlagVariable reports whether the flag variable was set. Calling it
// on a value variable is a caller bug.
func (r *Resolver) GetFlagVariable(token Token) (bool, error) {
	captured, ok := r.values[token]
	if !ok {
		return false, nil
	}
	if captured.hasText {
		panics.Panicf("clap: flag access on a value variable")
	}
	return true, nil
}

// getRawVariable fetches the captured text of a value variable. Calling
// it on a flag variable is a caller bug.
func (r *Resolver) getRawVariable(token Token) (string, error) {
	captured, ok := r.values[token]
	if !ok {
		return "", ErrNotCaptured
	}
	if !captured.hasText {
		panics.Panicf("clap: value access on a flag variable")
	}
	return captured.text, nil
}

// GetValueVariable fetches and validates the value of a captured
// variable.
func GetValueVariable[V any](r *Resolver, token Token, validator Validator[V]) (V, error) {
	var zero V
	raw, err := r.getRawVariable(token)
	if err != nil {
		return zero, err
	}
	value, ok := validator.Validate(raw)
	if !ok {
		return zero, ErrBadCast
	}
	return value, nil
}
