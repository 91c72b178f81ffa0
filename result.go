package args

import (
	"fmt"
)

// Values maps parameter identifiers to their parsed values.
type Values map[string]any

// Result holds the values parsed from an argument vector.
type Result struct {
	// HelpWanted is true if the help option was given.
	HelpWanted bool

	// Operands holds the value of each operand, by identifier.
	Operands Values

	// Options holds the value of each option but help, by identifier.
	Options Values

	// Remaining holds the positional words no operand consumed.
	Remaining []string
}

// Get returns the value of the parameter with the given identifier.
// An error is returned if there is no such parameter, or if its
// value is not of type T.
func Get[T any](vals Values, id string) (T, error) {
	var zero T

	raw, found := vals[id]
	if !found {
		return zero, fmt.Errorf("no parameter with identifier `%s`", id)
	}

	if raw == nil {
		return zero, nil
	}

	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("parameter `%s` holds a %T, not a %T", id, raw, zero)
	}

	return val, nil
}

// MustGet is like Get but panics if the value cannot be returned.
func MustGet[T any](vals Values, id string) T {
	val, err := Get[T](vals, id)
	if err != nil {
		panic(err)
	}

	return val
}
