// Package ident derives programmatic identifiers from kebab-case
// parameter names, and validates them against a reserved word list.
package ident

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reeflective/args/internal/errors"
)

const (
	wordDivider    = "-"
	reservedPrefix = "_"
)

// reserved holds the Go keywords and predeclared identifiers, plus
// `version`, which stays free for callers wiring their own version flag.
var reserved = map[string]bool{
	// Keywords
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,

	// Predeclared types
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true,

	// Predeclared constants, zero value and functions
	"true": true, "false": true, "iota": true, "nil": true,
	"append": true, "cap": true, "clear": true, "close": true, "complex": true,
	"copy": true, "delete": true, "imag": true, "len": true, "make": true,
	"max": true, "min": true, "new": true, "panic": true, "print": true,
	"println": true, "real": true, "recover": true,

	"version": true,
}

// IsReserved returns true if the word cannot be used verbatim as an identifier.
func IsReserved(word string) bool {
	return reserved[word]
}

// Derive transforms a kebab-case name into a camelCase identifier,
// prefixing it with an underscore when it collides with a reserved word.
// An error wrapping errors.ErrInvalidIdentifier is returned when the
// result is not a valid identifier.
func Derive(name string) (string, error) {
	segments := strings.Split(name, wordDivider)

	candidate := segments[0]
	if len(segments) > 1 {
		candidate = camelCase(segments)
	}

	if IsReserved(candidate) {
		candidate = reservedPrefix + candidate
	}

	if err := Validate(candidate); err != nil {
		return "", fmt.Errorf("%w (derived from %q)", err, name)
	}

	return candidate, nil
}

// Validate checks that id starts with a letter or an underscore,
// and only contains letters, digits and underscores after that.
func Validate(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty identifier", errors.ErrInvalidIdentifier)
	}

	for pos, char := range id {
		if char == '_' || unicode.IsLetter(char) {
			continue
		}

		if pos > 0 && unicode.IsDigit(char) {
			continue
		}

		return fmt.Errorf("%w: %q has invalid character %q at position %d",
			errors.ErrInvalidIdentifier, id, char, pos)
	}

	return nil
}

// camelCase joins the first segment verbatim with each subsequent
// segment having its first character upper-cased.
func camelCase(segments []string) string {
	var ident strings.Builder

	ident.WriteString(segments[0])

	for _, seg := range segments[1:] {
		first, size := utf8.DecodeRuneInString(seg)
		if size == 0 {
			continue
		}

		ident.WriteRune(unicode.ToUpper(first))
		ident.WriteString(seg[size:])
	}

	return ident.String()
}
