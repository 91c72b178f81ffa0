// Package names parses option name specifications of the form
// "long|s|alias1|alias2", optionally marked incrementable with a "+".
package names

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/reeflective/args/internal/errors"
)

const (
	separator       = "|"
	incrementMarker = "+"
)

// Spec is the parsed form of an option name specification.
type Spec struct {
	Long          string   // Long name, never empty
	Short         string   // Optional single-character name
	Aliases       []string // Additional long names, in declaration order
	Incrementable bool     // Repeated occurrences increment the value
	Raw           string   // Canonical specification string
}

// Parse parses an option name specification.
// The first token is the long name, the first remaining single-character
// token is the short name, and all other tokens are aliases. Aliases of
// one character are matched in short form (-c), others in long form (--alias).
// Extra single-character tokens are kept as aliases, so "a|b|c|d" has aliases c and d.
func Parse(spec string) (Spec, error) {
	var parsed Spec

	if strings.Contains(spec, incrementMarker) {
		parsed.Incrementable = true
		spec = strings.ReplaceAll(spec, incrementMarker, "")
	}

	tokens := strings.Split(spec, separator)

	parsed.Long = tokens[0]
	if parsed.Long == "" {
		return parsed, fmt.Errorf("%w: option specification %q has no long name",
			errors.ErrInvalidDeclaration, spec)
	}

	for _, token := range tokens[1:] {
		switch {
		case token == "" || token == parsed.Long || token == parsed.Short:
			continue
		case parsed.Short == "" && utf8.RuneCountInString(token) == 1:
			parsed.Short = token
		case !contains(parsed.Aliases, token):
			parsed.Aliases = append(parsed.Aliases, token)
		}
	}

	parsed.Raw = parsed.String()

	return parsed, nil
}

// Names returns all names of the specification, long name first.
func (s Spec) Names() []string {
	names := []string{s.Long}
	if s.Short != "" {
		names = append(names, s.Short)
	}

	return append(names, s.Aliases...)
}

// MatchesLong returns true if name is the long name or a multi-character alias.
func (s Spec) MatchesLong(name string) bool {
	if name == s.Long {
		return true
	}

	return utf8.RuneCountInString(name) > 1 && contains(s.Aliases, name)
}

// MatchesShort returns true if char is the short name or a single-character alias.
func (s Spec) MatchesShort(char string) bool {
	if char == "" {
		return false
	}

	return char == s.Short || contains(s.Aliases, char)
}

// String rebuilds the canonical specification string.
func (s Spec) String() string {
	tokens := []string{s.Long}

	if s.Short != "" {
		tokens = append(tokens, s.Short)
	}

	spec := strings.Join(append(tokens, s.Aliases...), separator)
	if s.Incrementable {
		spec += incrementMarker
	}

	return spec
}

func contains(list []string, item string) bool {
	for _, elem := range list {
		if elem == item {
			return true
		}
	}

	return false
}
