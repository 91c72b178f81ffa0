// Package scan implements pass-through option scanning: a scan matches
// the words naming a single option, and leaves any other word in place
// for later scans.
package scan

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/internal/names"
)

const (
	// Terminator ends option scanning: all words after it are operands.
	Terminator = "--"
	// Stdin is the conventional operand for standard input.
	Stdin = "-"

	longPrefix  = "--"
	shortPrefix = "-"
	assign      = "="
)

// Match is a single occurrence of an option on the command line.
type Match struct {
	Token string // The word naming the option
	Value string // The value given to the option
}

// Target is the option being scanned for. The flag gives the value
// holder, and its NoOptDefVal tells if the option needs an argument.
type Target struct {
	Names names.Spec
	Flag  *pflag.Flag
}

func (t Target) takesArg() bool {
	return t.Flag.NoOptDefVal == ""
}

// Scan finds all occurrences of the target in words, and returns them
// along with the words that were not consumed, in their original order.
// Words following the terminator are never scanned.
func Scan(words []string, target Target) (matches []Match, remaining []string, err error) {
	remaining = make([]string, 0, len(words))

	for i := 0; i < len(words); i++ {
		word := words[i]

		switch {
		case word == Terminator:
			remaining = append(remaining, words[i:]...)

			return matches, remaining, nil

		case strings.HasPrefix(word, longPrefix):
			found, consumed, err := target.matchLong(word, words[i+1:])
			if err != nil {
				return nil, nil, err
			}

			if len(found) == 0 {
				remaining = append(remaining, word)
			}

			matches = append(matches, found...)
			i += consumed

		case strings.HasPrefix(word, shortPrefix) && word != Stdin:
			found, consumed, err := target.matchShort(word, words[i+1:])
			if err != nil {
				return nil, nil, err
			}

			if len(found) == 0 {
				remaining = append(remaining, word)
			}

			matches = append(matches, found...)
			i += consumed

		default:
			remaining = append(remaining, word)
		}
	}

	return matches, remaining, nil
}

// Apply scans words for the target and sets each matched value onto
// the target flag value, marking it changed like pflag does.
func Apply(words []string, target Target) (remaining []string, err error) {
	matches, remaining, err := Scan(words, target)
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		if err := target.Flag.Value.Set(match.Value); err != nil {
			return nil, errors.New(errors.InvalidArgument, "", match.Value,
				fmt.Errorf("invalid value for %s: %w", match.Token, err))
		}

		target.Flag.Changed = true
	}

	return remaining, nil
}

// Unknown returns the first word still looking like an option,
// ignoring words after the terminator.
func Unknown(words []string) (string, bool) {
	for _, word := range words {
		if word == Terminator {
			return "", false
		}

		if IsOption(word) {
			return word, true
		}
	}

	return "", false
}

// IsOption returns true if the word looks like an option.
func IsOption(word string) bool {
	return strings.HasPrefix(word, shortPrefix) && word != Stdin && word != Terminator
}

// matchLong handles --name, --name=value and --name value.
func (t Target) matchLong(word string, next []string) ([]Match, int, error) {
	name, value, hasValue := strings.Cut(strings.TrimPrefix(word, longPrefix), assign)
	if !t.Names.MatchesLong(name) {
		return nil, 0, nil
	}

	switch {
	case hasValue:
		return []Match{{Token: word, Value: value}}, 0, nil
	case !t.takesArg():
		return []Match{{Token: word, Value: t.Flag.NoOptDefVal}}, 0, nil
	case len(next) > 0:
		return []Match{{Token: word, Value: next[0]}}, 1, nil
	default:
		return nil, 0, errors.New(errors.InvalidArgument, "", word, errors.ErrExpectedArgument)
	}
}

// matchShort handles -n, -nvalue, -n=value, -n value, and -nnn
// for options that take no argument.
func (t Target) matchShort(word string, next []string) ([]Match, int, error) {
	rest := strings.TrimPrefix(word, shortPrefix)

	char, size := utf8.DecodeRuneInString(rest)
	short := string(char)

	if !t.Names.MatchesShort(short) {
		return nil, 0, nil
	}

	attached := rest[size:]

	if t.takesArg() {
		switch {
		case attached != "":
			return []Match{{Token: word, Value: strings.TrimPrefix(attached, assign)}}, 0, nil
		case len(next) > 0:
			return []Match{{Token: word, Value: next[0]}}, 1, nil
		default:
			return nil, 0, errors.New(errors.InvalidArgument, "", word, errors.ErrExpectedArgument)
		}
	}

	switch {
	case attached == "":
		return []Match{{Token: word, Value: t.Flag.NoOptDefVal}}, 0, nil
	case strings.HasPrefix(attached, assign):
		return []Match{{Token: word, Value: strings.TrimPrefix(attached, assign)}}, 0, nil
	case t.Names.Incrementable && strings.Trim(attached, short) == "":
		count := utf8.RuneCountInString(attached) + 1
		matches := make([]Match, count)

		for i := range matches {
			matches[i] = Match{Token: word, Value: t.Flag.NoOptDefVal}
		}

		return matches, 0, nil
	default:
		// Grouped short options are not supported: leave the word
		// to other scans, or to the unrecognized option check.
		return nil, 0, nil
	}
}
