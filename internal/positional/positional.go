// Package positional consumes positional words onto a list of
// operand slots, each one taking words according to its arity.
package positional

import (
	stderrors "errors"
	"fmt"

	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/internal/params"
	"github.com/reeflective/args/internal/validation"
	"github.com/reeflective/args/internal/values"
)

// Args contains an entire list of positional argument slots, along with
// the words remaining to be parsed onto them.
type Args struct {
	slots    []*params.Operand
	validate validation.ValidateFunc

	// The list of words remaining to be parsed into slots
	words []string

	// When true, missing words are not reported,
	// and slots lacking words keep their initial value.
	lenient bool
}

// NewArgs creates a new positional argument manager for the given slots.
// The validation function is optional.
func NewArgs(slots []*params.Operand, validate validation.ValidateFunc) *Args {
	return &Args{
		slots:    slots,
		validate: validate,
	}
}

// Lenient makes missing words not an error.
// This is used when help has been requested.
func (args *Args) Lenient(lenient bool) *Args {
	args.lenient = lenient

	return args
}

// Parse consumes words onto each slot in order, each slot starting where
// the previous one stopped. It returns the value of each slot keyed by
// identifier, and the words that have not been consumed by any slot.
func (args *Args) Parse(words []string) (vals map[string]any, retargs []string, err error) {
	args.words = words
	vals = make(map[string]any, len(args.slots))

	defer func() { retargs = args.words }()

	for _, slot := range args.slots {
		val, err := args.consume(slot)
		if err != nil {
			return nil, retargs, err
		}

		if err := args.check(slot, val); err != nil {
			return nil, retargs, err
		}

		vals[slot.ID()] = val
	}

	return vals, retargs, nil
}

// consume pops the words needed by a slot and converts them.
func (args *Args) consume(slot *params.Operand) (any, error) {
	kind := slot.Kind()

	switch kind.Arity {
	case params.List:
		if args.Empty() && slot.Settings().Required {
			return args.missing(slot)
		}

		return args.convert(slot, args.PopN(len(args.words)))

	case params.FixedList:
		if args.Empty() && slot.Settings().Required {
			return args.missing(slot)
		}

		return args.convert(slot, args.PopN(kind.Len))

	default:
		if args.Empty() {
			if _, hasDefault := slot.Default(); hasDefault && !slot.Settings().Required {
				return slot.Initial(), nil
			}

			return args.missing(slot)
		}

		return args.convert(slot, args.PopN(1))
	}
}

func (args *Args) convert(slot *params.Operand, words []string) (any, error) {
	val, err := slot.Convert(words)
	if err != nil {
		token := ""

		var wordErr *values.WordError
		if stderrors.As(err, &wordErr) {
			token = wordErr.Word
		} else if len(words) == 1 {
			token = words[0]
		}

		return nil, errors.New(errors.InvalidArgument, slot.ID(), token,
			fmt.Errorf("invalid value for %s: %w", slot.Name(), err))
	}

	return val, nil
}

// check runs the user validations on the converted value.
func (args *Args) check(slot *params.Operand, val any) error {
	if args.validate == nil || slot.ValidateTag() == "" {
		return nil
	}

	if err := args.validate(val, slot.ValidateTag(), slot.ID()); err != nil {
		return errors.New(errors.InvalidArgument, slot.ID(), "", err)
	}

	return nil
}

func (args *Args) missing(slot *params.Operand) (any, error) {
	if args.lenient {
		return slot.Initial(), nil
	}

	return nil, errors.New(errors.MissingOperand, slot.ID(), "",
		fmt.Errorf("`%s` was not provided", slot.Name()))
}

// Empty returns true if there are no words left.
func (args *Args) Empty() bool {
	return len(args.words) == 0
}

// PopN returns at most n first words of the list,
// and removes them from it.
func (args *Args) PopN(n int) []string {
	if n > len(args.words) {
		n = len(args.words)
	}

	popped := args.words[:n:n]
	args.words = args.words[n:]

	return popped
}
