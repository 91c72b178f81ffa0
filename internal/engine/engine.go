// Package engine parses an argument vector against a set of declared
// operands and options, in two phases: options are scanned first, one
// at a time, then the remaining positional words are given to operands.
package engine

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/internal/params"
	"github.com/reeflective/args/internal/positional"
	"github.com/reeflective/args/internal/scan"
	"github.com/reeflective/args/internal/validation"
)

// Result holds the values parsed from one argument vector.
// Options holds all options but the help one.
type Result struct {
	HelpWanted bool
	Operands   map[string]any
	Options    map[string]any
	Remaining  []string
}

// Engine holds a checked set of parameters, ready to parse words.
type Engine struct {
	help     *params.Option
	options  []*params.Option
	operands []*params.Operand
	validate validation.ValidateFunc
}

// New checks the declared parameters and returns an engine for them.
// When no help option has been declared, one is injected.
// The validation function is optional.
func New(specs []params.Spec, validate validation.ValidateFunc) (*Engine, error) {
	engine := &Engine{validate: validate}

	for _, spec := range specs {
		if err := engine.add(spec); err != nil {
			return nil, err
		}
	}

	if engine.help == nil {
		engine.help = params.NewHelp()
	}

	if err := checkIdentifiers(engine.Specs()); err != nil {
		return nil, err
	}

	if err := checkNames(engine.Options()); err != nil {
		return nil, err
	}

	return engine, nil
}

func (e *Engine) add(spec params.Spec) error {
	if spec == nil || isNilPointer(spec) {
		return errors.New(errors.InvalidDeclaration, "", "", errors.ErrNilObject)
	}

	if err := spec.Err(); err != nil {
		return declarationError(spec.ID(), err)
	}

	switch param := spec.(type) {
	case *params.Operand:
		e.operands = append(e.operands, param)

	case *params.Option:
		if !param.IsHelp() {
			e.options = append(e.options, param)

			return nil
		}

		if param.Type().Kind() != reflect.Bool {
			return errors.New(errors.InvalidDeclaration, param.ID(), "",
				fmt.Errorf("help option must be a boolean, not %v", param.Type()))
		}

		if e.help != nil {
			return errors.New(errors.DuplicateIdentifier, param.ID(), "", nil)
		}

		e.help = param

	default:
		return errors.New(errors.InvalidDeclaration, spec.ID(), "",
			fmt.Errorf("unsupported parameter type %T", spec))
	}

	return nil
}

func isNilPointer(spec params.Spec) bool {
	val := reflect.ValueOf(spec)

	return val.Kind() == reflect.Ptr && val.IsNil()
}

// SetValidator sets the function validating parameters with a validate tag.
func (e *Engine) SetValidator(validate validation.ValidateFunc) {
	e.validate = validate
}

// Options returns all options, the help option first.
func (e *Engine) Options() []*params.Option {
	return append([]*params.Option{e.help}, e.options...)
}

// Operands returns all operands in declaration order.
func (e *Engine) Operands() []*params.Operand {
	return e.operands
}

// Specs returns all parameters: options first, then operands.
func (e *Engine) Specs() []params.Spec {
	specs := make([]params.Spec, 0, len(e.options)+len(e.operands)+1)
	for _, opt := range e.Options() {
		specs = append(specs, opt)
	}

	for _, op := range e.operands {
		specs = append(specs, op)
	}

	return specs
}

// Parse parses the argument vector, whose first word is the program name.
// Either a complete result or an error is returned.
func (e *Engine) Parse(args []string) (*Result, error) {
	var words []string
	if len(args) > 0 {
		words = slices.Clone(args[1:])
	}

	res := &Result{
		Options:  make(map[string]any, len(e.options)+1),
		Operands: make(map[string]any, len(e.operands)),
	}

	// Phase 1: options
	words, err := e.parseOptions(words, res)
	if err != nil {
		return nil, err
	}

	// Phase 2: operands
	operands := positional.NewArgs(e.operands, e.validate).Lenient(res.HelpWanted)

	res.Operands, res.Remaining, err = operands.Parse(operandWords(words))
	if err != nil {
		return nil, err
	}

	return res, nil
}

// parseOptions scans the help option first, then all other options in
// declaration order, and finally checks that no option word is left.
func (e *Engine) parseOptions(words []string, res *Result) ([]string, error) {
	changed := make(map[string]bool, len(e.options))

	for _, opt := range e.Options() {
		val, err := opt.NewValue()
		if err != nil {
			return nil, declarationError(opt.ID(), err)
		}

		flag := opt.Flag(val)

		words, err = scan.Apply(words, scan.Target{Names: opt.Names(), Flag: flag})
		if err != nil {
			return nil, withID(err, opt.ID())
		}

		if flag.Changed {
			if err := e.check(opt, val.Get()); err != nil {
				return nil, err
			}
		}

		// The help option is reported through HelpWanted only.
		if opt == e.help {
			res.HelpWanted = reflect.ValueOf(val.Get()).Bool()

			continue
		}

		res.Options[opt.ID()] = val.Get()
		changed[opt.ID()] = flag.Changed
	}

	if word, found := scan.Unknown(words); found {
		unknown := errors.New(errors.UnrecognizedOption, "", word, nil)
		unknown.Hint = e.suggest(word)

		return nil, unknown
	}

	if res.HelpWanted {
		return words, nil
	}

	for _, opt := range e.options {
		if opt.Settings().Required && !changed[opt.ID()] {
			return nil, errors.New(errors.MissingOption, opt.ID(), "",
				fmt.Errorf("`--%s` was not provided", opt.Names().Long))
		}
	}

	return words, nil
}

// check runs the user validations on the converted value.
func (e *Engine) check(opt *params.Option, val any) error {
	if e.validate == nil || opt.ValidateTag() == "" {
		return nil
	}

	if err := e.validate(val, opt.ValidateTag(), opt.ID()); err != nil {
		return errors.New(errors.InvalidArgument, opt.ID(), "", err)
	}

	return nil
}

// suggest returns a hint naming the closest declared option, if any.
func (e *Engine) suggest(word string) string {
	var choices []string

	for _, opt := range e.Options() {
		for _, name := range opt.Names().Names() {
			if len(name) == 1 {
				choices = append(choices, "-"+name)
			} else {
				choices = append(choices, "--"+name)
			}
		}
	}

	closest, dist := closestChoice(word, choices)
	if closest == "" || dist > maxSuggestDistance {
		return ""
	}

	return "did you mean " + closest + "?"
}

// operandWords returns the positional words: all words that do
// not look like options, and all words after the terminator.
func operandWords(words []string) []string {
	residual := make([]string, 0, len(words))

	for i, word := range words {
		if word == scan.Terminator {
			return append(residual, words[i+1:]...)
		}

		if scan.IsOption(word) {
			continue
		}

		residual = append(residual, word)
	}

	return residual
}
