// Package args is a declarative command-line argument processor.
//
// Callers describe the shape of their command line (positional operands,
// and named options with long, short and alias forms) along with some
// metadata for each parameter, and the package parses an argument vector
// into typed values, and produces usage and help texts.
//
// Parameters are declared with generic constructors:
//
//	verbose := args.OptDefault("verbose|v", false, args.Desc("Print more"))
//	files := args.Arg[[]string]("files", args.Required())
//
//	set, err := args.NewSet([]args.Spec{verbose, files})
//	res, err := set.Parse(os.Args)
//
// Parsing runs in two phases: options are scanned first, each one in
// turn, leaving other words untouched. The words left that are not
// options are then consumed by operands, in declaration order.
package args

import (
	"github.com/go-playground/validator/v10"

	"github.com/reeflective/args/internal/engine"
	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/internal/help"
	"github.com/reeflective/args/internal/params"
	"github.com/reeflective/args/internal/validation"
)

// Spec is a declared parameter, either an *Operand or an *Option.
type Spec = params.Spec

// Operand is a positional parameter.
type Operand = params.Operand

// Option is a named parameter.
type Option = params.Option

// Arity says how many words an operand consumes.
type Arity = params.Arity

const (
	// Single operands consume exactly one word.
	Single = params.Single
	// List operands consume all remaining words.
	List = params.List
	// FixedList operands consume up to a fixed number of words.
	FixedList = params.FixedList
)

// Set is a checked set of parameters, ready to parse argument vectors.
// A set can be used for any number of parses: each parse starts from
// the declared defaults and returns a fresh result.
type Set struct {
	engine *engine.Engine
}

// NewSet checks the declared parameters and returns a set ready to parse.
// Declaration errors (invalid or duplicate identifiers, unsupported types,
// malformed name specifications) are returned here, before any argument
// vector is involved. A --help|-h option is added if none is declared.
func NewSet(specs []Spec, opts ...SetOption) (*Set, error) {
	conf := defOpts().apply(opts...)

	eng, err := engine.New(specs, conf.validate)
	if err != nil {
		return nil, err
	}

	if conf.validate == nil && hasValidations(eng.Specs()) {
		eng.SetValidator(validation.NewDefault())
	}

	return &Set{engine: eng}, nil
}

// MustSet is like NewSet but panics on declaration errors.
func MustSet(specs []Spec, opts ...SetOption) *Set {
	set, err := NewSet(specs, opts...)
	if err != nil {
		panic(err)
	}

	return set
}

// Parse declares the parameters and parses the argument vector in one call.
// The first word of args is the program name.
func Parse(args []string, specs ...Spec) (*Result, error) {
	set, err := NewSet(specs)
	if err != nil {
		return nil, err
	}

	return set.Parse(args)
}

// Parse parses an argument vector, whose first word is the program name.
// Either a complete result or an error is returned, never both.
func (s *Set) Parse(args []string) (*Result, error) {
	res, err := s.engine.Parse(args)
	if err != nil {
		return nil, err
	}

	return &Result{
		HelpWanted: res.HelpWanted,
		Operands:   res.Operands,
		Options:    res.Options,
		Remaining:  res.Remaining,
	}, nil
}

// Usage returns the usage line of the set for the given program name.
func (s *Set) Usage(program string) string {
	return help.Usage(program, s.engine.Operands())
}

// Help returns the help text listing all options of the set.
func (s *Set) Help() string {
	return help.Help(s.engine.Options(), s.engine.Operands())
}

// Options returns all options of the set, the help option first.
func (s *Set) Options() []*Option {
	return s.engine.Options()
}

// Operands returns all operands of the set, in declaration order.
func (s *Set) Operands() []*Operand {
	return s.engine.Operands()
}

func hasValidations(specs []Spec) bool {
	for _, spec := range specs {
		if spec.ValidateTag() != "" {
			return true
		}
	}

	return false
}

// === Configuration (Functional Options) ===

// SetOption is a functional option for configuring a parameter set.
type SetOption func(o *setOpts)

type setOpts struct {
	validate validation.ValidateFunc
}

func defOpts() setOpts {
	return setOpts{}
}

func (o setOpts) apply(opts ...SetOption) setOpts {
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithValidation enables validation of parameters declared with a
// validate tag, using a default go-playground/validator instance.
// This is the default when at least one parameter has a tag.
func WithValidation() SetOption {
	return func(o *setOpts) { o.validate = validation.NewDefault() }
}

// WithValidator registers a go-playground/validator instance to use for
// validating parameters declared with a validate tag. This allows callers
// to register their own validations on the instance.
func WithValidator(v *validator.Validate) SetOption {
	return func(o *setOpts) { o.validate = validation.NewWith(v) }
}

// === Public Errors ===

// Error is the type of errors returned by NewSet and Parse.
// It unwraps to the sentinel error of its type.
type Error = errors.Error

// ErrorType classifies errors.
type ErrorType = errors.Type

const (
	ErrorUnknown             = errors.Unknown
	ErrorInvalidIdentifier   = errors.InvalidIdentifier
	ErrorDuplicateIdentifier = errors.DuplicateIdentifier
	ErrorInvalidDeclaration  = errors.InvalidDeclaration
	ErrorUnrecognizedOption  = errors.UnrecognizedOption
	ErrorMissingOperand      = errors.MissingOperand
	ErrorMissingOption       = errors.MissingOption
	ErrorInvalidArgument     = errors.InvalidArgument
)

var (
	// ErrInvalidIdentifier indicates that a parameter name cannot
	// form a valid identifier once derived.
	ErrInvalidIdentifier = errors.ErrInvalidIdentifier

	// ErrDuplicateIdentifier indicates that two parameters
	// resolve to the same identifier.
	ErrDuplicateIdentifier = errors.ErrDuplicateIdentifier

	// ErrInvalidDeclaration indicates a malformed declaration.
	ErrInvalidDeclaration = errors.ErrInvalidDeclaration

	// ErrUnrecognizedOption indicates a word looking like
	// an option, but matching no declared option.
	ErrUnrecognizedOption = errors.ErrUnrecognizedOption

	// ErrMissingOperand indicates missing positional words.
	ErrMissingOperand = errors.ErrMissingOperand

	// ErrMissingOption indicates that a required option was not given.
	ErrMissingOption = errors.ErrMissingOption

	// ErrInvalidArgument indicates a word that could not be
	// converted or validated, or that a processor rejected.
	ErrInvalidArgument = errors.ErrInvalidArgument
)
