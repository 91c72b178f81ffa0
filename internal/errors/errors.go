package errors

import "errors"

var (
	// ErrInvalidIdentifier indicates that a parameter name cannot
	// form a valid identifier once derived.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrDuplicateIdentifier indicates that two parameters of the
	// same set resolve to the same identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrInvalidDeclaration indicates a malformed parameter declaration,
	// such as an empty name specification or an unsupported value type.
	ErrInvalidDeclaration = errors.New("invalid declaration")

	// ErrUnrecognizedOption indicates a command-line token that looks
	// like an option but did not match any declared option.
	ErrUnrecognizedOption = errors.New("unrecognized option")

	// ErrMissingOperand indicates that not enough positional words were
	// given for a Single operand, or for a required List operand.
	ErrMissingOperand = errors.New("missing operand")

	// ErrMissingOption indicates that a required option was not given.
	ErrMissingOption = errors.New("missing option")

	// ErrInvalidArgument indicates that a token could not be converted
	// to the value type of its parameter, or that a processor rejected it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExpectedArgument indicates that an option requiring a value
	// was given as the last word of the command line.
	ErrExpectedArgument = errors.New("expected argument")

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.New("object cannot be nil")
)
