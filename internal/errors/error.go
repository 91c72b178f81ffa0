package errors

import (
	"errors"
	"strings"
)

// Type classifies declaration and parsing errors.
type Type uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// Unknown indicates a generic error.
	Unknown Type = iota

	// InvalidIdentifier indicates a name that cannot form an identifier.
	InvalidIdentifier

	// DuplicateIdentifier indicates two parameters sharing an identifier.
	DuplicateIdentifier

	// InvalidDeclaration indicates a malformed parameter declaration.
	InvalidDeclaration

	// UnrecognizedOption indicates an unknown option on the command line.
	UnrecognizedOption

	// MissingOperand indicates missing positional words.
	MissingOperand

	// MissingOption indicates that a required option was not given.
	MissingOption

	// InvalidArgument indicates a word that failed conversion or validation.
	InvalidArgument
)

var sentinels = [...]error{
	nil,                    // Unknown
	ErrInvalidIdentifier,   // InvalidIdentifier
	ErrDuplicateIdentifier, // DuplicateIdentifier
	ErrInvalidDeclaration,  // InvalidDeclaration
	ErrUnrecognizedOption,  // UnrecognizedOption
	ErrMissingOperand,      // MissingOperand
	ErrMissingOption,       // MissingOption
	ErrInvalidArgument,     // InvalidArgument
}

func (t Type) String() string {
	if t == Unknown || int(t) >= len(sentinels) {
		return "unknown"
	}

	return sentinels[t].Error()
}

// Error is the error returned by declaration checks and by parsing.
// It unwraps to both the sentinel error of its type and its cause.
type Error struct {
	Type  Type   // The type of error
	ID    string // Identifier of the parameter concerned, if any
	Token string // Offending command-line word, if any
	Hint  string // Suggestion for the user, if any
	Err   error  // Underlying cause
}

// New returns a new error of the given type.
func New(typ Type, id, token string, cause error) *Error {
	return &Error{Type: typ, ID: id, Token: token, Err: cause}
}

// Error returns the error's message.
func (e *Error) Error() string {
	var msg strings.Builder

	msg.WriteString(e.Type.String())

	if e.ID != "" {
		msg.WriteString(" for `" + e.ID + "`")
	}

	if e.Token != "" {
		msg.WriteString(": " + e.Token)
	}

	if sentinel := e.sentinel(); e.Err != nil && e.Err != sentinel {
		cause := e.Err.Error()
		if sentinel != nil {
			cause = strings.TrimPrefix(cause, sentinel.Error()+": ")
		}

		msg.WriteString(": " + cause)
	}

	if e.Hint != "" {
		msg.WriteString(" (" + e.Hint + ")")
	}

	return msg.String()
}

// Unwrap returns the sentinel error of the error type, and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)

	if sentinel := e.sentinel(); sentinel != nil {
		errs = append(errs, sentinel)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

func (e *Error) sentinel() error {
	if int(e.Type) >= len(sentinels) {
		return nil
	}

	return sentinels[e.Type]
}

// Wrap converts err into an *Error of the given type, unless it already is one.
func Wrap(typ Type, id string, err error) *Error {
	var parsed *Error
	if errors.As(err, &parsed) {
		return parsed
	}

	return New(typ, id, "", err)
}
