package engine

import (
	stderrors "errors"
	"fmt"

	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/internal/params"
)

// checkIdentifiers ensures no two parameters share an identifier.
func checkIdentifiers(specs []params.Spec) error {
	seen := make(map[string]bool, len(specs))

	for _, spec := range specs {
		if seen[spec.ID()] {
			return errors.New(errors.DuplicateIdentifier, spec.ID(), "",
				fmt.Errorf("identifier `%s` is declared more than once", spec.ID()))
		}

		seen[spec.ID()] = true
	}

	return nil
}

// checkNames ensures no two options share a long, short or alias name.
func checkNames(options []*params.Option) error {
	owners := make(map[string]string)

	for _, opt := range options {
		for _, name := range opt.Names().Names() {
			if owner, taken := owners[name]; taken && owner != opt.ID() {
				return errors.New(errors.InvalidDeclaration, opt.ID(), "",
					fmt.Errorf("option name %q is already used by `%s`", name, owner))
			}

			owners[name] = opt.ID()
		}
	}

	return nil
}

// declarationError classifies an error raised while declaring a parameter.
func declarationError(id string, err error) *errors.Error {
	typ := errors.InvalidDeclaration
	if stderrors.Is(err, errors.ErrInvalidIdentifier) {
		typ = errors.InvalidIdentifier
	}

	return errors.Wrap(typ, id, err)
}

// withID sets the parameter identifier on a parsing error.
func withID(err error, id string) error {
	var parsed *errors.Error
	if stderrors.As(err, &parsed) && parsed.ID == "" {
		parsed.ID = id
	}

	return err
}
