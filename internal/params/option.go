package params

import (
	"fmt"
	"reflect"

	"github.com/spf13/pflag"

	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/internal/ident"
	"github.com/reeflective/args/internal/names"
	"github.com/reeflective/args/internal/settings"
	"github.com/reeflective/args/internal/values"
)

const (
	// HelpName is the long name of the help option.
	HelpName = "help"
	// HelpShort is the short name of the help option.
	HelpShort = "h"

	noOptBool  = "true"
	noOptCount = "+1"
	countType  = "count"
)

// Option is a named parameter, given with --long or -s forms.
type Option struct {
	base
	names names.Spec
	proc  values.Processor
}

// NewOption declares an option whose values are converted to typ.
func NewOption(spec string, typ reflect.Type, def reflect.Value, set ...settings.Setting) *Option {
	opt := newOption(spec, typ, def, set)
	if opt.err != nil {
		return opt
	}

	// Build a first value to catch unsupported types now.
	_, err := opt.NewValue()
	opt.fail(err)

	return opt
}

// NewOptionFunc declares an option whose values are converted by proc.
func NewOptionFunc(spec string, typ reflect.Type, def reflect.Value, proc values.Processor, set ...settings.Setting) *Option {
	opt := newOption(spec, typ, def, set)
	opt.proc = proc

	switch {
	case proc == nil:
		opt.fail(fmt.Errorf("%w: option %q has a nil processor", errors.ErrInvalidDeclaration, spec))
	case opt.names.Incrementable:
		opt.fail(fmt.Errorf("%w: incrementable option %q cannot have a processor",
			errors.ErrInvalidDeclaration, spec))
	}

	return opt
}

func newOption(spec string, typ reflect.Type, def reflect.Value, set []settings.Setting) *Option {
	opt := &Option{base: newBase(typ, def, set)}

	parsed, err := names.Parse(spec)
	if err != nil {
		opt.fail(err)

		return opt
	}

	opt.names = parsed

	id, err := ident.Derive(parsed.Long)
	opt.id = id
	opt.fail(err)

	return opt
}

// NewHelp returns the implicit help option.
func NewHelp() *Option {
	return NewOption(HelpName+"|"+HelpShort, reflect.TypeOf(false), reflect.Value{},
		settings.NewDesc("Show this help message"))
}

// Names returns the parsed name specification of the option.
func (o *Option) Names() names.Spec { return o.names }

// IsHelp returns true if the option is the help option.
func (o *Option) IsHelp() bool { return o.names.Long == HelpName }

// HasProcessor returns true if a user processor converts the values.
func (o *Option) HasProcessor() bool { return o.proc != nil }

// SetID overrides the derived identifier of the option.
func (o *Option) SetID(id string) *Option {
	if err := ident.Validate(id); err != nil {
		o.fail(err)

		return o
	}

	o.id = id

	return o
}

// SetValidate sets the validator tag checked on the converted value.
func (o *Option) SetValidate(tag string) *Option {
	o.validate = tag

	return o
}

// NewValue returns a fresh value holder, initialized with the default.
func (o *Option) NewValue() (values.Value, error) {
	if o.proc != nil {
		return values.NewProcessor(o.typ, o.def, o.proc), nil
	}

	return values.NewOption(o.typ, o.def, o.names.Incrementable)
}

// Flag returns a pflag flag describing the option and holding val.
// Aliases are not part of it.
func (o *Option) Flag(val values.Value) *pflag.Flag {
	flag := &pflag.Flag{
		Name:     o.names.Long,
		Usage:    o.settings.Desc,
		Value:    val,
		DefValue: val.String(),
	}

	// pflag only supports single-byte shorthands.
	if len(o.names.Short) == 1 {
		flag.Shorthand = o.names.Short
	}

	if values.IsBool(val) {
		flag.NoOptDefVal = noOptBool
		if val.Type() == countType {
			flag.NoOptDefVal = noOptCount
		}
	}

	return flag
}
