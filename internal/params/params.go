// Package params holds the declaration-time model of command-line
// parameters: positional operands and named options.
package params

import (
	"reflect"

	"github.com/reeflective/args/internal/settings"
)

// Spec is the capability shared by operands and options.
type Spec interface {
	// ID returns the programmatic identifier of the parameter.
	ID() string
	// Type returns the type of the parsed value.
	Type() reflect.Type
	// Default returns the declared default value, if any.
	Default() (reflect.Value, bool)
	// Settings returns the resolved settings of the parameter.
	Settings() settings.Settings
	// ValidateTag returns the validator tag checked after conversion.
	ValidateTag() string
	// Err returns the error encountered while declaring the parameter.
	Err() error
}

// base holds the fields common to operands and options.
type base struct {
	id       string
	typ      reflect.Type
	def      reflect.Value
	settings settings.Settings
	validate string
	err      error
}

func newBase(typ reflect.Type, def reflect.Value, set []settings.Setting) base {
	return base{
		typ:      typ,
		def:      def,
		settings: settings.Resolve(set...),
	}
}

func (b *base) ID() string                     { return b.id }
func (b *base) Type() reflect.Type             { return b.typ }
func (b *base) Settings() settings.Settings    { return b.settings }
func (b *base) ValidateTag() string            { return b.validate }
func (b *base) Err() error                     { return b.err }
func (b *base) Default() (reflect.Value, bool) { return b.def, b.def.IsValid() }

// fail records the first declaration error of the parameter.
func (b *base) fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}
