package params

import (
	"fmt"
	"reflect"

	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/internal/ident"
	"github.com/reeflective/args/internal/settings"
	"github.com/reeflective/args/internal/values"
)

// SeqProcessor converts a list of positional words into a value.
type SeqProcessor func(words []string) (any, error)

// Operand is a positional parameter, consuming words by position.
type Operand struct {
	base
	name   string
	kind   Kind
	single values.Processor
	multi  SeqProcessor
}

// NewOperand declares an operand whose words are converted to typ.
// The arity of the operand is computed from typ.
func NewOperand(name string, typ reflect.Type, def reflect.Value, set ...settings.Setting) *Operand {
	op := newOperand(name, typ, def, KindOf(typ), set)
	op.fail(values.Supported(typ))

	return op
}

// NewOperandFunc declares a single-word operand converted by proc.
func NewOperandFunc(name string, typ reflect.Type, proc values.Processor, set ...settings.Setting) *Operand {
	op := newOperand(name, typ, reflect.Value{}, Kind{Arity: Single}, set)
	op.single = proc

	if proc == nil {
		op.fail(fmt.Errorf("%w: operand %q has a nil processor", errors.ErrInvalidDeclaration, name))
	}

	return op
}

// NewOperandSeqFunc declares a List or FixedList operand converted by proc.
func NewOperandSeqFunc(name string, typ reflect.Type, kind Kind, proc SeqProcessor, set ...settings.Setting) *Operand {
	op := newOperand(name, typ, reflect.Value{}, kind, set)
	op.multi = proc

	switch {
	case proc == nil:
		op.fail(fmt.Errorf("%w: operand %q has a nil processor", errors.ErrInvalidDeclaration, name))
	case kind.Arity == Single:
		op.fail(fmt.Errorf("%w: operand %q: list processor on a single operand", errors.ErrInvalidDeclaration, name))
	case kind.Arity == FixedList && kind.Len <= 0:
		op.fail(fmt.Errorf("%w: operand %q: fixed list length must be positive", errors.ErrInvalidDeclaration, name))
	}

	return op
}

func newOperand(name string, typ reflect.Type, def reflect.Value, kind Kind, set []settings.Setting) *Operand {
	op := &Operand{
		base: newBase(typ, def, set),
		name: name,
		kind: kind,
	}

	if name == "" {
		op.fail(fmt.Errorf("%w: operand has an empty name", errors.ErrInvalidDeclaration))

		return op
	}

	id, err := ident.Derive(name)
	op.id = id
	op.fail(err)

	return op
}

// Name returns the name of the operand as displayed in usage.
func (o *Operand) Name() string { return o.name }

// Kind returns the arity of the operand.
func (o *Operand) Kind() Kind { return o.kind }

// HasProcessor returns true if a user processor converts the words.
func (o *Operand) HasProcessor() bool { return o.single != nil || o.multi != nil }

// SetID overrides the derived identifier of the operand.
func (o *Operand) SetID(id string) *Operand {
	if err := ident.Validate(id); err != nil {
		o.fail(err)

		return o
	}

	o.id = id

	return o
}

// SetValidate sets the validator tag checked on the converted value.
func (o *Operand) SetValidate(tag string) *Operand {
	o.validate = tag

	return o
}

// Initial returns the value held by the operand before
// any word is consumed: its default or the zero value.
func (o *Operand) Initial() any {
	if def, ok := o.Default(); ok {
		return def.Interface()
	}

	return reflect.Zero(o.typ).Interface()
}

// Convert converts the words consumed by the operand into its value.
// Single operands are given exactly one word, fixed lists at most
// their length, and lists any number of words.
func (o *Operand) Convert(words []string) (any, error) {
	switch o.kind.Arity {
	case List:
		if o.multi != nil {
			return o.multi(words)
		}

		seq, err := values.ConvertAll(o.typ, words)
		if err != nil {
			return nil, err
		}

		return seq.Interface(), nil

	case FixedList:
		if o.multi != nil {
			buf := make([]string, o.kind.Len)
			copy(buf, words)

			return o.multi(buf)
		}

		seq, err := values.ConvertAll(o.typ, words)
		if err != nil {
			return nil, err
		}

		return seq.Interface(), nil

	default:
		if len(words) != 1 {
			return nil, fmt.Errorf("%w: operand %s takes one word, got %d",
				errors.ErrInvalidArgument, o.name, len(words))
		}

		if o.single != nil {
			return o.single(words[0])
		}

		val, err := values.Convert(o.typ, words[0])
		if err != nil {
			return nil, err
		}

		return val.Interface(), nil
	}
}
