package args

import (
	"reflect"

	"github.com/reeflective/args/internal/params"
	"github.com/reeflective/args/internal/values"
)

// Opt declares an option of type T, from a name specification like
// "verbose|v|loud". A trailing "+" makes the option incrementable:
// each occurrence adds one to its (integer) value.
// Without a declared default, the option holds the zero value of T.
func Opt[T any](spec string, settings ...Setting) *Option {
	return params.NewOption(spec, typeOf[T](), reflect.Value{}, settings...)
}

// OptDefault declares an option of type T, holding def unless given.
func OptDefault[T any](spec string, def T, settings ...Setting) *Option {
	return params.NewOption(spec, typeOf[T](), valueOf(def), settings...)
}

// OptFunc declares an option whose words are converted by proc.
// The value type of the option is the return type of proc.
func OptFunc[T any](spec string, proc func(word string) (T, error), settings ...Setting) *Option {
	return params.NewOptionFunc(spec, typeOf[T](), reflect.Value{}, processor(proc), settings...)
}

// Arg declares an operand of type T. Slice types make list operands,
// consuming all remaining words, and array types make fixed list
// operands consuming up to the array length. Other types consume a
// single word. The identifier of the operand is derived from its name.
func Arg[T any](name string, settings ...Setting) *Operand {
	return params.NewOperand(name, typeOf[T](), reflect.Value{}, settings...)
}

// ArgDefault declares an operand of type T, holding def unless given.
// A single operand with a default is optional, unless it is required.
func ArgDefault[T any](name string, def T, settings ...Setting) *Operand {
	return params.NewOperand(name, typeOf[T](), valueOf(def), settings...)
}

// ArgFunc declares a single operand whose word is converted by proc.
func ArgFunc[T any](name string, proc func(word string) (T, error), settings ...Setting) *Operand {
	return params.NewOperandFunc(name, typeOf[T](), processor(proc), settings...)
}

// ArgListFunc declares a list operand: proc is called once with
// all remaining positional words, possibly none.
func ArgListFunc[T any](name string, proc func(words []string) (T, error), settings ...Setting) *Operand {
	kind := params.Kind{Arity: params.List}

	return params.NewOperandSeqFunc(name, typeOf[T](), kind, seqProcessor(proc), settings...)
}

// ArgFixedFunc declares a fixed list operand of n words: proc is called
// with a buffer of n words, those not given on the command line being empty.
func ArgFixedFunc[T any](name string, n int, proc func(words []string) (T, error), settings ...Setting) *Operand {
	kind := params.Kind{Arity: params.FixedList, Len: n}

	return params.NewOperandSeqFunc(name, typeOf[T](), kind, seqProcessor(proc), settings...)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func valueOf[T any](val T) reflect.Value {
	return reflect.ValueOf(&val).Elem()
}

func processor[T any](proc func(string) (T, error)) values.Processor {
	if proc == nil {
		return nil
	}

	return func(word string) (any, error) {
		return proc(word)
	}
}

func seqProcessor[T any](proc func([]string) (T, error)) params.SeqProcessor {
	if proc == nil {
		return nil
	}

	return func(words []string) (any, error) {
		return proc(words)
	}
}
