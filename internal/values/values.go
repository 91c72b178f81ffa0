// Package values converts command-line words into typed Go values.
// Every option value holder implements pflag.Value, so that it can
// be scanned and rendered like any other pflag flag value.
package values

import (
	"reflect"

	"github.com/spf13/pflag"
)

// Value is a pflag.Value giving access to the typed value it holds.
type Value interface {
	pflag.Value
	Get() any
}

// BoolFlag is implemented by values that do not require an argument.
type BoolFlag interface {
	IsBoolFlag() bool
}

// Unmarshaler is implemented by types that know how to parse
// themselves from a single command-line word.
type Unmarshaler interface {
	UnmarshalFlag(value string) error
}

// Marshaler is the symmetric of Unmarshaler, used to display values.
type Marshaler interface {
	MarshalFlag() (string, error)
}

// IsBool returns true if the value does not require an argument.
func IsBool(val pflag.Value) bool {
	boolFlag, ok := val.(BoolFlag)

	return ok && boolFlag.IsBoolFlag()
}

var pflagValueType = reflect.TypeOf((*pflag.Value)(nil)).Elem()

// NewOption returns a fresh value holder for an option of type typ,
// initialized with def (which may be invalid, meaning the zero value).
// Incrementable values must be of an integer kind.
func NewOption(typ reflect.Type, def reflect.Value, incrementable bool) (Value, error) {
	storage := reflect.New(typ).Elem()
	if def.IsValid() {
		storage.Set(copyValue(def))
	}

	// 1. Counters, increasing with each occurrence.
	if incrementable {
		return newCounterValue(storage)
	}

	// 2. Direct pflag.Value implementations, like types.Counter.
	if reflect.PointerTo(typ).Implements(pflagValueType) {
		return newNativeValue(storage), nil
	}

	// 3. Any other supported type.
	if err := Supported(typ); err != nil {
		return nil, err
	}

	return newReflectiveValue(storage), nil
}

// copyValue returns a shallow copy of slices, so that parsing
// never appends to the backing array of a declared default.
func copyValue(val reflect.Value) reflect.Value {
	if val.Kind() != reflect.Slice || val.IsNil() {
		return val
	}

	dup := reflect.MakeSlice(val.Type(), val.Len(), val.Len())
	reflect.Copy(dup, val)

	return dup
}
