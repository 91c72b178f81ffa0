package values

import (
	"reflect"
)

// reflectiveValue holds an option value of any supported type,
// parsing words according to the kind of the value.
type reflectiveValue struct {
	value reflect.Value

	// Slices are replaced on their first occurrence, and
	// appended to on subsequent ones.
	changed bool
}

func newReflectiveValue(val reflect.Value) Value {
	return &reflectiveValue{value: val}
}

func (v *reflectiveValue) Set(s string) error {
	parsed, err := Convert(v.value.Type(), s)
	if err != nil {
		return err
	}

	if v.value.Kind() == reflect.Slice && v.changed && !ParsesItself(v.value.Type()) {
		parsed = reflect.AppendSlice(v.value, parsed)
	}

	v.value.Set(parsed)
	v.changed = true

	return nil
}

func (v *reflectiveValue) Get() any {
	return v.value.Interface()
}

func (v *reflectiveValue) String() string {
	return Format(v.value)
}

func (v *reflectiveValue) Type() string {
	return v.value.Type().String()
}

// IsBoolFlag returns true for boolean values, which need no argument.
func (v *reflectiveValue) IsBoolFlag() bool {
	typ := v.value.Type()
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Bool
}
