package values

import (
	"reflect"

	"github.com/spf13/pflag"
)

// nativeValue wraps a type whose pointer implements pflag.Value itself.
type nativeValue struct {
	value reflect.Value
	flag  pflag.Value
}

func newNativeValue(val reflect.Value) Value {
	return &nativeValue{
		value: val,
		flag:  val.Addr().Interface().(pflag.Value),
	}
}

func (v *nativeValue) Set(s string) error { return v.flag.Set(s) }
func (v *nativeValue) Get() any           { return v.value.Interface() }
func (v *nativeValue) String() string     { return v.flag.String() }
func (v *nativeValue) Type() string       { return v.flag.Type() }

func (v *nativeValue) IsBoolFlag() bool {
	return IsBool(v.flag)
}
