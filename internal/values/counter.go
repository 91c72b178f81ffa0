package values

import (
	"fmt"
	"reflect"

	"github.com/reeflective/args/internal/errors"
	"github.com/reeflective/args/types"
)

// counterValue holds an incrementable option: each occurrence
// without an explicit value adds one to the count.
type counterValue struct {
	count types.Counter
	typ   reflect.Type
}

func newCounterValue(val reflect.Value) (Value, error) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &counterValue{count: types.Counter(val.Int()), typ: val.Type()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &counterValue{count: types.Counter(val.Uint()), typ: val.Type()}, nil
	default:
		return nil, fmt.Errorf("%w: incrementable option must be an integer, not %v",
			errors.ErrInvalidDeclaration, val.Type())
	}
}

func (v *counterValue) Set(s string) error { return v.count.Set(s) }
func (v *counterValue) String() string     { return v.count.String() }
func (v *counterValue) Type() string       { return v.count.Type() }
func (v *counterValue) IsBoolFlag() bool   { return v.count.IsBoolFlag() }

func (v *counterValue) Get() any {
	return reflect.ValueOf(v.count.Get()).Convert(v.typ).Interface()
}
