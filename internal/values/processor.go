package values

import (
	"reflect"
)

// Processor converts a single command-line word into a value.
type Processor func(word string) (any, error)

// processorValue holds an option whose words are all passed
// through a user-supplied processor, the last result winning.
type processorValue struct {
	proc  Processor
	value reflect.Value
}

// NewProcessor returns an option value holder delegating
// conversions to proc, initialized with def if valid.
func NewProcessor(typ reflect.Type, def reflect.Value, proc Processor) Value {
	storage := reflect.New(typ).Elem()
	if def.IsValid() {
		storage.Set(def)
	}

	return &processorValue{proc: proc, value: storage}
}

func (v *processorValue) Set(s string) error {
	result, err := v.proc(s)
	if err != nil {
		return err
	}

	if result == nil {
		v.value.Set(reflect.Zero(v.value.Type()))
	} else {
		v.value.Set(reflect.ValueOf(result))
	}

	return nil
}

func (v *processorValue) Get() any       { return v.value.Interface() }
func (v *processorValue) String() string { return Format(v.value) }
func (v *processorValue) Type() string   { return v.value.Type().String() }
