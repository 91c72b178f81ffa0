package values

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/reeflective/args/internal/errors"
)

var (
	durationType    = reflect.TypeOf(time.Duration(0))
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textType        = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Supported returns an error if words cannot be converted to typ.
// Slices and arrays are supported when their element type is.
func Supported(typ reflect.Type) error {
	if ParsesItself(typ) {
		return nil
	}

	switch typ.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return Supported(typ.Elem())
	default:
		return fmt.Errorf("%w: unsupported value type %v", errors.ErrInvalidDeclaration, typ)
	}
}

// Convert parses a single word into a new value of type typ.
// For slice types, the word is parsed as a one-element slice.
func Convert(typ reflect.Type, word string) (reflect.Value, error) {
	val := reflect.New(typ).Elem()

	if typ.Kind() == reflect.Slice && !ParsesItself(typ) {
		elem, err := Convert(typ.Elem(), word)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.Append(val, elem), nil
	}

	if err := set(val, word); err != nil {
		return reflect.Value{}, err
	}

	return val, nil
}

// WordError reports the word of a sequence that failed conversion.
type WordError struct {
	Word string
	Err  error
}

func (e *WordError) Error() string { return fmt.Sprintf("%q: %v", e.Word, e.Err) }
func (e *WordError) Unwrap() error { return e.Err }

// ConvertAll converts each word into an element of a fresh value of the
// sequence type typ. Slices are sized to the number of words, while arrays
// only receive their first words, leaving other elements to their zero value.
func ConvertAll(typ reflect.Type, words []string) (reflect.Value, error) {
	var seq reflect.Value

	switch typ.Kind() {
	case reflect.Slice:
		seq = reflect.MakeSlice(typ, len(words), len(words))
	case reflect.Array:
		seq = reflect.New(typ).Elem()
		if len(words) > typ.Len() {
			words = words[:typ.Len()]
		}
	default:
		return reflect.Value{}, fmt.Errorf("%w: %v is not a sequence type", errors.ErrInvalidDeclaration, typ)
	}

	for i, word := range words {
		if err := set(seq.Index(i), word); err != nil {
			return reflect.Value{}, &WordError{Word: word, Err: err}
		}
	}

	return seq, nil
}

// ParsesItself returns true if typ implements Unmarshaler
// or encoding.TextUnmarshaler through its pointer.
func ParsesItself(typ reflect.Type) bool {
	ptr := reflect.PointerTo(typ)

	return ptr.Implements(unmarshalerType) || ptr.Implements(textType)
}

// set parses word onto an addressable value.
func set(val reflect.Value, word string) error {
	if val.CanAddr() {
		switch ptr := val.Addr().Interface().(type) {
		case Unmarshaler:
			return ptr.UnmarshalFlag(word)
		case encoding.TextUnmarshaler:
			return ptr.UnmarshalText([]byte(word))
		}
	}

	switch val.Kind() {
	case reflect.String:
		val.SetString(word)
	case reflect.Bool:
		b, err := strconv.ParseBool(word)
		if err != nil {
			return err
		}
		val.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Handle time.Duration as a special case of int64
		if val.Type() == durationType {
			d, err := time.ParseDuration(word)
			if err != nil {
				return err
			}
			val.SetInt(int64(d))

			return nil
		}
		n, err := strconv.ParseInt(word, 10, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(word, 10, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(word, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetFloat(n)
	case reflect.Ptr:
		elem := reflect.New(val.Type().Elem())
		if err := set(elem.Elem(), word); err != nil {
			return err
		}
		val.Set(elem)

	default:
		return fmt.Errorf("unsupported type for conversion: %v", val.Type())
	}

	return nil
}

// Format returns the string representation of a value, as used in help.
func Format(val reflect.Value) string {
	if !val.IsValid() {
		return ""
	}

	if val.CanInterface() {
		switch v := val.Interface().(type) {
		case Marshaler:
			if str, err := v.MarshalFlag(); err == nil {
				return str
			}
		case encoding.TextMarshaler:
			if text, err := v.MarshalText(); err == nil {
				return string(text)
			}
		case fmt.Stringer:
			return v.String()
		}
	}

	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return ""
		}

		return Format(val.Elem())
	case reflect.Slice, reflect.Array:
		elems := make([]string, val.Len())
		for i := range val.Len() {
			elems[i] = Format(val.Index(i))
		}

		return "[" + strings.Join(elems, ",") + "]"
	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}
