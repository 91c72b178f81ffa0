package params

import (
	"fmt"
	"reflect"

	"github.com/reeflective/args/internal/values"
)

// Arity says how many positional words an operand consumes.
type Arity int

const (
	// Single operands consume exactly one word.
	Single Arity = iota
	// List operands consume all remaining words.
	List
	// FixedList operands consume up to a fixed number of words.
	FixedList
)

func (a Arity) String() string {
	switch a {
	case Single:
		return "single"
	case List:
		return "list"
	case FixedList:
		return "fixed-list"
	default:
		return "unknown"
	}
}

// Kind is the arity of an operand, with the
// number of words wanted for fixed lists.
type Kind struct {
	Arity Arity
	Len   int
}

func (k Kind) String() string {
	if k.Arity == FixedList {
		return fmt.Sprintf("%s(%d)", k.Arity, k.Len)
	}

	return k.Arity.String()
}

// KindOf computes the arity of an operand from its value type:
// slices are lists, arrays of length k are fixed lists, anything
// else is single. Types parsing themselves from a word are single.
func KindOf(typ reflect.Type) Kind {
	if values.ParsesItself(typ) {
		return Kind{Arity: Single}
	}

	switch typ.Kind() {
	case reflect.Slice:
		return Kind{Arity: List}
	case reflect.Array:
		return Kind{Arity: FixedList, Len: typ.Len()}
	default:
		return Kind{Arity: Single}
	}
}
