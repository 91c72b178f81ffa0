// Package settings resolves the optional metadata attached to parameters
// (category, description, help text, required) from a list of supplied
// setting values, falling back to per-kind defaults.
package settings

// Kind identifies one of the recognized settings. The set is closed.
type Kind int

const (
	Category Kind = iota
	Desc
	Help
	Required
)

func (k Kind) String() string {
	kinds := [...]string{
		"category", // Category
		"desc",     // Desc
		"help",     // Help
		"required", // Required
	}
	if int(k) < 0 || int(k) >= len(kinds) {
		return "unknown"
	}

	return kinds[k]
}

// Setting is a single setting value supplied at declaration time.
type Setting struct {
	kind  Kind
	value any
}

// Kind returns the kind of the setting.
func (s Setting) Kind() Kind { return s.kind }

// Value returns the raw value of the setting.
func (s Setting) Value() any { return s.value }

// NewCategory returns a category setting.
func NewCategory(val string) Setting { return Setting{kind: Category, value: val} }

// NewDesc returns a description setting.
func NewDesc(val string) Setting { return Setting{kind: Desc, value: val} }

// NewHelp returns a help text setting.
func NewHelp(val string) Setting { return Setting{kind: Help, value: val} }

// NewRequired returns a required setting.
func NewRequired(val bool) Setting { return Setting{kind: Required, value: val} }

// defaults holds the value used for each kind when none is supplied.
var defaults = map[Kind]any{
	Category: "",
	Desc:     "",
	Help:     "",
	Required: false,
}

// Settings is the resolved, closed record of settings of a parameter.
type Settings struct {
	Category string
	Desc     string
	Help     string
	Required bool
}

// Resolve computes the final settings: for each kind, the last supplied
// value wins, otherwise the kind's default applies.
func Resolve(supplied ...Setting) Settings {
	values := make(map[Kind]any, len(defaults))
	for kind, def := range defaults {
		values[kind] = def
	}

	for _, setting := range supplied {
		if _, known := defaults[setting.kind]; !known {
			continue
		}

		values[setting.kind] = setting.value
	}

	return Settings{
		Category: values[Category].(string),
		Desc:     values[Desc].(string),
		Help:     values[Help].(string),
		Required: values[Required].(bool),
	}
}
