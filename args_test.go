package args

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/args/types"
)

func TestParseOperandAndOption(t *testing.T) {
	t.Parallel()

	file := Arg[string]("file")
	verbose := OptDefault("verbose|v", false)

	res, err := Parse([]string{"prog", "-v", "input.txt"}, file, verbose)
	require.NoError(t, err)

	require.False(t, res.HelpWanted)
	require.Equal(t, Values{"file": "input.txt"}, res.Operands)
	require.Equal(t, Values{"verbose": true}, res.Options)
	require.Empty(t, res.Remaining)
}

func TestParseListOperand(t *testing.T) {
	t.Parallel()

	res, err := Parse([]string{"prog", "a.txt", "b.txt", "c.txt"}, Arg[[]string]("files"))
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, MustGet[[]string](res.Operands, "files"))
}

func TestParseUnrecognizedOption(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"prog", "--unknown", "file"}, Arg[string]("file"))
	require.ErrorIs(t, err, ErrUnrecognizedOption)

	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, ErrorUnrecognizedOption, parseErr.Type)
	require.Equal(t, "--unknown", parseErr.Token)
	require.Equal(t, "unrecognized option: --unknown", err.Error())
}

func TestParseMissingOperand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
	}{
		{name: "single", spec: Arg[string]("file", Required())},
		{name: "list", spec: Arg[[]string]("files", Required())},
		{name: "fixed list", spec: Arg[[2]int]("point", Required())},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]string{"prog"}, test.spec)
			require.ErrorIs(t, err, ErrMissingOperand)

			var parseErr *Error
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, test.spec.ID(), parseErr.ID)
		})
	}
}

func TestParseInvalidArgument(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{Opt[int]("count|c"), Arg[time.Duration]("timeout")})

	_, err := set.Parse([]string{"prog", "-c", "many", "1s"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "count", parseErr.ID)
	require.Equal(t, "many", parseErr.Token)
	require.Contains(t, err.Error(), "invalid value for -c")

	_, err = set.Parse([]string{"prog", "soon"})
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "timeout", parseErr.ID)
	require.Equal(t, "soon", parseErr.Token)
}

func TestParseInvalidSequenceWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		spec  Spec
		args  []string
		id    string
		token string
	}{
		{name: "list", spec: Arg[[]int]("nums"), args: []string{"prog", "1", "two"}, id: "nums", token: "two"},
		{name: "fixed list", spec: Arg[[2]int]("pair"), args: []string{"prog", "x", "2"}, id: "pair", token: "x"},
		{name: "option", spec: Opt[[]int]("nums|n"), args: []string{"prog", "-n", "1", "--nums=three"}, id: "nums", token: "three"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(test.args, test.spec)
			require.ErrorIs(t, err, ErrInvalidArgument)

			var parseErr *Error
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, test.id, parseErr.ID)
			require.Equal(t, test.token, parseErr.Token)
		})
	}
}

// TestParseDefaults checks that options and operands never
// mentioned on the command line hold their declared default.
func TestParseDefaults(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{
		OptDefault("output|o", "out.txt"),
		OptDefault("retries", 3),
		OptDefault("tags", []string{"a", "b"}),
		OptDefault("wait", 5*time.Second),
		Opt[float64]("ratio"),
		ArgDefault("mode", "fast"),
	})

	for range 2 {
		res, err := set.Parse([]string{"prog"})
		require.NoError(t, err)

		require.Equal(t, Values{
			"output":  "out.txt",
			"retries": 3,
			"tags":    []string{"a", "b"},
			"wait":    5 * time.Second,
			"ratio":   0.0,
		}, res.Options)
		require.Equal(t, Values{"mode": "fast"}, res.Operands)
	}
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{
		Arg[string]("src", Required()),
		Arg[[]string]("dests", Required()),
		Opt[string]("config", Required()),
	})

	for _, args := range [][]string{{"prog", "--help"}, {"prog", "a", "-h"}} {
		res, err := set.Parse(args)
		require.NoError(t, err)
		require.True(t, res.HelpWanted)
		require.NotContains(t, res.Options, "help")
	}
}

func TestParseAliases(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{
		Opt[bool]("verbose|v|garrulous|loquacious"),
		Opt[string]("name|n|N"),
	})

	for _, args := range [][]string{
		{"prog", "--garrulous", "-N", "bob"},
		{"prog", "--loquacious", "--name=bob"},
		{"prog", "-v", "-nbob"},
	} {
		res, err := set.Parse(args)
		require.NoError(t, err)
		require.Equal(t, Values{"verbose": true, "name": "bob"}, res.Options, "args: %v", args)
	}
}

func TestParseIncrementable(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{Opt[int]("verbose|v+"), Opt[types.Counter]("debug|d")})

	res, err := set.Parse([]string{"prog", "-vvv", "--verbose", "-d", "-d"})
	require.NoError(t, err)
	require.Equal(t, 4, MustGet[int](res.Options, "verbose"))
	require.Equal(t, types.Counter(2), MustGet[types.Counter](res.Options, "debug"))

	_, err = NewSet([]Spec{Opt[string]("level+")})
	require.ErrorIs(t, err, ErrInvalidDeclaration)
}

func TestParseTerminator(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{Opt[bool]("force|f"), Arg[[]string]("files")})

	res, err := set.Parse([]string{"prog", "-f", "--", "-f", "--force", "-"})
	require.NoError(t, err)
	require.Equal(t, true, res.Options["force"])
	require.Equal(t, []string{"-f", "--force", "-"}, res.Operands["files"])
}

func TestParseRemaining(t *testing.T) {
	t.Parallel()

	res, err := Parse([]string{"prog", "run", "a", "b"}, Arg[string]("command"))
	require.NoError(t, err)
	require.Equal(t, "run", res.Operands["command"])
	require.Equal(t, []string{"a", "b"}, res.Remaining)
}

func TestParseProcessors(t *testing.T) {
	t.Parallel()

	port := OptFunc("port|p", func(word string) (uint16, error) {
		if word == "http" {
			return 80, nil
		}

		n, err := strconv.ParseUint(word, 10, 16)

		return uint16(n), err
	})

	host := ArgFunc("host", func(word string) (string, error) {
		if word == "" {
			return "", fmt.Errorf("empty host")
		}

		return strings.ToLower(word), nil
	})

	total := ArgListFunc("numbers", func(words []string) (int, error) {
		sum := 0

		for _, word := range words {
			n, err := strconv.Atoi(word)
			if err != nil {
				return 0, err
			}

			sum += n
		}

		return sum, nil
	})

	set := MustSet([]Spec{port, host, total})

	res, err := set.Parse([]string{"prog", "--port", "http", "EXAMPLE.com", "1", "2", "3"})
	require.NoError(t, err)
	require.Equal(t, uint16(80), res.Options["port"])
	require.Equal(t, "example.com", res.Operands["host"])
	require.Equal(t, 6, res.Operands["numbers"])

	_, err = set.Parse([]string{"prog", "host", "1", "two"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "numbers", parseErr.ID)
}

func TestArgFixedFunc(t *testing.T) {
	t.Parallel()

	pair := ArgFixedFunc("pair", 2, func(words []string) (string, error) {
		return words[0] + "=" + words[1], nil
	})

	res, err := Parse([]string{"prog", "key"}, pair)
	require.NoError(t, err)
	require.Equal(t, "key=", res.Operands["pair"])

	_, err = NewSet([]Spec{ArgFixedFunc("none", 0, func([]string) (string, error) { return "", nil })})
	require.ErrorIs(t, err, ErrInvalidDeclaration)
}

func TestNewSetErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		specs  []Spec
		expErr error
	}{
		{
			name:   "duplicate identifier",
			specs:  []Spec{Arg[string]("dry-run"), Opt[bool]("dry-run")},
			expErr: ErrDuplicateIdentifier,
		},
		{
			name:   "duplicate identifier through override",
			specs:  []Spec{Arg[string]("input"), Opt[string]("source|s").SetID("input")},
			expErr: ErrDuplicateIdentifier,
		},
		{
			name:   "invalid identifier",
			specs:  []Spec{Arg[string]("9lives")},
			expErr: ErrInvalidIdentifier,
		},
		{
			name:   "invalid identifier override",
			specs:  []Spec{Arg[string]("file").SetID("my-file")},
			expErr: ErrInvalidIdentifier,
		},
		{
			name:   "empty long name",
			specs:  []Spec{Opt[bool]("|v")},
			expErr: ErrInvalidDeclaration,
		},
		{
			name:   "unsupported type",
			specs:  []Spec{Arg[chan int]("events")},
			expErr: ErrInvalidDeclaration,
		},
		{
			name:   "nil processor",
			specs:  []Spec{OptFunc[int]("count", nil)},
			expErr: ErrInvalidDeclaration,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			set, err := NewSet(test.specs)
			require.ErrorIs(t, err, test.expErr)
			require.Nil(t, set)

			require.Panics(t, func() { MustSet(test.specs) })
		})
	}
}

func TestIdentifiers(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{
		Opt[bool]("version"),
		Opt[bool]("dry-run|n"),
		Arg[string]("long-option-name"),
		Arg[string]("type").SetID("kind"),
	})

	res, err := set.Parse([]string{"prog", "--version", "-n", "a", "b"})
	require.NoError(t, err)
	require.Equal(t, Values{"_version": true, "dryRun": true}, res.Options)
	require.Equal(t, Values{"longOptionName": "a", "kind": "b"}, res.Operands)
}

func TestValidation(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{
		Opt[int]("port|p").SetValidate("min=1,max=65535"),
		Arg[[]string]("hosts").SetValidate("dive,hostname"),
	})

	_, err := set.Parse([]string{"prog", "--port", "0"})
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, err.Error(), "`0` is not a valid min")

	_, err = set.Parse([]string{"prog", "not a host"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)

	res, err := set.Parse([]string{"prog", "-p", "22", "example.com"})
	require.NoError(t, err)
	require.Equal(t, 22, res.Options["port"])
}

func TestWithValidator(t *testing.T) {
	t.Parallel()

	custom := validator.New()
	require.NoError(t, custom.RegisterValidation("lower", func(fl validator.FieldLevel) bool {
		return strings.ToLower(fl.Field().String()) == fl.Field().String()
	}))

	set, err := NewSet([]Spec{Arg[string]("name").SetValidate("lower")}, WithValidator(custom))
	require.NoError(t, err)

	_, err = set.Parse([]string{"prog", "Bob"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = set.Parse([]string{"prog", "bob"})
	require.NoError(t, err)
}

func TestGet(t *testing.T) {
	t.Parallel()

	vals := Values{"name": "bob", "count": 3, "nothing": nil}

	name, err := Get[string](vals, "name")
	require.NoError(t, err)
	require.Equal(t, "bob", name)

	_, err = Get[string](vals, "count")
	require.EqualError(t, err, "parameter `count` holds a int, not a string")

	_, err = Get[int](vals, "missing")
	require.Error(t, err)

	nothing, err := Get[*int](vals, "nothing")
	require.NoError(t, err)
	require.Nil(t, nothing)

	require.Panics(t, func() { MustGet[bool](vals, "name") })
}

func TestUsageAndHelp(t *testing.T) {
	t.Parallel()

	set := MustSet([]Spec{
		Arg[string]("src", Desc("File to copy")),
		Arg[[]string]("dests"),
		OptDefault("mode|m", "0644", Desc("Permissions of the copies")),
		Opt[bool]("force|f", Desc("Overwrite existing files"), Category("Safety")),
	})

	require.Equal(t, "cp <src> <dests> [options]", set.Usage("cp"))

	text := set.Help()
	require.Equal(t, text, set.Help())
	require.Contains(t, text, "Options:\n")
	require.Contains(t, text, "-h, --help")
	require.Contains(t, text, `Permissions of the copies (default "0644")`)
	require.Contains(t, text, "Safety:\n")
	require.Contains(t, text, "-f, --force")
	require.Contains(t, text, "Arguments:\n")
	require.Contains(t, text, "File to copy")

	require.Len(t, set.Options(), 3)
	require.Len(t, set.Operands(), 2)
}
