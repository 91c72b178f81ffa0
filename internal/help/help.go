// Package help builds usage and help texts from declared parameters.
// Option lines are rendered by pflag, so that they look like those of
// any other pflag-based program.
package help

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/reeflective/args/internal/params"
	"github.com/reeflective/args/internal/values"
)

const (
	optionsHeader   = "Options"
	argumentsHeader = "Arguments"
	optionsMarker   = "[options]"
)

// Usage returns the usage line: the program name, each
// operand name in angle brackets, and an options marker.
func Usage(program string, operands []*params.Operand) string {
	words := []string{program}

	for _, op := range operands {
		words = append(words, "<"+op.Name()+">")
	}

	words = append(words, optionsMarker)

	return strings.Join(words, " ")
}

// Help returns the help text: options sorted by long name, grouped by
// category (uncategorized first), then described operands if any.
func Help(options []*params.Option, operands []*params.Operand) string {
	var sections []string

	groups, categories := groupByCategory(options)

	for _, category := range categories {
		header := category
		if header == "" {
			header = optionsHeader
		}

		usages := flagSet(groups[category]).FlagUsages()
		sections = append(sections, header+":\n"+usages)
	}

	if block := operandsBlock(operands); block != "" {
		sections = append(sections, argumentsHeader+":\n"+block)
	}

	return strings.Join(sections, "\n")
}

// groupByCategory returns options grouped by category, along
// with the sorted list of categories, uncategorized first.
func groupByCategory(options []*params.Option) (map[string][]*params.Option, []string) {
	groups := make(map[string][]*params.Option)

	var categories []string

	for _, opt := range options {
		category := opt.Settings().Category
		if _, exists := groups[category]; !exists {
			categories = append(categories, category)
		}

		groups[category] = append(groups[category], opt)
	}

	slices.Sort(categories)

	return groups, categories
}

// flagSet builds a sorted pflag flag set describing the options.
func flagSet(options []*params.Option) *pflag.FlagSet {
	flags := pflag.NewFlagSet("help", pflag.ContinueOnError)
	flags.SortFlags = true

	for _, opt := range options {
		val, err := opt.NewValue()
		if err != nil {
			continue
		}

		flag := opt.Flag(val)
		flag.Usage = usage(opt, val)

		// Defaults are part of the usage, pflag must not add its own.
		flag.Value = &defaultValue{Value: val}
		flag.DefValue = ""

		flags.AddFlag(flag)
	}

	return flags
}

// usage returns the description of an option, followed by its
// aliases and its declared default, even when it is a zero value.
func usage(opt *params.Option, val values.Value) string {
	parts := []string{opt.Settings().Desc}

	if aliases := opt.Names().Aliases; len(aliases) > 0 {
		names := make([]string, len(aliases))
		for i, alias := range aliases {
			names[i] = dashed(alias)
		}

		parts = append(parts, "(aliases: "+strings.Join(names, ", ")+")")
	}

	if def, ok := opt.Default(); ok {
		text := values.Format(def)
		if val.Type() == "string" {
			text = strconv.Quote(text)
		}

		parts = append(parts, "(default "+text+")")
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// dashed prefixes a name with the dashes used to give it.
func dashed(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return "-" + name
	}

	return "--" + name
}

// operandsBlock lists operands with a description, in declaration order.
func operandsBlock(operands []*params.Operand) string {
	described := slices.ContainsFunc(operands, func(op *params.Operand) bool {
		return op.Settings().Desc != ""
	})

	if !described {
		return ""
	}

	var block strings.Builder

	table := tabwriter.NewWriter(&block, 0, 4, 4, ' ', 0)
	for _, op := range operands {
		fmt.Fprintf(table, "  %s\t%s\n", op.Name(), op.Settings().Desc)
	}

	table.Flush()

	return block.String()
}

// defaultValue hides the value held by an option from pflag,
// which would otherwise print it as a default.
type defaultValue struct {
	values.Value
}

func (v *defaultValue) String() string { return "" }
