package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// retag matches the part of a validator error containing the tag name.
var retag = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on a parameter value,
// and automatically modifies the error string for more efficient ones.
type invalidVarError struct {
	fieldName    string
	fieldValue   string // This is the string representation of the value
	validatorErr error
}

// Error implements the Error interface, but replacing some identifiable
// validation errors with more efficient messages, more adapted to CLI.
func (err *invalidVarError) Error() string {
	var tagname string

	matched := retag.FindString(err.validatorErr.Error())
	if matched != "" {
		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			tagname = strings.Trim(parts[1], "'")
		}

		return fmt.Sprintf("`%s` is not a valid %s", err.fieldValue, tagname)
	}

	// Or simply replace the empty key with the parameter name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.fieldName))
}

// Unwrap returns the validator error.
func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}

func formatValue(value any) string {
	if str, ok := value.(fmt.Stringer); ok {
		return str.String()
	}

	return fmt.Sprintf("%v", value)
}
