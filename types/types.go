// Package types provides ready-made value types for options
// declared with the args package.
package types

import (
	"fmt"
	"strconv"
)

// Counter is an option value incremented each time the option appears
// on the command line (`-v -v`, `-vvv`). An explicit value (`--verbose=3`)
// sets the count instead.
type Counter int

// Set implements the pflag.Value interface.
func (c *Counter) Set(val string) error {
	if val == "" || val == "true" || val == "+1" {
		*c++

		return nil
	}

	parsed, err := strconv.ParseInt(val, 10, 0)
	if err != nil {
		return fmt.Errorf("invalid value for counter: %w", err)
	}

	if parsed == -1 {
		*c++
	} else {
		*c = Counter(parsed)
	}

	return nil
}

// Get returns inner value for Counter.
func (c *Counter) Get() any { return int(*c) }

// IsBoolFlag returns true, because Counter might be used without value.
func (c *Counter) IsBoolFlag() bool { return true }

// String implements the pflag.Value interface.
func (c *Counter) String() string { return strconv.Itoa(int(*c)) }

// IsCumulative returns true, because Counter might be used multiple times.
func (c *Counter) IsCumulative() bool { return true }

// Type implements the pflag.Value interface.
func (c *Counter) Type() string { return "count" }
