package args

import (
	"github.com/reeflective/args/internal/settings"
)

// Setting is an optional piece of metadata attached to a parameter.
// When the same kind of setting is given more than once, the last wins.
type Setting = settings.Setting

// Settings is the resolved set of settings of a parameter.
type Settings = settings.Settings

// Category sets the help section in which an option is listed.
func Category(name string) Setting { return settings.NewCategory(name) }

// Desc sets the short description shown in help.
func Desc(desc string) Setting { return settings.NewDesc(desc) }

// Help sets a longer help text for the parameter.
func Help(text string) Setting { return settings.NewHelp(text) }

// Required makes the parameter mandatory: a required option must be
// given, and a required list operand must receive at least one word.
func Required() Setting { return settings.NewRequired(true) }
