// Package enum provides a pflag.Value that only accepts a fixed set of options.
package enum

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flag is a string flag restricted to a set of options.
// The first option is the default.
type Flag struct {
	options []string
	value   string
}

var _ pflag.Value = (*Flag)(nil)

// New creates a Flag over options. It panics if no option is given.
func New(options ...string) *Flag {
	if len(options) == 0 {
		panic("enum flag needs at least one option")
	}
	return &Flag{
		options: options,
		value:   options[0],
	}
}

func (f *Flag) String() string {
	return f.value
}

func (f *Flag) Set(value string) error {
	for _, option := range f.options {
		if option == value {
			f.value = value
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, must be one of [%s]", value, strings.Join(f.options, ", "))
}

func (f *Flag) Type() string {
	return "enum"
}

// Var registers an enum flag with name on flagset. The first option is the default.
func Var(flagset *pflag.FlagSet, name string, options []string, usage string) {
	VarP(flagset, name, "", options, usage)
}

// VarP is like Var, but accepts a shorthand letter.
func VarP(flagset *pflag.FlagSet, name, shorthand string, options []string, usage string) {
	flagset.VarP(New(options...), name, shorthand, fmt.Sprintf("%s (must be one of [%s])", usage, strings.Join(options, " ")))
}

// Get returns the current value of the enum flag with name.
func Get(flagset *pflag.FlagSet, name string) (string, error) {
	flag := flagset.Lookup(name)
	if flag == nil {
		return "", fmt.Errorf("flag %q not found", name)
	}
	enum, ok := flag.Value.(*Flag)
	if !ok {
		return "", fmt.Errorf("flag %q is not an enum flag", name)
	}
	return enum.String(), nil
}
