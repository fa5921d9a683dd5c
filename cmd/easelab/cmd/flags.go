package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// splitFlag splits "--name=value" into its parts. ok is false for
// arguments that do not start with "--".
func splitFlag(arg string) (name, value string, hasValue, ok bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", "", false, false
	}
	name, value, hasValue = strings.Cut(arg, "=")
	return name, value, hasValue, true
}

// flagValue returns the value for a flag given as "--name value" or
// "--name=value", advancing i past a separate value argument.
func flagValue(args []string, i *int, name, inline string, hasInline bool) (string, error) {
	if hasInline {
		return inline, nil
	}
	if *i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", name)
	}
	*i++
	return args[*i], nil
}

func floatFlag(args []string, i *int, name, inline string, hasInline bool) (float64, error) {
	s, err := flagValue(args, i, name, inline, hasInline)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", name, s)
	}
	return v, nil
}

func intFlag(args []string, i *int, name, inline string, hasInline bool) (int, error) {
	s, err := flagValue(args, i, name, inline, hasInline)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", name, s)
	}
	return v, nil
}
