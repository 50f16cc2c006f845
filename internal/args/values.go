package args

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// flagValue is a pflag.Value that also exposes the Go value collected for the Namespace.
type flagValue interface {
	pflag.Value
	get() any
}

// Ensures that all values implement the flagValue interface.
var (
	_ flagValue = (*storeValue)(nil)
	_ flagValue = (*constValue)(nil)
	_ flagValue = (*countValue)(nil)
	_ flagValue = (*appendValue)(nil)
)

// checkChoice returns an error when choices are defined and s is not one of them.
func checkChoice(s string, choices []string) error {
	if len(choices) == 0 || slices.Contains(choices, s) {
		return nil
	}

	var quoted = make([]string, len(choices))

	for i, c := range choices {
		quoted[i] = strconv.Quote(c)
	}

	return fmt.Errorf("invalid choice: %q (choose from %s)", s, strings.Join(quoted, ", "))
}

// storeValue keeps the last coerced command-line value.
type storeValue struct {
	kind    Kind
	choices []string
	value   any
}

func (v *storeValue) Set(s string) error {
	if err := checkChoice(s, v.choices); err != nil {
		return err
	}

	parsed, err := v.kind.parse(s)
	if err != nil {
		return err
	}

	v.value = parsed

	return nil
}

func (v *storeValue) String() string {
	if v.value == nil {
		return ""
	}

	return fmt.Sprint(v.value)
}

func (v *storeValue) Type() string { return v.kind.orString().String() }
func (v *storeValue) get() any     { return v.value }

// constValue stores a predefined value when the flag is present (StoreConst, StoreTrue, StoreFalse and
// Version actions). The flag takes no command-line value.
type constValue struct {
	on    any
	value any
}

func (v *constValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("ignored explicit argument %q", s)
	}

	if on {
		v.value = v.on
	}

	return nil
}

func (v *constValue) String() string {
	if v.value == nil {
		return ""
	}

	return fmt.Sprint(v.value)
}

func (*constValue) Type() string { return "bool" }
func (v *constValue) get() any   { return v.value }

// countIncrement is passed by pflag when a Count flag is met without a value.
const countIncrement = "+1"

// countValue counts the flag occurrences.
type countValue struct{ n int }

func (v *countValue) Set(s string) error {
	if s == countIncrement {
		v.n++

		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid int value: %q", s)
	}

	v.n = n

	return nil
}

func (v *countValue) String() string { return strconv.Itoa(v.n) }
func (*countValue) Type() string     { return "count" }
func (v *countValue) get() any       { return v.n }

// appendValue collects every occurrence of the flag, after the default items.
type appendValue struct {
	kind    Kind
	choices []string
	values  []any
}

func (v *appendValue) Set(s string) error {
	if err := checkChoice(s, v.choices); err != nil {
		return err
	}

	parsed, err := v.kind.parse(s)
	if err != nil {
		return err
	}

	v.values = append(v.values, parsed)

	return nil
}

func (v *appendValue) String() string { return fmt.Sprint(v.get()) }
func (v *appendValue) Type() string   { return v.kind.orString().String() + "Array" }
func (v *appendValue) get() any       { return v.kind.list(v.values) }
