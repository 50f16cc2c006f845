package args

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Action defines what the parser does when the argument is met on the command line.
type Action uint8

const (
	actionUnset Action = iota // zero value, the parser assumes Store

	Store      // store the (coerced) value
	StoreConst // store Argument.Const
	StoreTrue  // store true (default: false)
	StoreFalse // store false (default: true)
	Append     // append the value to a list, the flag may be repeated
	Count      // count the flag occurrences
	Version    // print Argument.Version and stop
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case actionUnset:
		return ""
	case Store:
		return "store"
	case StoreConst:
		return "store_const"
	case StoreTrue:
		return "store_true"
	case StoreFalse:
		return "store_false"
	case Append:
		return "append"
	case Count:
		return "count"
	case Version:
		return "version"
	}

	return fmt.Sprintf("action(%d)", a)
}

// takesValue reports whether the action consumes a command-line value.
func (a Action) takesValue() bool { return a == actionUnset || a == Store || a == Append }

// Nargs is the number of command-line values an argument consumes.
type Nargs struct {
	count   int
	pattern byte // 0 = unset, 'N' = exact count, '?', '*' or '+'
}

var (
	Optional   = Nargs{pattern: '?'} //nolint:gochecknoglobals // zero or one value
	ZeroOrMore = Nargs{pattern: '*'} //nolint:gochecknoglobals // any number of values
	OneOrMore  = Nargs{pattern: '+'} //nolint:gochecknoglobals // at least one value
)

// Exactly returns Nargs for a fixed number of values.
func Exactly(n int) Nargs { return Nargs{count: n, pattern: 'N'} }

// IsSet reports whether the Nargs was explicitly chosen.
func (n Nargs) IsSet() bool { return n.pattern != 0 }

// String returns the conventional representation ("?", "*", "+" or the count).
func (n Nargs) String() string {
	switch n.pattern {
	case 0:
		return ""
	case 'N':
		return strconv.Itoa(n.count)
	}

	return string(n.pattern)
}

// bounds returns the minimal and maximal values count (max < 0 means unbounded). The unset Nargs consumes
// exactly one value.
func (n Nargs) bounds() (lo, hi int) {
	switch n.pattern {
	case 'N':
		return n.count, n.count
	case '?':
		return 0, 1
	case '*':
		return 0, -1
	case '+':
		return 1, -1
	}

	return 1, 1
}

// scalar reports whether the argument produces a single value instead of a list.
func (n Nargs) scalar() bool { return n.pattern == 0 || n.pattern == '?' }

// Kind is the type command-line values are coerced to.
type Kind uint8

const (
	kindUnset Kind = iota // zero value, the parser assumes String

	String
	Int
	Float
	Bool
	Duration
)

// String returns the kind name, as used in error messages.
func (k Kind) String() string {
	switch k {
	case kindUnset:
		return ""
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Duration:
		return "duration"
	}

	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) orString() Kind {
	if k == kindUnset {
		return String
	}

	return k
}

var errUnsupportedKind = errors.New("unsupported kind")

// parse coerces a command-line token.
func (k Kind) parse(s string) (any, error) {
	var (
		v   any
		err error
	)

	switch k.orString() {
	case String:
		return s, nil
	case Int:
		v, err = strconv.Atoi(s)
	case Float:
		v, err = strconv.ParseFloat(s, 64)
	case Bool:
		v, err = strconv.ParseBool(s)
	case Duration:
		v, err = time.ParseDuration(s)
	default:
		return nil, errUnsupportedKind
	}

	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %q", k.orString(), s)
	}

	return v, nil
}

// accepts reports whether v holds a Go value of this kind.
func (k Kind) accepts(v any) bool {
	var ok bool

	switch k.orString() {
	case String:
		_, ok = v.(string)
	case Int:
		_, ok = v.(int)
	case Float:
		_, ok = v.(float64)
	case Bool:
		_, ok = v.(bool)
	case Duration:
		_, ok = v.(time.Duration)
	}

	return ok
}

// acceptsList reports whether v holds a Go slice of this kind.
func (k Kind) acceptsList(v any) bool {
	var ok bool

	switch k.orString() {
	case String:
		_, ok = v.([]string)
	case Int:
		_, ok = v.([]int)
	case Float:
		_, ok = v.([]float64)
	case Bool:
		_, ok = v.([]bool)
	case Duration:
		_, ok = v.([]time.Duration)
	}

	return ok
}

// list converts coerced values into a typed slice ([]int for Int and so on). A nil input gives an empty,
// non-nil slice.
func (k Kind) list(values []any) any {
	switch k.orString() {
	case Int:
		return typedList[int](values)
	case Float:
		return typedList[float64](values)
	case Bool:
		return typedList[bool](values)
	case Duration:
		return typedList[time.Duration](values)
	default:
		return typedList[string](values)
	}
}

func typedList[T any](values []any) []T {
	var out = make([]T, 0, len(values))

	for _, v := range values {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}

	return out
}

// coerceDefault checks the default value against the kind. String defaults are coerced the same way
// command-line tokens are, so `Default: "600"` with `Type: Int` gives 600.
func (k Kind) coerceDefault(def any, list bool) (any, error) {
	if def == nil {
		return nil, nil //nolint:nilnil
	}

	if list {
		if k.acceptsList(def) {
			return def, nil
		}

		if ss, ok := def.([]string); ok {
			var values = make([]any, 0, len(ss))

			for _, s := range ss {
				v, err := k.parse(s)
				if err != nil {
					return nil, err
				}

				values = append(values, v)
			}

			return k.list(values), nil
		}

		return nil, fmt.Errorf("default %v is not a list of %s", def, k.orString())
	}

	if k.accepts(def) {
		return def, nil
	}

	if s, ok := def.(string); ok {
		return k.parse(s)
	}

	return nil, fmt.Errorf("default %v is not a valid %s", def, k.orString())
}
