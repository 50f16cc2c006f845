package args

import (
	"slices"
	"strings"
)

// Argument describes one command-line argument before it is registered with a Provider.
//
// Every field is optional: the zero value means "not set" (nil for Const and Default, so an explicit 0 default
// is set), and only set fields are forwarded to the parser. Flags holds either a single positional name
// (e.g. "paths") or one or more option strings that start with a prefix character (e.g. "-v", "--verbose").
type Argument struct {
	Flags    []string // positional name or option strings
	Action   Action   // what to do when the argument is met (default: Store)
	Nargs    Nargs    // number of values to consume
	Const    any      // value stored by StoreConst
	Default  any      // value used when the argument is absent
	Type     Kind     // values coercion (default: String)
	Choices  []string // allowed command-line values
	Required bool     // whether an option must be present
	Help     string   // help text
	Metavar  string   // value name in the help output
	Dest     string   // name of the Namespace entry
	Version  string   // printed by the Version action
}

// Options holds the fields of an Argument that were explicitly set. See Options.Fields.
type Options struct {
	Action   Action
	Nargs    Nargs
	Const    any
	Default  any
	Type     Kind
	Choices  []string
	Required bool
	Help     string
	Metavar  string
	Dest     string
	Version  string
}

// Option names, as returned by Options.Fields.
const (
	FieldAction   = "action"
	FieldNargs    = "nargs"
	FieldConst    = "const"
	FieldDefault  = "default"
	FieldType     = "type"
	FieldChoices  = "choices"
	FieldRequired = "required"
	FieldHelp     = "help"
	FieldMetavar  = "metavar"
	FieldDest     = "dest"
	FieldVersion  = "version"
)

// Fields returns the names of the set options, in declaration order.
func (o Options) Fields() []string {
	var fields = make([]string, 0, 11) //nolint:mnd

	for _, f := range [...]struct {
		name string
		set  bool
	}{
		{FieldAction, o.Action != actionUnset},
		{FieldNargs, o.Nargs.IsSet()},
		{FieldConst, o.Const != nil},
		{FieldDefault, o.Default != nil},
		{FieldType, o.Type != kindUnset},
		{FieldChoices, o.Choices != nil},
		{FieldRequired, o.Required},
		{FieldHelp, o.Help != ""},
		{FieldMetavar, o.Metavar != ""},
		{FieldDest, o.Dest != ""},
		{FieldVersion, o.Version != ""},
	} {
		if f.set {
			fields = append(fields, f.name)
		}
	}

	return fields
}

// Render splits the argument into the option strings and the set options, the form Provider.AddArguments
// registers.
//
// When prefixChars is not empty and the first name does not start with one of its characters, the name is
// moved into Options.Dest (replacing any explicit Dest) and the returned flags are nil, so the argument is
// registered by its destination only. A nil flags slice is also returned for an argument without names.
func (a Argument) Render(prefixChars string) (flags []string, opts Options) {
	opts = Options{
		Action:   a.Action,
		Nargs:    a.Nargs,
		Const:    a.Const,
		Default:  a.Default,
		Type:     a.Type,
		Choices:  slices.Clone(a.Choices),
		Required: a.Required,
		Help:     a.Help,
		Metavar:  a.Metavar,
		Dest:     a.Dest,
		Version:  a.Version,
	}

	if len(a.Flags) == 0 {
		return nil, opts
	}

	if prefixChars != "" && !hasPrefixChar(a.Flags[0], prefixChars) {
		opts.Dest = a.Flags[0]

		return nil, opts
	}

	return slices.Clone(a.Flags), opts
}

// hasPrefixChar reports whether s starts with one of the prefix characters.
func hasPrefixChar(s, prefixChars string) bool {
	return s != "" && strings.ContainsRune(prefixChars, rune(s[0]))
}
