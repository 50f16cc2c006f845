package args_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnist/hymnist/internal/args"
)

func TestArgument_Render(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		giveArg         args.Argument
		givePrefixChars string
		wantFlags       []string
		wantDest        string
		wantFields      []string
	}{
		"positional name becomes the dest": {
			giveArg:         args.Argument{Flags: []string{"paths"}, Nargs: args.OneOrMore, Help: "Target paths."},
			givePrefixChars: "-",
			wantFlags:       nil,
			wantDest:        "paths",
			wantFields:      []string{args.FieldNargs, args.FieldHelp, args.FieldDest},
		},
		"explicit dest is replaced by the positional name": {
			giveArg:         args.Argument{Flags: []string{"dimension_limit"}, Dest: "other"},
			givePrefixChars: "-",
			wantDest:        "dimension_limit",
			wantFields:      []string{args.FieldDest},
		},
		"option strings are kept": {
			giveArg:         args.Argument{Flags: []string{"-v", "--verbose"}, Action: args.StoreTrue},
			givePrefixChars: "-",
			wantFlags:       []string{"-v", "--verbose"},
			wantFields:      []string{args.FieldAction},
		},
		"custom prefix chars": {
			giveArg:         args.Argument{Flags: []string{"+x"}, Help: "plus"},
			givePrefixChars: "-+",
			wantFlags:       []string{"+x"},
			wantFields:      []string{args.FieldHelp},
		},
		"without prefix chars names are kept": {
			giveArg:    args.Argument{Flags: []string{"paths"}},
			wantFlags:  []string{"paths"},
			wantFields: []string{},
		},
		"without names": {
			giveArg:         args.Argument{Dest: "foo", Default: 0},
			givePrefixChars: "-",
			wantDest:        "foo",
			wantFields:      []string{args.FieldDefault, args.FieldDest},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flags, opts := tc.giveArg.Render(tc.givePrefixChars)

			assert.Equal(t, tc.wantFlags, flags)
			assert.Equal(t, tc.wantDest, opts.Dest)
			assert.Equal(t, tc.wantFields, opts.Fields())
		})
	}
}

func TestArgument_Render_OnlySetFields(t *testing.T) {
	t.Parallel()

	type field struct {
		name string
		set  func(*args.Argument)
	}

	var fields = []field{
		{args.FieldAction, func(a *args.Argument) { a.Action = args.Store }},
		{args.FieldNargs, func(a *args.Argument) { a.Nargs = args.ZeroOrMore }},
		{args.FieldConst, func(a *args.Argument) { a.Const = false }},
		{args.FieldDefault, func(a *args.Argument) { a.Default = 0 }},
		{args.FieldType, func(a *args.Argument) { a.Type = args.Int }},
		{args.FieldChoices, func(a *args.Argument) { a.Choices = []string{} }},
		{args.FieldRequired, func(a *args.Argument) { a.Required = true }},
		{args.FieldHelp, func(a *args.Argument) { a.Help = "help" }},
		{args.FieldMetavar, func(a *args.Argument) { a.Metavar = "N" }},
		{args.FieldDest, func(a *args.Argument) { a.Dest = "dest" }},
		{args.FieldVersion, func(a *args.Argument) { a.Version = "1.0.0" }},
	}

	for mask := 0; mask < 1<<len(fields); mask++ {
		var (
			arg  = args.Argument{Flags: []string{"--flag"}}
			want = make([]string, 0, len(fields))
		)

		for i, f := range fields {
			if mask&(1<<i) != 0 {
				f.set(&arg)
				want = append(want, f.name)
			}
		}

		flags, opts := arg.Render(args.DefaultPrefixChars)

		require.Equal(t, []string{"--flag"}, flags, "mask %b", mask)
		require.Equal(t, want, opts.Fields(), "mask %b", mask)
	}
}

func TestArgument_Render_DoesNotShareState(t *testing.T) {
	t.Parallel()

	var arg = args.Argument{Flags: []string{"-m", "--missing"}, Choices: []string{"a", "b"}}

	flags, opts := arg.Render("-")
	flags[0], opts.Choices[0] = "changed", "changed"

	assert.Equal(t, []string{"-m", "--missing"}, arg.Flags)
	assert.Equal(t, []string{"a", "b"}, arg.Choices)
}

func TestNargs_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", args.Nargs{}.String())
	assert.Equal(t, "?", args.Optional.String())
	assert.Equal(t, "*", args.ZeroOrMore.String())
	assert.Equal(t, "+", args.OneOrMore.String())
	assert.Equal(t, "3", args.Exactly(3).String())
	assert.False(t, args.Nargs{}.IsSet())
	assert.True(t, args.Exactly(1).IsSet())
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "store_true", args.StoreTrue.String())
	assert.Equal(t, "version", args.Version.String())
	assert.Equal(t, "action(255)", args.Action(255).String())
}
