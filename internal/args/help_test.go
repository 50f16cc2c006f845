package args_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnist/hymnist/internal/args"
)

// pad aligns the invocation to the widest help column.
func pad(s string) string { return padTo(s, 24) }

func padTo(s string, column int) string { return s + strings.Repeat(" ", column-len(s)) }

func helpTestProvider(t *testing.T, f args.HelpFormatter) *args.Provider {
	t.Helper()

	p, _, _ := newTestProvider(t, args.WithDescription("Test tool."), args.WithFormatter(f))

	require.NoError(t, p.AddArguments(args.Group{},
		args.Argument{Flags: []string{"paths"}, Nargs: args.OneOrMore, Help: "Paths to process."},
		args.Argument{Flags: []string{"--debug"}, Action: args.StoreTrue, Help: "Enable debug output."},
	))
	require.NoError(t, p.AddArguments(args.Group{Name: "Extra", Description: "Extra things."},
		args.Argument{Flags: []string{"-n", "--number"}, Type: args.Int, Default: 5, Help: "Number of things."},
	))

	return p
}

func TestProvider_Help_Defaults(t *testing.T) {
	t.Parallel()

	var p = helpTestProvider(t, args.DefaultsFormatter)

	assert.Equal(t, "usage: prog [-h] [--debug] [-n NUMBER] paths [paths ...]", p.Usage())
	assert.Equal(t, strings.Join([]string{
		"usage: prog [-h] [--debug] [-n NUMBER] paths [paths ...]",
		"",
		"Test tool.",
		"",
		"positional arguments:",
		pad("  paths") + "Paths to process.",
		"",
		"options:",
		pad("  -h, --help") + "show this help message and exit",
		pad("  --debug") + "Enable debug output. (default: false)",
		"",
		"Extra:",
		"  Extra things.",
		"",
		"  -n NUMBER, --number NUMBER",
		pad("") + "Number of things. (default: 5)",
		"",
	}, "\n"), p.Help())
}

func TestProvider_Help_Plain(t *testing.T) {
	t.Parallel()

	var help = helpTestProvider(t, args.PlainFormatter).Help()

	assert.Contains(t, help, pad("  --debug")+"Enable debug output.\n")
	assert.Contains(t, help, pad("")+"Number of things.\n")
	assert.NotContains(t, help, "(default:")
}

func TestProvider_Help_Layout(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestProvider(t)

	require.NoError(t, p.AddArguments(args.Group{Name: "Empty"}))
	require.NoError(t, p.AddArguments(args.Group{},
		args.Argument{Flags: []string{"size"}, Nargs: args.Exactly(2)},
		args.Argument{Flags: []string{"extra"}, Nargs: args.Optional},
		args.Argument{Flags: []string{"rest"}, Nargs: args.ZeroOrMore, Metavar: "R"},
		args.Argument{Flags: []string{"--mode"}, Choices: []string{"a", "b"}, Required: true, Help: "One\nTwo"},
		args.Argument{Flags: []string{"-q"}, Action: args.Count},
	))

	assert.Equal(t, "usage: prog [-h] --mode {a,b} [-q] size size [extra] [R ...]", p.Usage())

	var help = p.Help()

	assert.NotContains(t, help, "Empty:")
	assert.Contains(t, help, "  size\n  extra\n  R\n")
	assert.Contains(t, help, padTo("  --mode {a,b}", 16)+"One\n"+padTo("", 16)+"Two\n")
	assert.Contains(t, help, "  -q\n")
}

func TestProvider_Help_SameGroupName(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestProvider(t)

	require.NoError(t, p.AddArguments(args.Group{Name: "G"}, args.Argument{Flags: []string{"--one"}}))
	require.NoError(t, p.AddArguments(args.Group{Name: "G"}, args.Argument{Flags: []string{"--two"}}))

	var help = p.Help()

	assert.Equal(t, 1, strings.Count(help, "\nG:\n"))
	assert.Contains(t, help, "  --one ONE\n  --two TWO\n")
}

func TestProvider_Help_UnnamedGroups(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestProvider(t)

	require.NoError(t, p.AddArguments(args.Group{Description: "First things."},
		args.Argument{Flags: []string{"--a"}},
		args.Argument{Flags: []string{"--b"}},
	))
	require.NoError(t, p.AddArguments(args.Group{Description: "Second things."}, args.Argument{Flags: []string{"--c"}}))

	var help = p.Help()

	assert.Contains(t, help, "\n\n  First things.\n\n  --a A\n  --b B\n\n  Second things.\n\n  --c C\n")
	assert.NotContains(t, help, "\n:\n")
}

func TestProvider_Help_ListDefaults(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestProvider(t, args.WithFormatter(args.DefaultsFormatter))

	require.NoError(t, p.AddArguments(args.Group{},
		args.Argument{Flags: []string{"sizes"}, Nargs: args.ZeroOrMore, Type: args.Int, Default: []int{3, 2, 1}, Help: "S."},
		args.Argument{Flags: []string{"--tag"}, Action: args.Append, Default: []string{"a", "b"}, Help: "T."},
	))

	var help = p.Help()

	assert.Contains(t, help, "S. (default: [3, 2, 1])\n")
	assert.Contains(t, help, "T. (default: [a, b])\n")
}
