package args

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultPrefixChars are the characters that mark an option string.
const DefaultPrefixChars = "-"

// Group is a named help section. The zero value stands for the top-level argument set.
type Group struct {
	Name        string
	Description string
}

// IsZero reports whether the group is the top-level set.
func (g Group) IsZero() bool { return g.Name == "" && g.Description == "" }

type section struct {
	title, description string
	actions            []*action
}

// action is a registered argument.
type action struct {
	flags   []string // option strings, empty for positionals
	dest    string
	opts    Options
	kind    Kind
	def     any           // default in its coerced form
	value   flagValue     // optionals only
	pflags  []*pflag.Flag // optionals only, the first one is the visible flag
	builtin bool          // not stored in the Namespace
}

func (a *action) positional() bool { return len(a.flags) == 0 }

func (a *action) changed() bool {
	for _, f := range a.pflags {
		if f.Changed {
			return true
		}
	}

	return false
}

// Provider owns the command-line parser. Arguments are added with AddArguments (directly or through
// Register) and the command line is parsed once with Parse; after that the Provider is read-only.
type Provider struct {
	name, description string
	prefixChars       string
	formatter         HelpFormatter
	stdout, stderr    io.Writer
	exit              func(code int)

	cmd *cobra.Command

	positionals, options *section
	sections             []*section // in display order
	named                map[string]*section
	actions              []*action
	optionStrings        map[string]*action
	positionalDests      map[string]*action

	argv      []string
	assigned  map[*action][]string
	ns        *Namespace
	parsed    bool
	helpShown bool
}

// ProviderOption is a function that can be used to modify a Provider.
type ProviderOption func(*Provider)

// WithDescription sets the text displayed after the usage line.
func WithDescription(d string) ProviderOption { return func(p *Provider) { p.description = d } }

// WithFormatter sets the help formatter (PlainFormatter by default).
func WithFormatter(f HelpFormatter) ProviderOption { return func(p *Provider) { p.formatter = f } }

// WithOutput sets the writers for the help output and the error reports.
func WithOutput(stdout, stderr io.Writer) ProviderOption {
	return func(p *Provider) { p.stdout, p.stderr = stdout, stderr }
}

// WithExitFunc replaces os.Exit, used by ParseOrExit.
func WithExitFunc(fn func(code int)) ProviderOption { return func(p *Provider) { p.exit = fn } }

// NewProvider creates a Provider for the program name. The "-h, --help" flag is always registered.
func NewProvider(name string, opts ...ProviderOption) *Provider {
	var p = &Provider{
		name:            name,
		prefixChars:     DefaultPrefixChars,
		formatter:       PlainFormatter,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		exit:            os.Exit,
		named:           make(map[string]*section),
		optionStrings:   make(map[string]*action),
		positionalDests: make(map[string]*action),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.positionals = &section{title: "positional arguments"}
	p.options = &section{title: "options"}
	p.sections = []*section{p.positionals, p.options}

	p.cmd = &cobra.Command{
		Use:               name,
		Long:              p.description,
		Args:              p.bindPositionals,
		PersistentPreRunE: p.rootOnly,
		RunE:              p.collect,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	p.cmd.SetOut(p.stdout)
	p.cmd.SetErr(p.stderr)
	p.cmd.SetHelpFunc(func(*cobra.Command, []string) {
		p.helpShown = true
		_, _ = fmt.Fprint(p.stdout, p.Help())
	})
	p.cmd.SetUsageFunc(func(*cobra.Command) error {
		_, err := fmt.Fprintln(p.stderr, p.Usage())

		return err
	})
	p.cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })

	// cobra uses an existing "help" flag instead of declaring its own
	if err := p.addOptional(nil, []string{"-h", "--help"}, Options{
		Action: StoreTrue,
		Help:   "show this help message and exit",
	}); err != nil {
		panic(err) // will never happen
	}

	p.actions[len(p.actions)-1].builtin = true

	return p
}

// Name returns the program name.
func (p *Provider) Name() string { return p.name }

// Namespace returns the parsed values (nil before a successful Parse).
func (p *Provider) Namespace() *Namespace { return p.ns }

// AddArguments registers the arguments. A zero group adds them to the top-level set; otherwise they are
// displayed under the group section, created on the first use of the group name. Every group without a name
// gets its own section.
//
// Malformed arguments (missing names, conflicting option strings, unsupported option combinations) are
// reported as errors. Arguments registered before the failing one stay registered.
func (p *Provider) AddArguments(group Group, list ...Argument) error {
	if p.parsed {
		return ErrSealed
	}

	var target = p.section(group)

	for _, arg := range list {
		var flags, opts = arg.Render(p.prefixChars)

		var err error

		if flags == nil {
			err = p.addPositional(target, opts)
		} else {
			err = p.addOptional(target, flags, opts)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// section returns the help section for the group (nil for the top-level set).
func (p *Provider) section(group Group) *section {
	if group.IsZero() {
		return nil
	}

	if s, ok := p.named[group.Name]; ok {
		return s
	}

	var s = &section{title: group.Name, description: group.Description}

	if group.Name != "" {
		p.named[group.Name] = s
	}

	p.sections = append(p.sections, s)

	return s
}

// register adds the action to the section; the top-level actions go to the positional or the options section.
func (p *Provider) register(s *section, a *action) {
	switch {
	case s != nil:
	case a.positional():
		s = p.positionals
	default:
		s = p.options
	}

	s.actions = append(s.actions, a)
	p.actions = append(p.actions, a)
}

func (p *Provider) addPositional(s *section, opts Options) error {
	var dest = opts.Dest

	if dest == "" {
		return errors.New("missing name or dest for positional argument")
	}

	if opts.Required {
		return fmt.Errorf("argument %s: 'required' is an invalid argument for positionals", dest)
	}

	if opts.Action != actionUnset && opts.Action != Store {
		return fmt.Errorf("argument %s: %s action is not supported for positional arguments", dest, opts.Action)
	}

	if opts.Nargs.pattern == 'N' && opts.Nargs.count <= 0 {
		return fmt.Errorf("argument %s: nargs for store actions must be > 0", dest)
	}

	if _, exists := p.positionalDests[dest]; exists {
		return fmt.Errorf("argument %s: conflicting positional argument", dest)
	}

	def, err := opts.Type.coerceDefault(opts.Default, !opts.Nargs.scalar())
	if err != nil {
		return fmt.Errorf("argument %s: %w", dest, err)
	}

	var a = &action{dest: dest, opts: opts, kind: opts.Type.orString(), def: def}

	p.positionalDests[dest] = a
	p.register(s, a)

	return nil
}

func (p *Provider) addOptional(s *section, flags []string, opts Options) error { //nolint:funlen,gocyclo
	var (
		name        = strings.Join(flags, "/")
		long, short []string
	)

	for _, f := range flags {
		if !hasPrefixChar(f, p.prefixChars) || strings.Trim(f, p.prefixChars) == "" {
			return fmt.Errorf("invalid option string %q: must start with a character %q", f, p.prefixChars)
		}

		if _, exists := p.optionStrings[f]; exists {
			return fmt.Errorf("argument %s: conflicting option string: %s", name, f)
		}

		switch {
		case strings.HasPrefix(f, "--"):
			long = append(long, f[2:])
		case len(f) == 2: //nolint:mnd
			short = append(short, f[1:])
		default:
			return fmt.Errorf("invalid option string %q: single-dash options must be one character long", f)
		}
	}

	if opts.Nargs.IsSet() {
		return fmt.Errorf("argument %s: nargs is not supported for optional arguments", name)
	}

	if !opts.Action.takesValue() && (opts.Type != kindUnset || opts.Choices != nil) {
		return fmt.Errorf("argument %s: %s action does not take type or choices", name, opts.Action)
	}

	var dest = opts.Dest

	if dest == "" {
		if len(long) > 0 {
			dest = strings.ReplaceAll(long[0], "-", "_")
		} else {
			dest = short[0]
		}
	}

	var (
		a        = &action{flags: flags, dest: dest, opts: opts, kind: opts.Type.orString()}
		noOptDef string
	)

	switch opts.Action {
	case actionUnset, Store:
		def, err := a.kind.coerceDefault(opts.Default, false)
		if err != nil {
			return fmt.Errorf("argument %s: %w", name, err)
		}

		a.def, a.value = def, &storeValue{kind: a.kind, choices: opts.Choices, value: def}

	case Append:
		def, err := a.kind.coerceDefault(opts.Default, true)
		if err != nil {
			return fmt.Errorf("argument %s: %w", name, err)
		}

		a.def, a.value = def, &appendValue{kind: a.kind, choices: opts.Choices, values: anyList(def)}

	case StoreTrue, StoreFalse:
		var on = opts.Action == StoreTrue

		a.def = !on
		if opts.Default != nil {
			a.def = opts.Default
		}

		a.value, noOptDef = &constValue{on: on, value: a.def}, "true"

	case StoreConst:
		a.def, a.value, noOptDef = opts.Default, &constValue{on: opts.Const, value: opts.Default}, "true"

	case Count:
		var n int

		if opts.Default != nil {
			v, ok := opts.Default.(int)
			if !ok {
				return fmt.Errorf("argument %s: default %v is not a valid int", name, opts.Default)
			}

			n = v
		}

		a.def, a.value, noOptDef = opts.Default, &countValue{n: n}, countIncrement

	case Version:
		if opts.Version == "" {
			return fmt.Errorf("argument %s: version action requires a version string", name)
		}

		a.value, noOptDef = &constValue{on: true, value: false}, "true"

	default:
		return fmt.Errorf("argument %s: unknown action %s", name, opts.Action)
	}

	// pflag supports one long name and one shorthand per flag, the rest are hidden aliases
	type pflagName struct{ name, shorthand string }

	var names []pflagName

	switch {
	case len(long) > 0 && len(short) > 0:
		names = append(names, pflagName{long[0], short[0]})
		long, short = long[1:], short[1:]
	case len(long) > 0:
		names = append(names, pflagName{long[0], ""})
		long = long[1:]
	}

	for _, l := range long {
		names = append(names, pflagName{l, ""})
	}

	for _, sh := range short {
		names = append(names, pflagName{sh, sh})
	}

	var fs = p.cmd.Flags()

	for _, n := range names {
		if fs.Lookup(n.name) != nil || (n.shorthand != "" && fs.ShorthandLookup(n.shorthand) != nil) {
			return fmt.Errorf("argument %s: conflicting option string: %s", name, n.name)
		}
	}

	for i, n := range names {
		var f = fs.VarPF(a.value, n.name, n.shorthand, opts.Help)

		f.NoOptDefVal, f.Hidden = noOptDef, i > 0
		a.pflags = append(a.pflags, f)
	}

	for _, f := range flags {
		p.optionStrings[f] = a
	}

	p.register(s, a)

	return nil
}

// anyList converts a typed slice into []any.
func anyList(v any) []any {
	if v == nil {
		return nil
	}

	var (
		rv  = reflect.ValueOf(v)
		out = make([]any, 0, rv.Len())
	)

	for i := range rv.Len() {
		out = append(out, rv.Index(i).Interface())
	}

	return out
}

// errVersionShown stops the command execution after the version output.
var errVersionShown = errors.New("version shown")

// Parse parses the command line (without the program name) and returns the values. It can be called only
// once; the Provider does not accept new arguments after that.
//
// ErrHelp is returned when the help or the version was printed. Errors caused by the user input are
// *UsageError.
func (p *Provider) Parse(ctx context.Context, argv []string) (*Namespace, error) {
	if p.parsed {
		return nil, ErrAlreadyParsed
	}

	p.parsed = true

	if ctx == nil {
		ctx = context.Background()
	} else if err := ctx.Err(); err != nil {
		return nil, err // do nothing if the context is already canceled
	}

	// cobra falls back to os.Args on nil
	p.argv = append(make([]string, 0, len(argv)), argv...)
	p.cmd.SetArgs(p.flagArgs(p.argv))

	cmd, err := p.cmd.ExecuteContextC(ctx)
	if cmd != p.cmd {
		// a positional token named like a cobra hidden command (e.g. "__complete") routes the command line there
		err = p.executeRoot()
	}

	if err != nil {
		if errors.Is(err, errVersionShown) {
			return nil, ErrHelp
		}

		return nil, usageErr(err)
	}

	if p.helpShown {
		return nil, ErrHelp
	}

	if p.ns == nil {
		return nil, errors.New("the command line was not processed")
	}

	return p.ns, nil
}

// errForeignCommand stops a command other than the root one before its action runs.
var errForeignCommand = errors.New("not the root command")

// rootOnly is the persistent pre-run hook of the root command, so it also runs for the commands cobra
// registers by itself.
func (p *Provider) rootOnly(cmd *cobra.Command, _ []string) error {
	if cmd != p.cmd {
		return errForeignCommand
	}

	return nil
}

// executeRoot executes the root command on the whole command line, bypassing the cobra command lookup.
func (p *Provider) executeRoot() error {
	if err := p.cmd.ParseFlags(p.flagArgs(p.argv)); err != nil {
		return err
	}

	help, err := p.cmd.Flags().GetBool("help")
	if err != nil {
		return err
	}

	if help {
		p.cmd.HelpFunc()(p.cmd, p.argv)

		return nil
	}

	var rest = p.cmd.Flags().Args()

	if err = p.cmd.ValidateArgs(rest); err != nil {
		return err
	}

	return p.collect(p.cmd, rest)
}

// ParseOrExit parses the command line and terminates the process on failure, the way ExitCode describes.
func (p *Provider) ParseOrExit(ctx context.Context, argv []string) *Namespace {
	ns, err := p.Parse(ctx, argv)
	if err != nil {
		p.exit(p.ExitCode(err))

		return nil
	}

	return ns
}

// ExitCode reports the Parse error and returns the process exit code: 0 for ErrHelp, 2 for usage errors
// (the usage line and the error message are written to the error output) and 1 for anything else (nothing
// is written).
func (p *Provider) ExitCode(err error) int {
	var ue *UsageError

	switch {
	case err == nil, errors.Is(err, ErrHelp):
		return 0
	case errors.As(err, &ue):
		_, _ = fmt.Fprintf(p.stderr, "%s\n%s: error: %s\n", p.Usage(), p.name, ue.Error())

		return 2 //nolint:mnd
	}

	return 1
}

// bindPositionals is the cobra.Command Args validator: it prints the version when asked, distributes the
// positional tokens and checks for missing arguments.
func (p *Provider) bindPositionals(*cobra.Command, []string) error {
	for _, a := range p.actions {
		if a.opts.Action == Version && a.changed() {
			if _, err := fmt.Fprintln(p.stdout, a.opts.Version); err != nil {
				return err
			}

			return errVersionShown
		}
	}

	var positionals = make([]*action, 0, len(p.positionalDests))

	for _, a := range p.actions {
		if a.positional() {
			positionals = append(positionals, a)
		}
	}

	assigned, pending, extras := allocate(p.runs(p.argv), positionals)

	var missing []string

	for _, a := range pending {
		if lo, _ := a.opts.Nargs.bounds(); lo > 0 {
			missing = append(missing, a.metavar())
		}
	}

	for _, a := range p.actions {
		if !a.positional() && a.opts.Required && !a.changed() {
			missing = append(missing, strings.Join(a.flags, "/"))
		}
	}

	if len(missing) > 0 {
		return usageErr(fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", ")))
	}

	if len(extras) > 0 {
		return usageErr(fmt.Errorf("unrecognized arguments: %s", strings.Join(extras, " ")))
	}

	p.assigned = assigned

	return nil
}

// collect is the cobra.Command action: it builds the Namespace.
func (p *Provider) collect(*cobra.Command, []string) error {
	var ns = newNamespace()

	for _, a := range p.actions {
		if a.builtin || a.opts.Action == Version {
			continue
		}

		if !a.positional() {
			ns.put(a.dest, a.value.get(), a.changed())

			continue
		}

		v, explicit, err := a.positionalValue(p.assigned[a])
		if err != nil {
			return usageErr(err)
		}

		ns.put(a.dest, v, explicit)
	}

	p.ns = ns

	return nil
}

// positionalValue coerces the tokens assigned to the positional argument.
func (a *action) positionalValue(tokens []string) (_ any, explicit bool, _ error) {
	if len(tokens) == 0 {
		switch {
		case a.def != nil:
			return a.def, false, nil
		case !a.opts.Nargs.scalar():
			return a.kind.list(nil), false, nil
		}

		return nil, false, nil
	}

	var values = make([]any, 0, len(tokens))

	for _, t := range tokens {
		if err := checkChoice(t, a.opts.Choices); err != nil {
			return nil, false, fmt.Errorf("argument %s: %w", a.metavar(), err)
		}

		v, err := a.kind.parse(t)
		if err != nil {
			return nil, false, fmt.Errorf("argument %s: %w", a.metavar(), err)
		}

		values = append(values, v)
	}

	if a.opts.Nargs.scalar() {
		return values[0], true, nil
	}

	return a.kind.list(values), true, nil
}
