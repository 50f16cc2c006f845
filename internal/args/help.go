package args

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

type (
	// Help is the layout-independent content of the help output.
	Help struct {
		Prog        string
		Description string
		Usage       []string // usage line parts, options first
		Sections    []HelpSection
	}

	// HelpSection is a titled list of arguments.
	HelpSection struct {
		Title       string
		Description string
		Entries     []HelpEntry
	}

	// HelpEntry describes one argument.
	HelpEntry struct {
		Invocation  string // e.g. "-d DEFAULT_DIMENSION, --default-dimension DEFAULT_DIMENSION"
		Help        string
		Default     any
		ShowDefault bool // whether the default is worth displaying for this argument
	}

	// HelpFormatter renders the help output of a Provider.
	HelpFormatter interface {
		FormatUsage(Help) string
		FormatHelp(Help) string
	}
)

var (
	// PlainFormatter renders the help text as is.
	PlainFormatter HelpFormatter = textFormatter{} //nolint:gochecknoglobals

	// DefaultsFormatter appends the default value to the help of every argument that has one.
	DefaultsFormatter HelpFormatter = textFormatter{showDefaults: true} //nolint:gochecknoglobals
)

const (
	helpIndent      = "  "
	maxHelpPosition = 24
)

type textFormatter struct{ showDefaults bool }

func (textFormatter) FormatUsage(h Help) string {
	var b strings.Builder

	b.WriteString("usage: ")
	b.WriteString(h.Prog)

	for _, part := range h.Usage {
		b.WriteRune(' ')
		b.WriteString(part)
	}

	return b.String()
}

func (f textFormatter) FormatHelp(h Help) string { //nolint:funlen
	var b strings.Builder

	b.WriteString(f.FormatUsage(h))
	b.WriteRune('\n')

	if h.Description != "" {
		b.WriteRune('\n')
		b.WriteString(h.Description)
		b.WriteRune('\n')
	}

	// the help column is shared by all sections
	var longest int

	for _, s := range h.Sections {
		for _, e := range s.Entries {
			if l := utf8.RuneCountInString(helpIndent + e.Invocation); l > longest {
				longest = l
			}
		}
	}

	var column = min(longest+2, maxHelpPosition) //nolint:mnd

	for _, s := range h.Sections {
		if len(s.Entries) == 0 {
			continue
		}

		b.WriteRune('\n')

		if s.Title != "" {
			b.WriteString(s.Title)
			b.WriteString(":\n")
		}

		if s.Description != "" {
			b.WriteString(helpIndent)
			b.WriteString(s.Description)
			b.WriteString("\n\n")
		}

		for _, e := range s.Entries {
			var (
				invocation = helpIndent + e.Invocation
				text       = f.entryHelp(e)
			)

			b.WriteString(invocation)

			if text == "" {
				b.WriteRune('\n')

				continue
			}

			// too long invocations get the help on the next line
			if l := utf8.RuneCountInString(invocation); l+2 > column {
				b.WriteRune('\n')
				b.WriteString(strings.Repeat(" ", column))
			} else {
				b.WriteString(strings.Repeat(" ", column-l))
			}

			for i, line := range strings.Split(text, "\n") {
				if i > 0 {
					b.WriteRune('\n')
					b.WriteString(strings.Repeat(" ", column))
				}

				b.WriteString(line)
			}

			b.WriteRune('\n')
		}
	}

	return b.String()
}

func (f textFormatter) entryHelp(e HelpEntry) string {
	if !f.showDefaults || !e.ShowDefault || e.Help == "" {
		return e.Help
	}

	return fmt.Sprintf("%s (default: %s)", e.Help, formatDefault(e.Default))
}

// formatDefault formats the default value, lists as "[a, b]".
func formatDefault(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
		var items = make([]string, rv.Len())

		for i := range items {
			items[i] = fmt.Sprint(rv.Index(i).Interface())
		}

		return "[" + strings.Join(items, ", ") + "]"
	}

	return fmt.Sprint(v)
}

// help collects the Provider arguments into the Help.
func (p *Provider) help() Help {
	var h = Help{Prog: p.name, Description: p.description}

	for _, positional := range []bool{false, true} {
		for _, a := range p.actions {
			if a.positional() == positional {
				h.Usage = append(h.Usage, a.usage())
			}
		}
	}

	for _, s := range p.sections {
		var hs = HelpSection{Title: s.title, Description: s.description}

		for _, a := range s.actions {
			hs.Entries = append(hs.Entries, HelpEntry{
				Invocation:  a.invocation(),
				Help:        a.opts.Help,
				Default:     a.def,
				ShowDefault: a.showDefault(),
			})
		}

		h.Sections = append(h.Sections, hs)
	}

	return h
}

// Usage returns the usage line.
func (p *Provider) Usage() string { return p.formatter.FormatUsage(p.help()) }

// Help returns the full help output.
func (p *Provider) Help() string { return p.formatter.FormatHelp(p.help()) }

// metavar returns the value name: the explicit Metavar, the choices list, the destination for positionals
// or the upper-cased destination for options.
func (a *action) metavar() string {
	switch {
	case a.opts.Metavar != "":
		return a.opts.Metavar
	case len(a.opts.Choices) > 0:
		return "{" + strings.Join(a.opts.Choices, ",") + "}"
	case a.positional():
		return a.dest
	}

	return strings.ToUpper(a.dest)
}

// usage returns the usage line part, e.g. "[-d DEFAULT_DIMENSION]" or "paths [paths ...]".
func (a *action) usage() string {
	if a.positional() {
		var m = a.metavar()

		switch a.opts.Nargs.pattern {
		case '?':
			return "[" + m + "]"
		case '*':
			return "[" + m + " ...]"
		case '+':
			return m + " [" + m + " ...]"
		case 'N':
			return strings.TrimSpace(strings.Repeat(m+" ", a.opts.Nargs.count))
		}

		return m
	}

	var part = a.flags[0]

	if a.opts.Action.takesValue() {
		part += " " + a.metavar()
	}

	if !a.opts.Required {
		part = "[" + part + "]"
	}

	return part
}

// invocation returns the argument names for the help column.
func (a *action) invocation() string {
	if a.positional() {
		return a.metavar()
	}

	if !a.opts.Action.takesValue() {
		return strings.Join(a.flags, ", ")
	}

	var parts = make([]string, len(a.flags))

	for i, f := range a.flags {
		parts[i] = f + " " + a.metavar()
	}

	return strings.Join(parts, ", ")
}

// showDefault follows the common convention: options show their defaults, positionals only when they
// may be omitted.
func (a *action) showDefault() bool {
	if a.builtin || a.def == nil {
		return false
	}

	return !a.positional() || a.opts.Nargs.pattern == '?' || a.opts.Nargs.pattern == '*'
}
