package args

import (
	"regexp"
	"slices"
	"strings"
)

// negativeNumberRe matches the tokens that look like negative numbers ("-5", "-.5", "-1.25").
var negativeNumberRe = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// negativeNumber reports whether the token is a negative number to be taken as a positional value. That is
// the case unless some option string looks like a negative number too.
func (p *Provider) negativeNumber(tok string) bool {
	if !negativeNumberRe.MatchString(tok) {
		return false
	}

	for s := range p.optionStrings {
		if negativeNumberRe.MatchString(s) {
			return false
		}
	}

	return true
}

// scan returns the indexes of the positional tokens and the index of "--" (-1 without one). Option strings
// and the values they consume are skipped.
func (p *Provider) scan(argv []string) (positional []int, terminator int) {
	var fs = p.cmd.Flags()

	for i := 0; i < len(argv); i++ {
		var tok = argv[i]

		switch {
		case tok == "--":
			for j := i + 1; j < len(argv); j++ {
				positional = append(positional, j)
			}

			return positional, i

		case strings.HasPrefix(tok, "--"):
			name, _, withValue := strings.Cut(tok[2:], "=")

			if f := fs.Lookup(name); f != nil && f.NoOptDefVal == "" && !withValue {
				i++ // the next token is the flag value
			}

		case p.negativeNumber(tok):
			positional = append(positional, i)

		case len(tok) > 1 && tok[0] == '-':
			if shorthandsConsumeNext(p, tok[1:]) {
				i++
			}

		default:
			positional = append(positional, i)
		}
	}

	return positional, -1
}

// runs splits the command line into runs of consecutive positional tokens. Option strings and the values
// they consume end the current run; everything after "--" is one run.
func (p *Provider) runs(argv []string) [][]string {
	var (
		positional, _ = p.scan(argv)
		runs          [][]string
		cur           []string
	)

	for k, i := range positional {
		if k > 0 && i != positional[k-1]+1 {
			runs, cur = append(runs, cur), nil
		}

		cur = append(cur, argv[i])
	}

	if len(cur) > 0 {
		runs = append(runs, cur)
	}

	return runs
}

// flagArgs returns the command line for the flags parser. The negative numbers taken as positionals are moved
// behind "--", so pflag does not read them as shorthand flags.
func (p *Provider) flagArgs(argv []string) []string {
	var (
		positional, terminator = p.scan(argv)
		moved                  = make(map[int]struct{})
	)

	for _, i := range positional {
		if (terminator < 0 || i < terminator) && p.negativeNumber(argv[i]) {
			moved[i] = struct{}{}
		}
	}

	if len(moved) == 0 {
		return slices.Clone(argv)
	}

	var out, tail = make([]string, 0, len(argv)+1), make([]string, 0, len(moved))

	for i, tok := range argv {
		if _, ok := moved[i]; ok {
			tail = append(tail, tok)
		} else {
			out = append(out, tok)
		}
	}

	if terminator < 0 {
		out = append(out, "--")
	}

	return append(out, tail...)
}

// shorthandsConsumeNext reports whether the shorthand cluster (e.g. "md" for "-md") ends with a flag that
// takes its value from the next token.
func shorthandsConsumeNext(p *Provider, cluster string) bool {
	var fs = p.cmd.Flags()

	for i := range len(cluster) {
		var f = fs.ShorthandLookup(cluster[i : i+1])

		if f == nil {
			return false // unknown shorthand, reported by the flags parser
		}

		if f.NoOptDefVal != "" {
			continue
		}

		return i == len(cluster)-1 // otherwise the value is attached ("-d300" or "-d=300")
	}

	return false
}

// allocate distributes the runs among the positional arguments, in order. Each run is matched against as
// many pending positionals as possible; positionals at the end of a match that got no tokens stay pending,
// so a later run can fill them. Tokens no positional accepts are returned as extras.
func allocate(runs [][]string, positionals []*action) (
	assigned map[*action][]string,
	pending []*action,
	extras []string,
) {
	assigned, pending = make(map[*action][]string, len(positionals)), positionals

	for _, run := range runs {
		var counts = match(len(run), pending)

		for len(counts) > 0 && counts[len(counts)-1] == 0 {
			counts = counts[:len(counts)-1]
		}

		var offset int

		for i, n := range counts {
			assigned[pending[i]] = run[offset : offset+n]
			offset += n
		}

		pending = pending[len(counts):]
		extras = append(extras, run[offset:]...)
	}

	return assigned, pending, extras
}

// match returns the tokens count for the longest prefix of positionals that can be satisfied with total
// tokens. Every positional takes as many tokens as it can while leaving enough for the ones after it.
func match(total int, positionals []*action) []int {
	for n := len(positionals); n > 0; n-- {
		if counts, ok := fit(total, positionals[:n]); ok {
			return counts
		}
	}

	return nil
}

func fit(total int, positionals []*action) ([]int, bool) {
	var (
		counts  = make([]int, len(positionals))
		minimum = make([]int, len(positionals)+1) // minimum[i] = tokens required by positionals[i:]
	)

	for i := len(positionals) - 1; i >= 0; i-- {
		lo, _ := positionals[i].opts.Nargs.bounds()
		minimum[i] = minimum[i+1] + lo
	}

	if minimum[0] > total {
		return nil, false
	}

	var left = total

	for i, a := range positionals {
		var (
			lo, hi = a.opts.Nargs.bounds()
			take   = left - minimum[i+1]
		)

		if hi >= 0 && take > hi {
			take = hi
		}

		if take < lo {
			return nil, false
		}

		counts[i], left = take, left-take
	}

	return counts, true
}
