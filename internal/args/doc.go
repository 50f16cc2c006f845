// Package args composes command-line argument definitions contributed by independent modules into a single
// parser.
//
// An Argument is a passive description of one argument. A Provider owns the parser: modules push their
// arguments into it (optionally under a named help Group) and, once every module has registered, the
// Provider parses the command line exactly once and returns a Namespace with the typed values.
//
//	p := args.NewProvider("tool", args.WithFormatter(args.DefaultsFormatter))
//
//	if err := args.Register(p, rootModule, featureModule); err != nil {
//		return err
//	}
//
//	ns, err := p.Parse(ctx, os.Args[1:])
package args
