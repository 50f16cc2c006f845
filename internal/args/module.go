package args

import "fmt"

type (
	// Registrar accepts argument registrations. Provider is the main implementation.
	Registrar interface {
		AddArguments(group Group, list ...Argument) error
	}

	// Module is an independent unit of command-line surface. A module without arguments must return an
	// explicit empty slice.
	Module interface {
		Arguments() ([]Argument, error)
	}

	// Grouper is implemented by modules whose arguments are displayed under their own help section.
	Grouper interface {
		ArgumentGroup() Group
	}
)

// UnimplementedModule can be embedded to satisfy the Module interface. Its Arguments returns
// ErrNotImplemented, so a module that forgets to declare its arguments fails the registration.
type UnimplementedModule struct{}

// Arguments always returns ErrNotImplemented.
func (UnimplementedModule) Arguments() ([]Argument, error) { return nil, ErrNotImplemented }

// Register asks every module for its arguments and group, and adds them to the registrar. Modules are
// registered in the given order; the first failure stops the registration.
func Register(r Registrar, modules ...Module) error {
	for _, m := range modules {
		list, err := m.Arguments()
		if err != nil {
			return fmt.Errorf("%T: %w", m, err)
		}

		var group Group

		if g, ok := m.(Grouper); ok {
			group = g.ArgumentGroup()
		}

		if err = r.AddArguments(group, list...); err != nil {
			return fmt.Errorf("%T: %w", m, err)
		}
	}

	return nil
}
