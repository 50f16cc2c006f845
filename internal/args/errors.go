package args

import "errors"

var (
	// ErrHelp is returned by Provider.Parse when the help or the version was printed instead of parsing.
	ErrHelp = errors.New("help requested")

	// ErrSealed is returned when arguments are added after the command line was parsed.
	ErrSealed = errors.New("arguments can not be added after parsing")

	// ErrAlreadyParsed is returned by the second Provider.Parse call.
	ErrAlreadyParsed = errors.New("command line already parsed")

	// ErrNotImplemented is returned by modules that do not declare their arguments.
	ErrNotImplemented = errors.New("arguments are not implemented")
)

// UsageError is a command-line error caused by the user input (unknown flags, invalid values, missing
// arguments). It is reported together with the usage line.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// usageErr wraps err into the UsageError, if it is not one already.
func usageErr(err error) error {
	if err == nil {
		return nil
	}

	var ue *UsageError
	if errors.As(err, &ue) {
		return err
	}

	return &UsageError{Err: err}
}
