package scheme

import "errors"

var (
	// ErrInvalidFormat indicates an identifier without a "<system>-" prefix.
	ErrInvalidFormat = errors.New("invalid scheme format")

	// ErrUnsupportedSystem indicates an identifier whose system is not recognized.
	ErrUnsupportedSystem = errors.New("unsupported scheme system")

	// ErrSchemesNotInstalled indicates the installed scheme index is empty or absent.
	ErrSchemesNotInstalled = errors.New("schemes not installed")

	// ErrSchemeNotFound indicates the index has no entry for the requested scheme.
	ErrSchemeNotFound = errors.New("scheme not found")
)

// Error is an error whose message is shown to the user as-is.
// Kind is one of the sentinel errors above and is reachable with errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound returns the error reported for a scheme missing from the index.
func NotFound(name string) error {
	return &Error{Kind: ErrSchemeNotFound, Msg: "Scheme does not exist: " + name}
}

// NotInstalled returns the error reported when no schemes are installed.
func NotInstalled(binary string) error {
	return &Error{
		Kind: ErrSchemesNotInstalled,
		Msg:  "Schemes do not exist, run install and try again: `" + binary + " install`",
	}
}
