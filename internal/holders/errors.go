package holders

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for the holders package.
var (
	// ErrTransport matches any TransportError via errors.Is.
	ErrTransport = constError("transport failure")

	// ErrNilFetcher is returned by NewLoader when no fetcher is supplied.
	ErrNilFetcher = constError("fetcher is required")

	// ErrInvalidPageSize is returned by NewLoader for a page size below 1.
	ErrInvalidPageSize = constError("page size must be positive")
)

// TransportError is the only failure kind the Loader recognizes. Timeouts,
// HTTP status failures and decode failures all collapse into it.
type TransportError struct {
	// Op names the failed operation, e.g. "fetch holders".
	Op string

	// Cursor is the cursor the failed request was issued with ("" for the first page).
	Cursor string

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	if e.Cursor == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s (cursor %s): %v", e.Op, e.Cursor, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
