package trips

import "errors"

// errRequiredFields rejects a create that omits the two fields every trip
// must carry. The message doubles as the client-facing error text.
var errRequiredFields = errors.New("Title and duration are required")

// validationError wraps a schema validation failure so handlers can map it
// to a 400 instead of a store failure.
type validationError struct{ err error }

func (e validationError) Error() string { return "Trip validation failed: " + e.err.Error() }
func (e validationError) Unwrap() error { return e.err }

// IsValidation reports whether err came from draft validation rather than
// the store.
func IsValidation(err error) bool {
	if errors.Is(err, errRequiredFields) {
		return true
	}
	var ve validationError
	return errors.As(err, &ve)
}
