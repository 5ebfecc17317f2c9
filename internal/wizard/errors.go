package wizard

import "errors"

var (
	errInvalidStep = errors.New("wizard: submit is only available from the review step")
	errValidation  = errors.New("wizard: validation failed")
)

// IsValidation reports whether err is a local validation failure rather than
// a transport error from the submission itself.
func IsValidation(err error) bool {
	return errors.Is(err, errValidation) || errors.Is(err, errInvalidStep)
}
