package uric

import "github.com/ghettovoice/uric/internal/errorutil"

// Error kinds returned by the package. All failures are synchronous and
// deterministic for a given input, so retrying without changing the input is
// pointless. Match with errors.Is.
const (
	// ErrInvalidArgument reports a malformed input URI, an invalid
	// percent-encoding sequence or an illegal component character.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrIllegalState reports an operation that is invalid in the value's
	// current state: expanding an already encoded value, or reading a port
	// that still holds an unresolved template placeholder.
	ErrIllegalState = errorutil.ErrIllegalState
	// ErrMissingVariable reports a template placeholder with no supplied
	// value, named or positional.
	ErrMissingVariable = errorutil.ErrMissingVariable
)
