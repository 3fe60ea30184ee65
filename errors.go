package openenum

import "errors"

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidArgument = "invalid_argument"
	CodeNoSuchElement   = "no_such_element"
)

// Issue represents a single usage error reported by this package. Both codes
// signal programmer error at the call site rather than a data condition:
// there is no degraded mode and nothing to retry.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
}

// Error renders the issue as "code: message".
func (i Issue) Error() string {
	return i.Code + ": " + i.Message
}

// AsIssue extracts an Issue from an error using errors.As internally.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var i Issue
	if errors.As(err, &i) {
		return i, true
	}
	return Issue{}, false
}
