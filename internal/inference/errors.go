package inference

import "fmt"

// ValidationError represents a business-rule violation in the inbound
// payload, raised before any external call is made.
type ValidationError struct {
	Rule string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Rule)
}

// MalformedResponseError represents a model response that could not be
// parsed as the expected structure. RawText retains the original response
// for operator diagnosis; it is never exposed to callers.
type MalformedResponseError struct {
	RawText string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed model response: %v", e.Cause)
	}
	return "malformed model response"
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
