package errors

import stderrors "errors"

// ErrorDetails is an error that is safe to show to API clients.
// Code is one of the ErrorCode values; Field names the offending input, e.g. "pair" or "from".
type ErrorDetails struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
}

// NewErrorDetails creates a new ErrorDetails.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

func (e *ErrorDetails) Error() string {
	return e.Message
}

// AsErrorDetails returns the first ErrorDetails in err's chain.
func AsErrorDetails(err error) (*ErrorDetails, bool) {
	var details *ErrorDetails
	if !stderrors.As(err, &details) {
		return nil, false
	}
	return details, true
}

// ErrorCodeEquals reports whether err, or an error it wraps, is an ErrorDetails with code.
func ErrorCodeEquals(err error, code string) bool {
	details, ok := AsErrorDetails(err)
	return ok && details.Code == code
}
