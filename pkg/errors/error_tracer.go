package errors

import "github.com/pkg/errors"

// ErrorTracer is what the usecases log: Message names the step that failed
// and Err keeps the cause together with the stack it was first traced at.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates a tracer for the step named by message. Call Wrap to attach the cause.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{Message: message}
}

// TracerFromError traces err under its own message.
func TracerFromError(err error) *ErrorTracer {
	return NewTracer(err.Error()).Wrap(err)
}

// StackTracer is implemented by errors created through github.com/pkg/errors.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap records err as the cause. A stack is captured here unless err already has one.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	if _, ok := err.(StackTracer); ok {
		e.Err = err
		return e
	}
	e.Err = errors.WithStack(err)
	return e
}

// StackTrace returns the stack of the cause, nil before Wrap.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if st, ok := e.Err.(StackTracer); ok {
		return st.StackTrace()
	}
	return nil
}
