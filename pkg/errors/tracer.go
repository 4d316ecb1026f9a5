// Package errors carries stack traces across usecase boundaries so the
// logger can surface them without the call sites formatting anything.
package errors

import "github.com/pkg/errors"

// StackTracer is satisfied by errors that can report where they were raised.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer wraps an error with a message and a captured stack trace.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates an ErrorTracer with the provided message and a stack
// trace captured at the call site.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{
		Message: message,
		Err:     errors.New(message),
	}
}

// TracerFromError wraps an existing error, capturing a stack trace unless the
// error already carries one.
func TracerFromError(err error) *ErrorTracer {
	tracer := &ErrorTracer{Message: err.Error(), Err: err}
	if _, ok := err.(StackTracer); !ok {
		tracer.Err = errors.WithStack(err)
	}
	return tracer
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap attaches an underlying error, preserving its stack trace when present.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = err
	if _, ok := err.(StackTracer); !ok {
		e.Err = errors.WithStack(err)
	}
	return e
}

// StackTrace returns the stack trace of the underlying error, if any.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Err.(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
