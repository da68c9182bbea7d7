package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors used with Mark to classify failures. Callers branch on
// these with errors.Is rather than string matching.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDatabase         = errors.New("database error")
	ErrInternal         = errors.New("internal error")
)

// InternalError is the error type carried through the application. It wraps
// a cause, a user-facing hint, and structured details safe to report.
type InternalError struct {
	err               error
	hint              string
	reportableDetails map[string]interface{}
	mark              error
}

// NewError starts a new error chain from a message
func NewError(message string) *InternalError {
	return &InternalError{err: errors.New(message)}
}

// NewErrorf starts a new error chain from a format string
func NewErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{err: errors.Newf(format, args...)}
}

// WithError starts a new error chain wrapping an existing error
func WithError(err error) *InternalError {
	return &InternalError{err: err}
}

// WithHint attaches a human-readable hint for API consumers
func (e *InternalError) WithHint(hint string) *InternalError {
	e.hint = hint
	return e
}

// WithHintf attaches a formatted human-readable hint
func (e *InternalError) WithHintf(format string, args ...interface{}) *InternalError {
	e.hint = errors.Newf(format, args...).Error()
	return e
}

// WithReportableDetails attaches structured details safe to expose to callers
func (e *InternalError) WithReportableDetails(details map[string]interface{}) *InternalError {
	e.reportableDetails = details
	return e
}

// Mark classifies the error against one of the sentinel errors and
// finalizes the chain
func (e *InternalError) Mark(sentinel error) error {
	e.mark = sentinel
	return e
}

func (e *InternalError) Error() string {
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

// Is lets errors.Is match both the wrapped cause and the sentinel mark
func (e *InternalError) Is(target error) bool {
	if e.mark != nil && errors.Is(e.mark, target) {
		return true
	}
	return errors.Is(e.err, target)
}

// Hint returns the user-facing hint, if any
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns the structured details, if any
func (e *InternalError) ReportableDetails() map[string]interface{} {
	return e.reportableDetails
}

// IsNotFound reports whether err is marked as a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is marked as a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsAlreadyExists reports whether err is marked as an already-exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidOperation reports whether err is marked as an invalid-operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}
