package apperr

import "errors"

// Kind classifies an application error so the service layer can map it to an
// envelope status without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Error is a classified application error. Business logic returns it instead
// of raising transport-specific failures; the orchestrator translates the
// kind into the result envelope.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports caller-supplied input failing a business rule.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound reports a missing entity.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict reports a state collision, e.g. a duplicate key.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unauthorized reports a denied identity.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Internal reports an unexpected condition that has no caller remedy.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// As unwraps err into *Error if it carries a classification.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
