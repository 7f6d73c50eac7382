package service

// Status is the closed set of outcomes a service run can report.
type Status string

const (
	StatusSuccess         Status = "SUCCESS"
	StatusFailure         Status = "FAILURE"
	StatusUnauthorized    Status = "UNAUTHORIZED"
	StatusNotFound        Status = "NOT_FOUND"
	StatusValidationError Status = "VALIDATION_ERROR"
	StatusConflict        Status = "CONFLICT"
	StatusInternalError   Status = "INTERNAL_ERROR"
)

// Output is the uniform envelope returned by every orchestrated operation.
// Data is populated only on SUCCESS; ErrorMessage only otherwise.
type Output[O any] struct {
	Status       Status `json:"status"`
	Data         *O     `json:"data"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Success wraps a typed result.
func Success[O any](data O) Output[O] {
	return Output[O]{Status: StatusSuccess, Data: &data}
}

// Failure wraps an unclassified error message.
func Failure[O any](message string) Output[O] {
	return Output[O]{Status: StatusFailure, ErrorMessage: message}
}

// Unauthorized wraps a denied or missing identity.
func Unauthorized[O any](message string) Output[O] {
	return Output[O]{Status: StatusUnauthorized, ErrorMessage: message}
}

// NotFound wraps a missing entity outcome.
func NotFound[O any](message string) Output[O] {
	return Output[O]{Status: StatusNotFound, ErrorMessage: message}
}

// ValidationError wraps a business rule violation.
func ValidationError[O any](message string) Output[O] {
	return Output[O]{Status: StatusValidationError, ErrorMessage: message}
}

// Conflict wraps a state collision outcome.
func Conflict[O any](message string) Output[O] {
	return Output[O]{Status: StatusConflict, ErrorMessage: message}
}

// InternalError wraps an unexpected condition.
func InternalError[O any](message string) Output[O] {
	return Output[O]{Status: StatusInternalError, ErrorMessage: message}
}
