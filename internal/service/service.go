// Package service is the generic execution framework: it authorizes a caller
// against a named operation, executes the operation's business logic, and
// normalizes every outcome into a uniform envelope the transport layer maps
// to protocol status codes.
package service

import (
	"context"
	"log/slog"

	"github.com/programmer-tapa/order-service/internal/domain/apperr"
	"github.com/programmer-tapa/order-service/internal/requestctx"
)

// Identity is the caller context for authorization. It is opaque to the
// framework beyond being handed to the Authorizer.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Authorizer decides whether an identity may run a named operation.
type Authorizer interface {
	IsAuthorized(ctx context.Context, identity Identity, operation string) bool
}

// Usecase is one operation's business logic, independent of transport and
// authorization. Implementations report rule violations as classified
// errors (apperr) and are free of envelope concerns.
type Usecase[I, O any] interface {
	Execute(ctx context.Context, input I) (O, error)
}

// Service orchestrates a single named operation: authorize, build the
// usecase for the given input, execute, classify the outcome. It holds no
// per-call state and is safe for concurrent use.
type Service[I, O any] struct {
	operation string
	auth      Authorizer
	build     func(input I) Usecase[I, O]
	logger    *slog.Logger
}

// New constructs a Service. The build factory runs per call, letting the
// strategy backing the usecase vary with the input. Strategy resolution
// errors belong at startup: factories are expected to close over an already
// resolved strategy, not to fail at request time.
func New[I, O any](operation string, auth Authorizer, build func(input I) Usecase[I, O], logger *slog.Logger) *Service[I, O] {
	return &Service[I, O]{operation: operation, auth: auth, build: build, logger: logger}
}

// Operation returns the canonical operation name used for authorization.
func (s *Service[I, O]) Operation() string {
	return s.operation
}

// Run executes the operation for the given caller. A nil identity short-
// circuits to UNAUTHORIZED without consulting the authorizer or touching
// business logic. The caller always receives a well-formed envelope.
func (s *Service[I, O]) Run(ctx context.Context, identity *Identity, input I) Output[O] {
	logger := requestctx.Logger(ctx, s.logger)

	if identity == nil {
		return Unauthorized[O]("User is not authorized to perform this action")
	}
	if !s.auth.IsAuthorized(ctx, *identity, s.operation) {
		logger.Warn("authorization denied",
			slog.String("operation", s.operation),
			slog.String("identity_id", identity.ID),
			slog.String("role", identity.Role),
		)
		return Unauthorized[O]("User is not authorized to perform this action")
	}

	usecase := s.build(input)
	result, err := usecase.Execute(ctx, input)
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			return classified[O](appErr)
		}
		logger.Error("usecase failed",
			slog.String("operation", s.operation),
			slog.String("error", err.Error()),
		)
		return Failure[O](err.Error())
	}

	return Success(result)
}

func classified[O any](err *apperr.Error) Output[O] {
	switch err.Kind {
	case apperr.KindValidation:
		return ValidationError[O](err.Message)
	case apperr.KindNotFound:
		return NotFound[O](err.Message)
	case apperr.KindConflict:
		return Conflict[O](err.Message)
	case apperr.KindUnauthorized:
		return Unauthorized[O](err.Message)
	default:
		return InternalError[O](err.Message)
	}
}
