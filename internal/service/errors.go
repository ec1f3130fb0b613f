package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Domain errors pass through wrapped, so domain sentinels still match
// 2. Service-level failures are wrapped in *ServiceError with the operation name
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNilDependency is returned by constructors when a required
	// collaborator is missing.
	ErrNilDependency = errors.New("required dependency is nil")
)

// ServiceError wraps an error with the service and operation that produced it.
type ServiceError struct {
	// Service is the name of the service, e.g. "reading"
	Service string
	// Op is the operation that failed, e.g. "calculate_pillars"
	Op string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError. It returns nil when err is nil.
func NewServiceError(service, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Service: service,
		Op:      op,
		Err:     err,
	}
}
