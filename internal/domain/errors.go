package domain

import "fmt"

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Authoring specific errors
	ErrSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	ErrAnswerOutOfRange ErrorCode = "ANSWER_OUT_OF_RANGE"
	ErrUnknownChoice    ErrorCode = "UNKNOWN_CHOICE"
	ErrPersistence      ErrorCode = "PERSISTENCE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewSessionNotFoundError(id string) *DomainError {
	return NewError(ErrSessionNotFound, fmt.Sprintf("Session not found: %s", id), nil)
}

func NewAnswerOutOfRangeError(k, count int) *DomainError {
	return NewError(ErrAnswerOutOfRange, fmt.Sprintf("Answer %d is out of range 1..%d", k, count), nil)
}

func NewUnknownChoiceError(data string) *DomainError {
	return NewError(ErrUnknownChoice, fmt.Sprintf("Unknown choice: %s", data), nil)
}

func NewPersistenceError(err error) *DomainError {
	return NewError(ErrPersistence, "Failed to persist draft", err)
}
