package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrUnauthorized - нет или невалидная идентичность
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "authentication required",
	}

	// ErrForbidden - аутентифицирован, но не хватает роли/владения
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "insufficient permissions",
	}

	// ErrNotFound - ресурс не найден или невидим для вызывающего
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrConflict - нарушение уникальности
	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "resource already exists",
	}

	// ErrValidation - некорректный ввод
	ErrValidation = &DomainError{
		Code:    "VALIDATION",
		Message: "invalid input",
	}

	// ErrInvitationExpired - приглашение просрочено
	ErrInvitationExpired = &DomainError{
		Code:    "EXPIRED",
		Message: "invitation has expired",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError создает ошибку CONFLICT с дополнительным контекстом
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Code:    "CONFLICT",
		Message: message,
	}
}

// NewValidationError создает ошибку VALIDATION с дополнительным контекстом
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}

// NewForbiddenError создает ошибку FORBIDDEN с дополнительным контекстом
func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Code:    "FORBIDDEN",
		Message: message,
	}
}
