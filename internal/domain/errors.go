package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrStore        ErrorCode = "STORE_ERROR"

	// Generation pipeline errors
	ErrNoThemesFound          ErrorCode = "NO_THEMES_FOUND"
	ErrLLMServiceError        ErrorCode = "LLM_SERVICE_ERROR"
	ErrMalformedModelOutput   ErrorCode = "MALFORMED_MODEL_OUTPUT"
	ErrConceptWriteFailed     ErrorCode = "CONCEPT_WRITE_FAILED"
	ErrZeroQuestionsPersisted ErrorCode = "ZERO_QUESTIONS_PERSISTED"

	// Notification errors
	ErrNoPushTokens      ErrorCode = "NO_PUSH_TOKENS"
	ErrPushGatewayError  ErrorCode = "PUSH_GATEWAY_ERROR"
	ErrPushNotConfigured ErrorCode = "PUSH_NOT_CONFIGURED"
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

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code of the first DomainError in err's chain, or ErrInternal.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ErrInternal
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewStoreError(message string, err error) *DomainError {
	return NewError(ErrStore, message, err)
}

func NewNoThemesFoundError() *DomainError {
	return NewError(ErrNoThemesFound, "No themes found", nil)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(ErrLLMServiceError, "Failed to process with LLM service", err)
}

func NewMalformedModelOutputError(message string, err error) *DomainError {
	return NewError(ErrMalformedModelOutput, message, err)
}

func NewConceptWriteError(err error) *DomainError {
	return NewError(ErrConceptWriteFailed, "Failed to insert concept", err)
}

func NewZeroQuestionsPersistedError(conceptName string, cleanupErr error) *DomainError {
	if cleanupErr != nil {
		return NewError(ErrZeroQuestionsPersisted,
			fmt.Sprintf("No valid question generated for %q, concept cleanup failed", conceptName), cleanupErr)
	}
	return NewError(ErrZeroQuestionsPersisted,
		fmt.Sprintf("No valid question generated for %q, concept deleted", conceptName), nil)
}

func NewNoPushTokensError(userID string) *DomainError {
	return NewError(ErrNoPushTokens, "No FCM tokens found for this user", fmt.Errorf("user %s", userID))
}

func NewPushGatewayError(err error) *DomainError {
	return NewError(ErrPushGatewayError, "Failed to dispatch push notification", err)
}

func NewPushNotConfiguredError() *DomainError {
	return NewError(ErrPushNotConfigured, "Push notifications are not configured", nil)
}
