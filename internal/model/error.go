package model

import (
	"errors"
	"fmt"
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes carried in ErrorResponse.Code
const (
	CodeValidation = "VALIDATION"
	CodeNotFound   = "NOT_FOUND"
	CodeUpstream   = "UPSTREAM"
	CodeInternal   = "INTERNAL"
)

var (
	// ErrNotFound is returned when the node has no record for the requested key
	ErrNotFound = errors.New("not found")
	// ErrAccountNotFound is returned when no local account has the requested address
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidMnemonic is returned when a mnemonic fails word list or checksum validation
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// ValidationError is an input error reported to the user before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError wraps a failure talking to the node's RPC or REST surface
type UpstreamError struct {
	Surface  string
	Endpoint string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Surface, e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError checks if err is (or wraps) an UpstreamError
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// ChainError is a non-zero result code returned by the chain
type ChainError struct {
	Code      uint32
	Codespace string
	Log       string
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("transaction failed: code %d", e.Code)
}
