package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrUnknownPackage       = errors.New("unknown package")
	ErrNotConfigured        = errors.New("not configured")
	ErrNoProductConfigured  = errors.New("no product id configured: set WAVE_PRODUCT_ID or a per-package WAVE_PRODUCT_ID_<KEY> variable")
)

// InputError is a single field-level error reported by the accounting API.
type InputError struct {
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// WaveError is the single error shape for a failed Wave call. Transport
// failures (non-2xx) and GraphQL-level failures (top-level errors array,
// didSucceed=false) all collapse into it, keeping the ordered field-level
// descriptors available for reporting.
type WaveError struct {
	Message     string
	InputErrors []InputError
}

func (e *WaveError) Error() string {
	return e.Message
}

// FirstInputError returns the first field-level message, or a generic one.
func (e *WaveError) FirstInputError() string {
	if len(e.InputErrors) > 0 {
		return e.InputErrors[0].Message
	}

	return "unknown error"
}

func NewWaveError(msg string, inputErrors []InputError) *WaveError {
	return &WaveError{Message: msg, InputErrors: inputErrors}
}

// ErrorDetails extracts the field-level descriptors from err when it wraps a
// WaveError, else nil.
func ErrorDetails(err error) []InputError {
	var waveErr *WaveError
	if errors.As(err, &waveErr) {
		return waveErr.InputErrors
	}

	return nil
}

// JoinInputErrors renders the descriptors as a single human-readable string.
func JoinInputErrors(inputErrors []InputError) string {
	parts := make([]string, 0, len(inputErrors))

	for _, ie := range inputErrors {
		if ie.Code != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", ie.Code, ie.Message))
			continue
		}

		parts = append(parts, ie.Message)
	}

	return strings.Join(parts, "; ")
}
