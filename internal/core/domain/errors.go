package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrValidation indicates a metadata field failed validation.
	// Recoverable: the user corrects the field and retries.
	ErrValidation = errors.New("invalid metadata")

	// ErrEmptyPayload indicates the canonical text was empty or
	// whitespace-only. Checked before the renderer is ever invoked.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrEncoding indicates the QR renderer rejected the payload,
	// e.g. the text exceeds the symbol capacity at the configured
	// error-correction level. Surfaced, not retried.
	ErrEncoding = errors.New("payload encoding failed")

	// ErrPayloadSchema indicates a scanned payload did not match the
	// versioned schema and cannot be parsed back into metadata.
	ErrPayloadSchema = errors.New("unrecognised payload schema")

	// ErrHostInsertion indicates the transactional document mutation
	// failed. The host rolls back the whole transaction: the document
	// gains neither the image type nor the placed instance.
	ErrHostInsertion = errors.New("host insertion failed")

	// ErrSheetNotFound indicates the requested sheet does not exist in
	// the host document.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrUnknownPolicy indicates an unrecognised placement policy name.
	ErrUnknownPolicy = errors.New("unknown placement policy")
)

// FieldError reports the first metadata field that failed validation,
// with a human-readable reason. It wraps ErrValidation so callers can
// classify it with errors.Is.
type FieldError struct {
	// Field is the schema name of the offending field.
	Field string

	// Reason explains the failure in user-facing terms.
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap classifies every field error as a validation error.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}
