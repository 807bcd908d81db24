package common

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure. Stable values: the HTTP boundary maps
// them to status codes and clients match on them.
type Kind string

const (
	KindUnsupportedFormat Kind = "UNSUPPORTED_FORMAT"
	KindExtractionFailed  Kind = "EXTRACTION_FAILED"
	KindEmptyDocument     Kind = "EMPTY_DOCUMENT"
	KindCompletionService Kind = "COMPLETION_SERVICE_ERROR"
	KindResponseRecovery  Kind = "RESPONSE_RECOVERY_FAILED"
	KindNormalization     Kind = "NORMALIZATION_FAILED"
	KindProfileStore      Kind = "PROFILE_STORE_ERROR"
	KindNotFound          Kind = "NOT_FOUND"
)

// Error is the single error shape every pipeline stage fails with.
// Raw carries the offending payload (e.g. the raw model response) for
// diagnostics; it is logged, never returned to clients verbatim.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Raw     string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// E builds an Error with the given kind, message and optional cause.
func E(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Ef builds an Error with a formatted message and no cause.
func Ef(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// RawOf extracts the Raw diagnostic payload from err, if any.
func RawOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Raw
	}
	return ""
}
