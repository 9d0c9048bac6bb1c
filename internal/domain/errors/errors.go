package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreOperation   = errors.New("store operation failed")
	ErrFormClosed       = errors.New("form session closed")
	ErrDocumentNotSet   = errors.New("no document linked")
	ErrDocumentMissing  = errors.New("document not found")
	ErrOpenUnsupported  = errors.New("opening files is not supported")
	ErrDocumentOpen     = errors.New("document open failed")
)

// Error codes
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeStoreError      = "STORE_ERROR"
	CodeFormClosed      = "FORM_CLOSED"
	CodeDocumentNotSet  = "DOCUMENT_NOT_SET"
	CodeDocumentMissing = "DOCUMENT_MISSING"
	CodeOpenUnsupported = "OPEN_UNSUPPORTED"
	CodeDocumentOpen    = "DOCUMENT_OPEN_FAILED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// AppError carries a user-facing message next to the underlying cause.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

// Validation reports a missing required field.
func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

// Format reports a value that could not be parsed.
func Format(message string, cause error) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidFormat, message, fmt.Errorf("%w: %w", ErrInvalidFormat, cause))
}

// Store wraps a failed store operation. op names the operation, e.g. "add contract".
func Store(op string, cause error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeStoreError, op+" failed", fmt.Errorf("%w: %w", ErrStoreOperation, cause))
}

func FormClosed() *AppError {
	return NewAppError(http.StatusConflict, CodeFormClosed, "the editing session is already closed", ErrFormClosed)
}

func DocumentNotSet() *AppError {
	return NewAppError(http.StatusNotFound, CodeDocumentNotSet, "no document is linked to this contract", ErrDocumentNotSet)
}

func DocumentMissing(path string) *AppError {
	return NewAppError(http.StatusNotFound, CodeDocumentMissing, "the file was not found at "+path, ErrDocumentMissing)
}

func OpenUnsupported(cause error) *AppError {
	err := ErrOpenUnsupported
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrOpenUnsupported, cause)
	}
	return NewAppError(http.StatusUnprocessableEntity, CodeOpenUnsupported, "the operating system cannot open files automatically", err)
}

func DocumentOpen(cause error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeDocumentOpen, "an error occurred while opening the file", fmt.Errorf("%w: %w", ErrDocumentOpen, cause))
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal error", err)
}

// IsUserError reports whether err is a validation or format error, i.e. one
// the user can fix by correcting the input.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidFormat)
}
