// Package apierror provides the standardized error envelope for the API.
// All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details (stack traces, raw DB
// errors, etc.).
package apierror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Error codes, mirroring the persistence-layer taxonomy: constraint,
// missing record, referential integrity, validation.
const (
	CodeUniqueConstraint     = "UNIQUE_CONSTRAINT_VIOLATION"
	CodeRecordNotFound       = "RECORD_NOT_FOUND"
	CodeForeignKeyConstraint = "FOREIGN_KEY_CONSTRAINT"
	CodeRelatedRecordMissing = "RELATED_RECORD_MISSING"
	CodeValidation           = "VALIDATION_ERROR"
	CodeInternal             = "INTERNAL_ERROR"
)

// APIError is the canonical error payload for all 4xx/5xx responses.
// Field, when set, names the form field the error should be attached to.
type APIError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Field      string `json:"field,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

func New(code, msg string, status int) *APIError {
	return &APIError{Code: code, Message: msg, StatusCode: status}
}

// NewField tags an error with the offending field for inline form display.
func NewField(code, msg string, status int, field string) *APIError {
	return &APIError{Code: code, Message: msg, StatusCode: status, Field: field}
}

func Internal(msg string) *APIError {
	return New(CodeInternal, msg, http.StatusInternalServerError)
}

func NotFound(msg string) *APIError {
	return New(CodeRecordNotFound, msg, http.StatusNotFound)
}

func Duplicate(msg, field string) *APIError {
	return NewField(CodeUniqueConstraint, msg, http.StatusConflict, field)
}

// ValidationError wraps per-field validation failures from the request
// binding layer.
type ValidationError struct {
	Code       string            `json:"error"`
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Fields     map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{
		Code:       CodeValidation,
		Message:    "Validation failed",
		StatusCode: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

// FromDB translates GORM errors (with TranslateError enabled on the
// connection) into the client-facing taxonomy. Unknown errors become 500s
// with a generic message; the raw error is logged by the middleware, never
// returned.
func FromDB(err error, entity, field string) *APIError {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("The requested " + entity + " was not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Duplicate("A "+entity+" with this "+field+" already exists", field)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New(CodeForeignKeyConstraint,
			"Cannot perform this operation due to related records", http.StatusBadRequest)
	default:
		return Internal("A database error occurred")
	}
}

// AsAPIError returns err as *APIError when it is one, else wraps it as an
// internal error so handlers always have a status to write.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err.Error())
}
