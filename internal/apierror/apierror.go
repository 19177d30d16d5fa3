// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package so storage errors
// never reach a response body.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError names the fields that failed validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}

// NewFieldError reports a single invalid field with a readable message.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Detail: msg, Fields: map[string]string{field: msg}}
}

// ConflictError is returned when an operation needs an explicit
// confirmation, e.g. deleting a product that still has purchases.
type ConflictError struct {
	Detail  string `json:"detail"`
	Compras int64  `json:"compras"`
}

func NewConflict(msg string, compras int64) *ConflictError {
	return &ConflictError{Detail: msg, Compras: compras}
}
