package apperror

import "net/http"

// Kind classifies an error by whether the client can correct it.
type Kind string

const (
	KindBadRequest Kind = "bad_request"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	kind := KindInternal
	if code >= 400 && code < 500 {
		kind = KindBadRequest
	}
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Internal wraps err behind a message that is safe to show to clients.
func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
