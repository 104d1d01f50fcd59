package utils

import "net/http"

// ErrorKind classifies a failure; the wire status code is derived from it in
// exactly one place, RespondError.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindCapacity
	KindAuth
)

// AppError is the error type services return. The message is user-facing and
// travels to the client unchanged.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindCapacity:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func ValidationErr(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFoundErr(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ConflictErr(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func CapacityErr(message string) *AppError {
	return &AppError{Kind: KindCapacity, Message: message}
}

func AuthErr(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

// KindOf reports the kind of an error, KindInternal when it is not an
// AppError.
func KindOf(err error) ErrorKind {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Kind
	}
	return KindInternal
}
