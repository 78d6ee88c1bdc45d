package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError : операционная ошибка с HTTP статусом.
// Message безопасно отдавать клиенту, Err остается в логах
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Operational : можно ли показывать Message клиенту как есть
func (e *AppError) Operational() bool {
	return e.Code < http.StatusInternalServerError
}

func Validation(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: err}
}

// From достает AppError из цепочки ошибок.
// Все, что не размечено, считается внутренней ошибкой
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("внутренняя ошибка сервера", err)
}
