package utils

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuth
	KindNotFound
	KindUpstream
	KindUnexpected
)

const msgUnexpected = "Terjadi kesalahan pada server"

// AppError membawa jenis error sampai ke boundary handler.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func ValidationError(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

func AuthError(message string) error {
	return &AppError{Kind: KindAuth, Message: message}
}

func NotFoundError(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

// UpstreamError dipakai ketika database melaporkan kegagalan; pesan aslinya ikut dikirim sebagai details.
func UpstreamError(message string, err error) error {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

func UnexpectedError(err error) error {
	return &AppError{Kind: KindUnexpected, Message: msgUnexpected, Err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
