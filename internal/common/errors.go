package common

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound              = errors.New("requested resource not found")
	ErrUnauthorized          = errors.New("unauthorized access")
	ErrForbidden             = errors.New("forbidden access")
	ErrBadRequest            = errors.New("bad request")
	ErrValidation            = errors.New("validation failed")
	ErrDuplicateKey          = errors.New("username or email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token has expired")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrInternalServer        = errors.New("internal server error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
// Credential, validation, duplicate and verification-token failures all map
// to 400 so the response never distinguishes "no such user" from "wrong
// password".
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrDuplicateKey) ||
		errors.Is(err, ErrInvalidOrExpiredToken) || errors.Is(err, ErrNotFound) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}

	if mongo.IsDuplicateKeyError(err) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
