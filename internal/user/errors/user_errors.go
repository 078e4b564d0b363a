package usererrors

import (
	"net/http"

	"go-assetms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee with this email and number not found",
		http.StatusNotFound,
	)
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User account already exists for this employee",
		http.StatusConflict,
	)
	// ErrInvalidCredentials is the single error for every login failure:
	// unknown email and wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
)
