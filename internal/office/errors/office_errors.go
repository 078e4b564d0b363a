package officeerrors

import (
	"net/http"

	"go-assetms/internal/shared/apperror"
)

var (
	ErrOfficeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Office not found",
		http.StatusNotFound,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)
	ErrInvalidOfficeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid office ID",
		http.StatusBadRequest,
	)
)
