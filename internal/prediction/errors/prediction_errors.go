package predictionerrors

import (
	"net/http"

	"github.com/mirak10/PeopleIQ/internal/shared/apperror"
)

var (
	ErrPredictionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Prediction not found",
		http.StatusNotFound,
	)
	ErrDepartmentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Department is required",
		http.StatusBadRequest,
	)
	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"Prediction batch is empty",
		http.StatusBadRequest,
	)
)
