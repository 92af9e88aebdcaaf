package http

import (
	"errors"
	"net/http"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/pkg/errs"
)

// statusOf maps an application error onto an HTTP status code.
func statusOf(err error) int {
	switch {
	case commands.IsRejection(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
