// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/services/inventory/domain"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	resp := ErrorResponse{Error: err.Error(), Field: domain.FieldOf(err)}
	if kind := domain.KindOf(err); kind != domain.KindUnknown {
		resp.Kind = kind.String()
	}
	if status == http.StatusInternalServerError {
		resp.Error = http.StatusText(status)
	}
	httpx.JSON(w, status, resp)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPartNotFound), errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrDeleteBlocked):
		return http.StatusConflict // 409
	case errors.Is(err, domain.ErrNotANumber), errors.Is(err, domain.ErrNoSelection):
		return http.StatusBadRequest // 400
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrStockOutOfBounds),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrUnknownSource):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
