package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-desk.com/task-desk/internal/domain"
)

// StatusCode maps a domain error kind to the transport status. Anything that
// is not a domain error counts as internal.
func StatusCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func httpError(err error) error {
	return echo.NewHTTPError(StatusCode(err), err.Error())
}
