package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bharatexplore/internal/app/models"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError maps a domain error onto an HTTP status and writes the
// JSON error body. Unrecognized errors become a 500 with a generic
// message so internals never leak to clients.
func RespondError(c *gin.Context, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	}
	if msg == "" {
		msg = err.Error()
	}
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}
