package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagetalk/comment-api/domain"
	"github.com/pagetalk/comment-api/internal/rest/response"
	"github.com/sirupsen/logrus"
)

// getStatusCode will get the HTTP status code for a domain error
func getStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a domain error onto the envelope. Unclassified failures
// are logged and surfaced as a generic internal error so nothing about the
// internals leaks to the caller.
func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		logrus.Error(err)
		c.JSON(code, response.Err(domain.ErrInternalServerError.Error()))
		return
	}
	c.JSON(code, response.Err(err.Error()))
}
