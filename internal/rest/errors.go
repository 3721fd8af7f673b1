package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/rest/middleware"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode maps the domain errors to http status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyLiked),
		errors.Is(err, domain.ErrNotLiked),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrPersistenceConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPersistenceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
}

// actingUser returns the identity set by middleware.AuthMiddleware
func actingUser(c *gin.Context) (domain.User, bool) {
	uid := c.GetString(middleware.ContextUserID)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return domain.User{}, false
	}
	return domain.User{
		ID:    uid,
		Name:  c.GetString(middleware.ContextUserName),
		Email: c.GetString(middleware.ContextUserEmail),
	}, true
}
