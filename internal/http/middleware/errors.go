package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/response"
)

// MapError translates a domain error into an HTTP status and a safe message.
// Unmapped errors come back as 500 with a generic message; the caller decides
// whether to log the original.
func MapError(err error) (int, string) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Error()
	}
	var it *domain.InvalidTokenError
	if errors.As(err, &it) {
		return http.StatusUnauthorized, it.Error()
	}
	var fe *domain.InvalidFieldError
	if errors.As(err, &fe) {
		return http.StatusBadRequest, fe.Error()
	}
	var qe *domain.InvalidQueryError
	if errors.As(err, &qe) {
		return http.StatusBadRequest, qe.Error()
	}

	switch {
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, "wrong password"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already in use"
	case errors.Is(err, domain.ErrPhoneTaken):
		return http.StatusConflict, "phone already in use"
	case errors.Is(err, domain.ErrNameTaken):
		return http.StatusConflict, "name already in use"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorResponder is the single place request errors become HTTP responses.
// Handlers push errors with c.Error and return; nothing else writes error
// bodies. Unexpected errors are logged with their cause, which never reaches
// the client.
func ErrorResponder(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status, message := MapError(err)
		if status == http.StatusInternalServerError {
			logger.Error("unhandled request error",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}

		c.JSON(status, response.New(status, message))
	}
}

// NotFoundRoute handles requests for paths outside the route table.
func NotFoundRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.New(http.StatusNotFound, "path not found"))
	}
}
