package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dice-registry/internal/api/shared/errors"
	"github.com/feral-file/ff-dice-registry/internal/logger"
)

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError(message))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, errors.NewUnauthorizedError(message))
}

// respondError maps an executor error to its status and logs unexpected failures
func respondError(c *gin.Context, err error) {
	status, apiErr := errors.FromError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	}
	c.JSON(status, apiErr)
}
