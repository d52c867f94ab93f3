package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "scheme-sense.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel domain errors map to their usual
// statuses; anything unrecognized becomes a 500 without leaking internals.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			appErr = domainerrors.NotFound("Resource not found")
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			appErr = domainerrors.Conflict("Resource already exists")
		case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrInvalidCredentials):
			appErr = domainerrors.Unauthorized("Unauthorized")
		case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
			appErr = domainerrors.BadRequest("Invalid input")
		default:
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message,
	})
}

// ErrorWithStatus sends an error response with an explicit status and code
func ErrorWithStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// Unauthorized is a shorthand for the 401 response used by middleware
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    domainerrors.CodeUnauthorized,
		"message": message,
		"error":   message,
	})
}

// Forbidden is a shorthand for the 403 response used by middleware
func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"code":    domainerrors.CodeForbidden,
		"message": message,
		"error":   message,
	})
}
