package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "founder-net.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps an error to its HTTP shape. Validation failures become a 422
// carrying the per-field reasons; known domain sentinels get their status;
// anything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	if verr, ok := domainerrors.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":   domainerrors.CodeValidationFailed,
			"errors": verr.Fields,
		})
		return
	}

	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status, code := statusFor(err)
	c.JSON(status, gin.H{
		"code":    code,
		"message": messageFor(status, err),
	})
}

// ErrorWithStatus sends an error response with an explicit status and code
func ErrorWithStatus(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound, domainerrors.CodeNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict, domainerrors.CodeConflict
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, domainerrors.CodeInvalidCredentials
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized, domainerrors.CodeUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden, domainerrors.CodeForbidden
	case errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrNotFollowable),
		errors.Is(err, domainerrors.ErrNotCommentable):
		return http.StatusBadRequest, domainerrors.CodeBadRequest
	}
	return http.StatusInternalServerError, domainerrors.CodeInternal
}

func messageFor(status int, err error) string {
	if status == http.StatusInternalServerError {
		// Internal detail stays in the logs
		return "internal server error"
	}
	return err.Error()
}
