package middleware

import (
	"errors"
	"net/http"

	"project-request-backend/internal/delivery/http/response"
	"project-request-backend/pkg/apperror"
	"project-request-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgUnexpected = "An unexpected error occurred. Please try again later."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		// AppError causes are logged where they arise, with their context.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("Internal Server Error",
			"request_id", requestID,
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, msgUnexpected)
	}
}
