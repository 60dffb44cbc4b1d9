package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"northern-forge-site/internal/delivery/http/response"
	"northern-forge-site/pkg/apperror"
	"northern-forge-site/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"request_id", requestID,
					"path", c.Request.URL.Path,
					"status", appErr.Code,
					"error", err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Internal details stay in the log
		logger.Log.Error("unhandled error",
			"request_id", requestID,
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
