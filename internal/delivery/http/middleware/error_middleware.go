package middleware

import (
	"errors"
	"net/http"

	"go-interview-report-backend/internal/delivery/http/response"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.FullPath()),
					zap.Int("status", appErr.Code),
					zap.Error(appErr.Err),
				)
			}
			message := appErr.Message
			if appErr.Code == http.StatusInternalServerError && appErr.Message == "Internal Server Error" {
				message = "An unexpected error occurred. Please try again later."
			}
			response.Error(c, appErr.Code, message, nil)
			return
		}

		// Internal details stay in the log.
		logger.Log.Error("unhandled error",
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
