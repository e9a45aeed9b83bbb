package middleware

import (
	"errors"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// Anything that is not an AppError becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Kind == apperror.KindInternal {
			logger.Log.Error("Internal Server Error",
				"error", err,
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", response.RequestID(c),
			)
			appErr = apperror.New(appErr.Code, appErr.Kind, "An unexpected error occurred. Please try again later.", appErr.Err)
		}

		response.Error(c, appErr)
	}
}
