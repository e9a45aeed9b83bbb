package middleware

import (
	"net/http"

	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// BodyLimit rejects bodies that declare more than maxBytes and caps reads
// of the rest, so decoding stops at the limit.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.Error(apperror.PayloadTooLarge("Request body too large"))
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
