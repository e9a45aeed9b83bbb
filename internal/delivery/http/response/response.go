package response

import (
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Message   string                `json:"message"`
	Kind      apperror.Kind         `json:"kind"`
	Details   []apperror.FieldError `json:"details,omitempty"`
	RequestID string                `json:"requestId,omitempty"`
}

// HealthBody is returned by the health endpoint.
type HealthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// JSON writes data as the bare response body.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes appErr using its status code.
func Error(c *gin.Context, appErr *apperror.AppError) {
	c.JSON(appErr.Code, ErrorBody{
		Message:   appErr.Message,
		Kind:      appErr.Kind,
		Details:   appErr.Details,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id assigned by the request-id middleware.
func RequestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
