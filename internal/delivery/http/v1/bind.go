package v1

import (
	"errors"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bind decodes and validates the request into req. On failure it attaches
// a ValidationFailed error and returns false.
func bind(c *gin.Context, req interface{}, b binding.Binding) bool {
	if err := c.ShouldBindWith(req, b); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.PayloadTooLarge("Request body too large"))
			return false
		}
		if details := validation.FieldErrors(err); details != nil {
			c.Error(apperror.Validation("Validation failed", details))
		} else {
			c.Error(apperror.BadRequest("Invalid request body"))
		}
		return false
	}
	return true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	return bind(c, req, binding.JSON)
}

func bindQuery(c *gin.Context, req interface{}) bool {
	return bind(c, req, binding.Query)
}

// MessageResponse is returned by endpoints with no resource to show.
type MessageResponse struct {
	Message string `json:"message"`
}
