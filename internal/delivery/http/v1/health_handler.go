package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Check)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.HealthBody
// @Failure      503  {object}  response.HealthBody
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if h.healthUC == nil {
		response.JSON(c, http.StatusOK, response.HealthBody{Status: "ok"})
		return
	}

	result := h.healthUC.Check(c.Request.Context())
	body := response.HealthBody{Status: result["status"], Checks: map[string]string{}}
	for name, state := range result {
		if name != "status" {
			body.Checks[name] = state
		}
	}

	code := http.StatusOK
	if body.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	response.JSON(c, code, body)
}
