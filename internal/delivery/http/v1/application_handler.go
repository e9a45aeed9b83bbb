package v1

import (
	"fmt"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Jobseeker routes
	protected.POST("/applications", handler.Apply)
	protected.GET("/applications/my", handler.ListMine)

	// Employer routes
	protected.PATCH("/applications/:id", handler.UpdateStatus)
	protected.GET("/jobs/:id/applications", handler.ListForJob)
	protected.GET("/jobs/:id/applications/export", handler.Export)
}

type ApplyRequest struct {
	JobID       string `json:"jobId" binding:"required,notblank"`
	CoverLetter string `json:"coverLetter" binding:"max=10000"`
	Resume      string `json:"resume" binding:"max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed interview hired rejected"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Jobseekers only. One application per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application"
// @Success      201   {object}  domain.ApplicationResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), middleware.CurrentIdentity(c), req.JobID, domain.ApplyInput{
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, app)
}

// ListMyApplications godoc
// @Summary      List my applications
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.ApplicationResponse
// @Failure      401  {object}  response.ErrorBody
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationUC.ListMine(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, apps)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Owner of the job only.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {array}   domain.ApplicationResponse
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	apps, err := h.applicationUC.ListForJob(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, apps)
}

// ExportJobApplications godoc
// @Summary      Export applications for a job
// @Description  Owner of the job only. Returns an XLSX workbook.
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Job ID"
// @Success      200  {file}    file
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id}/applications/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Export(c *gin.Context) {
	export, err := h.applicationUC.ExportForJob(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, xlsxContentType, export.Content)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Owner of the application's job only. Any status may follow any other.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  domain.ApplicationResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, app)
}
