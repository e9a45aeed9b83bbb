package v1

import (
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.List)
	public.GET("/jobs/:id", handler.Get)

	protected.POST("/jobs", handler.Create)
	protected.PATCH("/jobs/:id", handler.Update)
	protected.DELETE("/jobs/:id", handler.Delete)
}

// CreateJobRequest has no owner, posting date or active flag; the server
// sets those.
type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required,notblank,max=200"`
	Company      string   `json:"company" binding:"required,notblank,max=200"`
	Location     string   `json:"location" binding:"required,notblank,max=200"`
	Description  string   `json:"description" binding:"required,notblank,max=20000"`
	Requirements []string `json:"requirements" binding:"max=100,dive,max=500"`
	Salary       string   `json:"salary" binding:"max=100"`
	Type         string   `json:"type" binding:"required,oneof=full-time part-time contract internship"`
}

// UpdateJobRequest lists the only fields a PATCH may change. Unknown keys
// such as postedBy are dropped by the decoder.
type UpdateJobRequest struct {
	Title        *string   `json:"title" binding:"omitempty,notblank,max=200"`
	Company      *string   `json:"company" binding:"omitempty,notblank,max=200"`
	Location     *string   `json:"location" binding:"omitempty,notblank,max=200"`
	Description  *string   `json:"description" binding:"omitempty,notblank,max=20000"`
	Requirements *[]string `json:"requirements" binding:"omitempty,max=100,dive,max=500"`
	Salary       *string   `json:"salary" binding:"omitempty,max=100"`
	Type         *string   `json:"type" binding:"omitempty,oneof=full-time part-time contract internship"`
	IsActive     *bool     `json:"isActive"`
}

func (r UpdateJobRequest) patch() domain.JobPatch {
	p := domain.JobPatch{
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Description:  r.Description,
		Requirements: r.Requirements,
		Salary:       r.Salary,
		IsActive:     r.IsActive,
	}
	if r.Type != nil {
		t := domain.JobType(*r.Type)
		p.Type = &t
	}
	return p
}

// ListJobs godoc
// @Summary      List jobs
// @Description  All jobs, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.JobResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

// GetJob godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.JobResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Employers only. The caller becomes the owner.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job"
// @Success      201  {object}  domain.JobResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), middleware.CurrentIdentity(c), domain.JobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Type:         domain.JobType(req.Type),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Owner only. Fields not in the request are left unchanged.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  domain.JobResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"), req.patch())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Owner only. Existing applications are kept.
// @Tags         jobs
// @Param        id   path  string  true  "Job ID"
// @Success      204
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
