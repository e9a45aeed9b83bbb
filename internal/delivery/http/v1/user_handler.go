package v1

import (
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public, protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	public.GET("/users", handler.List)

	protected.GET("/users/me", handler.GetMe)
	protected.PATCH("/users/me", handler.UpdateMe)
}

type ListUsersQuery struct {
	Role string `form:"role" binding:"omitempty,oneof=jobseeker employer"`
}

// UpdateProfileRequest carries the self-editable fields. Email, role and
// password cannot be changed here.
type UpdateProfileRequest struct {
	Name    *string   `json:"name" binding:"omitempty,notblank,max=100,no_emoji"`
	Company *string   `json:"company" binding:"omitempty,max=200"`
	Title   *string   `json:"title" binding:"omitempty,max=200"`
	Skills  *[]string `json:"skills" binding:"omitempty,max=50,dive,max=100"`
	About   *string   `json:"about" binding:"omitempty,max=5000"`
}

// ListUsers godoc
// @Summary      List users
// @Description  Public profiles, optionally filtered by role.
// @Tags         users
// @Produce      json
// @Param        role  query     string  false  "jobseeker or employer"
// @Success      200   {array}   domain.UserResponse
// @Failure      400   {object}  response.ErrorBody
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q ListUsersQuery
	if !bindQuery(c, &q) {
		return
	}

	users, err := h.userUC.ListUsers(c.Request.Context(), domain.UserFilter{Role: domain.Role(q.Role)})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// GetMe godoc
// @Summary      Get my profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.UserResponse
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userUC.GetSelf(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      Update my profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.UserResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userUC.UpdateSelf(c.Request.Context(), middleware.CurrentIdentity(c), domain.ProfilePatch{
		Name:    req.Name,
		Company: req.Company,
		Title:   req.Title,
		Skills:  req.Skills,
		About:   req.About,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}
