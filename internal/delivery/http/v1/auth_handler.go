package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	cfg    *config.Config
}

func NewAuthHandler(public, strict, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, cfg: cfg}

	strict.POST("/auth/register", handler.Register)
	strict.POST("/auth/login", handler.Login)
	strict.POST("/auth/forgot-password", handler.ForgotPassword)
	strict.POST("/auth/reset-password", handler.ResetPassword)
	public.POST("/auth/logout", handler.Logout)

	protected.GET("/auth/me", handler.Me)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=100,no_emoji"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required,oneof=jobseeker employer"`
	Company  string `json:"company" binding:"max=200"`
	Title    string `json:"title" binding:"max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// MeResponse is the verified identity behind the request token.
type MeResponse struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account details"
// @Success      201   {object}  domain.AuthResponse
// @Failure      400   {object}  response.ErrorBody
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Company:  req.Company,
		Title:    req.Title,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, res.Token)
	response.JSON(c, http.StatusCreated, res)
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  domain.AuthResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      429   {object}  response.ErrorBody
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.authUC.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, domain.ClientMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: response.RequestID(c),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, res.Token)
	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary      Clear the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	response.JSON(c, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// Me godoc
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	response.JSON(c, http.StatusOK, MeResponse{ID: identity.ID, Role: identity.Role})
}

// ForgotPassword godoc
// @Summary      Request a password reset email
// @Description  Always answers 200 so callers cannot probe which emails are registered.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ForgotPasswordRequest  true  "Email"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  response.ErrorBody
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, MessageResponse{
		Message: "If that email is registered, a password reset link has been sent",
	})
}

// ResetPassword godoc
// @Summary      Set a new password with a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ResetPasswordRequest  true  "Token and new password"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  response.ErrorBody
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, MessageResponse{Message: "Password has been reset"})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, int(h.cfg.JWTExpiresIn.Seconds()), "/", "", h.cfg.IsProduction(), true)
}
