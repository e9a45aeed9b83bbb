package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/validation"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	UserUC         domain.UserUsecase
	HealthUC       usecase.HealthUsecase
	Tokens         domain.TokenManager
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
	SecurityLogger *security.SecurityLogger
	Config         *config.Config
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// CORS must be first so preflights never reach auth.
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	if cfg.CSRFProtection {
		r.Use(middleware.CSRFMiddleware(cfg.IsProduction()))
	}

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	}

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	strict := api.Group("")
	if deps.RateLimiter != nil {
		strict.Use(deps.RateLimiter.Middleware(middleware.AuthRateLimitConfig(cfg.RateLimitAuthThreshold, window)))
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.SecurityLogger))
	{
		NewAuthHandler(api, strict, protected, deps.AuthUC, cfg)
		NewJobHandler(api, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewUserHandler(api, protected, deps.UserUC)
	}

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Route not found"))
	})

	return r
}
