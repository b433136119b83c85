package v1

import (
	"log/slog"
	"net/http"

	"go-jobsearch-backend/config"
	"go-jobsearch-backend/internal/delivery/http/middleware"
	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/usecase"
	"go-jobsearch-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase
	Tokens        middleware.TokenValidator
	RateLimiter   *middleware.RateLimiter // nil disables auth rate limiting
	Audit         *security.SecurityLogger
	Logger        *slog.Logger
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler(deps.Config.IsProduction(), deps.Logger))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Resource not found", nil)
	})

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	var authLimits []gin.HandlerFunc
	if deps.RateLimiter != nil {
		authLimits = append(authLimits, deps.RateLimiter.Middleware(middleware.AuthRateLimitConfig(deps.Config.AuthRateLimitPerMinute)))
	}
	NewAuthHandler(v1, deps.AuthUC, authLimits...)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.Audit))
	{
		NewUserHandler(protected, deps.UserUC)
		NewCompanyHandler(v1, protected, deps.CompanyUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}
