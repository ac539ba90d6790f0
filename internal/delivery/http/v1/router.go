package v1

import (
	"net/http"
	"strings"
	"time"

	"go-interview-report-backend/config"
	"go-interview-report-backend/internal/delivery/http/middleware"
	"go-interview-report-backend/internal/delivery/http/response"
	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/internal/usecase"
	"go-interview-report-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	InterviewUC domain.InterviewUsecase
	ReportUC    domain.ReportUsecase
	RosterUC    domain.RosterUsecase
	HealthUC    usecase.HealthUsecase
	Verifier    middleware.TokenVerifier
	Redis       *goredis.Client // nil selects in-memory rate limiting
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(strings.Split(deps.Config.FrontendURL, ","), deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Config.RateLimitEnabled {
		r.Use(middleware.RateLimitMiddleware(deps.Redis, middleware.DefaultRateLimitConfig(
			deps.Config.RateLimitGlobalThreshold,
			time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		)))
	}
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var exportLimit gin.HandlerFunc
	if deps.Config.RateLimitEnabled {
		exportLimit = middleware.RateLimitMiddleware(deps.Redis, middleware.ExportRateLimitConfig())
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewReportHandler(protected, deps.ReportUC, exportLimit)
		NewAdminHandler(protected, deps.RosterUC, exportLimit)
	}

	return r
}
