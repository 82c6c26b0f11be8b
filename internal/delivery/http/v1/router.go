package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-forex-backend/config"
	"go-forex-backend/internal/delivery/http/middleware"
	"go-forex-backend/internal/delivery/http/response"
	"go-forex-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const maxBodyBytes = 10 << 20 // 10MB request body cap

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	CatalogUC    domain.CatalogUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.BodySizeLimit(maxBodyBytes))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Rate limit runs before validation: rejected requests never reach a handler
	api.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitMax,
		Window:    time.Duration(deps.Config.RateLimitWindowMinutes) * time.Minute,
		KeyPrefix: "rl:ip:",
	}))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Healthy(c, "Vallabh Forex API is running")
	})

	// Form submission routes
	NewContactHandler(api, deps.SubmissionUC)
	NewQuoteHandler(api, deps.SubmissionUC)
	NewInquiryHandler(api, deps.SubmissionUC)

	// Static content routes
	NewCatalogHandler(api, deps.CatalogUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unknown /api paths get structured JSON, everything else falls through to
	// the front-end bundle in release mode
	r.NoRoute(notFoundHandler(deps.Config.StaticDir))

	return r
}

func notFoundHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") || gin.Mode() != gin.ReleaseMode {
			response.Error(c, http.StatusNotFound, "Endpoint not found", nil)
			return
		}

		// SPA fallback: serve the requested asset if it exists, index.html otherwise
		p := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			c.File(p)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
