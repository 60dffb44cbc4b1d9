package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"northern-forge-site/config"
	"northern-forge-site/internal/delivery/http/middleware"
	"northern-forge-site/internal/delivery/http/web"
	"northern-forge-site/internal/domain"
	"northern-forge-site/internal/ogimage"
	"northern-forge-site/internal/usecase"
	webassets "northern-forge-site/internal/web"
	"northern-forge-site/pkg/flash"
	"northern-forge-site/pkg/metrics"
)

type RouterDeps struct {
	Config    *config.Config
	Site      domain.SiteContent
	Validate  *validator.Validate
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Flash     *flash.Codec
	OGImage   *ogimage.Renderer
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction(), "/v1/swagger"))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	r.Use(middleware.CSRFMiddleware(cfg.IsProduction(), "/v1/contact"))

	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(cfg.ContactRateLimit, window))

	r.StaticFS("/static", http.FS(webassets.Static()))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	pages := web.NewPageHandler(r, web.PageDeps{
		Site:           deps.Site,
		Offerings:      cfg.Offerings,
		Validate:       deps.Validate,
		ContactUC:      deps.ContactUC,
		Flash:          deps.Flash,
		OGImage:        deps.OGImage,
		SiteURL:        cfg.SiteURL,
		SecureCookies:  cfg.IsProduction(),
		ContactLimiter: contactLimiter,
	})
	r.NoRoute(pages.NotFound)

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)
	NewContentHandler(v1, deps.Site, cfg.Offerings)
	NewContactHandler(v1, deps.ContactUC, deps.Validate, contactLimiter)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
