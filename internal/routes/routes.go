// Package routes defines HTTP routes for the donation platform.
package routes

import (
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/docs"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/config"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/handlers"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/metrics"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/middleware"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Admin       *handlers.AdminHandler
	Charity     *handlers.CharityHandler
	Donation    *handlers.DonationHandler
	Beneficiary *handlers.BeneficiaryHandler
	Application *handlers.ApplicationHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, authService service.AuthService, cfg *config.Config, m *metrics.Metrics) {
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/", h.Health.Home)
	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	// User auth
	router.POST("/users/register", h.Auth.Register)
	router.POST("/users/login", h.Auth.Login)
	router.GET("/users/protected", middleware.Auth(authService), h.Auth.Protected)
	router.POST("/logout", middleware.Auth(authService), h.Auth.Logout)

	// Charities
	router.GET("/charities", h.Charity.List)
	router.POST("/charities", h.Charity.Create)
	router.GET("/charities/:id", h.Charity.Get)
	router.PATCH("/charities/:id", h.Charity.Update)
	router.DELETE("/charities/:id", h.Charity.Delete)

	// Intake workflow
	router.GET("/unapproved-charities", h.Charity.ListSubmissions)
	router.POST("/unapproved-charities", h.Charity.CreateSubmission)
	router.PATCH("/unapproved-charities/:id", h.Charity.DecideSubmission)
	router.POST("/move-unapproved-charities", h.Charity.MoveSubmissions)

	// Donations
	router.GET("/donations", h.Donation.List)
	router.POST("/donations", h.Donation.Create)
	router.GET("/donations/:id", h.Donation.Get)
	router.DELETE("/donations/:id", h.Donation.Delete)

	// Beneficiaries
	router.GET("/beneficiaries", h.Beneficiary.List)
	router.POST("/beneficiaries", h.Beneficiary.Create)
	router.GET("/beneficiaries/:id", h.Beneficiary.Get)
	router.PATCH("/beneficiaries/:id", h.Beneficiary.Update)
	router.DELETE("/beneficiaries/:id", h.Beneficiary.Delete)

	// Applications
	router.GET("/applications", h.Application.List)
	router.POST("/applications", h.Application.Create)
	router.GET("/applications/:id", h.Application.Get)
	router.PATCH("/applications/:id", h.Application.Update)
	router.DELETE("/applications/:id", h.Application.Delete)

	// Admin
	router.POST("/admin/register", h.Admin.Register)
	router.POST("/admin/login", h.Admin.Login)
	router.POST("/admin/logout", middleware.Auth(authService), h.Admin.Logout)

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
