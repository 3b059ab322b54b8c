// Package main is the entry point for the donation platform API.
package main

import (
	"os"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/config"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/database"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/handlers"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/metrics"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/revocation"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/routes"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	pkgredis "github.com/Riob-a/Automated-Donation-Platform-Back-End/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Automated Donation Platform API
// @version 1.0
// @description Donation platform backend: users, charities, donations, beneficiaries, applications and admins.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT service")
	}

	// The revocation set is process-local by default; configuring Redis
	// externalizes it for multi-instance deployments.
	var revoked revocation.Store
	if cfg.RedisAddr != "" {
		client, err := pkgredis.NewClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		revoked = revocation.NewRedis(client)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using Redis revocation store")
	} else {
		revoked = revocation.NewMemory()
		log.Info().Msg("using in-memory revocation store")
	}

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	charityRepo := repository.NewCharityRepository(db)
	submissionRepo := repository.NewUnapprovedCharityRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	beneficiaryRepo := repository.NewBeneficiaryRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	actionLogRepo := repository.NewActionLogRepository(db, "donation-platform")

	authService := service.NewAuthService(userRepo, adminRepo, jwtService, revoked)
	intakeService := service.NewIntakeService(submissionRepo)

	m := metrics.New()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	routes.Setup(router, routes.Handlers{
		Health:      handlers.NewHealthHandler(),
		Auth:        handlers.NewAuthHandler(authService, actionLogRepo, m),
		Admin:       handlers.NewAdminHandler(authService, actionLogRepo),
		Charity:     handlers.NewCharityHandler(charityRepo, submissionRepo, intakeService, actionLogRepo, m),
		Donation:    handlers.NewDonationHandler(donationRepo, m),
		Beneficiary: handlers.NewBeneficiaryHandler(beneficiaryRepo),
		Application: handlers.NewApplicationHandler(applicationRepo),
	}, authService, cfg, m)

	log.Info().Str("port", cfg.Port).Msg("starting donation platform API")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
