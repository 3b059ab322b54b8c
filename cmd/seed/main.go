// Package main seeds the donation platform database with sample data.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/database"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("database seeded")
}

func seed(db *gorm.DB) error {
	ctx := context.Background()

	users := []struct {
		username, email, password string
		isAdmin                   bool
	}{
		{"john_doe", "john@example.com", "password123", false},
		{"jane_smith", "jane@example.com", "securepassword", false},
		{"derrick_rioba", "d@example.com", "test1", true},
	}
	userRepo := repository.NewUserRepository(db)
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		err = userRepo.Create(ctx, &models.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			IsAdmin:      u.isAdmin,
		})
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}

	charityRepo := repository.NewCharityRepository(db)
	charities := []models.Charity{
		{
			Name:        "Save the Girls",
			Description: "Providing sanitary supplies to school girls in need.",
			Website:     strPtr("http://savethegirls.org"),
			ImageURL:    strPtr("http://example.com/images/savethegirls.jpg"),
		},
		{
			Name:        "Education for All",
			Description: "Supporting educational initiatives for underprivileged girls.",
			Website:     strPtr("http://educationforall.org"),
			ImageURL:    strPtr("http://example.com/images/educationforall.jpg"),
		},
	}
	for i := range charities {
		err := charityRepo.Create(ctx, &charities[i])
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}

	donationRepo := repository.NewDonationRepository(db)
	donations := []models.Donation{
		{Amount: 100.0, Anonymous: false, UserID: int64Ptr(1), CharityID: int64Ptr(1)},
		{Amount: 50.0, Anonymous: true, UserID: int64Ptr(2), CharityID: int64Ptr(2)},
	}
	for i := range donations {
		if err := donationRepo.Create(ctx, &donations[i]); err != nil {
			return err
		}
	}

	beneficiaryRepo := repository.NewBeneficiaryRepository(db)
	beneficiaries := []models.Beneficiary{
		{
			Name:      "Mary",
			Story:     strPtr("A bright student with a passion for learning but lacks access to basic sanitary supplies."),
			ImageURL:  strPtr("http://example.com/images/mary.jpg"),
			CharityID: int64Ptr(1),
		},
		{
			Name:      "Sophia",
			Story:     strPtr("An aspiring engineer with dreams of a better future, supported by educational initiatives."),
			ImageURL:  strPtr("http://example.com/images/sophia.jpg"),
			CharityID: int64Ptr(2),
		},
	}
	for i := range beneficiaries {
		if err := beneficiaryRepo.Create(ctx, &beneficiaries[i]); err != nil {
			return err
		}
	}

	applicationRepo := repository.NewApplicationRepository(db)
	applications := []models.Application{
		{
			Name:        "Health & Hygiene",
			Description: "A program focused on promoting health and hygiene among school-aged girls.",
			Website:     strPtr("http://healthandhygiene.org"),
			ImageURL:    strPtr("http://example.com/images/healthandhygiene.jpg"),
			Status:      models.StatusPending,
		},
		{
			Name:        "Tech for Girls",
			Description: "Providing technology resources and education to girls in rural areas.",
			Website:     strPtr("http://techforgirls.org"),
			ImageURL:    strPtr("http://example.com/images/techforgirls.jpg"),
			Status:      models.StatusPending,
		},
	}
	for i := range applications {
		if err := applicationRepo.Create(ctx, &applications[i]); err != nil {
			return err
		}
	}

	adminRepo := repository.NewAdminRepository(db)
	admins := []struct {
		username, email, password string
	}{
		{"derrick_admin", "admin@example.com", "adminsecurepassword"},
		{"test", "test@email.com", "test1password"},
	}
	for _, a := range admins {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		err = adminRepo.Create(ctx, &models.Admin{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: string(hash),
		})
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}

	return nil
}
