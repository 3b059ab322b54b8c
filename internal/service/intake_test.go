package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/database"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The intake workflow is exercised against a real store because its contract
// is transactional: partial failures must leave both tables untouched.

func setupIntake(t *testing.T) (IntakeService, repository.CharityRepository, repository.UnapprovedCharityRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "intake.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	submissionRepo := repository.NewUnapprovedCharityRepository(db)
	charityRepo := repository.NewCharityRepository(db)
	return NewIntakeService(submissionRepo), charityRepo, submissionRepo, db
}

func submit(t *testing.T, repo repository.UnapprovedCharityRepository, name string) *models.UnapprovedCharity {
	t.Helper()
	website := "http://" + name + ".org"
	submission := &models.UnapprovedCharity{
		Name:        name,
		Description: "A charity for testing purposes",
		Website:     &website,
	}
	if err := repo.Create(context.Background(), submission); err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}
	return submission
}

func TestDecide_Approved(t *testing.T) {
	svc, charityRepo, submissionRepo, _ := setupIntake(t)
	ctx := context.Background()

	submission := submit(t, submissionRepo, "savethegirls")

	result, err := svc.Decide(ctx, submission.ID, models.StatusApproved)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if result.Charity == nil {
		t.Fatal("Decide(Approved) should return the new charity")
	}
	if result.Charity.Name != submission.Name {
		t.Errorf("charity name = %s, want %s", result.Charity.Name, submission.Name)
	}
	if result.Charity.Website == nil || *result.Charity.Website != *submission.Website {
		t.Error("charity should carry the submission's website")
	}

	// Submission consumed, charity present.
	if _, err := submissionRepo.FindByID(ctx, submission.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("submission lookup error = %v, want ErrNotFound", err)
	}
	if _, err := charityRepo.FindByID(ctx, result.Charity.ID); err != nil {
		t.Errorf("charity lookup error = %v", err)
	}
}

func TestDecide_Rejected(t *testing.T) {
	svc, charityRepo, submissionRepo, _ := setupIntake(t)
	ctx := context.Background()

	submission := submit(t, submissionRepo, "rejected-cause")

	result, err := svc.Decide(ctx, submission.ID, models.StatusRejected)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if result.Charity != nil {
		t.Error("Decide(Rejected) should not create a charity")
	}

	if _, err := submissionRepo.FindByID(ctx, submission.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("submission lookup error = %v, want ErrNotFound", err)
	}
	charities, err := charityRepo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(charities) != 0 {
		t.Errorf("charities = %d, want 0", len(charities))
	}
}

func TestDecide_InvalidStatus(t *testing.T) {
	svc, _, submissionRepo, _ := setupIntake(t)
	ctx := context.Background()

	submission := submit(t, submissionRepo, "limbo")

	_, err := svc.Decide(ctx, submission.ID, "Maybe")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Decide() error = %v, want ErrInvalidStatus", err)
	}

	// State untouched.
	if _, err := submissionRepo.FindByID(ctx, submission.ID); err != nil {
		t.Errorf("submission should still exist, got error %v", err)
	}
}

func TestDecide_UnknownSubmission(t *testing.T) {
	svc, _, _, _ := setupIntake(t)

	_, err := svc.Decide(context.Background(), 9999, models.StatusApproved)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Decide() error = %v, want ErrNotFound", err)
	}
}

func TestMoveAll_PromotesEverySubmission(t *testing.T) {
	svc, charityRepo, submissionRepo, _ := setupIntake(t)
	ctx := context.Background()

	submit(t, submissionRepo, "first")
	submit(t, submissionRepo, "second")
	submit(t, submissionRepo, "third")

	moved, err := svc.MoveAll(ctx)
	if err != nil {
		t.Fatalf("MoveAll() error = %v", err)
	}
	if moved != 3 {
		t.Errorf("MoveAll() moved = %d, want 3", moved)
	}

	charities, _ := charityRepo.FindAll(ctx)
	if len(charities) != 3 {
		t.Errorf("charities = %d, want 3", len(charities))
	}
	submissions, _ := submissionRepo.FindAll(ctx)
	if len(submissions) != 0 {
		t.Errorf("submissions = %d, want 0", len(submissions))
	}
}

func TestMoveAll_RollsBackOnDuplicateName(t *testing.T) {
	svc, charityRepo, submissionRepo, _ := setupIntake(t)
	ctx := context.Background()

	// An approved charity already holds this name.
	existing := &models.Charity{Name: "taken", Description: "already approved"}
	if err := charityRepo.Create(ctx, existing); err != nil {
		t.Fatalf("Failed to seed charity: %v", err)
	}

	submit(t, submissionRepo, "fresh")
	submit(t, submissionRepo, "taken")

	_, err := svc.MoveAll(ctx)
	if err == nil {
		t.Fatal("MoveAll() should fail on a duplicate charity name")
	}

	// Nothing moved: the approved set is unchanged and both submissions remain.
	charities, _ := charityRepo.FindAll(ctx)
	if len(charities) != 1 {
		t.Errorf("charities = %d, want 1 (batch must roll back)", len(charities))
	}
	submissions, _ := submissionRepo.FindAll(ctx)
	if len(submissions) != 2 {
		t.Errorf("submissions = %d, want 2 (batch must roll back)", len(submissions))
	}
}
