package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/metrics"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/gin-gonic/gin"
)

type mockDonationRepository struct {
	findByIDFunc func(ctx context.Context, id int64) (*models.Donation, error)
	findAllFunc  func(ctx context.Context) ([]models.Donation, error)
	createFunc   func(ctx context.Context, donation *models.Donation) error
	deleteFunc   func(ctx context.Context, id int64) error
}

func (m *mockDonationRepository) FindByID(ctx context.Context, id int64) (*models.Donation, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockDonationRepository) FindAll(ctx context.Context) ([]models.Donation, error) {
	return m.findAllFunc(ctx)
}

func (m *mockDonationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return m.createFunc(ctx, donation)
}

func (m *mockDonationRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

var _ repository.DonationRepository = (*mockDonationRepository)(nil)

func TestCreateDonationSuccess(t *testing.T) {
	var stored *models.Donation
	repo := &mockDonationRepository{
		createFunc: func(ctx context.Context, donation *models.Donation) error {
			donation.ID = 42
			stored = donation
			return nil
		},
	}
	handler := NewDonationHandler(repo, metrics.New())

	c, w := createTestContext(http.MethodPost, "/donations", gin.H{
		"amount":     150.0,
		"charity_id": 3,
		"anonymous":  true,
	})
	handler.Create(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if stored == nil || stored.CharityID == nil || *stored.CharityID != 3 {
		t.Fatalf("expected donation stored against charity 3, got %+v", stored)
	}
	if stored.UserID != nil {
		t.Error("expected anonymous donation to carry no user reference")
	}
}

func TestCreateDonationMissingFields(t *testing.T) {
	handler := NewDonationHandler(&mockDonationRepository{}, metrics.New())

	for name, body := range map[string]gin.H{
		"no amount":     {"charity_id": 3},
		"zero amount":   {"amount": 0, "charity_id": 3},
		"no charity":    {"amount": 10.0},
		"empty payload": {},
	} {
		t.Run(name, func(t *testing.T) {
			c, w := createTestContext(http.MethodPost, "/donations", body)
			handler.Create(c)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestGetDonationNotFound(t *testing.T) {
	repo := &mockDonationRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.Donation, error) {
			return nil, repository.ErrNotFound
		},
	}
	handler := NewDonationHandler(repo, metrics.New())

	c, w := createTestContext(http.MethodGet, "/donations/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	handler.Get(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestGetDonationInvalidID(t *testing.T) {
	handler := NewDonationHandler(&mockDonationRepository{}, metrics.New())

	c, w := createTestContext(http.MethodGet, "/donations/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	handler.Get(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a non-numeric id, got %d", w.Code)
	}
}

func TestDeleteDonation(t *testing.T) {
	deleted := int64(0)
	repo := &mockDonationRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewDonationHandler(repo, metrics.New())

	c, w := createTestContext(http.MethodDelete, "/donations/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if deleted != 5 {
		t.Errorf("expected donation 5 deleted, got %d", deleted)
	}
}
