package service

import (
	"context"
	"errors"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
)

// ErrInvalidStatus is returned when an intake decision is neither Approved
// nor Rejected. No state changes in that case.
var ErrInvalidStatus = errors.New("invalid status")

// DecisionResult reports the outcome of an intake decision. Charity is set
// only when the submission was approved.
type DecisionResult struct {
	Status  string
	Charity *models.Charity
}

// IntakeService owns the charity intake workflow: an approved submission is
// moved into the charities table, a rejected one is discarded.
type IntakeService interface {
	Decide(ctx context.Context, id int64, status string) (*DecisionResult, error)
	MoveAll(ctx context.Context) (int, error)
}

type intakeService struct {
	submissions repository.UnapprovedCharityRepository
}

// NewIntakeService creates a new IntakeService instance.
func NewIntakeService(submissions repository.UnapprovedCharityRepository) IntakeService {
	return &intakeService{submissions: submissions}
}

func (s *intakeService) Decide(ctx context.Context, id int64, status string) (*DecisionResult, error) {
	switch status {
	case models.StatusApproved:
		charity, err := s.submissions.Promote(ctx, id)
		if err != nil {
			return nil, err
		}
		return &DecisionResult{Status: status, Charity: charity}, nil
	case models.StatusRejected:
		if err := s.submissions.Discard(ctx, id); err != nil {
			return nil, err
		}
		return &DecisionResult{Status: status}, nil
	default:
		return nil, ErrInvalidStatus
	}
}

func (s *intakeService) MoveAll(ctx context.Context) (int, error) {
	return s.submissions.PromoteAll(ctx)
}
