package store

import (
	"fmt"
	"time"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProgressDrawStore struct {
	db *gorm.DB
}

func NewProgressDrawStore(gdb *gorm.DB) *ProgressDrawStore {
	return &ProgressDrawStore{db: gdb}
}

type CreateProgressDrawInput struct {
	DrawNumber  string
	Amount      decimal.Decimal
	Status      string
	RequestedAt *time.Time
}

// List returns the project's draws newest request first, unlike the
// other child entities which order by creation time.
func (s *ProgressDrawStore) List(identity *policy.Identity, projectID uint) ([]models.ProgressDraw, error) {
	if err := authorizeRead(s.db, identity, projectID); err != nil {
		return nil, err
	}

	var draws []models.ProgressDraw

	if err := s.db.Where("project_id = ?", projectID).Order("requested_at DESC").Find(&draws).Error; err != nil {
		return nil, fmt.Errorf("list progress draws for project %d: %w", projectID, err)
	}

	return draws, nil
}

func (s *ProgressDrawStore) Create(identity *policy.Identity, projectID uint, input CreateProgressDrawInput) (*models.ProgressDraw, error) {
	if err := authorizeWrite(s.db, identity, projectID); err != nil {
		return nil, err
	}

	if input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: draw amount is required", types.ErrInvalidInput)
	}

	requestedAt := time.Now()

	if input.RequestedAt != nil {
		requestedAt = *input.RequestedAt
	}

	draw := models.ProgressDraw{
		ProjectID:   projectID,
		DrawNumber:  input.DrawNumber,
		Amount:      input.Amount,
		Status:      defaulted(input.Status, types.DrawStatusRequested),
		RequestedAt: requestedAt,
	}

	if err := s.db.Create(&draw).Error; err != nil {
		return nil, fmt.Errorf("create progress draw: %w", err)
	}

	return &draw, nil
}
