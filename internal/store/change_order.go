package store

import (
	"fmt"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ChangeOrderStore struct {
	db *gorm.DB
}

func NewChangeOrderStore(gdb *gorm.DB) *ChangeOrderStore {
	return &ChangeOrderStore{db: gdb}
}

type CreateChangeOrderInput struct {
	Title       string
	Description string
	Amount      decimal.Decimal
	Status      string
}

func (s *ChangeOrderStore) List(identity *policy.Identity, projectID uint) ([]models.ChangeOrder, error) {
	if err := authorizeRead(s.db, identity, projectID); err != nil {
		return nil, err
	}

	var orders []models.ChangeOrder

	if err := s.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list change orders for project %d: %w", projectID, err)
	}

	return orders, nil
}

// Create records a change order requested by the calling identity.
// The requester is always the identity, never a client-supplied value.
func (s *ChangeOrderStore) Create(identity *policy.Identity, projectID uint, input CreateChangeOrderInput) (*models.ChangeOrder, error) {
	if err := authorizeWrite(s.db, identity, projectID); err != nil {
		return nil, err
	}

	if input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: change order amount is required", types.ErrInvalidInput)
	}

	order := models.ChangeOrder{
		ProjectID:   projectID,
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		Status:      defaulted(input.Status, types.ChangeOrderStatusPending),
		RequestedBy: identity.ID,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("create change order: %w", err)
	}

	return &order, nil
}
