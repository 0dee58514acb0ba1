package store

import (
	"fmt"
	"strings"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetStore handles budget line items. Items are immutable once
// created; their variance is fixed at write time by the same formula
// the project-level ledger uses.
type BudgetStore struct {
	db *gorm.DB
}

func NewBudgetStore(gdb *gorm.DB) *BudgetStore {
	return &BudgetStore{db: gdb}
}

type CreateBudgetItemInput struct {
	Category     string
	Description  string
	BudgetAmount decimal.Decimal
	SpentAmount  *decimal.Decimal
}

func (s *BudgetStore) List(identity *policy.Identity, projectID uint) ([]models.BudgetItem, error) {
	if err := authorizeRead(s.db, identity, projectID); err != nil {
		return nil, err
	}

	var items []models.BudgetItem

	if err := s.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list budget items for project %d: %w", projectID, err)
	}

	return items, nil
}

func (s *BudgetStore) Create(identity *policy.Identity, projectID uint, input CreateBudgetItemInput) (*models.BudgetItem, error) {
	if err := authorizeWrite(s.db, identity, projectID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Category) == "" {
		return nil, fmt.Errorf("%w: budget item category is required", types.ErrInvalidInput)
	}

	spent, variance := ItemVariance(input.BudgetAmount, input.SpentAmount)

	item := models.BudgetItem{
		ProjectID:    projectID,
		Category:     input.Category,
		Description:  input.Description,
		BudgetAmount: input.BudgetAmount,
		SpentAmount:  spent,
		Variance:     variance,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create budget item: %w", err)
	}

	return &item, nil
}
