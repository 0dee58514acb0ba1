package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
	"gorm.io/gorm"
)

type SafetyStore struct {
	db *gorm.DB
}

func NewSafetyStore(gdb *gorm.DB) *SafetyStore {
	return &SafetyStore{db: gdb}
}

type CreateSafetyIncidentInput struct {
	IncidentType string
	Severity     string
	Description  string
	Status       string
}

func (s *SafetyStore) List(identity *policy.Identity, projectID uint) ([]models.SafetyIncident, error) {
	if err := authorizeRead(s.db, identity, projectID); err != nil {
		return nil, err
	}

	var incidents []models.SafetyIncident

	if err := s.db.Where("project_id = ?", projectID).Order("reported_at DESC").Find(&incidents).Error; err != nil {
		return nil, fmt.Errorf("list safety incidents for project %d: %w", projectID, err)
	}

	return incidents, nil
}

func (s *SafetyStore) Create(identity *policy.Identity, projectID uint, input CreateSafetyIncidentInput) (*models.SafetyIncident, error) {
	if err := authorizeWrite(s.db, identity, projectID); err != nil {
		return nil, err
	}

	if input.Severity == "" || strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: severity and description are required", types.ErrInvalidInput)
	}

	incident := models.SafetyIncident{
		ProjectID:    projectID,
		IncidentType: defaulted(input.IncidentType, "general"),
		Severity:     input.Severity,
		Description:  input.Description,
		Status:       defaulted(input.Status, "open"),
		ReportedBy:   identity.ID,
		ReportedAt:   time.Now(),
	}

	if err := s.db.Create(&incident).Error; err != nil {
		return nil, fmt.Errorf("create safety incident: %w", err)
	}

	return &incident, nil
}
