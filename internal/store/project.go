package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/scafflow-dev/scafflow/internal/logging"
	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectStore is the visibility-scoped access path to project rows.
// Admins see every project read-only, owners see and mutate their own,
// everyone else sees nothing.
type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(gdb *gorm.DB) *ProjectStore {
	return &ProjectStore{db: gdb}
}

type CreateProjectInput struct {
	Name        string
	Description string
	Location    string
	BudgetTotal *decimal.Decimal
	StartDate   *datatypes.Date
	EndDate     *datatypes.Date
}

type UpdateProjectInput struct {
	Name               *string
	Description        *string
	Location           *string
	Status             *string
	BudgetTotal        *decimal.Decimal
	BudgetSpent        *decimal.Decimal
	ProgressPercentage *int
	StartDate          *datatypes.Date
	EndDate            *datatypes.Date
}

func (s *ProjectStore) ListVisible(identity *policy.Identity) ([]models.Project, error) {
	if identity == nil {
		return nil, types.ErrUnauthenticated
	}

	query := s.db.Preload("Owner").Order("created_at DESC")

	if !identity.IsAdmin() {
		query = query.Where("owner_id = ?", identity.ID)
	}

	var projects []models.Project

	if err := query.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// GetVisible fetches one project. Projects outside the caller's scope
// are reported as missing rather than forbidden, so the listing and
// the detail view agree on what exists.
func (s *ProjectStore) GetVisible(identity *policy.Identity, projectID uint) (*models.Project, error) {
	if identity == nil {
		return nil, types.ErrUnauthenticated
	}

	var project models.Project

	if err := s.db.Preload("Owner").Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", types.ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("fetch project %d: %w", projectID, err)
	}

	if !policy.Decide(identity, project.OwnerID).CanRead() {
		return nil, fmt.Errorf("%w: project %d", types.ErrNotFound, projectID)
	}

	return &project, nil
}

func (s *ProjectStore) Create(identity *policy.Identity, input CreateProjectInput) (*models.Project, error) {
	if identity == nil {
		return nil, types.ErrUnauthenticated
	}

	if identity.IsAdmin() {
		return nil, fmt.Errorf("%w: admins are read-only for project data", types.ErrForbidden)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: project name is required", types.ErrInvalidInput)
	}

	warnOnInvertedDates(input.StartDate, input.EndDate, input.Name)

	total := decimal.Zero

	if input.BudgetTotal != nil {
		total = *input.BudgetTotal
	}

	project := models.Project{
		Name:           input.Name,
		Description:    input.Description,
		Location:       input.Location,
		Status:         "active",
		BudgetTotal:    total,
		BudgetSpent:    decimal.Zero,
		BudgetVariance: total,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		OwnerID:        identity.ID,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return &project, nil
}

// Update merges only the supplied fields into the stored row. When
// either budget side changes, the variance is recomputed against the
// stored value of the side that did not change.
func (s *ProjectStore) Update(identity *policy.Identity, projectID uint, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.GetVisible(identity, projectID)

	if err != nil {
		return nil, err
	}

	if !policy.Decide(identity, project.OwnerID).CanWrite() {
		return nil, fmt.Errorf("%w: admins are read-only for project data", types.ErrForbidden)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, fmt.Errorf("%w: project name cannot be blank", types.ErrInvalidInput)
		}
		project.Name = *input.Name
	}

	if input.Description != nil {
		project.Description = *input.Description
	}

	if input.Location != nil {
		project.Location = *input.Location
	}

	if input.Status != nil {
		project.Status = *input.Status
	}

	if input.ProgressPercentage != nil {
		project.ProgressPercentage = *input.ProgressPercentage
	}

	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}

	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}

	warnOnInvertedDates(project.StartDate, project.EndDate, project.Name)

	project.BudgetTotal, project.BudgetSpent, project.BudgetVariance = MergeProjectBudget(
		project.BudgetTotal, project.BudgetSpent, input.BudgetTotal, input.BudgetSpent)

	if err := s.db.Omit(clause.Associations).Save(project).Error; err != nil {
		return nil, fmt.Errorf("update project %d: %w", projectID, err)
	}

	return project, nil
}

// Start after end is accepted but logged; schedules are frequently
// entered out of order on real sites.
func warnOnInvertedDates(start, end *datatypes.Date, projectName string) {
	if start == nil || end == nil {
		return
	}

	if time.Time(*start).After(time.Time(*end)) {
		logging.GetLogger().WithField("project", projectName).Warn("project start date is after its end date")
	}
}
