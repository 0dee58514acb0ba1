package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/rollup"
	"github.com/scafflow-dev/scafflow/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskStore owns task access plus the progress rollup that every task
// write must leave behind.
type TaskStore struct {
	db     *gorm.DB
	rollup *rollup.Engine
}

func NewTaskStore(gdb *gorm.DB, engine *rollup.Engine) *TaskStore {
	return &TaskStore{db: gdb, rollup: engine}
}

type CreateTaskInput struct {
	Title              string
	Description        string
	Status             string
	Priority           string
	ProgressPercentage int
	AssignedTo         *uint
	StartDate          *datatypes.Date
	EndDate            *datatypes.Date
}

type UpdateTaskInput struct {
	Title              *string
	Description        *string
	Status             *string
	Priority           *string
	ProgressPercentage *int
	AssignedTo         *uint
}

func (s *TaskStore) List(identity *policy.Identity, projectID uint) ([]models.Task, error) {
	if err := authorizeRead(s.db, identity, projectID); err != nil {
		return nil, err
	}

	var tasks []models.Task

	if err := s.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks for project %d: %w", projectID, err)
	}

	return tasks, nil
}

func (s *TaskStore) Create(identity *policy.Identity, projectID uint, input CreateTaskInput) (*models.Task, error) {
	if err := authorizeWrite(s.db, identity, projectID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: task title is required", types.ErrInvalidInput)
	}

	if err := validateProgress(input.ProgressPercentage); err != nil {
		return nil, err
	}

	task := models.Task{
		ProjectID:          projectID,
		Title:              input.Title,
		Description:        input.Description,
		Status:             defaulted(input.Status, types.TaskStatusPending),
		Priority:           defaulted(input.Priority, "medium"),
		ProgressPercentage: input.ProgressPercentage,
		AssignedTo:         input.AssignedTo,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if _, err := s.rollup.Recompute(projectID); err != nil {
		return nil, err
	}

	return &task, nil
}

// Update merges the supplied fields and reruns the rollup before
// returning, so the caller's next project read already reflects the
// new progress.
func (s *TaskStore) Update(identity *policy.Identity, projectID, taskID uint, input UpdateTaskInput) (*models.Task, error) {
	if err := authorizeWrite(s.db, identity, projectID); err != nil {
		return nil, err
	}

	var task models.Task

	if err := s.db.Where("id = ? AND project_id = ?", taskID, projectID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", types.ErrNotFound, taskID)
		}
		return nil, fmt.Errorf("fetch task %d: %w", taskID, err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: task title cannot be blank", types.ErrInvalidInput)
		}
		task.Title = *input.Title
	}

	if input.Description != nil {
		task.Description = *input.Description
	}

	if input.Status != nil {
		task.Status = *input.Status
	}

	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if input.ProgressPercentage != nil {
		if err := validateProgress(*input.ProgressPercentage); err != nil {
			return nil, err
		}
		task.ProgressPercentage = *input.ProgressPercentage
	}

	if input.AssignedTo != nil {
		task.AssignedTo = input.AssignedTo
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, fmt.Errorf("update task %d: %w", taskID, err)
	}

	if _, err := s.rollup.Recompute(projectID); err != nil {
		return nil, err
	}

	return &task, nil
}

func validateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("%w: progress_percentage must be between 0 and 100", types.ErrInvalidInput)
	}
	return nil
}

func defaulted(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
