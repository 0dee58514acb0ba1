// Package rollup keeps Project.progress_percentage in step with the
// project's task set. Every task write triggers a full recompute from
// the current tasks, which makes the operation idempotent and safe to
// re-run.
package rollup

import (
	"fmt"
	"math"
	"time"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/types"
	"gorm.io/gorm"
)

type Engine struct {
	db *gorm.DB
}

func NewEngine(gdb *gorm.DB) *Engine {
	return &Engine{db: gdb}
}

// Recompute reads every task of the project and writes the rounded
// mean progress back to the project row. It runs synchronously inside
// the triggering operation so a follow-up read observes the new value.
func (e *Engine) Recompute(projectID uint) (int, error) {
	var progresses []int

	if err := e.db.Model(&models.Task{}).
		Where("project_id = ?", projectID).
		Pluck("progress_percentage", &progresses).Error; err != nil {
		return 0, fmt.Errorf("load task progress for project %d: %w", projectID, err)
	}

	progress := Average(progresses)

	result := e.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"progress_percentage": progress,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("store progress for project %d: %w", projectID, result.Error)
	}

	if result.RowsAffected == 0 {
		// Tasks cascade-delete with their project, so a missing
		// project here means the data is corrupt.
		return 0, fmt.Errorf("%w: project %d missing during progress rollup", types.ErrIntegrity, projectID)
	}

	return progress, nil
}

// Average returns the mean progress rounded half away from zero, or 0
// for an empty task set.
func Average(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, value := range values {
		sum += value
	}

	return int(math.Round(float64(sum) / float64(len(values))))
}
