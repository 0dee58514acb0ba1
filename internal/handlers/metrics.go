package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/metrics"
	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/types"
	"github.com/scafflow-dev/scafflow/internal/utils"
)

type MetricsHandler struct {
	projects *store.ProjectStore
	tasks    *store.TaskStore
	budget   *store.BudgetStore
	orders   *store.ChangeOrderStore
	draws    *store.ProgressDrawStore
	safety   *store.SafetyStore
}

func NewMetricsHandler(projects *store.ProjectStore, tasks *store.TaskStore, budget *store.BudgetStore, orders *store.ChangeOrderStore, draws *store.ProgressDrawStore, safety *store.SafetyStore) *MetricsHandler {
	return &MetricsHandler{
		projects: projects,
		tasks:    tasks,
		budget:   budget,
		orders:   orders,
		draws:    draws,
		safety:   safety,
	}
}

type DashboardResponse struct {
	Project         ProjectResponse        `json:"project"`
	TasksSummary    TasksSummary           `json:"tasks_summary"`
	Metrics         metrics.ProjectMetrics `json:"metrics"`
	RecentIncidents []IncidentSummary      `json:"recent_incidents"`
}

type TasksSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

type IncidentSummary struct {
	ID           uint   `json:"id"`
	IncidentType string `json:"incident_type"`
	Severity     string `json:"severity"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

// GetMetrics computes the KPI set from a fresh snapshot of the
// project's child records. It never writes anything back.
func (h *MetricsHandler) GetMetrics(ctx *gin.Context) {
	_, snapshot, ok := h.loadSnapshot(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, metrics.Compute(snapshot.tasks, snapshot.items, snapshot.orders, snapshot.draws))
}

func (h *MetricsHandler) GetDashboard(ctx *gin.Context) {
	identity, snapshot, ok := h.loadSnapshot(ctx)

	if !ok {
		return
	}

	incidents, err := h.safety.List(identity, snapshot.project.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	const recentIncidentLimit = 5

	incidentSummaries := make([]IncidentSummary, 0, recentIncidentLimit)

	for _, incident := range incidents {
		if len(incidentSummaries) == recentIncidentLimit {
			break
		}
		incidentSummaries = append(incidentSummaries, IncidentSummary{
			ID:           incident.ID,
			IncidentType: incident.IncidentType,
			Severity:     incident.Severity,
			Description:  incident.Description,
			Status:       incident.Status,
		})
	}

	ctx.JSON(http.StatusOK, DashboardResponse{
		Project:         toProjectResponse(*snapshot.project),
		TasksSummary:    summarizeTasks(snapshot.tasks),
		Metrics:         metrics.Compute(snapshot.tasks, snapshot.items, snapshot.orders, snapshot.draws),
		RecentIncidents: incidentSummaries,
	})
}

type projectSnapshot struct {
	project *models.Project
	tasks   []models.Task
	items   []models.BudgetItem
	orders  []models.ChangeOrder
	draws   []models.ProgressDraw
}

func (h *MetricsHandler) loadSnapshot(ctx *gin.Context) (*policy.Identity, *projectSnapshot, bool) {
	identity, err := utils.GetIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, nil, false
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	project, err := h.projects.GetVisible(identity, projectID)

	if err != nil {
		respondError(ctx, err)
		return nil, nil, false
	}

	snapshot := &projectSnapshot{project: project}

	if snapshot.tasks, err = h.tasks.List(identity, projectID); err != nil {
		respondError(ctx, err)
		return nil, nil, false
	}

	if snapshot.items, err = h.budget.List(identity, projectID); err != nil {
		respondError(ctx, err)
		return nil, nil, false
	}

	if snapshot.orders, err = h.orders.List(identity, projectID); err != nil {
		respondError(ctx, err)
		return nil, nil, false
	}

	if snapshot.draws, err = h.draws.List(identity, projectID); err != nil {
		respondError(ctx, err)
		return nil, nil, false
	}

	return identity, snapshot, true
}

func summarizeTasks(tasks []models.Task) TasksSummary {
	summary := TasksSummary{Total: len(tasks)}

	for _, task := range tasks {
		switch task.Status {
		case types.TaskStatusPending:
			summary.Pending++
		case types.TaskStatusInProgress:
			summary.InProgress++
		case types.TaskStatusCompleted:
			summary.Completed++
		}
	}

	return summary
}
