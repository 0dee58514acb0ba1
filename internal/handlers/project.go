package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/types"
	"github.com/scafflow-dev/scafflow/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProjectHandler struct {
	projects *store.ProjectStore
}

func NewProjectHandler(projects *store.ProjectStore) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type CreateProjectRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	BudgetTotal *decimal.Decimal `json:"budget_total"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
}

type UpdateProjectRequest struct {
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	Location           *string          `json:"location"`
	Status             *string          `json:"status"`
	BudgetTotal        *decimal.Decimal `json:"budget_total"`
	BudgetSpent        *decimal.Decimal `json:"budget_spent"`
	ProgressPercentage *int             `json:"progress_percentage" binding:"omitempty,min=0,max=100"`
	StartDate          *string          `json:"start_date"`
	EndDate            *string          `json:"end_date"`
}

type ProjectResponse struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	Status             string          `json:"status"`
	BudgetTotal        decimal.Decimal `json:"budget_total"`
	BudgetSpent        decimal.Decimal `json:"budget_spent"`
	BudgetVariance     decimal.Decimal `json:"budget_variance"`
	ProgressPercentage int             `json:"progress_percentage"`
	StartDate          *string         `json:"start_date"`
	EndDate            *string         `json:"end_date"`
	OwnerID            uint            `json:"owner_id"`
	OwnerName          string          `json:"owner_name"`
	OwnerEmail         string          `json:"owner_email"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	identity, err := utils.GetIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	startDate, err := parseDate(req.StartDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endDate, err := parseDate(req.EndDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Create(identity, store.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		BudgetTotal: req.BudgetTotal,
		StartDate:   startDate,
		EndDate:     endDate,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	currentUser, _ := utils.GetCurrentUser(ctx)
	project.Owner = models.User{Name: currentUser.Name, Email: currentUser.Email}

	ctx.JSON(http.StatusCreated, toProjectResponse(*project))
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	identity, err := utils.GetIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := h.projects.ListVisible(identity)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, toProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	identity, err := utils.GetIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.GetVisible(identity, projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(*project))
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	identity, err := utils.GetIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	startDate, err := parseDate(req.StartDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endDate, err := parseDate(req.EndDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Update(identity, projectID, store.UpdateProjectInput{
		Name:               req.Name,
		Description:        req.Description,
		Location:           req.Location,
		Status:             req.Status,
		BudgetTotal:        req.BudgetTotal,
		BudgetSpent:        req.BudgetSpent,
		ProgressPercentage: req.ProgressPercentage,
		StartDate:          startDate,
		EndDate:            endDate,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(*project))
}

func toProjectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:                 project.ID,
		Name:               project.Name,
		Description:        project.Description,
		Location:           project.Location,
		Status:             project.Status,
		BudgetTotal:        project.BudgetTotal,
		BudgetSpent:        project.BudgetSpent,
		BudgetVariance:     project.BudgetVariance,
		ProgressPercentage: project.ProgressPercentage,
		StartDate:          formatDate(project.StartDate),
		EndDate:            formatDate(project.EndDate),
		OwnerID:            project.OwnerID,
		OwnerName:          project.Owner.Name,
		OwnerEmail:         project.Owner.Email,
		CreatedAt:          project.CreatedAt,
		UpdatedAt:          project.UpdatedAt,
	}
}

func parseDate(raw *string) (*datatypes.Date, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", *raw)

	if err != nil {
		return nil, fmt.Errorf("%w: dates must use the YYYY-MM-DD format", types.ErrInvalidInput)
	}

	date := datatypes.Date(parsed)
	return &date, nil
}

func formatDate(date *datatypes.Date) *string {
	if date == nil {
		return nil
	}

	formatted := time.Time(*date).Format("2006-01-02")
	return &formatted
}
