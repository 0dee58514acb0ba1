package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/utils"
)

type SafetyHandler struct {
	incidents *store.SafetyStore
}

func NewSafetyHandler(incidents *store.SafetyStore) *SafetyHandler {
	return &SafetyHandler{incidents: incidents}
}

type CreateSafetyIncidentRequest struct {
	IncidentType string `json:"incident_type"`
	Severity     string `json:"severity" binding:"required,oneof=low medium high"`
	Description  string `json:"description" binding:"required"`
	Status       string `json:"status"`
}

func (h *SafetyHandler) List(ctx *gin.Context) {
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

	incidents, err := h.incidents.List(identity, projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, incidents)
}

func (h *SafetyHandler) Create(ctx *gin.Context) {
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

	var req CreateSafetyIncidentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidents.Create(identity, projectID, store.CreateSafetyIncidentInput{
		IncidentType: req.IncidentType,
		Severity:     req.Severity,
		Description:  req.Description,
		Status:       req.Status,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, incident)
}
