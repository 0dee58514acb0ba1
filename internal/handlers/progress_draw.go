package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/utils"
	"github.com/shopspring/decimal"
)

type ProgressDrawHandler struct {
	draws *store.ProgressDrawStore
}

func NewProgressDrawHandler(draws *store.ProgressDrawStore) *ProgressDrawHandler {
	return &ProgressDrawHandler{draws: draws}
}

type CreateProgressDrawRequest struct {
	DrawNumber  string          `json:"draw_number"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status" binding:"omitempty,oneof=requested approved paid"`
	RequestedAt *time.Time      `json:"requested_at"`
}

func (h *ProgressDrawHandler) List(ctx *gin.Context) {
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

	draws, err := h.draws.List(identity, projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, draws)
}

func (h *ProgressDrawHandler) Create(ctx *gin.Context) {
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

	var req CreateProgressDrawRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draw, err := h.draws.Create(identity, projectID, store.CreateProgressDrawInput{
		DrawNumber:  req.DrawNumber,
		Amount:      req.Amount,
		Status:      req.Status,
		RequestedAt: req.RequestedAt,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, draw)
}
