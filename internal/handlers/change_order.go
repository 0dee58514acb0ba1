package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/utils"
	"github.com/shopspring/decimal"
)

type ChangeOrderHandler struct {
	orders *store.ChangeOrderStore
}

func NewChangeOrderHandler(orders *store.ChangeOrderStore) *ChangeOrderHandler {
	return &ChangeOrderHandler{orders: orders}
}

type CreateChangeOrderRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

func (h *ChangeOrderHandler) List(ctx *gin.Context) {
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

	orders, err := h.orders.List(identity, projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func (h *ChangeOrderHandler) Create(ctx *gin.Context) {
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

	var req CreateChangeOrderRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Create(identity, projectID, store.CreateChangeOrderInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      req.Status,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, order)
}
