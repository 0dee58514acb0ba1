package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/utils"
	"github.com/shopspring/decimal"
)

type BudgetHandler struct {
	budget *store.BudgetStore
}

func NewBudgetHandler(budget *store.BudgetStore) *BudgetHandler {
	return &BudgetHandler{budget: budget}
}

type CreateBudgetItemRequest struct {
	Category     string           `json:"category" binding:"required"`
	Description  string           `json:"description"`
	BudgetAmount decimal.Decimal  `json:"budget_amount"`
	SpentAmount  *decimal.Decimal `json:"spent_amount"`
}

func (h *BudgetHandler) List(ctx *gin.Context) {
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

	items, err := h.budget.List(identity, projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *BudgetHandler) Create(ctx *gin.Context) {
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

	var req CreateBudgetItemRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.budget.Create(identity, projectID, store.CreateBudgetItemInput{
		Category:     req.Category,
		Description:  req.Description,
		BudgetAmount: req.BudgetAmount,
		SpentAmount:  req.SpentAmount,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}
