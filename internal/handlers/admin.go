package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/utils"
)

type AdminHandler struct {
	users *store.UserStore
}

func NewAdminHandler(users *store.UserStore) *AdminHandler {
	return &AdminHandler{users: users}
}

// ListUsers serves the admin directory: every account with its owned
// project count.
func (h *AdminHandler) ListUsers(ctx *gin.Context) {
	identity, err := utils.GetIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entries, err := h.users.ListDirectory(identity)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
