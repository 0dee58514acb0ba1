package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/logging"
	"github.com/scafflow-dev/scafflow/internal/middleware"
	"github.com/scafflow-dev/scafflow/internal/types"
)

// respondError maps the store failure taxonomy onto HTTP statuses. The
// kinds stay distinct on the wire: a client must be able to tell
// re-authenticate (401) apart from not-allowed (403).
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	case errors.Is(err, types.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrDuplicateEmail):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
	default:
		logging.LogError(logging.GetLogger(), "handlers", "respondError", ctx.FullPath(),
			gin.H{"request_id": middleware.GetRequestID(ctx)}, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
