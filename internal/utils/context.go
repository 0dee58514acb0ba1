package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/middleware"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

// GetIdentity converts the authenticated user in the request context
// into the shape the ownership policy works with.
func GetIdentity(ctx *gin.Context) (*policy.Identity, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return nil, err
	}

	return &policy.Identity{ID: user.ID, Role: user.Role}, nil
}
