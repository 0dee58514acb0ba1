package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// User roles. Only admin is treated specially: admins are read-only
// across the whole dataset. The other three roles are equivalent
// project owners.
const (
	RoleAdmin        = "admin"
	RoleSiteEngineer = "site_engineer"
	RoleArchitect    = "architect"
	RoleVendor       = "vendor"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

const (
	ChangeOrderStatusPending  = "pending"
	ChangeOrderStatusApproved = "approved"
	ChangeOrderStatusRejected = "rejected"
)

const (
	DrawStatusRequested = "requested"
	DrawStatusApproved  = "approved"
	DrawStatusPaid      = "paid"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// AllowedOrigins resolves the CORS origin list at call time, so values
// loaded from a .env file in main are picked up. Resolving at package
// init would freeze the list before godotenv runs.
func AllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
