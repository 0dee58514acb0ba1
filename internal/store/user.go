package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(gdb *gorm.DB) *UserStore {
	return &UserStore{db: gdb}
}

// UserDirectoryEntry is a row of the admin user directory.
type UserDirectoryEntry struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	ProjectCount int64     `json:"project_count"`
}

func (s *UserStore) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return types.ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}

	return &user, nil
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", types.ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetch user %d: %w", id, err)
	}

	return &user, nil
}

// ListDirectory returns every user with their owned-project count.
// Admin eyes only.
func (s *UserStore) ListDirectory(identity *policy.Identity) ([]UserDirectoryEntry, error) {
	if identity == nil {
		return nil, types.ErrUnauthenticated
	}

	if !identity.IsAdmin() {
		return nil, fmt.Errorf("%w: the user directory is admin only", types.ErrForbidden)
	}

	var entries []UserDirectoryEntry

	err := s.db.Model(&models.User{}).
		Select("users.id, users.name, users.email, users.role, users.created_at, COUNT(projects.id) AS project_count").
		Joins("LEFT JOIN projects ON projects.owner_id = users.id AND projects.deleted_at IS NULL").
		Group("users.id").
		Order("users.created_at DESC").
		Scan(&entries).Error

	if err != nil {
		return nil, fmt.Errorf("list user directory: %w", err)
	}

	return entries, nil
}
