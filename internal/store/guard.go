package store

import (
	"errors"
	"fmt"

	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
	"gorm.io/gorm"
)

// resolveProjectOwner looks up the owning user of a project. Every
// child-record operation runs through this before touching any rows,
// so an orphaned child (parent project gone) can never be served.
func resolveProjectOwner(gdb *gorm.DB, projectID uint) (uint, error) {
	var project models.Project

	if err := gdb.Select("id", "owner_id").Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: project %d", types.ErrNotFound, projectID)
		}
		return 0, fmt.Errorf("resolve project %d owner: %w", projectID, err)
	}

	return project.OwnerID, nil
}

// authorizeRead guards the list paths of the five child entities:
// the project must exist and the identity must hold read access to it.
func authorizeRead(gdb *gorm.DB, identity *policy.Identity, projectID uint) error {
	if identity == nil {
		return types.ErrUnauthenticated
	}

	ownerID, err := resolveProjectOwner(gdb, projectID)

	if err != nil {
		return err
	}

	if !policy.Decide(identity, ownerID).CanRead() {
		return types.ErrForbidden
	}

	return nil
}

// authorizeWrite guards the mutation paths. Admins never pass: the
// role is read-only across the whole dataset, so they are rejected
// before the project is even looked up.
func authorizeWrite(gdb *gorm.DB, identity *policy.Identity, projectID uint) error {
	if identity == nil {
		return types.ErrUnauthenticated
	}

	if identity.IsAdmin() {
		return fmt.Errorf("%w: admins are read-only for project data", types.ErrForbidden)
	}

	ownerID, err := resolveProjectOwner(gdb, projectID)

	if err != nil {
		return err
	}

	if !policy.Decide(identity, ownerID).CanWrite() {
		return types.ErrForbidden
	}

	return nil
}
