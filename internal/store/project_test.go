package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/types"
)

func TestListVisibleScopesToOwner(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE owner_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}))

	result, err := projects.ListVisible(&policy.Identity{ID: 5, Role: types.RoleSiteEngineer})
	require.NoError(t, err)
	assert.Empty(t, result)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVisibleAdminSeesEverything(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	// No owner filter for admins.
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE "projects"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}))

	_, err := projects.ListVisible(&policy.Identity{ID: 1, Role: types.RoleAdmin})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVisibleRequiresIdentity(t *testing.T) {
	_, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	_, err := projects.ListVisible(nil)
	assert.ErrorIs(t, err, types.ErrUnauthenticated)
}

func TestCreateRejectsAdminWithoutTouchingStorage(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	_, err := projects.Create(&policy.Identity{ID: 1, Role: types.RoleAdmin}, CreateProjectInput{Name: "Tower A"})
	assert.ErrorIs(t, err, types.ErrForbidden)

	assert.NoError(t, mock.ExpectationsWereMet(), "admin rejection must not reach the database")
}

func TestCreateRequiresName(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	_, err := projects.Create(&policy.Identity{ID: 5, Role: types.RoleVendor}, CreateProjectInput{Name: "   "})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSetsOwnerAndInitialVariance(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	mock.ExpectQuery(`INSERT INTO "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	total := decimal.RequireFromString("5000.00")

	project, err := projects.Create(&policy.Identity{ID: 5, Role: types.RoleSiteEngineer}, CreateProjectInput{
		Name:        "Tower A",
		BudgetTotal: &total,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), project.OwnerID)
	assert.Equal(t, "active", project.Status)
	assert.True(t, project.BudgetSpent.IsZero())
	assert.True(t, project.BudgetVariance.Equal(total))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMergesBudgetAgainstStoredValues(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "owner_id", "budget_total", "budget_spent", "budget_variance"}).
			AddRow(11, "Tower A", "active", 5, "5000.00", "1000.00", "4000.00"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(5, "Dana", "dana@site.test"))

	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	spent := decimal.RequireFromString("3000.00")

	project, err := projects.Update(&policy.Identity{ID: 5, Role: types.RoleSiteEngineer}, 11, UpdateProjectInput{
		BudgetSpent: &spent,
	})
	require.NoError(t, err)

	assert.True(t, project.BudgetTotal.Equal(decimal.RequireFromString("5000.00")), "omitted budget_total must keep its stored value")
	assert.True(t, project.BudgetSpent.Equal(spent))
	assert.True(t, project.BudgetVariance.Equal(decimal.RequireFromString("2000.00")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForbiddenForAdmin(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}).AddRow(11, "Tower A", 5))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Dana"))

	name := "Renamed"

	_, err := projects.Update(&policy.Identity{ID: 1, Role: types.RoleAdmin}, 11, UpdateProjectInput{Name: &name})
	assert.ErrorIs(t, err, types.ErrForbidden)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVisibleHidesForeignProjects(t *testing.T) {
	mock, gdb := setupMockDB(t)
	projects := NewProjectStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}).AddRow(11, "Tower A", 5))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Dana"))

	_, err := projects.GetVisible(&policy.Identity{ID: 99, Role: types.RoleSiteEngineer}, 11)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
