package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scafflow-dev/scafflow/internal/policy"
	"github.com/scafflow-dev/scafflow/internal/rollup"
	"github.com/scafflow-dev/scafflow/internal/types"
)

const (
	testProjectID uint = 10
	testOwnerID   uint = 5
)

func owner() *policy.Identity {
	return &policy.Identity{ID: testOwnerID, Role: types.RoleSiteEngineer}
}

func TestTaskListForbiddenForStranger(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	mock.ExpectQuery(`SELECT "id","owner_id" FROM "projects"`).
		WillReturnRows(projectOwnerRows(testProjectID, testOwnerID))

	_, err := tasks.List(&policy.Identity{ID: 99, Role: types.RoleArchitect}, testProjectID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskListMissingProjectIsNotFound(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	mock.ExpectQuery(`SELECT "id","owner_id" FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}))

	_, err := tasks.List(owner(), testProjectID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskListAdminCanRead(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	mock.ExpectQuery(`SELECT "id","owner_id" FROM "projects"`).
		WillReturnRows(projectOwnerRows(testProjectID, testOwnerID))
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title", "progress_percentage"}).
			AddRow(1, testProjectID, "Pour foundation", 80))

	result, err := tasks.List(&policy.Identity{ID: 1, Role: types.RoleAdmin}, testProjectID)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskCreateForbiddenForAdmin(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	_, err := tasks.Create(&policy.Identity{ID: 1, Role: types.RoleAdmin}, testProjectID, CreateTaskInput{Title: "Inspect scaffolding"})
	assert.ErrorIs(t, err, types.ErrForbidden)

	assert.NoError(t, mock.ExpectationsWereMet(), "admin writes are rejected before any project lookup")
}

func TestTaskCreateForbiddenForAdminEvenWhenProjectMissing(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	// The admin rejection takes precedence over project existence:
	// the answer is Forbidden, never NotFound.
	_, err := tasks.Create(&policy.Identity{ID: 1, Role: types.RoleAdmin}, 999, CreateTaskInput{Title: "Inspect scaffolding"})
	assert.ErrorIs(t, err, types.ErrForbidden)
	assert.NotErrorIs(t, err, types.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskCreateRollsUpProjectProgress(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	mock.ExpectQuery(`SELECT "id","owner_id" FROM "projects"`).
		WillReturnRows(projectOwnerRows(testProjectID, testOwnerID))
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	// Rollup runs before Create returns: one prior task at 80 plus
	// the new one at 40 lands the project at 60.
	mock.ExpectQuery(`SELECT "progress_percentage" FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"progress_percentage"}).AddRow(80).AddRow(40))
	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	task, err := tasks.Create(owner(), testProjectID, CreateTaskInput{
		Title:              "Frame second floor",
		ProgressPercentage: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, testProjectID, task.ProjectID)
	assert.Equal(t, types.TaskStatusPending, task.Status)
	assert.Equal(t, "medium", task.Priority)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskCreateValidatesProgressRange(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	mock.ExpectQuery(`SELECT "id","owner_id" FROM "projects"`).
		WillReturnRows(projectOwnerRows(testProjectID, testOwnerID))

	_, err := tasks.Create(owner(), testProjectID, CreateTaskInput{
		Title:              "Impossible",
		ProgressPercentage: 120,
	})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskUpdateMergesAndRecomputes(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	mock.ExpectQuery(`SELECT "id","owner_id" FROM "projects"`).
		WillReturnRows(projectOwnerRows(testProjectID, testOwnerID))
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title", "status", "priority", "progress_percentage"}).
			AddRow(2, testProjectID, "Frame second floor", "in_progress", "high", 40))
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "progress_percentage" FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"progress_percentage"}).AddRow(80).AddRow(100))
	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	progress := 100
	task, err := tasks.Update(owner(), testProjectID, 2, UpdateTaskInput{ProgressPercentage: &progress})
	require.NoError(t, err)

	assert.Equal(t, 100, task.ProgressPercentage)
	assert.Equal(t, "Frame second floor", task.Title, "fields not in the request stay unchanged")
	assert.Equal(t, "high", task.Priority)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskUpdateUnknownTaskIsNotFound(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	mock.ExpectQuery(`SELECT "id","owner_id" FROM "projects"`).
		WillReturnRows(projectOwnerRows(testProjectID, testOwnerID))
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	title := "Ghost"
	_, err := tasks.Update(owner(), testProjectID, 404, UpdateTaskInput{Title: &title})
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskCreateUnauthenticatedWithoutIdentity(t *testing.T) {
	mock, gdb := setupMockDB(t)
	tasks := NewTaskStore(gdb, rollup.NewEngine(gdb))

	_, err := tasks.Create(nil, testProjectID, CreateTaskInput{Title: "Anything"})
	assert.ErrorIs(t, err, types.ErrUnauthenticated)

	assert.NoError(t, mock.ExpectationsWereMet(), "unauthenticated calls must not reach the database")
}
