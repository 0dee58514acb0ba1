package rollup

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/scafflow-dev/scafflow/internal/types"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"no tasks yields zero", nil, 0},
		{"single task", []int{40}, 40},
		{"even mean", []int{80, 40}, 60},
		{"rounded up", []int{0, 1}, 1},
		{"all complete", []int{100, 100, 100}, 100},
		{"thirds round down", []int{0, 0, 100}, 33},
		{"thirds round up", []int{100, 100, 0}, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Average(tt.values))
		})
	}
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *Engine) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return mock, NewEngine(gdb)
}

func TestRecomputeWritesRoundedMean(t *testing.T) {
	mock, engine := setupMockDB(t)

	mock.ExpectQuery(`SELECT "progress_percentage" FROM "tasks"`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"progress_percentage"}).AddRow(80).AddRow(40))

	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	progress, err := engine.Recompute(1)
	require.NoError(t, err)
	assert.Equal(t, 60, progress)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeZeroTasksYieldsZero(t *testing.T) {
	mock, engine := setupMockDB(t)

	mock.ExpectQuery(`SELECT "progress_percentage" FROM "tasks"`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"progress_percentage"}))

	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	progress, err := engine.Recompute(2)
	require.NoError(t, err)
	assert.Equal(t, 0, progress)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeMissingProjectIsIntegrityViolation(t *testing.T) {
	mock, engine := setupMockDB(t)

	mock.ExpectQuery(`SELECT "progress_percentage" FROM "tasks"`).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"progress_percentage"}).AddRow(50))

	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := engine.Recompute(3)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrIntegrity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeIsIdempotent(t *testing.T) {
	mock, engine := setupMockDB(t)

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT "progress_percentage" FROM "tasks"`).
			WithArgs(uint(4)).
			WillReturnRows(sqlmock.NewRows([]string{"progress_percentage"}).AddRow(30).AddRow(70))

		mock.ExpectExec(`UPDATE "projects" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	first, err := engine.Recompute(4)
	require.NoError(t, err)

	second, err := engine.Recompute(4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}
