package db

import (
	"fmt"
	"os"

	"github.com/scafflow-dev/scafflow/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the process-scoped connection pool. It is called once
// from main; everything that touches storage receives the returned
// handle.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return gdb, nil
}

// DSNFromEnv builds the postgres DSN from DATABASE_URL or the
// individual DB_* variables.
func DSNFromEnv() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	name := envOr("DB_NAME", "scafflow_db")
	user := envOr("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, name)
}

func MigrateDatabase(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.BudgetItem{},
		&models.ChangeOrder{},
		&models.ProgressDraw{},
		&models.SafetyIncident{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close drains the underlying pool on process teardown.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()

	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
