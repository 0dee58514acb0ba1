// seed-admin creates or updates the read-only admin account. Signup
// can never produce an admin, so this is the only way one exists.
//
// Usage:
//
//	ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=... go run ./cmd/seed-admin
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/scafflow-dev/scafflow/db"
	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		os.Exit(2)
	}

	if name == "" {
		name = "Scafflow Admin"
	}

	gdb, err := db.Connect(db.DSNFromEnv())

	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	defer db.Close(gdb)

	if err := db.MigrateDatabase(gdb); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate database: %v\n", err)
		os.Exit(1)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	var admin models.User

	err = gdb.Where("email = ?", email).First(&admin).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hashed),
			Role:         types.RoleAdmin,
		}
		if err := gdb.Create(&admin).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("created admin %s (id %d)\n", admin.Email, admin.ID)
	case err != nil:
		fmt.Fprintf(os.Stderr, "failed to look up admin: %v\n", err)
		os.Exit(1)
	default:
		if admin.Role != types.RoleAdmin {
			fmt.Fprintf(os.Stderr, "user %s exists with role %s; roles are immutable, refusing to overwrite\n", admin.Email, admin.Role)
			os.Exit(1)
		}
		if err := gdb.Model(&admin).Updates(map[string]interface{}{
			"name":          name,
			"password_hash": string(hashed),
		}).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to update admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("updated admin %s (id %d)\n", admin.Email, admin.ID)
	}
}
