// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gift-tracker/backend/internal/domain/entity"
	"github.com/gift-tracker/backend/internal/integration/persistence/model"
)

// newTestDB opens an in-memory SQLite database with foreign keys enforced,
// matching the constraint behavior the repositories rely on in Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.GifteeModel{},
		&model.GiftIdeaModel{},
		&model.EmailQueueModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// createTestUser inserts a user the tests can hang giftees off.
func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := entity.NewUser(email, "Test User", "$2a$12$examplehashexamplehashexample")
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// createTestGiftee inserts a giftee owned by the user.
func createTestGiftee(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, budget *decimal.Decimal) *entity.Giftee {
	t.Helper()

	giftee := entity.NewGiftee(userID, name, "", budget, "")
	if err := NewGifteeRepository(db).Create(context.Background(), giftee); err != nil {
		t.Fatalf("failed to create test giftee: %v", err)
	}
	return giftee
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}
