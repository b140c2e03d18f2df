// Package testutil provides an in-memory store and identities for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bookstore-api/internal/config"
	"bookstore-api/internal/domains/user/model"
	"bookstore-api/internal/infrastructure/database"
)

const (
	JWTKey    = "test-signing-key-with-enough-entropy"
	JWTIssuer = "https://bookstore.test"
)

// NewTestDB opens a private in-memory SQLite database with foreign keys enforced
// and the full schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err, "failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the shared in-memory database and its pragmas consistent.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "failed to migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewTestConfig returns a development configuration with a fixed signing key.
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "Bookstore API",
			Environment: "test",
			Port:        "0",
			Version:     "test",
		},
		JWT: config.JWTConfig{
			Key:    JWTKey,
			Issuer: JWTIssuer,
		},
	}
}

// SeedUser stores a user with a cheap bcrypt hash and returns it.
func SeedUser(t *testing.T, db *gorm.DB, userName, password string, roles ...string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &model.User{
		UserName:     userName,
		Email:        userName + "@bookstore.test",
		PasswordHash: string(hash),
	}
	for _, r := range roles {
		u.Roles = append(u.Roles, model.UserRole{Name: r})
	}
	require.NoError(t, db.WithContext(context.Background()).Create(u).Error)
	return u
}
