package services

import (
	"testing"

	"notake_backend/database"
	"notake_backend/internal/config"
	"notake_backend/internal/models"
	"notake_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to ":memory:" gets its own database, so the
	// pool must stay at one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func setupTestConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxFileSize = 50 * 1024 * 1024
	cfg.Upload.MaxProfileImageSize = 5 * 1024 * 1024
	config.AppConfig = cfg
}

func setupTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         models.UserRoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestNote(t *testing.T, db *gorm.DB, userID, title string) *models.Note {
	t.Helper()

	note := &models.Note{UserID: userID, Title: title, Content: "content"}
	require.NoError(t, db.Create(note).Error)
	return note
}
