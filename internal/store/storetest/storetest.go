// Package storetest provides an in-memory SQLite backed store for tests.
package storetest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/newtab-go/newtab/internal/db/models"
	"github.com/newtab-go/newtab/internal/store"
)

// New returns a Store on a fresh in-memory database.
func New(t *testing.T) *store.Gorm {
	t.Helper()

	return store.NewGorm(NewDB(t))
}

// NewDB opens and migrates a fresh in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// every pooled connection would otherwise see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Blob{}), "failed to migrate test database")

	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
