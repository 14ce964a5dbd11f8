package blob

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/newtab-go/newtab/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Blob{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "newTabSettings", []byte(`{"theme":"dark"}`))
	require.NoError(t, err)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		key           string
		expectedError error
		expectedValue []byte
	}{
		{name: "nil database", dbParam: nil, key: "newTabSettings", expectedError: ErrDBNil},
		{name: "empty key", dbParam: db, key: "", expectedError: ErrKeyEmpty},
		{name: "missing key", dbParam: db, key: "nonexistent", expectedError: ErrBlobNotFound},
		{name: "stored key", dbParam: db, key: "newTabSettings", expectedValue: []byte(`{"theme":"dark"}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Get(tc.dbParam, tc.key)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, b)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.key, b.Name)
			assert.Equal(t, tc.expectedValue, b.Value)
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "newTabBookmarks", []byte(`[]`))
	require.NoError(t, err)
	_, err = Set(db, "newTabBookmarks", []byte(`[{"id":"1"}]`))
	require.NoError(t, err)

	b, err := Get(db, "newTabBookmarks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), b.Value)

	var count int64
	db.Model(&models.Blob{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSetValidation(t *testing.T) {
	_, err := Set(nil, "k", nil)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Set(setupTestDB(t), "", []byte("x"))
	require.ErrorIs(t, err, ErrKeyEmpty)
}

func TestKeys(t *testing.T) {
	db := setupTestDB(t)

	for _, k := range []string{"russianMastered", "newTabSettings", "newTabBookmarks"} {
		_, err := Set(db, k, []byte("{}"))
		require.NoError(t, err)
	}

	keys, err := Keys(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"newTabBookmarks", "newTabSettings", "russianMastered"}, keys)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "russianMastered", []byte(`{"alphabet-0":true}`))
	require.NoError(t, err)

	require.NoError(t, Delete(db, "russianMastered"))
	require.ErrorIs(t, Delete(db, "russianMastered"), ErrBlobNotFound)
	require.ErrorIs(t, Delete(db, ""), ErrKeyEmpty)
	require.ErrorIs(t, Delete(nil, "x"), ErrDBNil)

	_, err = Get(db, "russianMastered")
	require.ErrorIs(t, err, ErrBlobNotFound)
}
