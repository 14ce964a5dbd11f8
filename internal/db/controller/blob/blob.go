// Package blob provides the gorm backed operations of the flat key/value blob store.
package blob

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/newtab-go/newtab/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrBlobNotFound is returned when no value is stored under a key.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrKeyEmpty is returned when a key is empty.
	ErrKeyEmpty = errors.New("blob key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the blob stored under key.
func Get(db *gorm.DB, key string) (*models.Blob, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	var b models.Blob
	result := db.Where(nameQueryPattern, key).First(&b)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, result.Error
	}

	return &b, nil
}

// Keys lists every stored key in ascending order.
func Keys(db *gorm.DB) ([]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var keys []string
	result := db.Model(&models.Blob{}).Order("name").Pluck("name", &keys)
	if result.Error != nil {
		return nil, result.Error
	}

	return keys, nil
}

// Set stores value under key, replacing any previous value.
func Set(db *gorm.DB, key string, value []byte) (*models.Blob, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	b := &models.Blob{Name: key, Value: value}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(b)
	if result.Error != nil {
		return nil, result.Error
	}

	return b, nil
}

// Delete removes the blob stored under key.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrKeyEmpty
	}

	result := db.Where(nameQueryPattern, key).Delete(&models.Blob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlobNotFound
	}

	return nil
}
