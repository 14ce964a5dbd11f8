// Package models contains database model definitions.
package models

import "time"

// Blob is one named value of the persistent key/value store.
// Values are opaque to the database; callers store JSON documents.
type Blob struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:191"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable across gorm naming strategies.
func (Blob) TableName() string {
	return "newtab_blobs"
}
