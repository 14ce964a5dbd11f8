package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/newtab-go/newtab/internal/db/controller/blob"
)

// Gorm stores blobs in the newtab_blobs table of a gorm database.
type Gorm struct {
	db *gorm.DB
}

// NewGorm returns a Store backed by db. The blob table must already be migrated.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Get implements Store.
func (g *Gorm) Get(key string) ([]byte, error) {
	b, err := blob.Get(g.db, key)
	if err != nil {
		if errors.Is(err, blob.ErrBlobNotFound) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrapf(err, "get %s", key)
	}

	return b.Value, nil
}

// Set implements Store.
func (g *Gorm) Set(key string, value []byte) error {
	if _, err := blob.Set(g.db, key, value); err != nil {
		return errors.Wrapf(err, "set %s", key)
	}

	return nil
}

// Delete implements Store.
func (g *Gorm) Delete(key string) error {
	err := blob.Delete(g.db, key)
	if err != nil && !errors.Is(err, blob.ErrBlobNotFound) {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// Keys implements Lister.
func (g *Gorm) Keys() ([]string, error) {
	keys, err := blob.Keys(g.db)
	if err != nil {
		return nil, errors.Wrap(err, "list keys")
	}

	return keys, nil
}
