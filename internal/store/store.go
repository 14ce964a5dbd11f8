// Package store implements the persistent key/value blob store that holds the
// settings record, the bookmark list and the mastery map.
//
// A Store knows nothing about the documents it holds. The JSON helpers decode
// into caller supplied values and report ErrNotFound for missing keys so callers
// can fall back to their defaults.
package store

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	// KeySettings holds the settings record.
	KeySettings = "newTabSettings"
	// KeyBookmarks holds the ordered bookmark list.
	KeyBookmarks = "newTabBookmarks"
	// KeyMastery holds the learning hub mastery map.
	KeyMastery = "russianMastered"
)

var (
	// ErrNotFound is returned when nothing is stored under a key.
	ErrNotFound = errors.New("store: key not found")
	// ErrDecode is returned when a stored value is not valid JSON for the target.
	ErrDecode = errors.New("store: malformed value")
)

// Store is a flat namespaced key/value blob store.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	// Keys returns every stored key in ascending order.
	Keys() ([]string, error)
}

// LoadJSON decodes the value stored under key into v.
func LoadJSON(s Store, key string, v any) error {
	raw, err := s.Get(key)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(ErrDecode, "%s: %v", key, err)
	}

	return nil
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return s.Set(key, raw)
}
