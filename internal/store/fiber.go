package store

import (
	"time"

	"github.com/pkg/errors"
)

// KV is the subset of the gofiber storage driver interface the store needs.
// The mysql and postgres drivers of github.com/gofiber/storage satisfy it.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// Fiber stores blobs in a gofiber storage driver. Values never expire.
type Fiber struct {
	kv KV
}

// NewFiber wraps a gofiber storage driver.
func NewFiber(kv KV) *Fiber {
	return &Fiber{kv: kv}
}

// Get implements Store. The drivers report a missing key as an empty value.
func (f *Fiber) Get(key string) ([]byte, error) {
	raw, err := f.kv.Get(key)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", key)
	}

	if len(raw) == 0 {
		return nil, ErrNotFound
	}

	return raw, nil
}

// Set implements Store.
func (f *Fiber) Set(key string, value []byte) error {
	return errors.Wrapf(f.kv.Set(key, value, 0), "set %s", key)
}

// Delete implements Store.
func (f *Fiber) Delete(key string) error {
	return errors.Wrapf(f.kv.Delete(key), "delete %s", key)
}
