package bookmark

import "github.com/pkg/errors"

var (
	// ErrInvalid is returned when the name or the url is empty.
	ErrInvalid = errors.New("bookmark name and url are required")
	// ErrNotFound is returned for unknown ids.
	ErrNotFound = errors.New("bookmark not found")
)
