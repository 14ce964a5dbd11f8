// Package bookmark keeps the ordered list of shortcuts shown in the grid.
package bookmark

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/newtab-go/newtab/internal/search"
)

// Bookmark is one grid entry.
type Bookmark struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url"  yaml:"url"`
	Icon string `json:"icon" yaml:"icon"`
}

// UnmarshalJSON accepts numeric ids as well as strings.
func (b *Bookmark) UnmarshalJSON(data []byte) error {
	type plain Bookmark

	var raw struct {
		plain
		ID any `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode bookmark")
	}

	id, err := cast.ToStringE(raw.ID)
	if err != nil {
		return errors.Wrap(err, "bookmark id")
	}

	*b = Bookmark(raw.plain)
	b.ID = id

	return nil
}

// Form is the add and edit dialog payload.
type Form struct {
	Name string `form:"name" json:"name" validate:"required"`
	URL  string `form:"url"  json:"url"  validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize trims both fields and validates them.
func (f Form) Normalize() (Form, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.URL = strings.TrimSpace(f.URL)

	if err := validate.Struct(f); err != nil {
		return f, ErrInvalid
	}

	return f, nil
}

// Icon returns the fallback glyph for a bookmark name: its first character, upper-cased.
func Icon(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}

	return strings.ToUpper(string(r))
}

// CoerceURL gives raw an explicit scheme, defaulting to https.
func CoerceURL(raw string) string {
	return search.WithScheme(strings.TrimSpace(raw))
}

// Defaults are seeded on the very first run.
func Defaults() []Bookmark {
	return []Bookmark{
		{ID: "1", Name: "YouTube", URL: "https://youtube.com", Icon: "Y"},
		{ID: "2", Name: "GitHub", URL: "https://github.com", Icon: "G"},
		{ID: "3", Name: "Discord", URL: "https://discord.com", Icon: "D"},
	}
}
