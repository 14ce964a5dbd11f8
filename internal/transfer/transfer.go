// Package transfer moves settings and bookmarks in and out of the page as
// export files, and reads bookmark files written by other browsers.
package transfer

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/newtab-go/newtab/internal/bookmark"
	"github.com/newtab-go/newtab/internal/settings"
)

// User-visible acknowledgements.
const (
	MsgImported     = "Settings imported successfully!"
	MsgImportFailed = "Error importing settings: Invalid file format"
)

// isoMillis matches the browser's Date.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// ErrInvalidFormat is returned for import files that cannot be used.
var ErrInvalidFormat = errors.New("invalid file format")

// Document is the export file layout.
type Document struct {
	Settings   settings.Settings   `json:"settings"   yaml:"settings"`
	Bookmarks  []bookmark.Bookmark `json:"bookmarks"  yaml:"bookmarks"`
	ExportDate string              `json:"exportDate" yaml:"exportDate" jsonschema:"format=date-time"`
}

// NewDocument snapshots the current state.
func NewDocument(s settings.Settings, bookmarks []bookmark.Bookmark, now time.Time) Document {
	if bookmarks == nil {
		bookmarks = []bookmark.Bookmark{}
	}

	return Document{
		Settings:   s,
		Bookmarks:  bookmarks,
		ExportDate: now.UTC().Format(isoMillis),
	}
}

// Export encodes the document as indented JSON.
func Export(d Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(err, "encode export")
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Filename is the suggested download name for an export made at now.
func Filename(now time.Time) string {
	return "new-tab-settings-" + now.UTC().Format(time.DateOnly) + ".json"
}

// Patch is a parsed import file. Only the parts present in the file are set.
type Patch struct {
	Settings  map[string]json.RawMessage
	Bookmarks []bookmark.Bookmark
}

// HasBookmarks reports whether the file carried a bookmark list.
func (p Patch) HasBookmarks() bool {
	return p.Bookmarks != nil
}

// Parse decodes an import file completely before anything is changed.
// A settings member that is not an object or a bookmarks member that is not an
// array make the whole file invalid. Null members count as absent.
func Parse(data []byte) (Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return Patch{}, errors.Wrap(ErrInvalidFormat, "not a json object")
	}

	var p Patch

	if s, ok := raw["settings"]; ok && !isNull(s) {
		if err := json.Unmarshal(s, &p.Settings); err != nil || p.Settings == nil {
			return Patch{}, errors.Wrap(ErrInvalidFormat, "settings is not an object")
		}
	}

	if b, ok := raw["bookmarks"]; ok && !isNull(b) {
		if err := json.Unmarshal(b, &p.Bookmarks); err != nil {
			return Patch{}, errors.Wrap(ErrInvalidFormat, "bookmarks is not a list")
		}
		if p.Bookmarks == nil {
			p.Bookmarks = []bookmark.Bookmark{}
		}
	}

	return p, nil
}

// Apply merges the settings present in p and replaces the bookmark list when p has one.
func Apply(p Patch, model *settings.Model, bookmarks *bookmark.Store) error {
	if err := model.Merge(p.Settings); err != nil {
		return errors.Wrap(err, "import settings")
	}

	if p.HasBookmarks() {
		if err := bookmarks.Replace(p.Bookmarks); err != nil {
			return errors.Wrap(err, "import bookmarks")
		}
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
