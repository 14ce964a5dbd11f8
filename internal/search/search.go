// Package search classifies what the user typed into the search box and
// resolves it to a navigation target.
package search

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyQuery is returned for empty or whitespace-only input.
var ErrEmptyQuery = errors.New("empty query")

// Engine is a search provider.
type Engine struct {
	ID     string
	Name   string
	Prefix string
}

// DefaultEngine is used for unknown engine ids.
const DefaultEngine = "google"

var engines = map[string]Engine{
	"google": {ID: "google", Name: "Google", Prefix: "https://www.google.com/search?q="},
	"bing":   {ID: "bing", Name: "Bing", Prefix: "https://www.bing.com/search?q="},
}

var (
	urlPattern    = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
	domainPattern = regexp.MustCompile(`(?i)^[\w.-]+\.[a-z]{2,}$`)
	schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
)

// Lookup returns the engine for id, falling back to the default engine.
func Lookup(id string) Engine {
	if e, ok := engines[id]; ok {
		return e
	}

	return engines[DefaultEngine]
}

// IsURL reports whether text looks like a URL or a bare domain. The check is
// a permissive heuristic: "notes.txt" is a domain as far as it is concerned.
func IsURL(text string) bool {
	return urlPattern.MatchString(text) || domainPattern.MatchString(text)
}

// HasScheme reports whether raw starts with an explicit scheme.
func HasScheme(raw string) bool {
	return schemePattern.MatchString(raw)
}

// WithScheme prefixes https:// when raw has no scheme.
func WithScheme(raw string) string {
	if HasScheme(raw) {
		return raw
	}

	return "https://" + raw
}

// Resolve turns a query into the address the browser should navigate to.
func Resolve(query, engineID string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrEmptyQuery
	}

	if IsURL(q) {
		return WithScheme(q), nil
	}

	return Lookup(engineID).Prefix + EncodeComponent(q), nil
}

// EncodeComponent escapes s the way browsers' encodeURIComponent does.
func EncodeComponent(s string) string {
	escaped := url.QueryEscape(s)

	return componentFixer.Replace(escaped)
}

var componentFixer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
