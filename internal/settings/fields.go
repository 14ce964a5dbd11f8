package settings

import (
	"encoding/json"
	"slices"

	"github.com/spf13/cast"
)

// Field keys, identical to the persisted JSON names.
const (
	KeySearchEngine       = "searchEngine"
	KeyTheme              = "theme"
	KeyBackgroundType     = "backgroundType"
	KeyCustomBackground   = "customBackground"
	KeyBackgroundColor    = "backgroundColor"
	KeyBackgroundSize     = "backgroundSize"
	KeyBackgroundPosition = "backgroundPosition"
	KeyBackgroundOpacity  = "backgroundOpacity"
	KeyGridColumns        = "gridColumns"
	KeyBorderRadius       = "borderRadius"
	KeyAnimationSpeed     = "animationSpeed"
	KeyFontFamily         = "fontFamily"
	KeyFontSize           = "fontSize"
)

// assigner stores a loosely typed value into one field. Values that cannot be
// coerced fall back to the field's default, they are never rejected.
type assigner func(s *Settings, v any)

var assigners = map[string]assigner{
	KeySearchEngine:       stringField(func(s *Settings) *string { return &s.SearchEngine }),
	KeyTheme:              stringField(func(s *Settings) *string { return &s.Theme }),
	KeyBackgroundType:     stringField(func(s *Settings) *string { return &s.BackgroundType }),
	KeyBackgroundColor:    stringField(func(s *Settings) *string { return &s.BackgroundColor }),
	KeyBackgroundSize:     stringField(func(s *Settings) *string { return &s.BackgroundSize }),
	KeyBackgroundPosition: stringField(func(s *Settings) *string { return &s.BackgroundPosition }),
	KeyAnimationSpeed:     stringField(func(s *Settings) *string { return &s.AnimationSpeed }),
	KeyFontFamily:         stringField(func(s *Settings) *string { return &s.FontFamily }),
	KeyBackgroundOpacity:  intField(func(s *Settings) *int { return &s.BackgroundOpacity }),
	KeyGridColumns:        intField(func(s *Settings) *int { return &s.GridColumns }),
	KeyBorderRadius:       intField(func(s *Settings) *int { return &s.BorderRadius }),
	KeyFontSize:           intField(func(s *Settings) *int { return &s.FontSize }),
	KeyCustomBackground: func(s *Settings, v any) {
		str, err := cast.ToStringE(v)
		if v == nil || err != nil || str == "" {
			s.CustomBackground = nil
			return
		}
		s.CustomBackground = &str
	},
}

// Keys returns every field key in a stable order.
func Keys() []string {
	keys := make([]string, 0, len(assigners))
	for k := range assigners {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// IsKey reports whether key names a settings field.
func IsKey(key string) bool {
	_, ok := assigners[key]
	return ok
}

// With returns a copy of s with key set to the coerced and normalized value.
// ok is false for unknown keys, in which case s is returned unchanged.
func (s Settings) With(key string, value any) (Settings, bool) {
	assign, ok := assigners[key]
	if !ok {
		return s, false
	}

	assign(&s, value)

	return s.Normalized(), true
}

// MergeJSON overlays the fields present in a JSON object onto s. Unknown keys
// are ignored and undecodable values fall back to the field default.
func (s Settings) MergeJSON(fields map[string]json.RawMessage) Settings {
	for key, raw := range fields {
		assign, ok := assigners[key]
		if !ok {
			continue
		}

		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			v = nil
		}

		assign(&s, v)
	}

	return s.Normalized()
}

// Decode builds a record from a persisted JSON object merged over the defaults.
// A blob that is not a JSON object yields the defaults and the decode error.
func Decode(raw []byte) (Settings, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Defaults(), err //nolint:wrapcheck
	}

	return Defaults().MergeJSON(fields), nil
}

func stringField(ptr func(*Settings) *string) assigner {
	return func(s *Settings, v any) {
		d := Defaults()

		str, err := cast.ToStringE(v)
		if v == nil || err != nil {
			str = *ptr(&d)
		}
		*ptr(s) = str
	}
}

func intField(ptr func(*Settings) *int) assigner {
	return func(s *Settings, v any) {
		d := Defaults()

		n, err := cast.ToIntE(v)
		if v == nil || err != nil {
			n = *ptr(&d)
		}
		*ptr(s) = n
	}
}
